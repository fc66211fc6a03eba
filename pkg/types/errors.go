package types

import "fmt"

// DeserializationError reports raw input that is not well-formed JSON.
// Fatal to the current run; the caller renders it instead of any results.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// MissingQuestionsError reports a document that parsed as JSON but has no
// usable question list: the "questions" key is absent or is not an array.
// Kept distinct from DeserializationError so callers can render a
// different message for each.
type MissingQuestionsError struct {
	// Reason distinguishes the absent-key case from the wrong-type case.
	Reason string
}

func (e *MissingQuestionsError) Error() string {
	if e.Reason == "" {
		return "document has no questions array"
	}
	return "document has no questions array: " + e.Reason
}
