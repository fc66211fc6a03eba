package types

// MatchResult is the outcome for a single question. Number is the question's
// 1-based position in the source list. CorrectOption is the matched slot
// number (1-4), or nil when no option verified against the stored hash.
// nil is deliberate: an unmatched row must stay distinguishable from slot
// data, so it is never coerced to 0.
type MatchResult struct {
	Number        int  `json:"number"`
	CorrectOption *int `json:"correctOption"`
}

// Matched reports whether an option verified for this question.
func (r MatchResult) Matched() bool {
	return r.CorrectOption != nil
}

// NewMatchResult builds a matched result for the given ordinal and slot.
func NewMatchResult(number, option int) MatchResult {
	return MatchResult{Number: number, CorrectOption: &option}
}

// NewUnmatchedResult builds a no-match result for the given ordinal.
func NewUnmatchedResult(number int) MatchResult {
	return MatchResult{Number: number}
}
