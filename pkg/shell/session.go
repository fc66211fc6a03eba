// Package shell holds the transient state behind a presentation surface:
// the pasted input, the latest report, and the latest error. The wasm and
// serve hosts both drive a Session.
package shell

import (
	"errors"

	"github.com/quizkey/quizkey/pkg/extract"
	"github.com/quizkey/quizkey/pkg/matcher"
	"github.com/quizkey/quizkey/pkg/types"
)

// ErrorKind identifies which user-facing message a failed run renders.
type ErrorKind string

const (
	ErrorNone             ErrorKind = ""
	ErrorInvalidJSON      ErrorKind = "invalid_json"
	ErrorMissingQuestions ErrorKind = "missing_questions"
)

// View is the render model after a run: the current input text, the result
// rows, the unmatched count for the warning banner, and the document-level
// error if any. A document-level error always comes with empty results.
type View struct {
	Input     string              `json:"input"`
	Results   []types.MatchResult `json:"results"`
	Unmatched int                 `json:"unmatched"`
	ErrorKind ErrorKind           `json:"errorKind,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// HasUnmatched reports whether the unmatched-rows banner should show.
func (v View) HasUnmatched() bool {
	return v.Unmatched > 0
}

// Session is the state container for one view instance. Operations are
// synchronous and run one at a time; a Session needs no locking of its own.
type Session struct {
	extractor *extract.Extractor
	logger    DebugLogger
	view      View
}

// NewSession creates an empty session. Matcher options pass through, so a
// host can substitute the verifier.
func NewSession(logger DebugLogger, opts ...matcher.Option) *Session {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Session{
		extractor: extract.New(opts...),
		logger:    logger,
	}
}

// Process runs one full pass over text: deserialize, validate, match, and
// store the outcome. The returned View replaces whatever the previous run
// produced; results and errors never mix.
func (s *Session) Process(text string) View {
	s.logger.Log("processing %d bytes of input", len(text))

	view := View{Input: text}
	report, err := s.extractor.ExtractBytes([]byte(text))
	switch {
	case err == nil:
		view.Results = report.Results
		view.Unmatched = report.Unmatched
		s.logger.Log("extracted %d results, %d unmatched", len(report.Results), report.Unmatched)
	default:
		view.ErrorKind, view.Error = classify(err)
		s.logger.Log("document rejected: %s", view.Error)
	}

	s.view = view
	return view
}

// Reset clears input, results, and error state back to initial empty values.
func (s *Session) Reset() View {
	s.logger.Log("session reset")
	s.view = View{}
	return s.view
}

// Current returns the view produced by the most recent Process or Reset.
func (s *Session) Current() View {
	return s.view
}

// classify maps a document-level error to its render category. Unknown
// error types fall back to the deserialization message rather than
// disappearing silently.
func classify(err error) (ErrorKind, string) {
	var mq *types.MissingQuestionsError
	if errors.As(err, &mq) {
		return ErrorMissingQuestions, mq.Error()
	}
	var de *types.DeserializationError
	if errors.As(err, &de) {
		return ErrorInvalidJSON, de.Error()
	}
	return ErrorInvalidJSON, err.Error()
}
