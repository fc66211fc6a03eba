// Package extract parses quiz documents and recovers the answer key by
// running the matcher over every question.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/quizkey/quizkey/pkg/matcher"
	"github.com/quizkey/quizkey/pkg/types"
)

// ParseDocument deserializes a raw JSON quiz document. Malformed JSON yields
// a *types.DeserializationError; well-formed JSON whose "questions" key is
// absent, null, or not an array yields a *types.MissingQuestionsError. The
// two stay distinct so callers render different messages.
func ParseDocument(raw []byte) (*types.Document, error) {
	var probe struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON whose top level is not an object.
			return nil, &types.MissingQuestionsError{Reason: "top-level value is not an object"}
		}
		return nil, &types.DeserializationError{Err: err}
	}

	if probe.Questions == nil || bytes.Equal(probe.Questions, []byte("null")) {
		return nil, &types.MissingQuestionsError{}
	}

	var questions []types.Question
	if err := json.Unmarshal(probe.Questions, &questions); err != nil {
		return nil, &types.MissingQuestionsError{Reason: `"questions" is not an array of questions`}
	}

	return &types.Document{Questions: questions}, nil
}

// Report is the full outcome of processing one document: one result per
// question in input order, plus the count of rows whose hash matched no
// option. A nonzero Unmatched is a warning for the caller to surface, not
// an error.
type Report struct {
	Results   []types.MatchResult `json:"results"`
	Unmatched int                 `json:"unmatched"`
}

// HasUnmatched reports whether at least one question had no matching option.
func (r *Report) HasUnmatched() bool {
	return r.Unmatched > 0
}

// Extractor applies the matcher to whole documents.
type Extractor struct {
	matcher *matcher.Matcher
}

// New creates an Extractor. Options pass through to the matcher.
func New(opts ...matcher.Option) *Extractor {
	return &Extractor{matcher: matcher.New(opts...)}
}

// ExtractResults produces one MatchResult per question, ordinals 1..N in
// input order. A per-question miss never aborts the run; the row is marked
// unmatched and processing continues, so the caller always gets a result
// list exactly as long as the question list. A nil document or question
// list fails with *types.MissingQuestionsError.
func (e *Extractor) ExtractResults(doc *types.Document) ([]types.MatchResult, error) {
	if doc == nil || doc.Questions == nil {
		return nil, &types.MissingQuestionsError{}
	}

	results := make([]types.MatchResult, 0, len(doc.Questions))
	for i := range doc.Questions {
		if opt, ok := e.matcher.FindCorrectOption(&doc.Questions[i]); ok {
			results = append(results, types.NewMatchResult(i+1, opt))
		} else {
			results = append(results, types.NewUnmatchedResult(i+1))
		}
	}
	return results, nil
}

// ExtractBytes parses raw JSON and extracts results in one step.
func (e *Extractor) ExtractBytes(raw []byte) (*Report, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(doc)
}

// ExtractDocument extracts results from an already-parsed document.
func (e *Extractor) ExtractDocument(doc *types.Document) (*Report, error) {
	results, err := e.ExtractResults(doc)
	if err != nil {
		return nil, err
	}

	unmatched := 0
	for _, r := range results {
		if !r.Matched() {
			unmatched++
		}
	}
	return &Report{Results: results, Unmatched: unmatched}, nil
}
