// Package quizkey recovers the answer key of a multiple-choice quiz whose
// correct answers are stored as bcrypt hashes.
//
// A quiz document is a JSON object with a "questions" array. Each question
// holds up to four option slots (option1..option4) and an "answer" field
// containing the bcrypt hash of the correct option's plaintext. Quizkey
// re-hashes each option and reports which slot verifies.
//
// # Basic Usage
//
// Create an extractor and process a document:
//
//	extractor := quizkey.NewExtractor()
//
//	report, err := extractor.ExtractString(`{"questions":[{"option1":"Paris","option2":"Rome","answer":"$2b$..."}]}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, result := range report.Results {
//	    if result.Matched() {
//	        fmt.Printf("question %d: option %d\n", result.Number, *result.CorrectOption)
//	    } else {
//	        fmt.Printf("question %d: not found\n", result.Number)
//	    }
//	}
//
// # Error Handling
//
// Malformed JSON and a missing/invalid questions array fail with distinct
// error types so callers can render distinct messages:
//
//	_, err := extractor.ExtractString(input)
//	var missing *quizkey.MissingQuestionsError
//	if errors.As(err, &missing) {
//	    // parsed fine, but no usable "questions" array
//	}
//
// A question whose stored hash matches none of its options is not an error:
// the row comes back with a nil CorrectOption and the report's Unmatched
// count is raised.
package quizkey

import (
	"fmt"
	"os"

	"github.com/quizkey/quizkey/pkg/extract"
	"github.com/quizkey/quizkey/pkg/matcher"
	"github.com/quizkey/quizkey/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/quizkey/quizkey" without subpackages.
type (
	// Question is one multiple-choice entry with hashed answer.
	Question = types.Question

	// Document is a parsed quiz: an ordered question list.
	Document = types.Document

	// MatchResult pairs a question ordinal with its matched option slot.
	MatchResult = types.MatchResult

	// Report is the outcome of processing one document.
	Report = extract.Report

	// Verifier checks a candidate plaintext against a stored hash.
	Verifier = matcher.Verifier

	// MissingQuestionsError reports a document without a usable questions array.
	MissingQuestionsError = types.MissingQuestionsError

	// DeserializationError reports input that is not well-formed JSON.
	DeserializationError = types.DeserializationError
)

// Extractor recovers answer keys from quiz documents.
type Extractor struct {
	inner   *extract.Extractor
	matcher *matcher.Matcher
}

// Option configures an Extractor.
type Option func(*config)

type config struct {
	matcherOpts []matcher.Option
}

// WithVerifier substitutes the hash verifier. The default verifies with
// bcrypt; tests can inject a fake to avoid real cost-factor computation.
func WithVerifier(v Verifier) Option {
	return func(c *config) {
		c.matcherOpts = append(c.matcherOpts, matcher.WithVerifier(v))
	}
}

// NewExtractor creates an Extractor. By default it verifies option
// plaintexts against bcrypt answer hashes.
//
// Example:
//
//	// Default extractor
//	extractor := quizkey.NewExtractor()
//
//	// With a custom verifier
//	extractor := quizkey.NewExtractor(quizkey.WithVerifier(myVerifier))
func NewExtractor(opts ...Option) *Extractor {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return &Extractor{
		inner:   extract.New(c.matcherOpts...),
		matcher: matcher.New(c.matcherOpts...),
	}
}

// ExtractString processes a raw JSON quiz document.
func (e *Extractor) ExtractString(input string) (*Report, error) {
	return e.inner.ExtractBytes([]byte(input))
}

// ExtractBytes processes a raw JSON quiz document.
func (e *Extractor) ExtractBytes(input []byte) (*Report, error) {
	return e.inner.ExtractBytes(input)
}

// ExtractFile reads and processes a quiz document from disk.
func (e *Extractor) ExtractFile(path string) (*Report, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return e.inner.ExtractBytes(content)
}

// ExtractDocument processes an already-parsed document.
func (e *Extractor) ExtractDocument(doc *Document) (*Report, error) {
	return e.inner.ExtractDocument(doc)
}

// FindCorrectOption returns the matched slot number (1-4) for a single
// question, or (0, false) when no option verifies.
func (e *Extractor) FindCorrectOption(q *Question) (int, bool) {
	return e.matcher.FindCorrectOption(q)
}

// ParseDocument deserializes a raw JSON quiz document without matching.
func ParseDocument(raw []byte) (*Document, error) {
	return extract.ParseDocument(raw)
}
