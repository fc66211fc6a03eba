// Package matcher finds which option slot of a question verifies against the
// question's stored answer hash.
package matcher

import "github.com/quizkey/quizkey/pkg/types"

// Verifier checks a candidate plaintext against a stored hash. The hash
// encoding carries its own salt and cost, so verification is a rehash and
// compare, not a lookup. Implementations must treat an unparseable hash as
// a non-match rather than an error.
type Verifier interface {
	Verify(hash, candidate string) bool
}

// Matcher locates the correct option for individual questions.
type Matcher struct {
	verifier Verifier
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithVerifier replaces the default bcrypt verifier. Tests use this to
// substitute a fake that skips real cost-factor computation.
func WithVerifier(v Verifier) Option {
	return func(m *Matcher) {
		m.verifier = v
	}
}

// New creates a Matcher. By default it verifies with bcrypt.
func New(opts ...Option) *Matcher {
	m := &Matcher{verifier: BcryptVerifier{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FindCorrectOption scans slots 1 through 4 in that order and returns the
// first slot whose plaintext verifies against the stored answer hash.
// Absent slots are skipped. Returns (0, false) when nothing verifies,
// including when the stored hash is malformed. A well-formed quiz has one
// correct option; if several slots spuriously verify, the lowest wins.
func (m *Matcher) FindCorrectOption(q *types.Question) (int, bool) {
	for i, opt := range q.Options() {
		if opt == nil {
			continue
		}
		if m.verifier.Verify(q.Answer, *opt) {
			return i + 1, true
		}
	}
	return 0, false
}
