package shell

import (
	"fmt"
	"testing"

	"github.com/quizkey/quizkey/pkg/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct{}

func (fakeVerifier) Verify(hash, candidate string) bool {
	return hash == "hash:"+candidate
}

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func newFakeSession() *Session {
	return NewSession(nil, matcher.WithVerifier(fakeVerifier{}))
}

func TestSession_ProcessValidDocument(t *testing.T) {
	s := newFakeSession()

	input := `{"questions":[{"option1":"Paris","option2":"Rome","answer":"hash:Paris"}]}`
	view := s.Process(input)

	assert.Equal(t, input, view.Input)
	require.Len(t, view.Results, 1)
	assert.Equal(t, 1, view.Results[0].Number)
	assert.Equal(t, 1, *view.Results[0].CorrectOption)
	assert.Equal(t, ErrorNone, view.ErrorKind)
	assert.False(t, view.HasUnmatched())
}

func TestSession_ProcessPartialMatch(t *testing.T) {
	s := newFakeSession()

	view := s.Process(`{"questions":[{"option1":"Paris","answer":"hash:London"}]}`)

	// Partial success still renders the table, with the row flagged and
	// the banner raised.
	require.Len(t, view.Results, 1)
	assert.Nil(t, view.Results[0].CorrectOption)
	assert.Equal(t, 1, view.Unmatched)
	assert.True(t, view.HasUnmatched())
	assert.Equal(t, ErrorNone, view.ErrorKind)
}

func TestSession_ProcessInvalidJSON(t *testing.T) {
	s := newFakeSession()

	view := s.Process(`{"questions":`)

	assert.Equal(t, ErrorInvalidJSON, view.ErrorKind)
	assert.NotEmpty(t, view.Error)
	assert.Empty(t, view.Results)
}

func TestSession_ProcessMissingQuestions(t *testing.T) {
	s := newFakeSession()

	view := s.Process(`{}`)

	assert.Equal(t, ErrorMissingQuestions, view.ErrorKind)
	assert.NotEmpty(t, view.Error)
	assert.Empty(t, view.Results)
}

func TestSession_ErrorKindsAreDistinct(t *testing.T) {
	s := newFakeSession()

	invalid := s.Process(`not json`)
	missing := s.Process(`{"questions":5}`)

	assert.NotEqual(t, invalid.ErrorKind, missing.ErrorKind)
	assert.NotEqual(t, invalid.Error, missing.Error)
}

func TestSession_ErrorReplacesPriorResults(t *testing.T) {
	s := newFakeSession()

	s.Process(`{"questions":[{"option1":"a","answer":"hash:a"}]}`)
	view := s.Process(`{`)

	assert.Empty(t, view.Results)
	assert.Equal(t, ErrorInvalidJSON, view.ErrorKind)
	assert.Equal(t, view, s.Current())
}

func TestSession_Reset(t *testing.T) {
	s := newFakeSession()

	s.Process(`{"questions":[{"option1":"a","answer":"hash:miss"}]}`)
	view := s.Reset()

	assert.Equal(t, View{}, view)
	assert.Equal(t, View{}, s.Current())
}

func TestSession_LogsThroughInjectedLogger(t *testing.T) {
	logger := &recordingLogger{}
	s := NewSession(logger, matcher.WithVerifier(fakeVerifier{}))

	s.Process(`{}`)
	s.Reset()

	assert.NotEmpty(t, logger.lines)
}
