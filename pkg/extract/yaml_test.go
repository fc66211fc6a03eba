package extract

import (
	"testing"

	"github.com/quizkey/quizkey/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentYAML_Valid(t *testing.T) {
	raw := []byte(`
questions:
  - option1: Paris
    option2: Rome
    answer: "hash:Paris"
  - option3: Berlin
    answer: "hash:Berlin"
`)

	doc, err := ParseDocumentYAML(raw)
	require.NoError(t, err)
	require.Len(t, doc.Questions, 2)
	assert.Equal(t, "Paris", *doc.Questions[0].Option1)
	assert.Nil(t, doc.Questions[0].Option3)
	assert.Equal(t, "Berlin", *doc.Questions[1].Option3)
}

func TestParseDocumentYAML_MissingQuestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty document", ``},
		{"no questions key", `title: quiz`},
		{"null questions", `questions: null`},
		{"scalar questions", `questions: 5`},
		{"mapping questions", "questions:\n  a: 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocumentYAML([]byte(tt.raw))

			var mq *types.MissingQuestionsError
			assert.ErrorAs(t, err, &mq)
		})
	}
}

func TestParseDocumentYAML_Unparseable(t *testing.T) {
	_, err := ParseDocumentYAML([]byte("questions: [\n  - {"))

	var de *types.DeserializationError
	assert.ErrorAs(t, err, &de)
}

func TestParseDocumentYAML_FeedsExtractor(t *testing.T) {
	doc, err := ParseDocumentYAML([]byte("questions:\n  - option1: a\n    answer: \"hash:a\"\n"))
	require.NoError(t, err)

	report, err := newFakeExtractor().ExtractDocument(doc)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, 1, *report.Results[0].CorrectOption)
}
