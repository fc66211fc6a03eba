package extract

import (
	"gopkg.in/yaml.v3"

	"github.com/quizkey/quizkey/pkg/types"
)

// ParseDocumentYAML deserializes a YAML quiz document with the same error
// taxonomy as ParseDocument: unparseable input yields a
// *types.DeserializationError, and a missing, null, or non-sequence
// "questions" key yields a *types.MissingQuestionsError.
func ParseDocumentYAML(raw []byte) (*types.Document, error) {
	var probe struct {
		Questions yaml.Node `yaml:"questions"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return nil, &types.DeserializationError{Err: err}
	}

	// Kind zero means the key was never set.
	if probe.Questions.Kind == 0 || probe.Questions.Tag == "!!null" {
		return nil, &types.MissingQuestionsError{}
	}
	if probe.Questions.Kind != yaml.SequenceNode {
		return nil, &types.MissingQuestionsError{Reason: `"questions" is not a sequence`}
	}

	var questions []types.Question
	if err := probe.Questions.Decode(&questions); err != nil {
		return nil, &types.MissingQuestionsError{Reason: `"questions" is not a sequence of questions`}
	}

	return &types.Document{Questions: questions}, nil
}
