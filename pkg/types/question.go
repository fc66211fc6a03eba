package types

// OptionSlots is the fixed number of option fields on a question.
const OptionSlots = 4

// Question is one multiple-choice entry. Up to four option slots hold
// candidate answer plaintexts; Answer holds a bcrypt hash of the correct
// option's text. Absent slots are nil.
type Question struct {
	Option1 *string `json:"option1,omitempty" yaml:"option1,omitempty"`
	Option2 *string `json:"option2,omitempty" yaml:"option2,omitempty"`
	Option3 *string `json:"option3,omitempty" yaml:"option3,omitempty"`
	Option4 *string `json:"option4,omitempty" yaml:"option4,omitempty"`
	Answer  string  `json:"answer" yaml:"answer"`
}

// Options returns the option slots as an ordered array. Index i holds
// slot i+1, so positional identity survives the field-name encoding.
func (q *Question) Options() [OptionSlots]*string {
	return [OptionSlots]*string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// Option returns the plaintext for slot n (1-based) and whether the slot
// is present. Out-of-range slots are treated as absent.
func (q *Question) Option(n int) (string, bool) {
	if n < 1 || n > OptionSlots {
		return "", false
	}
	opt := q.Options()[n-1]
	if opt == nil {
		return "", false
	}
	return *opt, true
}

// Document is a parsed quiz: an ordered list of questions. The list is
// required; parsing enforces its presence and type before a Document is
// constructed.
type Document struct {
	Questions []Question `json:"questions" yaml:"questions"`
}
