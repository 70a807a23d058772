package exam

// AnswerType is the closed set of answer formats the grading pipeline
// understands. Dispatch in the evaluation router is keyed on this tag,
// so adding a type is an explicit, compile-checked extension.
type AnswerType string

const (
	TypeText    AnswerType = "text"
	TypeMath    AnswerType = "math"
	TypeCode    AnswerType = "code"
	TypeDiagram AnswerType = "diagram"
	TypeChoice  AnswerType = "choice"
)

// Valid reports whether t is one of the five known answer types.
func (t AnswerType) Valid() bool {
	switch t {
	case TypeText, TypeMath, TypeCode, TypeDiagram, TypeChoice:
		return true
	}
	return false
}

// BloomLevel classifies the cognitive demand of a question per Bloom's
// taxonomy.
type BloomLevel string

const (
	BloomRemember   BloomLevel = "Remember"
	BloomUnderstand BloomLevel = "Understand"
	BloomApply      BloomLevel = "Apply"
	BloomAnalyze    BloomLevel = "Analyze"
	BloomEvaluate   BloomLevel = "Evaluate"
	BloomCreate     BloomLevel = "Create"
)

// Question is one entry of a finalized question paper. Immutable once
// the paper is finalized.
type Question struct {
	// Number is the identifier as printed on the paper: "1", "5a", "12b".
	Number string

	// Ordinal is the position in the paper, 1-based.
	Ordinal int

	// Text is the full question text.
	Text string

	// MaxMarks is the maximum awardable marks. Always positive.
	MaxMarks float64

	// Bloom classifies cognitive demand.
	Bloom BloomLevel

	// Type selects the scoring strategy.
	Type AnswerType
}

// ModelAnswer holds the answer-key entry for one question, with the
// type-specific scoring parameters.
type ModelAnswer struct {
	// Text is the model solution (or the correct option for choice).
	Text string

	// Keywords are the key concepts a text answer must cover.
	Keywords []string

	// CorrectOption is the expected option letter for choice questions.
	CorrectOption string

	// Components are the required labels for diagram questions.
	Components []string

	// Language is the programming language tag for code questions.
	Language string
}
