// Package evaluate routes answer spans through type-specific scoring
// strategies and applies learned calibration to the awarded marks.
package evaluate

import "math"

// EvaluationResult is the outcome of scoring one answer.
type EvaluationResult struct {
	// Marks is the final mark after calibration, in [0, MaxMarks].
	Marks    float64
	MaxMarks float64

	Feedback string

	// EvaluationConfidence is the strategy's self-reported confidence
	// in [0,1]. Deterministic strategies report 1.
	EvaluationConfidence float64

	NeedsReview  bool
	ReviewReason string

	Breakdown Breakdown

	// Model is the model ID that scored the answer, empty for
	// deterministic strategies.
	Model string
}

// Breakdown carries the type-specific detail behind a mark. RawMarks and
// CalibratedMarks are always set so the calibration step is auditable.
type Breakdown struct {
	RawMarks        float64 `json:"rawMarks"`
	CalibratedMarks float64 `json:"calibratedMarks"`

	// Text answers.
	Strengths       []string `json:"strengths,omitempty"`
	Improvements    []string `json:"improvements,omitempty"`
	KeywordsMatched int      `json:"keywordsMatched,omitempty"`
	TotalKeywords   int      `json:"totalKeywords,omitempty"`

	// Math answers.
	CorrectSteps       int     `json:"correctSteps,omitempty"`
	TotalSteps         int     `json:"totalSteps,omitempty"`
	FinalAnswerCorrect bool    `json:"finalAnswerCorrect,omitempty"`
	MethodScore        float64 `json:"methodScore,omitempty"`
	StepBreakdown      string  `json:"stepBreakdown,omitempty"`

	// Code answers.
	LogicScore      float64 `json:"logicScore,omitempty"`
	ApproachCorrect string  `json:"approachCorrect,omitempty"`
	EdgeCases       string  `json:"edgeCases,omitempty"`

	// Diagram answers.
	ExtractedLabels   []string `json:"extractedLabels,omitempty"`
	MatchedComponents []string `json:"matchedComponents,omitempty"`
	MissingComponents []string `json:"missingComponents,omitempty"`
	MatchPercentage   float64  `json:"matchPercentage,omitempty"`

	// Choice answers.
	SelectedOption string `json:"selectedOption,omitempty"`
	CorrectOption  string `json:"correctOption,omitempty"`
	Correct        bool   `json:"correct,omitempty"`
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampMarks(marks, maxMarks float64) float64 {
	if marks < 0 {
		return 0
	}
	if marks > maxMarks {
		return maxMarks
	}
	return marks
}
