package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smehta/examiner/internal/llm"
)

// ScoreRequest carries an answer to an LLM-backed scoring call.
type ScoreRequest struct {
	QuestionText  string
	StudentAnswer string
	ModelAnswer   string
	MaxMarks      float64

	// Keywords are the key concepts a text answer should cover.
	Keywords []string

	// Language is the programming language tag for code answers.
	Language string
}

// Scorer is the external scoring capability for text, math and code
// answers. Implementations never execute student code.
type Scorer interface {
	ScoreText(ctx context.Context, req ScoreRequest) (*TextScore, error)
	ScoreMath(ctx context.Context, req ScoreRequest) (*MathScore, error)
	ScoreCode(ctx context.Context, req ScoreRequest) (*CodeScore, error)

	// ModelID identifies the scoring backend for audit records.
	ModelID() string
}

// TextScore is the structured outcome of scoring a descriptive answer.
type TextScore struct {
	MarksAwarded float64  `json:"marks_awarded"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Confidence   float64  `json:"confidence"`
}

// MathScore is the structured outcome of scoring a math solution.
type MathScore struct {
	MarksAwarded       float64 `json:"marks_awarded"`
	CorrectSteps       int     `json:"correct_steps"`
	TotalSteps         int     `json:"total_steps"`
	FinalAnswerCorrect bool    `json:"final_answer_correct"`
	MethodScore        float64 `json:"method_score"`
	StepBreakdown      string  `json:"step_breakdown"`
	Feedback           string  `json:"feedback"`
	Confidence         float64 `json:"confidence"`
}

// CodeScore is the structured outcome of scoring a programming answer.
type CodeScore struct {
	MarksAwarded    float64  `json:"marks_awarded"`
	LogicScore      float64  `json:"logic_score"`
	ApproachCorrect string   `json:"approach_correct"`
	EdgeCases       string   `json:"edge_cases"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Feedback        string   `json:"feedback"`
	Confidence      float64  `json:"confidence"`
}

// LLMScorer implements Scorer on top of an llm.Provider with per-type
// prompts and JSON schemas.
type LLMScorer struct {
	provider llm.Provider
}

// NewLLMScorer creates a scorer backed by the given provider.
func NewLLMScorer(provider llm.Provider) *LLMScorer {
	return &LLMScorer{provider: provider}
}

// ModelID returns the underlying provider's model identifier.
func (s *LLMScorer) ModelID() string {
	return s.provider.ModelID()
}

func (s *LLMScorer) ScoreText(ctx context.Context, req ScoreRequest) (*TextScore, error) {
	ctx = llm.WithPurpose(ctx, "text-eval")

	prompt := buildTextPrompt(req)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    textSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    textScoreSchema(),
		MaxTokens: 1500,
	})
	if err != nil {
		return nil, err
	}

	var score TextScore
	if err := json.Unmarshal(resp.Content, &score); err != nil {
		return nil, fmt.Errorf("decode text score: %w", err)
	}
	score.MarksAwarded = clampMarks(score.MarksAwarded, req.MaxMarks)
	return &score, nil
}

func (s *LLMScorer) ScoreMath(ctx context.Context, req ScoreRequest) (*MathScore, error) {
	ctx = llm.WithPurpose(ctx, "math-eval")

	studentSteps := ExtractSteps(req.StudentAnswer)
	modelSteps := ExtractSteps(req.ModelAnswer)

	prompt := buildMathPrompt(req, studentSteps, modelSteps)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    mathSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    mathScoreSchema(),
		MaxTokens: 2000,
	})
	if err != nil {
		return nil, err
	}

	var score MathScore
	if err := json.Unmarshal(resp.Content, &score); err != nil {
		return nil, fmt.Errorf("decode math score: %w", err)
	}
	score.MarksAwarded = clampMarks(score.MarksAwarded, req.MaxMarks)
	if score.TotalSteps == 0 {
		score.TotalSteps = len(studentSteps)
	}
	return &score, nil
}

func (s *LLMScorer) ScoreCode(ctx context.Context, req ScoreRequest) (*CodeScore, error) {
	ctx = llm.WithPurpose(ctx, "code-eval")

	studentBlocks := ExtractCodeBlocks(req.StudentAnswer)
	modelBlocks := ExtractCodeBlocks(req.ModelAnswer)

	prompt := buildCodePrompt(req, studentBlocks, modelBlocks)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    codeSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    codeScoreSchema(),
		MaxTokens: 2000,
	})
	if err != nil {
		return nil, err
	}

	var score CodeScore
	if err := json.Unmarshal(resp.Content, &score); err != nil {
		return nil, fmt.Errorf("decode code score: %w", err)
	}
	score.MarksAwarded = clampMarks(score.MarksAwarded, req.MaxMarks)
	return &score, nil
}

// CountKeywordMatches counts how many keywords appear in the answer,
// case-insensitively.
func CountKeywordMatches(answer string, keywords []string) int {
	lower := strings.ToLower(answer)
	matches := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			matches++
		}
	}
	return matches
}

var _ Scorer = (*LLMScorer)(nil)

// questionOrUnknown keeps prompts stable when no question text exists.
func questionOrUnknown(q string) string {
	if q == "" {
		return "Not provided"
	}
	return q
}
