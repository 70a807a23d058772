package evaluate

import (
	"fmt"
	"strings"

	"github.com/smehta/examiner/internal/llm"
)

const textSystemPrompt = `You are an expert examiner evaluating a student's answer for a university exam.
Be STRICT on factual accuracy and core concepts, but CONTEXT-AWARE on wording
differences: the same meaning in different words is acceptable. Award partial
credit for partially correct concepts. Focus on conceptual understanding over
exact wording.`

const mathSystemPrompt = `You are an expert mathematics examiner evaluating a student's solution.
Award partial credit for each correct step. If the method is correct but a
calculation is wrong, give partial marks. Be strict on mathematical accuracy
but fair on minor errors.`

const codeSystemPrompt = `You are an expert programming instructor evaluating a student's code.
CRITICAL: do not execute the code. Evaluate based on logic and algorithm only.
Ignore variable names and minor syntax differences; focus on algorithm
correctness, edge case handling and code structure. Award partial credit for a
correct approach even if the implementation has issues.`

func buildTextPrompt(req ScoreRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", questionOrUnknown(req.QuestionText))
	fmt.Fprintf(&b, "Maximum marks: %g\n\n", req.MaxMarks)
	fmt.Fprintf(&b, "Model answer:\n%s\n\n", req.ModelAnswer)
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Key concepts that must be covered: %s\n\n", strings.Join(req.Keywords, ", "))
	}
	fmt.Fprintf(&b, "Student's answer:\n%s\n\n", req.StudentAnswer)
	b.WriteString("Evaluate the student's answer against the model answer and key concepts.")
	return b.String()
}

func buildMathPrompt(req ScoreRequest, studentSteps, modelSteps []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", questionOrUnknown(req.QuestionText))
	fmt.Fprintf(&b, "Maximum marks: %g\n\n", req.MaxMarks)
	fmt.Fprintf(&b, "Model solution:\n%s\n\n", req.ModelAnswer)
	writeSteps(&b, "Model steps", modelSteps)
	fmt.Fprintf(&b, "Student's solution:\n%s\n\n", req.StudentAnswer)
	writeSteps(&b, "Student steps", studentSteps)
	b.WriteString("Grade the solution with step-wise partial credit and state whether the final answer is correct.")
	return b.String()
}

func buildCodePrompt(req ScoreRequest, studentBlocks, modelBlocks []string) string {
	var b strings.Builder
	if req.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n\n", req.Language)
	}
	fmt.Fprintf(&b, "Question: %s\n\n", questionOrUnknown(req.QuestionText))
	fmt.Fprintf(&b, "Maximum marks: %g\n\n", req.MaxMarks)
	fmt.Fprintf(&b, "Model solution:\n%s\n\n", strings.Join(modelBlocks, "\n"))
	fmt.Fprintf(&b, "Student's solution:\n%s\n\n", strings.Join(studentBlocks, "\n"))
	b.WriteString("Evaluate the code's logic and approach without executing it.")
	return b.String()
}

func writeSteps(b *strings.Builder, label string, steps []string) {
	fmt.Fprintf(b, "%s (%d):\n", label, len(steps))
	for i, step := range steps {
		fmt.Fprintf(b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n")
}

func textScoreSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "text-evaluation",
		Description: "Marks and feedback for a descriptive answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"marks_awarded": map[string]any{"type": "number", "minimum": 0},
				"feedback":      map[string]any{"type": "string"},
				"strengths":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"improvements":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"confidence":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			},
			"required": []any{"marks_awarded", "feedback", "confidence"},
		},
	}
}

func mathScoreSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "math-evaluation",
		Description: "Step-wise marks and feedback for a math solution",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"marks_awarded":        map[string]any{"type": "number", "minimum": 0},
				"correct_steps":        map[string]any{"type": "integer", "minimum": 0},
				"total_steps":          map[string]any{"type": "integer", "minimum": 0},
				"final_answer_correct": map[string]any{"type": "boolean"},
				"method_score":         map[string]any{"type": "number", "minimum": 0, "maximum": 10},
				"step_breakdown":       map[string]any{"type": "string"},
				"feedback":             map[string]any{"type": "string"},
				"confidence":           map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			},
			"required": []any{"marks_awarded", "correct_steps", "final_answer_correct", "feedback", "confidence"},
		},
	}
}

func codeScoreSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "code-evaluation",
		Description: "Logic-based marks and feedback for a programming answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"marks_awarded":    map[string]any{"type": "number", "minimum": 0},
				"logic_score":      map[string]any{"type": "number", "minimum": 0, "maximum": 10},
				"approach_correct": map[string]any{"type": "string", "enum": []any{"yes", "no", "partial"}},
				"edge_cases":       map[string]any{"type": "string"},
				"strengths":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"improvements":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"feedback":         map[string]any{"type": "string"},
				"confidence":       map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			},
			"required": []any{"marks_awarded", "logic_score", "approach_correct", "feedback", "confidence"},
		},
	}
}
