package mapping

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/smehta/examiner/internal/exam"
)

func paper(numbers ...string) []exam.Question {
	qs := make([]exam.Question, len(numbers))
	for i, n := range numbers {
		qs[i] = exam.Question{
			Number:   n,
			Ordinal:  i + 1,
			Text:     "question " + n,
			MaxMarks: 10,
			Bloom:    exam.BloomUnderstand,
			Type:     exam.TypeText,
		}
	}
	return qs
}

func TestMapAnswers_Partition(t *testing.T) {
	text := "Q1: the kernel manages hardware resources\nQ3: a deadlock needs four conditions\n"
	questions := paper("1", "2", "3")

	result, err := MapAnswers(text, questions)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Spans) != len(questions) {
		t.Fatalf("got %d spans, want %d (one per question)", len(result.Spans), len(questions))
	}

	seen := make(map[string]bool)
	for _, s := range result.Spans {
		if seen[s.Question.Number] {
			t.Errorf("question %s appears twice", s.Question.Number)
		}
		seen[s.Question.Number] = true
	}

	if !result.Spans[0].Attempted || result.Spans[1].Attempted || !result.Spans[2].Attempted {
		t.Errorf("attempted flags = [%v %v %v], want [true false true]",
			result.Spans[0].Attempted, result.Spans[1].Attempted, result.Spans[2].Attempted)
	}
}

func TestMapAnswers_OutOfOrder(t *testing.T) {
	// Concrete scenario: markers Q1, Q5, Q3 over a 4-question paper.
	text := "Q1: answer to question one goes here\n" +
		"Q5: this identifier is not on the paper\n" +
		"Q3: answer to question three goes here\n"
	questions := paper("1", "2", "3", "4")

	result, err := MapAnswers(text, questions)
	if err != nil {
		t.Fatal(err)
	}

	byNumber := make(map[string]AnswerSpan)
	for _, s := range result.Spans {
		byNumber[s.Question.Number] = s
	}

	if !byNumber["1"].Attempted || !byNumber["3"].Attempted {
		t.Error("questions 1 and 3 should be attempted")
	}
	if byNumber["2"].Attempted || byNumber["4"].Attempted {
		t.Error("questions 2 and 4 should be unattempted")
	}
	if len(result.Extraneous) != 1 || exam.NormalizeIdentifier(result.Extraneous[0].Identifier) != "5" {
		t.Errorf("extraneous = %+v, want exactly the Q5 marker", result.Extraneous)
	}
	if byNumber["2"].PositionInSheet != -1 {
		t.Errorf("unattempted position = %d, want -1", byNumber["2"].PositionInSheet)
	}
	if strings.Contains(byNumber["3"].Text, "not on the paper") {
		t.Error("Q5's segment leaked into question 3's span")
	}
}

func TestMapAnswers_DocumentOrderPreserved(t *testing.T) {
	text := "Q3: answered third question first here\nQ1: answered first question second here\n"
	result, err := MapAnswers(text, paper("1", "2", "3"))
	if err != nil {
		t.Fatal(err)
	}

	byNumber := make(map[string]AnswerSpan)
	for _, s := range result.Spans {
		byNumber[s.Question.Number] = s
	}

	if byNumber["3"].PositionInSheet != 1 {
		t.Errorf("q3 position = %d, want 1 (answered first)", byNumber["3"].PositionInSheet)
	}
	if byNumber["1"].PositionInSheet != 2 {
		t.Errorf("q1 position = %d, want 2", byNumber["1"].PositionInSheet)
	}

	// Output is sorted by ordinal regardless of answer order.
	for i, s := range result.Spans {
		if s.Question.Ordinal != i+1 {
			t.Errorf("span %d has ordinal %d, want %d", i, s.Question.Ordinal, i+1)
		}
	}
}

func TestMapAnswers_DuplicateMarkerExtendsSpan(t *testing.T) {
	// OCR noise reproduced "Q1:" inside body text. First occurrence
	// wins; the duplicate's segment is folded into the same span.
	text := "Q1: first part of the answer\nQ2: second question answer\nQ1: stray repeated part\n"
	result, err := MapAnswers(text, paper("1", "2"))
	if err != nil {
		t.Fatal(err)
	}

	byNumber := make(map[string]AnswerSpan)
	for _, s := range result.Spans {
		byNumber[s.Question.Number] = s
	}

	q1 := byNumber["1"]
	if !strings.Contains(q1.Text, "first part") || !strings.Contains(q1.Text, "stray repeated part") {
		t.Errorf("q1 text = %q, want both segments folded in", q1.Text)
	}
	if q1.PositionInSheet != 1 {
		t.Errorf("q1 position = %d, want 1 (first occurrence wins)", q1.PositionInSheet)
	}
	if got := byNumber["2"].Text; strings.Contains(got, "stray") || strings.Contains(got, "first part") {
		t.Errorf("q2 text = %q, contains segments belonging to q1", got)
	}
}

func TestMapAnswers_SubPartFallback(t *testing.T) {
	// "5a" is not declared, so it attributes to parent question 5.
	text := "Q5a: sub part answer attributed to parent\n"
	result, err := MapAnswers(text, paper("4", "5"))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range result.Spans {
		if s.Question.Number == "5" && !s.Attempted {
			t.Error("question 5 should have received the 5a span")
		}
	}
	if len(result.Extraneous) != 0 {
		t.Errorf("extraneous = %+v, want none", result.Extraneous)
	}
}

func TestMapAnswers_DeclaredSubPart(t *testing.T) {
	text := "Q5a: goes to the declared sub question\n"
	result, err := MapAnswers(text, paper("5", "5a"))
	if err != nil {
		t.Fatal(err)
	}

	byNumber := make(map[string]AnswerSpan)
	for _, s := range result.Spans {
		byNumber[s.Question.Number] = s
	}
	if !byNumber["5a"].Attempted {
		t.Error("declared sub-part 5a should receive the span")
	}
	if byNumber["5"].Attempted {
		t.Error("parent 5 should stay unattempted when 5a is declared")
	}
}

func TestMapAnswers_BlankSheet(t *testing.T) {
	result, err := MapAnswers("completely unrecognizable scribbles", paper("1", "2", "3"))
	if err != nil {
		t.Fatal(err)
	}

	if !result.NoMarkersFound {
		t.Error("NoMarkersFound should be set for a markerless sheet")
	}
	if len(result.Spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(result.Spans))
	}
	for _, s := range result.Spans {
		if s.Attempted {
			t.Errorf("question %s attempted on a blank sheet", s.Question.Number)
		}
		if s.Text != "" {
			t.Errorf("question %s has text %q on a blank sheet", s.Question.Number, s.Text)
		}
	}
}

func TestMapAnswers_EmptyQuestionList(t *testing.T) {
	if _, err := MapAnswers("Q1: something", nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("got err %v, want ErrNoQuestions", err)
	}
}

func TestMapAnswers_ShortAnswerNotAttempted(t *testing.T) {
	result, err := MapAnswers("Q1: ok\n", paper("1"))
	if err != nil {
		t.Fatal(err)
	}
	if result.Spans[0].Attempted {
		t.Error("a two-character answer should not count as attempted")
	}
}

func TestMapAnswers_Idempotent(t *testing.T) {
	text := "Q2: second answer with enough text\nQ1: first answer with enough text\n"
	questions := paper("1", "2")

	first, err := MapAnswers(text, questions)
	if err != nil {
		t.Fatal(err)
	}
	second, err := MapAnswers(text, questions)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different mapping results")
	}
}
