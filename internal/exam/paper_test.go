package exam

import "testing"

func TestParsePaper_QPrefixed(t *testing.T) {
	text := "Q1: Define operating system. [5 marks]\n" +
		"Q2: Explain process scheduling with examples. [10 marks]\n" +
		"Q3: Draw the process state diagram. [8 marks]\n"

	qs := ParsePaper(text)
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}

	if qs[0].Number != "1" || qs[0].MaxMarks != 5 {
		t.Errorf("q1 = %+v, want number 1 marks 5", qs[0])
	}
	if qs[0].Bloom != BloomRemember {
		t.Errorf("q1 bloom = %q, want Remember", qs[0].Bloom)
	}
	if qs[1].Bloom != BloomUnderstand {
		t.Errorf("q2 bloom = %q, want Understand", qs[1].Bloom)
	}
	if qs[2].Type != TypeDiagram {
		t.Errorf("q3 type = %q, want diagram", qs[2].Type)
	}
	for i, q := range qs {
		if q.Ordinal != i+1 {
			t.Errorf("q%d ordinal = %d, want %d", i+1, q.Ordinal, i+1)
		}
	}
}

func TestParsePaper_SubParts(t *testing.T) {
	text := "Q5a: Calculate the determinant of the given matrix. [4 marks]\n" +
		"Q5b: Solve the system of equations. [6 marks]\n"

	qs := ParsePaper(text)
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Number != "5a" || qs[1].Number != "5b" {
		t.Errorf("numbers = %q, %q; want 5a, 5b", qs[0].Number, qs[1].Number)
	}
	if qs[0].Type != TypeMath {
		t.Errorf("type = %q, want math", qs[0].Type)
	}
}

func TestParsePaper_Empty(t *testing.T) {
	if qs := ParsePaper("no questions here"); qs != nil {
		t.Errorf("got %d questions from markerless text, want none", len(qs))
	}
}

func TestExtractMarks(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"Explain X. [10 marks]", 10},
		{"Explain X. (3 marks)", 3},
		{"Explain X. Marks: 7", 7},
		{"Explain X worth 2 marks", 2},
		{"Explain X.", DefaultMaxMarks},
	}
	for _, c := range cases {
		if got := ExtractMarks(c.text); got != c.want {
			t.Errorf("ExtractMarks(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestDetectAnswerType(t *testing.T) {
	cases := []struct {
		text string
		want AnswerType
	}{
		{"Which of the following is a deadlock condition?", TypeChoice},
		{"Draw the ER diagram for a library system.", TypeDiagram},
		{"Write a program to reverse a linked list.", TypeCode},
		{"Solve the quadratic equation x^2-4=0.", TypeMath},
		{"Discuss the role of the kernel.", TypeText},
	}
	for _, c := range cases {
		if got := DetectAnswerType(c.text); got != c.want {
			t.Errorf("DetectAnswerType(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestAnswerTypeValid(t *testing.T) {
	for _, typ := range []AnswerType{TypeText, TypeMath, TypeCode, TypeDiagram, TypeChoice} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	if AnswerType("mcq").Valid() {
		t.Error("mcq is not a known answer type")
	}
}
