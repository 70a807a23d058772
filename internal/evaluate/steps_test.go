package evaluate

import (
	"reflect"
	"testing"
)

func TestExtractStepsExplicitMarkers(t *testing.T) {
	answer := "Step 1: expand the bracket\nStep 2: collect terms\nStep 3: x = 4"
	got := ExtractSteps(answer)
	want := []string{"expand the bracket", "collect terms", "x = 4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %q, want %q", got, want)
	}
}

func TestExtractStepsNumberedList(t *testing.T) {
	answer := "1. differentiate both sides\n2. substitute x = 0\n3. solve for c"
	got := ExtractSteps(answer)
	if len(got) != 3 {
		t.Fatalf("steps = %d, want 3: %q", len(got), got)
	}
	if got[1] != "substitute x = 0" {
		t.Errorf("step 2 = %q", got[1])
	}
}

func TestExtractStepsFallsBackToLines(t *testing.T) {
	answer := "expand the bracket\ncollect terms\nx = 4"
	got := ExtractSteps(answer)
	if len(got) != 3 {
		t.Fatalf("steps = %d, want 3: %q", len(got), got)
	}
}

func TestExtractStepsSingleLine(t *testing.T) {
	got := ExtractSteps("x = 4")
	if len(got) != 1 || got[0] != "x = 4" {
		t.Errorf("steps = %q, want [x = 4]", got)
	}
}

func TestExtractCodeBlocksFenced(t *testing.T) {
	answer := "Here is my solution:\n```python\ndef add(a, b):\n    return a + b\n```\nThat's it."
	got := ExtractCodeBlocks(answer)
	if len(got) != 1 {
		t.Fatalf("blocks = %d, want 1", len(got))
	}
	want := "def add(a, b):\n    return a + b\n"
	if got[0] != want {
		t.Errorf("block = %q, want %q", got[0], want)
	}
}

func TestExtractCodeBlocksIndented(t *testing.T) {
	answer := "My approach:\n    for i in range(n):\n        total += i\nThen print it."
	got := ExtractCodeBlocks(answer)
	if len(got) != 1 {
		t.Fatalf("blocks = %d, want 1: %q", len(got), got)
	}
}

func TestExtractCodeBlocksFallsBackToWholeText(t *testing.T) {
	answer := "print(sum(range(10)))"
	got := ExtractCodeBlocks(answer)
	if len(got) != 1 || got[0] != answer {
		t.Errorf("blocks = %q, want the full text", got)
	}
}

func TestCountKeywordMatches(t *testing.T) {
	answer := "A process is an executing program; threads share its address space."
	keywords := []string{"process", "thread", "scheduler"}
	if got := CountKeywordMatches(answer, keywords); got != 2 {
		t.Errorf("matches = %d, want 2", got)
	}
}
