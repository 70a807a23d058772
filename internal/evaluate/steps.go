package evaluate

import (
	"regexp"
	"strings"
)

// Step markers students commonly write: "Step 1:", a line-start "1.",
// or "(1)". Splitting on the marker keeps the text between markers as
// the step body.
var stepSplitters = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Step\s+\d+[:\.]?`),
	regexp.MustCompile(`(?m)^\s*\d+\.\s*`),
	regexp.MustCompile(`\(\d+\)`),
}

// ExtractSteps splits a math solution into individual steps. Explicit
// step markers win; otherwise each non-empty line is a step; a single
// line is one step.
func ExtractSteps(answer string) []string {
	for _, pat := range stepSplitters {
		if !pat.MatchString(answer) {
			continue
		}
		var steps []string
		for _, part := range pat.Split(answer, -1) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				steps = append(steps, trimmed)
			}
		}
		if len(steps) > 0 {
			return steps
		}
	}

	var lines []string
	for _, line := range strings.Split(answer, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > 1 {
		return lines
	}

	return []string{answer}
}

var codeFencePattern = regexp.MustCompile("(?s)```[\\w]*\\n(.*?)```")

// ExtractCodeBlocks pulls code out of an answer: fenced blocks first,
// then indented runs (common in transcribed handwritten code), falling
// back to the whole text.
func ExtractCodeBlocks(answer string) []string {
	if fenced := codeFencePattern.FindAllStringSubmatch(answer, -1); len(fenced) > 0 {
		blocks := make([]string, len(fenced))
		for i, m := range fenced {
			blocks[i] = m[1]
		}
		return blocks
	}

	var blocks []string
	var current []string
	inCode := false

	for _, line := range strings.Split(answer, "\n") {
		indented := strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
		if indented || (inCode && strings.TrimSpace(line) != "") {
			current = append(current, line)
			inCode = true
			continue
		}
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
		inCode = false
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	if len(blocks) == 0 {
		return []string{answer}
	}
	return blocks
}
