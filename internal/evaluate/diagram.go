package evaluate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	arrowChars     = regexp.MustCompile(`[→←↑↓⟶⟵⟷]`)
	labelSeparator = regexp.MustCompile(`[\n,;]`)
)

// ExtractDiagramLabels pulls label strings out of recognized diagram
// text, dropping arrows and single-character fragments.
func ExtractDiagramLabels(text string) []string {
	cleaned := arrowChars.ReplaceAllString(text, " ")

	var labels []string
	for _, part := range labelSeparator.Split(cleaned, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 1 {
			labels = append(labels, part)
		}
	}
	return labels
}

// matchComponents checks which required components appear among the
// extracted labels. A component matches when it contains, or is
// contained in, any label (case-insensitive).
func matchComponents(labels, required []string) (matched, missing []string) {
	lower := make([]string, len(labels))
	for i, l := range labels {
		lower[i] = strings.ToLower(l)
	}

	for _, comp := range required {
		compLower := strings.ToLower(comp)
		found := false
		for _, label := range lower {
			if strings.Contains(label, compLower) || strings.Contains(compLower, label) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, comp)
		} else {
			missing = append(missing, comp)
		}
	}
	return matched, missing
}

// evaluateDiagram awards preliminary marks from label coverage. The
// result always needs review: diagram grading is never fully automated.
func evaluateDiagram(answer string, required []string, maxMarks float64) EvaluationResult {
	labels := ExtractDiagramLabels(answer)
	matched, missing := matchComponents(labels, required)

	var pct float64
	if len(required) > 0 {
		pct = float64(len(matched)) / float64(len(required)) * 100
	}
	marks := roundTenth(pct / 100 * maxMarks)

	var b strings.Builder
	fmt.Fprintf(&b, "Preliminary label-based evaluation: %d/%d components detected (%.1f%%). ",
		len(matched), len(required), pct)
	switch {
	case pct >= 80:
		b.WriteString("Most required components appear to be present. ")
	case pct >= 50:
		b.WriteString("Some required components are present. ")
	default:
		b.WriteString("Many required components may be missing. ")
	}
	b.WriteString("Manual visual review required for accurate assessment.")

	return EvaluationResult{
		Marks:                marks,
		MaxMarks:             maxMarks,
		Feedback:             b.String(),
		EvaluationConfidence: pct / 100,
		NeedsReview:          true,
		ReviewReason:         "diagram evaluation requires visual verification",
		Breakdown: Breakdown{
			RawMarks:          marks,
			CalibratedMarks:   marks,
			ExtractedLabels:   labels,
			MatchedComponents: matched,
			MissingComponents: missing,
			MatchPercentage:   pct,
		},
	}
}
