package calibration

import "sort"

// Insight summarizes the learned marking tendency for one bucket.
type Insight struct {
	CourseCode     string
	QuestionType   string
	Samples        int
	Delta          float64
	Recommendation string
}

// NoDataRecommendation is reported when a course has no overrides yet.
const NoDataRecommendation = "No data yet. The system will learn as examiners review answers."

// Insights reports the learned tendencies, optionally filtered by
// course. Buckets are ordered by course code then question type.
func (c *Calibrator) Insights(courseCode string) []Insight {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Insight
	for key, b := range c.buckets {
		if courseCode != "" && key.CourseCode != courseCode {
			continue
		}
		delta := b.delta()
		out = append(out, Insight{
			CourseCode:     key.CourseCode,
			QuestionType:   string(key.QuestionType),
			Samples:        int(b.samples.Load()),
			Delta:          delta,
			Recommendation: recommend(delta),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CourseCode != out[j].CourseCode {
			return out[i].CourseCode < out[j].CourseCode
		}
		return out[i].QuestionType < out[j].QuestionType
	})
	return out
}

func recommend(delta float64) string {
	switch {
	case delta > 1.0:
		return "Examiners tend to be more lenient. Marks will be adjusted upward."
	case delta < -1.0:
		return "Examiners tend to be stricter. Marks will be adjusted downward."
	default:
		return "Machine marking aligns well with examiner expectations."
	}
}
