package calibration

import (
	"math"
	"sync"
	"testing"

	"github.com/smehta/examiner/internal/exam"
	"github.com/smehta/examiner/internal/store"
)

func mathKey() Key {
	return Key{CourseCode: "CS201", QuestionType: exam.TypeMath}
}

func TestRecordFirstSampleStartsFromZero(t *testing.T) {
	c := New()

	// Unseen bucket carries delta 0, so the first sample moves it by
	// alpha*diff only.
	got := c.Record(mathKey(), 3, 4.5)
	want := 0.3 * 1.5
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("delta = %v, want %v", got, want)
	}

	delta, samples := c.Delta(mathKey())
	if math.Abs(delta-want) > 1e-9 {
		t.Errorf("Delta = %v, want %v", delta, want)
	}
	if samples != 1 {
		t.Errorf("samples = %d, want 1", samples)
	}
}

func TestRecordSmoothsLaterSamples(t *testing.T) {
	c := New()
	c.Record(mathKey(), 3, 4) // delta = 0.3
	c.Record(mathKey(), 3, 3) // diff = 0

	delta, _ := c.Delta(mathKey())
	want := 0.3*0 + 0.7*0.3
	if math.Abs(delta-want) > 1e-9 {
		t.Errorf("delta = %v, want %v", delta, want)
	}
}

func TestRecordConvergesToConsistentBias(t *testing.T) {
	c := New()

	// An examiner who always awards 1.5 more than the machine.
	for i := 0; i < 50; i++ {
		c.Record(mathKey(), 2, 3.5)
	}

	delta, samples := c.Delta(mathKey())
	if math.Abs(delta-1.5) > 0.05 {
		t.Errorf("delta = %v, want within 0.05 of 1.5", delta)
	}
	if samples != 50 {
		t.Errorf("samples = %d, want 50", samples)
	}
}

func TestDeltaUnknownBucket(t *testing.T) {
	c := New()
	delta, samples := c.Delta(mathKey())
	if delta != 0 || samples != 0 {
		t.Errorf("got (%v, %d), want (0, 0)", delta, samples)
	}
}

func TestBucketsAreIndependent(t *testing.T) {
	c := New()
	textKey := Key{CourseCode: "CS201", QuestionType: exam.TypeText}
	otherCourse := Key{CourseCode: "MA101", QuestionType: exam.TypeMath}

	c.Record(mathKey(), 2, 4)

	if d, _ := c.Delta(textKey); d != 0 {
		t.Errorf("text delta = %v, want 0", d)
	}
	if d, _ := c.Delta(otherCourse); d != 0 {
		t.Errorf("other course delta = %v, want 0", d)
	}
}

func TestAdjustAppliesDelta(t *testing.T) {
	c := New()
	c.Record(mathKey(), 3, 4) // delta = 0.3

	got := c.Adjust(mathKey(), 2.5, 5)
	if got != 2.8 {
		t.Errorf("adjusted = %v, want 2.8", got)
	}
}

func TestAdjustClampsToBounds(t *testing.T) {
	c := New()

	for i := 0; i < 3; i++ {
		c.Record(mathKey(), 0, 5) // delta converges toward +5
	}
	if got := c.Adjust(mathKey(), 4, 5); got != 5 {
		t.Errorf("adjusted = %v, want clamp to 5", got)
	}

	strictKey := Key{CourseCode: "CS201", QuestionType: exam.TypeText}
	for i := 0; i < 3; i++ {
		c.Record(strictKey, 5, 0) // delta converges toward -5
	}
	if got := c.Adjust(strictKey, 2, 5); got != 0 {
		t.Errorf("adjusted = %v, want clamp to 0", got)
	}
}

func TestAdjustUnknownBucketPassesThrough(t *testing.T) {
	c := New()
	if got := c.Adjust(mathKey(), 3.7, 5); got != 3.7 {
		t.Errorf("adjusted = %v, want 3.7", got)
	}
}

func TestAdjustRoundsToOneDecimal(t *testing.T) {
	c := New()
	c.Record(mathKey(), 3, 4)    // delta = 0.3
	c.Record(mathKey(), 3, 3.11) // delta = 0.3*0.11 + 0.7*0.3 = 0.243

	got := c.Adjust(mathKey(), 2, 5)
	if got != 2.2 {
		t.Errorf("adjusted = %v, want 2.2", got)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	c := New()
	c.Record(mathKey(), 2, 3.5)
	c.Record(mathKey(), 2, 3.5)
	textKey := Key{CourseCode: "MA101", QuestionType: exam.TypeText}
	c.Record(textKey, 4, 3)

	restored, err := FromSnapshot(c.Snapshot())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	for _, key := range []Key{mathKey(), textKey} {
		wantDelta, wantSamples := c.Delta(key)
		gotDelta, gotSamples := restored.Delta(key)
		if gotDelta != wantDelta || gotSamples != wantSamples {
			t.Errorf("%s: got (%v, %d), want (%v, %d)",
				key, gotDelta, gotSamples, wantDelta, wantSamples)
		}
	}
}

func TestFromSnapshotRejectsMalformedKey(t *testing.T) {
	snap := New().Snapshot()
	snap.Calibration["no-separator"] = store.CalibrationBucketState{Delta: 0.5, Samples: 3}
	if _, err := FromSnapshot(snap); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestConcurrentRecordAndAdjust(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Record(mathKey(), 2, 3)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Adjust(mathKey(), 2, 5)
			}
		}()
	}
	wg.Wait()

	delta, samples := c.Delta(mathKey())
	if math.Abs(delta-1.0) > 1e-9 {
		t.Errorf("delta = %v, want 1.0", delta)
	}
	if samples != 800 {
		t.Errorf("samples = %d, want 800", samples)
	}
}

func TestInsightsRecommendations(t *testing.T) {
	c := New()

	lenient := Key{CourseCode: "CS201", QuestionType: exam.TypeMath}
	strict := Key{CourseCode: "CS201", QuestionType: exam.TypeText}
	aligned := Key{CourseCode: "MA101", QuestionType: exam.TypeMath}

	for i := 0; i < 3; i++ {
		c.Record(lenient, 2, 4) // delta converges toward +2
		c.Record(strict, 4, 2)  // delta converges toward -2
	}
	c.Record(aligned, 3, 3.2) // delta = 0.06

	insights := c.Insights("")
	if len(insights) != 3 {
		t.Fatalf("insights = %d, want 3", len(insights))
	}

	// Sorted by course then type: CS201/math, CS201/text, MA101/math.
	if insights[0].Recommendation != "Examiners tend to be more lenient. Marks will be adjusted upward." {
		t.Errorf("lenient recommendation = %q", insights[0].Recommendation)
	}
	if insights[1].Recommendation != "Examiners tend to be stricter. Marks will be adjusted downward." {
		t.Errorf("strict recommendation = %q", insights[1].Recommendation)
	}
	if insights[2].Recommendation != "Machine marking aligns well with examiner expectations." {
		t.Errorf("aligned recommendation = %q", insights[2].Recommendation)
	}

	// Course filter.
	cs := c.Insights("CS201")
	if len(cs) != 2 {
		t.Fatalf("CS201 insights = %d, want 2", len(cs))
	}
}
