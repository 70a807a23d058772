package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Calibration: map[string]CalibrationBucketState{
				"CS201|math": {Delta: 0.5, Samples: 12},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	bucket, ok := snap.Data.Calibration["CS201|math"]
	if !ok {
		t.Fatal("expected calibration bucket CS201|math")
	}
	if bucket.Delta != 0.5 {
		t.Errorf("delta = %v, want 0.5", bucket.Delta)
	}
	if bucket.Samples != 12 {
		t.Errorf("samples = %d, want 12", bucket.Samples)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryOverrides(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	overrides := []OverrideEventData{
		{RollNumber: "CS2021001", CourseCode: "CS201", QuestionNumber: "1", QuestionType: "math", MachineMarks: 3, HumanMarks: 4, MaxMarks: 5},
		{RollNumber: "CS2021002", CourseCode: "CS201", QuestionNumber: "1", QuestionType: "math", MachineMarks: 2, HumanMarks: 3.5, MaxMarks: 5},
		{RollNumber: "CS2021003", CourseCode: "MA101", QuestionNumber: "2", QuestionType: "text", MachineMarks: 4, HumanMarks: 4, MaxMarks: 5},
	}
	for i, o := range overrides {
		if err := repo.AppendOverride(ctx, o); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// All overrides, sequence order.
	all, err := repo.Overrides(ctx, "", QueryOpts{})
	if err != nil {
		t.Fatalf("overrides: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Sequence <= all[i-1].Sequence {
			t.Errorf("sequence not increasing at %d: %d then %d", i, all[i-1].Sequence, all[i].Sequence)
		}
	}

	// Filtered by course.
	cs, err := repo.Overrides(ctx, "CS201", QueryOpts{})
	if err != nil {
		t.Fatalf("overrides CS201: %v", err)
	}
	if len(cs) != 2 {
		t.Fatalf("CS201 len = %d, want 2", len(cs))
	}
	if cs[1].HumanMarks != 3.5 {
		t.Errorf("human marks = %v, want 3.5", cs[1].HumanMarks)
	}
}

func TestAppendEvaluationAndReviewQueue(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	evals := []EvaluationEventData{
		{RollNumber: "CS2021001", CourseCode: "CS201", QuestionNumber: "1", QuestionType: "text", MaxMarks: 5, RawMarks: 4, CalibratedMarks: 4, Confidence: 0.9, ConfidenceLevel: "high", NeedsReview: false, Attempted: true},
		{RollNumber: "CS2021001", CourseCode: "CS201", QuestionNumber: "2", QuestionType: "diagram", MaxMarks: 5, RawMarks: 3, CalibratedMarks: 3, Confidence: 0.5, ConfidenceLevel: "low", NeedsReview: true, Attempted: true},
		{RollNumber: "CS2021002", CourseCode: "MA101", QuestionNumber: "1", QuestionType: "math", MaxMarks: 10, RawMarks: 2, CalibratedMarks: 2.5, Confidence: 0.55, ConfidenceLevel: "low", NeedsReview: true, Attempted: true},
	}
	for i, e := range evals {
		if err := repo.AppendEvaluation(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	queue, err := repo.ReviewQueue(ctx, "", 0)
	if err != nil {
		t.Fatalf("review queue: %v", err)
	}
	if len(queue) != 2 {
		t.Fatalf("queue len = %d, want 2", len(queue))
	}

	csQueue, err := repo.ReviewQueue(ctx, "CS201", 0)
	if err != nil {
		t.Fatalf("review queue CS201: %v", err)
	}
	if len(csQueue) != 1 {
		t.Fatalf("CS201 queue len = %d, want 1", len(csQueue))
	}
	if csQueue[0].QuestionType != "diagram" {
		t.Errorf("question type = %q, want diagram", csQueue[0].QuestionType)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "text-eval", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "text-eval", InputTokens: 120, OutputTokens: 60, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "math-eval", InputTokens: 200, OutputTokens: 80, LatencyMs: 400, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		switch u.Purpose {
		case "text-eval":
			if u.Calls != 2 || u.InputTokens != 220 || u.OutputTokens != 110 {
				t.Errorf("text-eval usage = %+v", u)
			}
		case "math-eval":
			if u.Calls != 1 || u.InputTokens != 200 || u.OutputTokens != 80 {
				t.Errorf("math-eval usage = %+v", u)
			}
		default:
			t.Errorf("unexpected purpose %q", u.Purpose)
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("models = %d, want 1", len(byModel))
	}
	if byModel[0].Calls != 3 || byModel[0].InputTokens != 420 {
		t.Errorf("model usage = %+v", byModel[0])
	}
}
