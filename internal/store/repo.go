package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// CalibrationBucketState is the persisted state of one calibration
// bucket (course + question type).
type CalibrationBucketState struct {
	Delta   float64 `json:"delta"`
	Samples int     `json:"samples"`
}

// SnapshotData captures the full calibration state at a point in time.
// Keys are "courseCode|questionType" bucket identifiers.
type SnapshotData struct {
	Version     int                               `json:"version"`
	Calibration map[string]CalibrationBucketState `json:"calibration"`
}

// Snapshot represents a point-in-time capture of calibration state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages calibration state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EvaluationEventData captures one graded answer.
type EvaluationEventData struct {
	RollNumber      string
	CourseCode      string
	QuestionNumber  string
	QuestionType    string
	MaxMarks        float64
	RawMarks        float64
	CalibratedMarks float64
	Confidence      float64
	ConfidenceLevel string
	NeedsReview     bool
	Attempted       bool
	Model           string
}

// EvaluationRecord is a stored evaluation event.
type EvaluationRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	EvaluationEventData
}

// OverrideEventData captures an examiner correcting a machine mark.
type OverrideEventData struct {
	RollNumber     string
	CourseCode     string
	QuestionNumber string
	QuestionType   string
	MachineMarks   float64
	HumanMarks     float64
	MaxMarks       float64
}

// OverrideRecord is a stored override event.
type OverrideRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	OverrideEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendEvaluation records a graded answer.
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// ReviewQueue returns evaluations flagged for review, newest first.
	// An empty courseCode matches all courses.
	ReviewQueue(ctx context.Context, courseCode string, limit int) ([]*EvaluationRecord, error)

	// AppendOverride records an examiner override.
	AppendOverride(ctx context.Context, data OverrideEventData) error

	// Overrides returns override events in sequence order. An empty
	// courseCode matches all courses.
	Overrides(ctx context.Context, courseCode string, opts QueryOpts) ([]*OverrideRecord, error)
}
