// Package calibration learns per-course marking tendencies from examiner
// overrides and nudges machine-awarded marks toward them.
package calibration

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/smehta/examiner/internal/exam"
	"github.com/smehta/examiner/internal/store"
)

// DefaultAlpha is the EMA smoothing factor for delta updates.
const DefaultAlpha = 0.3

// Key identifies one calibration bucket.
type Key struct {
	CourseCode   string
	QuestionType exam.AnswerType
}

func (k Key) String() string {
	return k.CourseCode + "|" + string(k.QuestionType)
}

func parseKey(s string) (Key, bool) {
	course, qtype, ok := strings.Cut(s, "|")
	if !ok {
		return Key{}, false
	}
	return Key{CourseCode: course, QuestionType: exam.AnswerType(qtype)}, true
}

// bucket holds the running delta for one course + question type.
// Writers serialize on mu; readers load the delta atomically without
// taking any lock, so Adjust never blocks behind Record.
type bucket struct {
	mu        sync.Mutex
	deltaBits atomic.Uint64
	samples   atomic.Int64
}

func (b *bucket) delta() float64 {
	return math.Float64frombits(b.deltaBits.Load())
}

// Calibrator maintains an exponential moving average of the difference
// between examiner marks and machine marks per bucket.
type Calibrator struct {
	alpha   float64
	mu      sync.RWMutex
	buckets map[Key]*bucket
}

// New creates a Calibrator with the default smoothing factor.
func New() *Calibrator {
	return NewWithAlpha(DefaultAlpha)
}

// NewWithAlpha creates a Calibrator with a custom smoothing factor in (0,1].
func NewWithAlpha(alpha float64) *Calibrator {
	return &Calibrator{
		alpha:   alpha,
		buckets: make(map[Key]*bucket),
	}
}

func (c *Calibrator) bucket(key Key) *bucket {
	c.mu.RLock()
	b, ok := c.buckets[key]
	c.mu.RUnlock()
	if ok {
		return b
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.buckets[key]; ok {
		return b
	}
	b = &bucket{}
	c.buckets[key] = b
	return b
}

// Record folds one examiner override into the bucket's delta and
// returns the updated delta. Unseen buckets start at delta 0, so the
// first observation moves the delta by alpha*diff like any other.
func (c *Calibrator) Record(key Key, machineMarks, humanMarks float64) float64 {
	diff := humanMarks - machineMarks
	b := c.bucket(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	next := c.alpha*diff + (1-c.alpha)*b.delta()
	b.deltaBits.Store(math.Float64bits(next))
	b.samples.Add(1)
	return next
}

// Delta returns the current delta and sample count for a bucket.
// Unknown buckets report a zero delta. The read is lock-free.
func (c *Calibrator) Delta(key Key) (float64, int) {
	c.mu.RLock()
	b, ok := c.buckets[key]
	c.mu.RUnlock()
	if !ok {
		return 0, 0
	}
	return b.delta(), int(b.samples.Load())
}

// Adjust applies the bucket's delta to a machine mark, clamped to
// [0, maxMarks] and rounded to one decimal place.
func (c *Calibrator) Adjust(key Key, marks, maxMarks float64) float64 {
	delta, _ := c.Delta(key)
	adjusted := marks + delta
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > maxMarks {
		adjusted = maxMarks
	}
	return math.Round(adjusted*10) / 10
}

// Snapshot returns the full calibration state for persistence.
func (c *Calibrator) Snapshot() store.SnapshotData {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data := store.SnapshotData{
		Version:     1,
		Calibration: make(map[string]store.CalibrationBucketState, len(c.buckets)),
	}
	for key, b := range c.buckets {
		data.Calibration[key.String()] = store.CalibrationBucketState{
			Delta:   b.delta(),
			Samples: int(b.samples.Load()),
		}
	}
	return data
}

// FromSnapshot restores a Calibrator from persisted state.
func FromSnapshot(data store.SnapshotData) (*Calibrator, error) {
	c := New()
	for raw, state := range data.Calibration {
		key, ok := parseKey(raw)
		if !ok {
			return nil, fmt.Errorf("malformed calibration key %q", raw)
		}
		b := &bucket{}
		b.deltaBits.Store(math.Float64bits(state.Delta))
		b.samples.Store(int64(state.Samples))
		c.buckets[key] = b
	}
	return c, nil
}

// Replay rebuilds calibration state from the override event log.
// Events are applied in sequence order, so the result is identical to
// having observed each override live.
func (c *Calibrator) Replay(ctx context.Context, repo store.EventRepo) error {
	overrides, err := repo.Overrides(ctx, "", store.QueryOpts{})
	if err != nil {
		return fmt.Errorf("load overrides: %w", err)
	}
	for _, o := range overrides {
		key := Key{CourseCode: o.CourseCode, QuestionType: exam.AnswerType(o.QuestionType)}
		c.Record(key, o.MachineMarks, o.HumanMarks)
	}
	return nil
}
