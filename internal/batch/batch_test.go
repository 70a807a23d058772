package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunAllSucceed(t *testing.T) {
	units := make([]Unit[int], 5)
	for i := range units {
		units[i] = Unit[int]{ID: fmt.Sprintf("sheet-%d", i), Input: i}
	}

	report := Run(context.Background(), units, func(ctx context.Context, u Unit[int]) (int, error) {
		return u.Input * 2, nil
	}, 2)

	if report.Total != 5 || report.Successful != 5 || report.Failed != 0 {
		t.Errorf("total/successful/failed = %d/%d/%d, want 5/5/0", report.Total, report.Successful, report.Failed)
	}
	if got := report.Results["sheet-3"]; got != 6 {
		t.Errorf("sheet-3 = %d, want 6", got)
	}
	if report.AvgTimePerUnit > report.ElapsedTime {
		t.Errorf("avg %v exceeds elapsed %v", report.AvgTimePerUnit, report.ElapsedTime)
	}
}

func TestRunFailureIsolation(t *testing.T) {
	units := make([]Unit[int], 10)
	for i := range units {
		units[i] = Unit[int]{ID: fmt.Sprintf("u%d", i), Input: i}
	}

	report := Run(context.Background(), units, func(ctx context.Context, u Unit[int]) (string, error) {
		if u.Input == 4 {
			return "", errors.New("ocr gave up")
		}
		return "ok", nil
	}, 3)

	if report.Successful != 9 {
		t.Errorf("successful = %d, want 9", report.Successful)
	}
	if report.Failed != 1 {
		t.Errorf("failed = %d, want 1", report.Failed)
	}
	if report.Errors["u4"] != "ocr gave up" {
		t.Errorf("error for u4 = %q", report.Errors["u4"])
	}
	if _, ok := report.Results["u4"]; ok {
		t.Error("failed unit must not appear in results")
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	const limit = 3
	var inFlight, peak atomic.Int64

	units := make([]Unit[int], 20)
	for i := range units {
		units[i] = Unit[int]{ID: fmt.Sprintf("u%d", i)}
	}

	Run(context.Background(), units, func(ctx context.Context, u Unit[int]) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	}, limit)

	if p := peak.Load(); p > limit {
		t.Errorf("peak concurrency = %d, want <= %d", p, limit)
	}
}

func TestRunDefaultConcurrency(t *testing.T) {
	units := []Unit[int]{{ID: "only"}}
	report := Run(context.Background(), units, func(ctx context.Context, u Unit[int]) (bool, error) {
		return true, nil
	}, 0)

	if report.Successful != 1 {
		t.Errorf("successful = %d, want 1", report.Successful)
	}
}

func TestRunTimeoutAbandonsPending(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	units := make([]Unit[int], 6)
	for i := range units {
		units[i] = Unit[int]{ID: fmt.Sprintf("u%d", i), Input: i}
	}

	report := Run(ctx, units, func(ctx context.Context, u Unit[int]) (string, error) {
		if u.Input == 0 {
			return "done", nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Second):
			return "done", nil
		}
	}, 1)

	if report.Successful < 1 {
		t.Errorf("successful = %d, want at least the first unit", report.Successful)
	}
	if report.Successful+report.Failed != report.Total {
		t.Errorf("accounting: %d + %d != %d", report.Successful, report.Failed, report.Total)
	}
	for id, msg := range report.Errors {
		if !strings.Contains(msg, "context deadline exceeded") {
			t.Errorf("%s: error = %q, want context deadline", id, msg)
		}
	}
}

func TestRunEmptyUnits(t *testing.T) {
	report := Run(context.Background(), nil, func(ctx context.Context, u Unit[int]) (int, error) {
		return 0, nil
	}, 4)

	if report.Total != 0 || report.Successful != 0 || report.Failed != 0 {
		t.Errorf("empty batch report = %+v", report)
	}
	if report.AvgTimePerUnit != 0 {
		t.Errorf("avg time = %v, want 0", report.AvgTimePerUnit)
	}
}
