// Package batch runs independent grading units with bounded fan-out.
// One unit's failure never affects its siblings; the report accounts
// for every unit exactly once.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Unit is one independent item of work, keyed by a caller-chosen ID.
type Unit[I any] struct {
	ID    string
	Input I
}

// Worker processes one unit. Returned errors are recorded against the
// unit's ID; they never cancel sibling units.
type Worker[I, R any] func(ctx context.Context, unit Unit[I]) (R, error)

// Report is the aggregate outcome of a batch run. Times are in seconds.
type Report[R any] struct {
	Results        map[string]R      `json:"results"`
	Errors         map[string]string `json:"errors"`
	Total          int               `json:"total"`
	Successful     int               `json:"successful"`
	Failed         int               `json:"failed"`
	ElapsedTime    float64           `json:"elapsedTime"`
	AvgTimePerUnit float64           `json:"avgTimePerUnit"`
}

// Run processes all units with at most maxConcurrency in flight and
// blocks until every unit has resolved. maxConcurrency <= 0 means one
// worker per available CPU. If ctx expires, units not yet started are
// recorded as failed with the context error; completed results are
// preserved.
func Run[I, R any](ctx context.Context, units []Unit[I], worker Worker[I, R], maxConcurrency int) *Report[R] {
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	report := &Report[R]{
		Results: make(map[string]R, len(units)),
		Errors:  make(map[string]string),
		Total:   len(units),
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(maxConcurrency)

	for _, unit := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				mu.Lock()
				report.Errors[unit.ID] = err.Error()
				mu.Unlock()
				return nil
			}

			result, err := worker(ctx, unit)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Errors[unit.ID] = err.Error()
				return nil
			}
			report.Results[unit.ID] = result
			return nil
		})
	}

	// Workers never return errors, so Wait only synchronizes.
	_ = g.Wait()

	report.Successful = len(report.Results)
	report.Failed = len(report.Errors)
	report.ElapsedTime = time.Since(start).Seconds()
	if report.Total > 0 {
		report.AvgTimePerUnit = report.ElapsedTime / float64(report.Total)
	}
	return report
}
