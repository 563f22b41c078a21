package likelihood

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"gounfold/domain/core"
	"gounfold/ports"
)

// CandidateResult is the objective value at one candidate spectrum.
type CandidateResult struct {
	Index int
	Value float64
	Err   error
}

// Scanner evaluates an objective at many candidate spectra with bounded
// concurrency. Objectives are pure once initialized, so a single instance
// safely serves every worker.
type Scanner struct {
	sem *semaphore.Weighted
}

// NewScanner bounds concurrent evaluations at maxParallel.
func NewScanner(maxParallel int64) *Scanner {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Scanner{sem: semaphore.NewWeighted(maxParallel)}
}

// Scan evaluates obj at every candidate, at most maxParallel at a time.
// Results keep candidate order; the returned ID tags the batch. A cancelled
// context aborts the scan after the in-flight evaluations drain.
func (s *Scanner) Scan(ctx context.Context, obj ports.Objective, candidates [][]float64) (core.ScanID, []CandidateResult, error) {
	results := make([]CandidateResult, len(candidates))

	var wg sync.WaitGroup
	for i, f := range candidates {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return "", nil, err
		}
		wg.Add(1)
		go func(i int, f []float64) {
			defer wg.Done()
			defer s.sem.Release(1)
			v, err := obj.Evaluate(f)
			results[i] = CandidateResult{Index: i, Value: v, Err: err}
		}(i, f)
	}
	wg.Wait()

	return core.ScanID(core.NewID()), results, nil
}
