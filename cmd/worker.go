package cmd

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// runJobs calls fn for every job with at most workers calls in flight.
// A failing job does not stop the others; the first error is returned
// once all jobs are done.
func runJobs(ctx context.Context, jobs []job, workers int, fn func(context.Context, job) error) error {
	if len(jobs) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if len(jobs) < workers {
		workers = len(jobs)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			return fn(ctx, j)
		})
	}
	return g.Wait()
}

// syncWriter serializes writes from concurrent workers.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
