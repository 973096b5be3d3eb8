// Package runner drives the segment-level metrics over a whole evaluation
// set and combines them into corpus-level statistics.
package runner

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	return &Runner{config: cfg}
}

func (r *Runner) workers() int {
	if r.config.Workers > 0 {
		return r.config.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// mapSegments evaluates f on every segment concurrently and returns the
// results index-aligned with the input, so that the caller's fold visits
// segments in input order and aggregates stay deterministic. The first
// failing segment aborts the whole run.
func mapSegments[T any](workers int, segments []Segment, f func(Segment) (T, error)) ([]T, error) {
	out := make([]T, len(segments))

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range segments {
		g.Go(func() error {
			v, err := f(segments[i])
			if err != nil {
				return fmt.Errorf("segment %q: %w", segments[i].ID, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
