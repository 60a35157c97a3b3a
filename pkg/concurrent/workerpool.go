// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package concurrent fans out independent API calls with a bounded number of
// goroutines.
package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of work. It receives the pool's context.
type Task func(ctx context.Context) error

// WorkerPool runs tasks with at most workerCount goroutines.
type WorkerPool struct {
	workerCount int
}

// NewWorkerPool creates a pool. Counts below one are raised to one.
func NewWorkerPool(workerCount int) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &WorkerPool{workerCount: workerCount}
}

// Size returns the number of workers.
func (wp *WorkerPool) Size() int {
	return wp.workerCount
}

// Run executes every task and returns the first error. The context passed to
// the remaining tasks is cancelled once a task fails.
func (wp *WorkerPool) Run(ctx context.Context, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(wp.workerCount)

	for _, task := range tasks {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			return task(groupCtx)
		})
	}

	return g.Wait()
}

// RunAll executes every task regardless of failures and returns the errors
// indexed like tasks; the slice is nil when every task succeeded.
func (wp *WorkerPool) RunAll(ctx context.Context, tasks ...Task) []error {
	if len(tasks) == 0 {
		return nil
	}

	errs := make([]error, len(tasks))

	g := new(errgroup.Group)
	g.SetLimit(wp.workerCount)

	for i, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = task(ctx)
			return nil
		})
	}

	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return errs
		}
	}
	return nil
}

// Map applies fn to every item through the pool. Results and errors keep the
// order of items; a failed item leaves the zero value in results.
func Map[T, R any](ctx context.Context, wp *WorkerPool, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, []error) {
	results := make([]R, len(items))
	tasks := make([]Task, len(items))
	for i, item := range items {
		tasks[i] = func(ctx context.Context) error {
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		}
	}
	return results, wp.RunAll(ctx, tasks...)
}
