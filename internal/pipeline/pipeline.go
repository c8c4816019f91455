// Package pipeline runs independent units of work on a bounded pool of
// goroutines.
package pipeline

import (
	"runtime"
	"sync"
)

// Task is one independent unit of work. The index identifies the item
// being processed so callers can write results into a pre-sized slice
// without locking.
type Task[T any] func(index int, item T) error

// Run applies fn to every item using at most workers goroutines and
// returns the errors produced, in no particular order. workers <= 0 means
// one worker per CPU.
func Run[T any](items []T, workers int, fn Task[T]) []error {
	if len(items) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	if workers > len(items) {
		workers = len(items)
	}

	type job struct {
		index int
		item  T
	}

	jobs := make(chan job)
	errs := make(chan error, len(items))
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := fn(j.index, j.item); err != nil {
					errs <- err
				}
			}
		}()
	}

	for i, item := range items {
		jobs <- job{index: i, item: item}
	}
	close(jobs)
	wg.Wait()
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}

// Sequential applies fn to every item in order on the calling goroutine.
func Sequential[T any](items []T, fn Task[T]) []error {
	if fn == nil {
		return nil
	}
	var out []error
	for i, item := range items {
		if err := fn(i, item); err != nil {
			out = append(out, err)
		}
	}
	return out
}
