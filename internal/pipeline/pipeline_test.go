package pipeline

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestRun(t *testing.T) {
	items := []string{"a", "b", "c"}

	var called int32
	results := make([]string, len(items))
	errs := Run(items, 2, func(i int, item string) error {
		atomic.AddInt32(&called, 1)
		results[i] = item + item
		if i == 1 {
			return errors.New("test error")
		}
		return nil
	})

	if called != int32(len(items)) {
		t.Fatalf("expected %d calls, got %d", len(items), called)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	for i, want := range []string{"aa", "bb", "cc"} {
		if results[i] != want {
			t.Fatalf("result %d: expected %q, got %q", i, want, results[i])
		}
	}
}

func TestRunDefaultsWorkers(t *testing.T) {
	var called int32
	errs := Run([]int{1, 2, 3, 4, 5}, 0, func(int, int) error {
		atomic.AddInt32(&called, 1)
		return nil
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if called != 5 {
		t.Fatalf("expected 5 calls, got %d", called)
	}
}

func TestRunEmpty(t *testing.T) {
	if errs := Run[int](nil, 4, func(int, int) error { return errors.New("unreachable") }); errs != nil {
		t.Fatalf("expected nil, got %v", errs)
	}
}

func TestSequentialPreservesOrder(t *testing.T) {
	var seen []int
	errs := Sequential([]int{3, 1, 2}, func(i int, item int) error {
		seen = append(seen, item)
		return nil
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if len(seen) != 3 || seen[0] != 3 || seen[1] != 1 || seen[2] != 2 {
		t.Fatalf("unexpected order: %v", seen)
	}
}
