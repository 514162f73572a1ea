package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type testJob struct {
	id      int
	counter *atomic.Int64
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	return &testResult{id: j.id}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(4)
	pool.Start()

	const n = 20
	for i := 0; i < n; i++ {
		pool.Submit(&testJob{id: i, counter: &counter})
	}
	results := pool.Wait()

	if len(results) != n {
		t.Fatalf("Expected %d results, got %d", n, len(results))
	}
	if counter.Load() != n {
		t.Errorf("Expected %d executions, got %d", n, counter.Load())
	}
}

func TestPool_ZeroWorkersClampsToOne(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&testJob{counter: &counter})

	if results := pool.Wait(); len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
}

func TestPool_WaitWithNoJobs(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	if results := pool.Wait(); len(results) != 0 {
		t.Fatalf("Expected no results, got %d", len(results))
	}
}
