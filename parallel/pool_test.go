package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllJobs(t *testing.T) {
	t.Parallel()

	pool := Start(4)

	var count atomic.Uint64
	for i := 0; i < 100; i++ {
		pool.Do(func() {
			count.Add(1)
		})
	}
	pool.Wait()

	if got := count.Load(); got != 100 {
		t.Errorf("ran %d jobs, want 100", got)
	}
}

func TestSingleWorkerRunsInline(t *testing.T) {
	t.Parallel()

	pool := Start(1)

	ran := false
	pool.Do(func() { ran = true })
	if !ran {
		t.Error("job did not run inline before Wait")
	}
	pool.Wait()
}

func TestWaitIsIdempotent(t *testing.T) {
	t.Parallel()

	pool := Start(2)
	pool.Do(func() {})
	pool.Wait()
	pool.Wait()
}
