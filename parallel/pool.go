package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted jobs on a fixed set of worker goroutines. A pool
// started with one worker runs jobs inline on the submitting goroutine.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
	stop sync.Once
}

func Start(workers int) *Pool {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{}
	if workers == 1 {
		return p
	}

	p.jobs = make(chan func(), workers)
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}

	return p
}

// Do schedules f on the pool, blocking while all workers are busy.
func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait blocks until every scheduled job has finished and shuts the pool
// down. Nothing may be submitted afterwards.
func (p *Pool) Wait() {
	if p.jobs == nil {
		return
	}
	p.stop.Do(func() { close(p.jobs) })
	p.wg.Wait()
}
