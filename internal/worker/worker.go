// Package worker provides the background pool used for best-effort jobs such
// as cache population. Submitted tasks run in order of arrival per worker and
// Stop drains everything already queued.
package worker

import "sync"

// Task is a unit of background work.
type Task func()

// Pool runs tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

type pool struct {
	queue chan Task
	wg    sync.WaitGroup
}

// NewPool starts a pool of n workers. n <= 0 is treated as 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{queue: make(chan Task, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *pool) work() {
	defer p.wg.Done()
	for task := range p.queue {
		if task != nil {
			task()
		}
	}
}

func (p *pool) Submit(t Task) {
	p.queue <- t
}

// Stop closes the queue and waits for in-flight tasks. Submit after Stop
// panics.
func (p *pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}
