// Package batch provides a bounded worker pool for running independent
// solver queries concurrently. A Solver, once finalized, may be cloned
// cheaply (the board is copied, the constraint registry and link graph
// are shared by reference) and each clone solved on its own goroutine.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned by Submit once Shutdown has been called.
var ErrPoolShutdown = fmt.Errorf("batch: pool has been shutdown")

// Pool is a fixed-size worker pool. Tasks are plain closures; Submit
// blocks until a worker slot is free, the context is cancelled, or the
// pool is shut down.
type Pool struct {
	taskChan     chan func()
	wg           sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewPool starts a pool of workers goroutines. If workers <= 0 it
// defaults to runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		taskChan:     make(chan func()),
		shutdownChan: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task, ok := <-p.taskChan:
			if !ok {
				return
			}
			task()
		case <-p.shutdownChan:
			return
		}
	}
}

// Submit hands a task to the next free worker. It blocks if every
// worker is busy.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops accepting new tasks and waits for in-flight ones to
// finish. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		p.wg.Wait()
	})
}
