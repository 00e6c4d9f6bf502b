// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"github.com/eapache/queue"
)

// Pool is a worker-pool Scheduler: a fixed set of worker goroutines
// draining a shared run queue. Idle workers wait past the empty-queue
// boundary with adaptive backoff rather than parking in the kernel.
//
// Tasks eventually run; no ordering or fairness beyond FIFO dequeue of
// the shared queue is guaranteed.
type Pool struct {
	mu      Spinlock
	tasks   *queue.Queue
	closed  atomix.Uint32
	workers WaitGroup
	pending WaitGroup
}

// NewPool starts a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		panic("fib: NewPool needs at least one worker")
	}
	p := &Pool{tasks: queue.New()}
	p.workers.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Submit enqueues t for eventual execution by some worker.
// Submitting to a closed pool is a contract violation.
func (p *Pool) Submit(t Task) {
	if t == nil {
		panic("fib: Submit of nil Task")
	}
	if p.closed.Load() != 0 {
		panic("fib: Submit on closed Pool")
	}
	p.pending.Add(1)
	p.mu.Lock()
	p.tasks.Add(t)
	p.mu.Unlock()
}

// take dequeues one task, or reports an empty queue.
func (p *Pool) take() (Task, bool) {
	p.mu.Lock()
	if p.tasks.Length() == 0 {
		p.mu.Unlock()
		return nil, false
	}
	t := p.tasks.Remove().(Task)
	p.mu.Unlock()
	return t, true
}

func (p *Pool) worker() {
	defer p.workers.Done()
	var bo iox.Backoff
	for {
		t, ok := p.take()
		if !ok {
			if p.closed.Load() != 0 {
				return
			}
			bo.Wait()
			continue
		}
		bo.Reset()
		t()
		p.pending.Done()
	}
}

// WaitIdle blocks until every task submitted so far has finished.
// Racing WaitIdle against concurrent Submit is the caller's
// responsibility, as with any WaitGroup zero crossing.
func (p *Pool) WaitIdle() {
	p.pending.Wait()
}

// Close stops accepting tasks, lets the workers drain the queue, and
// waits for them to exit. Fibers still suspended on timers or futures
// must not reschedule onto a closed pool; drain with WaitIdle first.
func (p *Pool) Close() {
	p.closed.Store(1)
	p.workers.Wait()
}
