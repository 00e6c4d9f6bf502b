// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

// Task is a one-shot unit of deferred work. It is consumed exactly
// once by whichever executor runs it; running a Task twice is a
// contract violation on the executor's side.
type Task func()

// Scheduler is the sole seam to an external executor: enqueue a Task
// for eventual execution. No ordering or fairness is mandated beyond
// "submitted tasks eventually run".
type Scheduler interface {
	Submit(Task)
}

// Handle is the rescheduling capability handed to a suspension
// continuation. It carries the suspended fiber together with the
// scheduler that drove it.
type Handle struct {
	fiber *Fiber
	sched Scheduler
}

// Schedule submits the fiber's next driving step. Calling it transfers
// ownership of the fiber's next resume to the scheduler.
func (h Handle) Schedule() {
	s := h.sched
	f := h.fiber
	s.Submit(func() {
		drive(s, f)
	})
}

// drive runs one driving step: resume the fiber, then hand it to the
// continuation recorded at the suspension point. A fault recovered
// from the procedure resurfaces here, on the driver, after the fiber
// has safely completed.
func drive(s Scheduler, f *Fiber) {
	if f.Resume() == nil {
		if fault := f.fault; fault != nil {
			panic(fault)
		}
		return
	}
	after := f.after
	f.after = nil
	after(Handle{fiber: f, sched: s})
}

// Go wraps proc in a fiber and submits its first driving step to s.
func Go(s Scheduler, proc Task) {
	if s == nil {
		panic("fib: Go with nil Scheduler")
	}
	f := NewFiber(proc)
	s.Submit(func() {
		drive(s, f)
	})
}

// Process-wide default scheduler registry. Explicit: nothing is
// installed until SetDefault.
var (
	defaultMu    Spinlock
	defaultSched Scheduler
)

// SetDefault installs s as the process-wide default scheduler used by
// GoDefault. Passing nil clears the registry.
func SetDefault(s Scheduler) {
	defaultMu.Lock()
	defaultSched = s
	defaultMu.Unlock()
}

// Default returns the process-wide default scheduler, or nil when none
// has been installed.
func Default() Scheduler {
	defaultMu.Lock()
	s := defaultSched
	defaultMu.Unlock()
	return s
}

// GoDefault spawns proc on the default scheduler.
// A default must have been installed with SetDefault.
func GoDefault(proc Task) {
	s := Default()
	if s == nil {
		panic("fib: GoDefault without a default scheduler")
	}
	Go(s, proc)
}
