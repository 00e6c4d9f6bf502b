// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import (
	"runtime/debug"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// handoffCapacity is the bound for the resume/suspend handoff queues.
// Each direction holds at most one in-flight token, but a capacity of
// one also absorbs a resume posted before the fiber has fully parked.
const handoffCapacity = 1

// Fiber lifecycle states, strictly alternating
// Created → Running → Suspended → Running → … → Completed.
const (
	statusCreated uint32 = iota
	statusRunning
	statusSuspended
	statusCompleted
)

// execContext is the saved execution state of a suspended fiber: the
// parked goroutine stands in for the dedicated stack and callee-saved
// register set, and two bounded lock-free SPSC queues carry the control
// transfer. resumeQ flows driver→fiber (resume tokens), suspendQ flows
// fiber→driver (syscall records, nil meaning completion).
//
// Each queue is strictly single-producer single-consumer: the fiber
// goroutine is the only consumer of resumeQ and the only producer of
// suspendQ, and the driver side is serialized by the ownership-transfer
// rule (one resumer at a time).
type execContext struct {
	resumeQ     lfq.SPSC[struct{}]
	suspendQ    lfq.SPSC[Syscall]
	resumeSlot  struct{}
	suspendSlot Syscall
}

func (c *execContext) init() {
	c.resumeQ.Init(handoffCapacity)
	c.suspendQ.Init(handoffCapacity)
}

// post hands a resume token to the fiber. Driver side.
func (c *execContext) post() {
	if err := c.resumeQ.Enqueue(&c.resumeSlot); err != nil {
		panic("fib: fiber resumed twice without a suspension")
	}
}

// park blocks the fiber goroutine until the next resume token,
// waiting past the empty-queue boundary with adaptive backoff.
func (c *execContext) park() {
	var bo iox.Backoff
	for {
		if _, err := c.resumeQ.Dequeue(); err == nil {
			return
		}
		bo.Wait()
	}
}

// publish hands sc to the driver. nil marks completion. Fiber side.
func (c *execContext) publish(sc Syscall) {
	c.suspendSlot = sc
	if err := c.suspendQ.Enqueue(&c.suspendSlot); err != nil {
		panic("fib: fiber suspended twice without a resume")
	}
}

// take blocks the driver until the fiber publishes its next syscall,
// waiting past the empty-queue boundary with adaptive backoff.
func (c *execContext) take() Syscall {
	var bo iox.Backoff
	for {
		sc, err := c.suspendQ.Dequeue()
		if err == nil {
			return sc
		}
		bo.Wait()
	}
}

// Fiber is a cooperative unit of execution running its procedure on a
// dedicated goroutine. A resumer blocks synchronously until the fiber
// next suspends or completes (asymmetric transfer); the fiber is never
// running on two threads at once.
type Fiber struct {
	exec   execContext
	proc   Task
	status atomix.Uint32
	serial Serial

	// after is the continuation recorded at the latest suspension.
	// It runs on the driver side once the driver has taken the
	// syscall, which is the point where ownership of the fiber
	// leaves the suspending stack. Visibility is carried by suspendQ.
	after func(Handle)

	// fault is the failure recovered from the procedure, surfaced to
	// the driver after completion instead of unwinding across the
	// control transfer.
	fault *PanicError
}

// NewFiber creates a fiber for proc and starts its goroutine, parked
// until the first Resume. The goroutine's stack replaces the dedicated
// stack region of a register-switching implementation; the runtime
// grows and releases it with the fiber.
func NewFiber(proc Task) *Fiber {
	if proc == nil {
		panic("fib: NewFiber with nil Task")
	}
	f := &Fiber{proc: proc, serial: nextSerial()}
	f.exec.init()
	go f.trampoline()
	return f
}

// Serial returns the serial number assigned to this fiber.
func (f *Fiber) Serial() Serial {
	return f.serial
}

// Completed reports whether the procedure has returned.
func (f *Fiber) Completed() bool {
	return f.status.Load() == statusCompleted
}

// trampoline is the fiber goroutine's bootstrap: it parks until the
// first resume token, installs the fiber as current, and invokes the
// procedure. Runs exactly once per fiber; later resumes return
// directly into suspend.
func (f *Fiber) trampoline() {
	f.exec.park()
	id := goid()
	setCurrent(id, f)
	defer func() {
		r := recover()
		clearCurrent(id)
		if r != nil {
			f.fault = &PanicError{Value: r, Stack: debug.Stack()}
		}
		f.status.Store(statusCompleted)
		f.exec.publish(nil)
	}()
	f.proc()
}

// Resume transfers control to the fiber until it next suspends or
// completes, and returns the Syscall describing the suspension, or
// nil when the fiber completed. The caller must hold ownership of the
// fiber's next resume; resuming a running or completed fiber is a
// contract violation.
func (f *Fiber) Resume() Syscall {
	switch f.status.Load() {
	case statusRunning:
		panic("fib: Resume of a running fiber")
	case statusCompleted:
		panic("fib: Resume of a completed fiber")
	}
	f.status.Store(statusRunning)
	f.exec.post()
	return f.exec.take()
}

// suspend publishes sc and parks until the next resume token. after
// runs on the driver side once the syscall has been taken; control
// returns here when some driver posts the next resume.
func (f *Fiber) suspend(sc Syscall, after func(Handle)) {
	f.after = after
	f.status.Store(statusSuspended)
	f.exec.publish(sc)
	f.exec.park()
}
