// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fib provides a cooperative fiber runtime: suspendable units of
// execution driven through a pluggable scheduler seam, one-shot
// [Promise]/[Future] value handoff, and the wait-free synchronization
// primitives the handoff is built on.
//
// # Architecture
//
//   - Primitives: [Spinlock] (busy-wait mutual exclusion with adaptive
//     backoff via [code.hybscloud.com/iox]), [Event] (one-shot wait/notify),
//     [WaitGroup] (counting barrier built from the two).
//   - Rendezvous: [Tryst], a wait-free 2-bit meeting point for exactly one
//     producer and one consumer. One atomic fetch-or per party; the second
//     arrival performs the handoff inline on its own stack.
//   - Handoff: [Contract] creates a [Promise]/[Future] pair over a single
//     shared allocation. Delivery is lock-free; failures travel as the
//     error arm of [Result] ([code.hybscloud.com/kont.Either]) and are
//     never thrown across a suspension.
//   - Fibers: [NewFiber] runs a [Task] on a dedicated goroutine with
//     explicit suspend/resume handoff over bounded lock-free SPSC queues
//     ([code.hybscloud.com/lfq]). [Fiber.Resume] blocks the driver until
//     the fiber suspends with a [Syscall] tag or completes.
//   - Scheduling: [Scheduler] is the sole seam to an external executor.
//     [Go] spawns a fiber onto a scheduler, [Yield] and [SleepFor] are the
//     cooperative checkpoints, [Await] parks a fiber on an unready
//     [Future]. [Pool] is a concrete worker-pool scheduler.
//
// # Ownership
//
// A fiber is never resumed from two threads at once. Ownership of the
// next resume transfers at each suspension: the driver that observes the
// suspension runs the continuation recorded at the suspend point, and
// whoever that continuation hands the fiber to owns the next resume.
//
// # Example
//
//	pool := fib.NewPool(4)
//	defer pool.Close()
//	fib.Go(pool, func() {
//		for i := 0; i < 3; i++ {
//			fib.Yield()
//		}
//	})
//	pool.WaitIdle()
package fib
