// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import "time"

// Yield suspends the calling fiber, asking its driver to requeue it
// for another turn. This is the cooperative multitasking checkpoint
// that lets many fibers share few workers.
//
// Callable only from inside a running fiber.
func Yield() {
	f := Current()
	if f == nil {
		panic("fib: Yield outside a fiber")
	}
	f.suspend(YieldRequest{}, func(h Handle) {
		h.Schedule()
	})
}

// SleepFor suspends the calling fiber for at least d. The fiber's
// worker is released for the whole delay; the driver re-arms the fiber
// on a timer.
//
// Callable only from inside a running fiber.
func SleepFor(d time.Duration) {
	f := Current()
	if f == nil {
		panic("fib: SleepFor outside a fiber")
	}
	f.suspend(SleepRequest{Delay: d}, func(h Handle) {
		time.AfterFunc(d, h.Schedule)
	})
}
