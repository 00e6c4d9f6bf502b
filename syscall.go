// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import "time"

// Syscall describes why a fiber suspended. Produced by the suspending
// fiber, consumed by whichever driver observed the suspension via
// [Fiber.Resume]. A nil Syscall from Resume means the fiber completed.
type Syscall interface {
	syscall()
}

// YieldRequest asks the driver to requeue the fiber for another turn.
type YieldRequest struct{}

func (YieldRequest) syscall() {}

// SleepRequest asks the driver to requeue the fiber after Delay.
type SleepRequest struct {
	Delay time.Duration
}

func (SleepRequest) syscall() {}

// awaitRequest marks a suspension on an unready Future. The recorded
// continuation re-arms scheduling itself, so drivers never interpret
// this tag.
type awaitRequest struct{}

func (awaitRequest) syscall() {}
