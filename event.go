// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import "code.hybscloud.com/atomix"

// Event is a one-shot notification flag. Wait parks the caller until
// Fire has completed; a Wait issued after Fire returns immediately.
//
// Waiters block in the runtime (goroutine park), not in a spin loop,
// so Event suits waits of unpredictable length. There is no timeout,
// no cancellation, and no ordering guarantee among released waiters.
//
// Create with NewEvent; the zero Event is not usable.
type Event struct {
	fired atomix.Uint32
	done  chan struct{}
}

// NewEvent returns a new unfired Event.
func NewEvent() *Event {
	return &Event{done: make(chan struct{})}
}

// Wait blocks until the event has fired.
func (e *Event) Wait() {
	if e.done == nil {
		panic("fib: Wait on zero Event; use NewEvent")
	}
	if e.fired.Load() != 0 {
		return
	}
	<-e.done
}

// Fire sets the flag and releases every current and future waiter.
// Idempotent: calls after the first have no additional effect.
func (e *Event) Fire() {
	if e.done == nil {
		panic("fib: Fire on zero Event; use NewEvent")
	}
	if e.fired.CompareAndSwap(0, 1) {
		close(e.done)
	}
}

// Fired reports whether Fire has completed.
// Observational snapshot only.
func (e *Event) Fired() bool {
	return e.fired.Load() != 0
}
