// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

// WaitGroup is a counting completion barrier: Add raises the counter,
// Done lowers it, Wait blocks until it reaches zero.
//
// The counter is guarded by a Spinlock; waiters of one generation park
// on a shared Event that is replaced at each zero crossing, so the
// group is reusable. No ordering is guaranteed across a zero crossing:
// racing a Wait return against a subsequent Add is the caller's
// responsibility.
//
// The zero WaitGroup is ready for use and must not be copied.
type WaitGroup struct {
	mu    Spinlock
	count int
	gen   *Event
}

// Add increases the counter by n.
func (wg *WaitGroup) Add(n int) {
	if n < 0 {
		panic("fib: WaitGroup.Add of negative count")
	}
	wg.mu.Lock()
	wg.count += n
	wg.mu.Unlock()
}

// Done decreases the counter by one, releasing all current waiters when
// it reaches zero. Decrementing below zero is a contract violation.
func (wg *WaitGroup) Done() {
	wg.mu.Lock()
	if wg.count == 0 {
		wg.mu.Unlock()
		panic("fib: WaitGroup counter below zero")
	}
	wg.count--
	var ev *Event
	if wg.count == 0 {
		ev, wg.gen = wg.gen, nil
	}
	wg.mu.Unlock()
	if ev != nil {
		ev.Fire()
	}
}

// Wait blocks until the counter is zero.
func (wg *WaitGroup) Wait() {
	wg.mu.Lock()
	if wg.count == 0 {
		wg.mu.Unlock()
		return
	}
	if wg.gen == nil {
		wg.gen = NewEvent()
	}
	ev := wg.gen
	wg.mu.Unlock()
	ev.Wait()
}
