// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import (
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// cacheLineSize pads each lock onto its own cache line so contending
// cores do not false-share neighbouring data.
const cacheLineSize = 64

// Spinlock is a busy-wait mutual exclusion lock over a single atomic
// word. Waiters retry compare-and-swap with adaptive backoff
// (iox.Backoff), bounding cache-line contention under load.
//
// A Spinlock must not be copied or moved after first use. It is not
// reentrant: re-acquiring from the holder spins forever. Suited to
// short critical sections; prefer Event for long waits.
//
// The zero Spinlock is unlocked and ready for use.
type Spinlock struct {
	state atomix.Uint32
	_     [cacheLineSize - 4]byte
}

// Lock spins until the lock is acquired.
// All writes made under the previous holder are visible after Lock
// returns (acquire on the winning compare-and-swap).
func (l *Spinlock) Lock() {
	var bo iox.Backoff
	for !l.TryLock() {
		bo.Wait()
	}
}

// TryLock attempts to acquire the lock once, without waiting.
func (l *Spinlock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// TryLockFor spins for at most d, returning false without ownership
// when the deadline passes.
func (l *Spinlock) TryLockFor(d time.Duration) bool {
	return l.TryLockUntil(time.Now().Add(d))
}

// TryLockUntil spins until deadline, returning false without ownership
// when the deadline passes.
func (l *Spinlock) TryLockUntil(deadline time.Time) bool {
	var bo iox.Backoff
	for !l.TryLock() {
		if !time.Now().Before(deadline) {
			return false
		}
		bo.Wait()
	}
	return true
}

// IsLocked reports whether the lock is currently held.
// Observational snapshot only: the answer may be stale by the time the
// caller acts on it. Not a synchronization point.
func (l *Spinlock) IsLocked() bool {
	return l.state.Load() != 0
}

// Unlock releases the lock, publishing all writes made inside the
// critical section to the next acquirer (release store).
// Unlocking a lock that is not held is a contract violation.
func (l *Spinlock) Unlock() {
	if l.state.Swap(0) == 0 {
		panic("fib: Unlock of unlocked Spinlock")
	}
}
