// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import "runtime"

// Current-fiber registry, keyed by goroutine id. A fiber owns its
// goroutine for its entire lifetime, so the id is parsed once at entry
// and removed at exit; Yield/SleepFor/Await pay one map lookup.
var (
	currentMu     Spinlock
	currentFibers = make(map[uint64]*Fiber)
)

// goid parses the calling goroutine's id from the runtime stack header
// ("goroutine N [...]"). The header format is stable across releases.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	const prefix = len("goroutine ")
	id := uint64(0)
	for _, c := range buf[prefix:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}

func setCurrent(id uint64, f *Fiber) {
	currentMu.Lock()
	currentFibers[id] = f
	currentMu.Unlock()
}

func clearCurrent(id uint64) {
	currentMu.Lock()
	delete(currentFibers, id)
	currentMu.Unlock()
}

// Current returns the fiber running on the calling goroutine, or nil
// when the caller is not inside a fiber.
func Current() *Fiber {
	id := goid()
	currentMu.Lock()
	f := currentFibers[id]
	currentMu.Unlock()
	return f
}
