// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import "runtime/debug"

// Await blocks on fut without blocking a worker: inside a fiber it
// suspends and registers a continuation that reschedules the fiber
// when the producer delivers, so the handoff costs no thread block
// when timing allows. Outside a fiber it falls back to Future.Get.
//
// Await consumes the Future.
func Await[T any](fut *Future[T]) (T, error) {
	f := Current()
	if f == nil {
		return fut.Get()
	}
	var res Result[T]
	f.suspend(awaitRequest{}, func(h Handle) {
		fut.Consume(func(r Result[T]) {
			res = r
			h.Schedule()
		})
	})
	if err, ok := res.GetLeft(); ok {
		var zero T
		return zero, err
	}
	v, _ := res.GetRight()
	return v, nil
}

// GoFuture spawns fn in a fiber on s and returns a Future for its
// outcome. A panic in fn is captured as a *PanicError in the error
// arm; it never unwinds into the driver.
func GoFuture[T any](s Scheduler, fn func() (T, error)) *Future[T] {
	p, fut := Contract[T]()
	Go(s, func() {
		var (
			v   T
			err error
		)
		func() {
			defer func() {
				if r := recover(); r != nil {
					err = &PanicError{Value: r, Stack: debug.Stack()}
				}
			}()
			v, err = fn()
		}()
		if err != nil {
			p.SetError(err)
			return
		}
		p.SetValue(v)
	})
	return fut
}
