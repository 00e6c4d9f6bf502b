// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

// Future is the single-use consumer handle of a Contract.
// Consume is destructive: it transfers the underlying state out of the
// handle before registering the continuation, so a Future cannot be
// consumed twice.
type Future[T any] struct {
	state *sharedState[T]
}

// Consume registers cb as the continuation for the eventual Result.
// When the producer has already delivered, cb runs inline on this
// call's stack; otherwise it runs later on the producer's stack.
func (f *Future[T]) Consume(cb Callback[T]) {
	if cb == nil {
		panic("fib: Consume with nil Callback")
	}
	f.release().consume(cb)
}

// Get blocks until the producer delivers and returns the outcome.
// The block is an Event wait (goroutine park), so Get is safe from
// plain goroutines; inside a fiber prefer Await, which suspends the
// fiber instead of the worker driving it.
func (f *Future[T]) Get() (T, error) {
	ev := NewEvent()
	var res Result[T]
	f.release().consume(func(r Result[T]) {
		res = r
		ev.Fire()
	})
	ev.Wait()
	if err, ok := res.GetLeft(); ok {
		var zero T
		return zero, err
	}
	v, _ := res.GetRight()
	return v, nil
}

// Valid reports whether the Future still holds its state, i.e. has not
// yet been consumed or reset.
func (f *Future[T]) Valid() bool {
	return f.state != nil
}

// Reset drains a still-valid Future by installing a no-op continuation,
// so the shared state is released even when the result is never
// observed. A Future that may go unconsumed must be Reset.
func (f *Future[T]) Reset() {
	f.release().consume(func(Result[T]) {})
}

func (f *Future[T]) release() *sharedState[T] {
	s := f.state
	if s == nil {
		panic("fib: Future used after consume or reset")
	}
	f.state = nil
	return s
}
