// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

// Callback is the continuation attached to a Future. It receives the
// Result exactly once, on the stack of whichever party arrived second
// at the rendezvous.
type Callback[T any] func(Result[T])

// sharedState is the single-value handoff cell between one Promise and
// one Future: a result slot, a continuation slot, and the Tryst that
// decides which party performs the handoff.
//
// The first arrival stores into its slot and returns; the second
// arrival observes the first's write through the Tryst's RMW edge and
// runs the continuation against the result inline.
type sharedState[T any] struct {
	result   Result[T]
	callback Callback[T]
	tryst    Tryst
}

// produce stores res and announces the producer.
// Runs the stored continuation inline when the consumer arrived first.
func (s *sharedState[T]) produce(res Result[T]) {
	s.result = res
	if s.tryst.Produce() {
		s.callback(s.result)
	}
}

// consume stores cb and announces the consumer.
// Runs cb against the stored result inline when the producer arrived
// first.
func (s *sharedState[T]) consume(cb Callback[T]) {
	s.callback = cb
	if s.tryst.Consume() {
		s.callback(s.result)
	}
}

// contractPair holds the shared state and both handles in a single
// allocation. The state is released when both handles have let go;
// the garbage collector frees it once the last reference drops.
type contractPair[T any] struct {
	state   sharedState[T]
	promise Promise[T]
	future  Future[T]
}

// Contract creates a connected Promise/Future pair sharing one state.
// Exactly one producer delivers through the Promise and exactly one
// consumer receives through the Future; neither blocks the other when
// timing allows.
func Contract[T any]() (*Promise[T], *Future[T]) {
	pair := &contractPair[T]{}
	pair.promise.state = &pair.state
	pair.future.state = &pair.state
	return &pair.promise, &pair.future
}
