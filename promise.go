// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

// Promise is the single-use producer handle of a Contract.
// Exactly one of SetValue or SetError may be called; either releases
// the underlying state first, so a second delivery panics rather than
// corrupting the rendezvous.
type Promise[T any] struct {
	state *sharedState[T]
}

// SetValue delivers v to the consumer.
// When the consumer has already arrived, its continuation runs inline
// on this call's stack; otherwise the value is stored for it.
func (p *Promise[T]) SetValue(v T) {
	p.release().produce(Ok[T](v))
}

// SetError delivers a failing Result carrying err to the consumer.
// The failure reaches the consumer's continuation exactly once; it is
// never thrown.
func (p *Promise[T]) SetError(err error) {
	p.release().produce(Err[T](err))
}

// Valid reports whether the Promise still holds its state, i.e. has
// not yet delivered.
func (p *Promise[T]) Valid() bool {
	return p.state != nil
}

func (p *Promise[T]) release() *sharedState[T] {
	s := p.state
	if s == nil {
		panic("fib: Promise used after delivery or release")
	}
	p.state = nil
	return s
}
