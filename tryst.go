// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import "code.hybscloud.com/atomix"

// Tryst states. TRYST is reached when both parties have arrived.
const (
	trystInit     uint32 = 0
	trystConsumer uint32 = 1 << 0
	trystProducer uint32 = 1 << 1
	trystMet      uint32 = trystConsumer | trystProducer
)

// Tryst is a wait-free meeting point for exactly one producer and one
// consumer. Each party announces its arrival with a single atomic
// fetch-or; the call that observes the other party's bit already set is
// the second arrival and must perform the rendezvous action inline.
// No separate wake step exists.
//
// The read-modify-write gives the second arrival visibility of every
// write the first arrival made before its call.
//
// Consume and Produce may each be called at most once per Tryst, from
// any goroutine, in any order or concurrently. Further calls corrupt
// the 2-bit encoding; there are no runtime guards.
//
// The zero Tryst is empty and ready for use.
type Tryst struct {
	state atomix.Uint32
}

// Consume announces the consumer's arrival.
// Returns true iff the producer had already arrived: the caller is the
// second arrival and must run the continuation against the stored
// result on its own stack.
func (t *Tryst) Consume() bool {
	return t.state.Or(trystConsumer) == trystProducer
}

// Produce announces the producer's arrival.
// Returns true iff the consumer had already arrived: the caller is the
// second arrival and must deliver the result to the stored continuation
// on its own stack.
func (t *Tryst) Produce() bool {
	return t.state.Or(trystProducer) == trystConsumer
}
