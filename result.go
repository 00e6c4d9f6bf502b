// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Result carries either a value of type T or a captured failure.
// It is the boundary type of the Promise/Future handoff: failures are
// delivered through it exactly once and never thrown across a
// suspension.
//
// Right holds the value, Left the error (kont.Either convention).
type Result[T any] = kont.Either[error, T]

// Ok returns a Result holding v.
func Ok[T any](v T) Result[T] {
	return kont.Right[error](v)
}

// Err returns a failing Result carrying err.
func Err[T any](err error) Result[T] {
	return kont.Left[error, T](err)
}

// PanicError is the captured failure of a panic recovered inside a
// fiber or a future-producing function. The original panic value and
// the stack at recovery remain observable.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fib: recovered panic: %v", e.Value)
}
