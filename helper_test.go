// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib_test

import "code.hybscloud.com/fib"

// driveAll resumes f to completion on the calling goroutine, returning
// the syscalls observed in order. Used by manual-driver tests; the
// continuations recorded at each suspension are deliberately not run,
// since the caller keeps ownership of every resume.
func driveAll(f *fib.Fiber) []fib.Syscall {
	var calls []fib.Syscall
	for {
		sc := f.Resume()
		if sc == nil {
			return calls
		}
		calls = append(calls, sc)
	}
}
