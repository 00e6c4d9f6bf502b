// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/fib"
)

func TestContractSetValueThenGet(t *testing.T) {
	p, f := fib.Contract[int]()
	p.SetValue(42)
	v, err := f.Get()
	if err != nil {
		t.Fatalf("Get returned error %v", err)
	}
	if v != 42 {
		t.Fatalf("Get = %d, want 42", v)
	}
}

func TestContractSetErrorThenGet(t *testing.T) {
	errBoom := errors.New("boom")
	p, f := fib.Contract[string]()
	p.SetError(errBoom)
	_, err := f.Get()
	if !errors.Is(err, errBoom) {
		t.Fatalf("Get error = %v, want %v", err, errBoom)
	}
}

func TestContractGetBeforeDelivery(t *testing.T) {
	p, f := fib.Contract[string]()
	go p.SetValue("late")
	v, err := f.Get()
	if err != nil {
		t.Fatalf("Get returned error %v", err)
	}
	if v != "late" {
		t.Fatalf("Get = %q, want %q", v, "late")
	}
}

func TestContractConsumeBeforeProduce(t *testing.T) {
	p, f := fib.Contract[int]()
	done := fib.NewEvent()
	got := 0

	f.Consume(func(r fib.Result[int]) {
		got, _ = r.GetRight()
		done.Fire()
	})
	p.SetValue(7)
	done.Wait()

	if got != 7 {
		t.Fatalf("continuation received %d, want 7", got)
	}
}

func TestContractProduceBeforeConsume(t *testing.T) {
	p, f := fib.Contract[int]()
	p.SetValue(9)

	ran := false
	f.Consume(func(r fib.Result[int]) {
		v, _ := r.GetRight()
		if v != 9 {
			t.Fatalf("continuation received %d, want 9", v)
		}
		ran = true
	})
	if !ran {
		t.Fatal("continuation did not run inline on second arrival")
	}
}

// TestContractContinuationExactlyOnce races delivery against
// consumption: whatever the interleaving, the continuation must run
// exactly once with the delivered value.
func TestContractContinuationExactlyOnce(t *testing.T) {
	for rep := 0; rep < 5000; rep++ {
		p, f := fib.Contract[int]()
		var runs atomix.Uint32
		var wg fib.WaitGroup
		var wrong atomix.Uint32

		wg.Add(2)
		go func() {
			defer wg.Done()
			p.SetValue(rep)
		}()
		go func() {
			defer wg.Done()
			f.Consume(func(r fib.Result[int]) {
				if v, _ := r.GetRight(); v != rep {
					wrong.Add(1)
				}
				runs.Add(1)
			})
		}()
		wg.Wait()

		if n := runs.Load(); n != 1 {
			t.Fatalf("rep %d: continuation ran %d times, want 1", rep, n)
		}
		if wrong.Load() != 0 {
			t.Fatalf("rep %d: continuation observed wrong value", rep)
		}
	}
}

func TestFutureReset(t *testing.T) {
	p, f := fib.Contract[int]()
	f.Reset()
	if f.Valid() {
		t.Fatal("Future still valid after Reset")
	}
	// Delivery into a drained contract runs the no-op continuation.
	p.SetValue(1)
}

func TestFutureErrorNotDroppedByReset(t *testing.T) {
	errLost := errors.New("lost")
	p, f := fib.Contract[int]()
	p.SetError(errLost)

	// The failure is still observable by the draining continuation.
	var seen error
	f.Consume(func(r fib.Result[int]) {
		seen, _ = r.GetLeft()
	})
	if !errors.Is(seen, errLost) {
		t.Fatalf("drained error = %v, want %v", seen, errLost)
	}
}

func TestPromiseReusePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("second delivery did not panic")
		}
	}()
	p, f := fib.Contract[int]()
	defer f.Reset()
	p.SetValue(1)
	p.SetValue(2)
}

func TestFutureReusePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("second consume did not panic")
		}
	}()
	p, f := fib.Contract[int]()
	p.SetValue(1)
	f.Consume(func(fib.Result[int]) {})
	f.Consume(func(fib.Result[int]) {})
}

func TestPromiseValid(t *testing.T) {
	p, f := fib.Contract[int]()
	if !p.Valid() || !f.Valid() {
		t.Fatal("fresh handles not valid")
	}
	p.SetValue(3)
	if p.Valid() {
		t.Fatal("Promise valid after delivery")
	}
	if v, err := f.Get(); err != nil || v != 3 {
		t.Fatalf("Get = (%d, %v), want (3, nil)", v, err)
	}
	if f.Valid() {
		t.Fatal("Future valid after Get")
	}
}
