// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fib_test

import (
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/fib"
)

func TestEventReleasesAllWaiters(t *testing.T) {
	const waiters = 16

	ev := fib.NewEvent()
	var released atomix.Uint32
	var wg fib.WaitGroup

	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			ev.Wait()
			released.Add(1)
		}()
	}

	// No waiter may get through before the fire.
	time.Sleep(10 * time.Millisecond)
	if n := released.Load(); n != 0 {
		t.Fatalf("%d waiters released before Fire", n)
	}

	ev.Fire()
	wg.Wait()

	if n := released.Load(); n != waiters {
		t.Fatalf("released = %d, want %d", n, waiters)
	}
}

func TestEventWaitAfterFire(t *testing.T) {
	ev := fib.NewEvent()
	ev.Fire()

	done := make(chan struct{})
	go func() {
		ev.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait after Fire blocked")
	}
}

func TestEventFireIdempotent(t *testing.T) {
	ev := fib.NewEvent()
	ev.Fire()
	ev.Fire()
	ev.Fire()
	if !ev.Fired() {
		t.Fatal("Fired() = false after Fire")
	}
	ev.Wait()
}

func TestEventZeroValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Wait on zero Event did not panic")
		}
	}()
	var ev fib.Event
	ev.Wait()
}
