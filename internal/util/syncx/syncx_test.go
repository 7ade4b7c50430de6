// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"errors"
	"sync"
	"testing"
)

func TestProtected(t *testing.T) {
	t.Parallel()

	p := Protect(make(map[string]int))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Access(func(m map[string]int) { m["hits"]++ })
		}()
	}
	wg.Wait()

	p.RAccess(func(m map[string]int) {
		if m["hits"] != 10 {
			t.Fatalf("got %d hits, want 10", m["hits"])
		}
	})
}

func TestLazy(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[int]
		calls int
	)
	compute := func() int {
		calls++
		return 7
	}

	if got := l.Get(compute); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if got := l.Get(compute); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}
}

func TestLazyGetErr(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("nope")

	var l Lazy[string]
	_, err := l.GetErr(func() (string, error) { return "", wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
	// The error must stick on subsequent calls.
	_, err = l.GetErr(func() (string, error) { return "ok", nil })
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}
