// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/deque"
	"code.hybscloud.com/iox"
)

// TestHeavyStealingAgainstPush has 4 stealers loop Steal() against a
// shared countdown while the worker pushes the same value 100000
// times. Every stolen value must equal 1 and the countdown must land
// on exactly zero.
func TestHeavyStealingAgainstPush(t *testing.T) {
	const (
		total     = 100000
		nStealers = 4
	)

	worker, stealer := deque.New[int]()
	var remaining atomix.Int64
	remaining.Store(total)

	var wg sync.WaitGroup
	for range nStealers {
		wg.Add(1)
		go func(s *deque.Stealer[int]) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for remaining.Load() > 0 {
				v, err := s.Steal()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				if v != 1 {
					t.Errorf("Steal: got %d, want 1", v)
				}
				remaining.Add(-1)
			}
		}(stealer.Clone())
	}

	for i := 0; i < total; i++ {
		worker.Push(1)
	}
	wg.Wait()

	if got := remaining.Load(); got != 0 {
		t.Fatalf("remaining: got %d, want 0", got)
	}
}

// record is the structured payload pushed through the deque, modeled
// on a task-parallel runtime's work item.
type record struct {
	label int
	path  string
}

// TestMixedPopAndSteal has the worker push 100000 records, then both
// pop and 4 stealers steal concurrently until all are accounted for.
// Every returned record must carry label == 1 and none may be
// returned twice or lost.
func TestMixedPopAndSteal(t *testing.T) {
	const (
		total     = 100000
		nStealers = 4
	)

	worker, stealer := deque.New[record]()
	for i := 0; i < total; i++ {
		worker.Push(record{label: 1, path: "/some/random/path"})
	}

	var accounted atomix.Int64
	var wg sync.WaitGroup

	for range nStealers {
		wg.Add(1)
		go func(s *deque.Stealer[record]) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for accounted.Load() < total {
				r, err := s.Steal()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				if r.label != 1 {
					t.Errorf("Steal: got label %d, want 1", r.label)
				}
				accounted.Add(1)
			}
		}(stealer.Clone())
	}

	backoff := iox.Backoff{}
	for accounted.Load() < total {
		r, err := worker.Pop()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		if r.label != 1 {
			t.Errorf("Pop: got label %d, want 1", r.label)
		}
		accounted.Add(1)
	}

	wg.Wait()

	if got := accounted.Load(); got != total {
		t.Fatalf("accounted: got %d, want %d", got, total)
	}
}

// TestResizeStress pushes 1,000,000 items with no pop
// or steal in between (forcing many grows), then drain entirely via
// Pop. The multiset of returned items must equal the multiset pushed.
func TestResizeStress(t *testing.T) {
	const total = 1000000

	worker, _ := deque.New[int]()
	for i := 0; i < total; i++ {
		worker.Push(i)
	}

	seen := make([]bool, total)
	count := 0
	for {
		v, err := worker.Pop()
		if err != nil {
			break
		}
		if v < 0 || v >= total {
			t.Fatalf("Pop: out-of-range value %d", v)
		}
		if seen[v] {
			t.Fatalf("Pop: duplicate value %d", v)
		}
		seen[v] = true
		count++
	}

	if count != total {
		t.Fatalf("drained %d items, want %d", count, total)
	}
	for i := 0; i < total; i++ {
		if !seen[i] {
			t.Fatalf("value %d never returned", i)
		}
	}
}

// TestInvariantBottomGreaterEqualTop checks that, outside the brief pop
// pre-decrement window, bottom never observably falls below top: after
// every step of a single-threaded push/steal/pop sequence, Len (which is
// exactly bottom - top when nothing races it) must equal the number of
// items pushed and not yet returned.
func TestInvariantBottomGreaterEqualTop(t *testing.T) {
	worker, stealer := deque.New[int]()
	want := 0
	for i := 0; i < 100; i++ {
		worker.Push(i)
		want++
		if i%3 == 0 {
			if _, err := stealer.Steal(); err == nil {
				want--
			}
		}
		if i%5 == 0 {
			if _, err := worker.Pop(); err == nil {
				want--
			}
		}
		if got := worker.Len(); got != want {
			t.Fatalf("Len at i=%d: got %d, want %d", i, got, want)
		}
	}
}
