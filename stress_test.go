// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/deque"
)

// TestReclamationUnderRacySteals drives a push/pop loop on the worker
// through many grows and shrinks while 8 stealers continuously attempt
// steals. This must not crash and must not lose or duplicate any item.
// A use-after-free in the reclaimer would corrupt the heap here rather
// than merely misbehave.
func TestReclamationUnderRacySteals(t *testing.T) {
	if deque.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const (
		rounds    = 20000 // well over 100 grows and 100 shrinks
		nStealers = 8
	)

	worker, stealer := deque.New[int]()
	var produced, consumed atomix.Int64
	var stop atomix.Bool

	var wg sync.WaitGroup
	for range nStealers {
		wg.Add(1)
		go func(s *deque.Stealer[int]) {
			defer wg.Done()
			for !stop.Load() {
				if v, err := s.Steal(); err == nil {
					if v < 0 {
						t.Errorf("Steal: got negative value %d", v)
					}
					consumed.Add(1)
				}
			}
		}(stealer.Clone())
	}

	// Oscillate the segment between growth and shrink: push a burst,
	// then pop most of it back down below the shrink threshold.
	for r := 0; r < rounds; r++ {
		for i := 0; i < 64; i++ {
			worker.Push(r*64 + i)
			produced.Add(1)
		}
		for i := 0; i < 60; i++ {
			if _, err := worker.Pop(); err == nil {
				consumed.Add(1)
			}
		}
	}
	// Drain whatever the worker still holds.
	for {
		if _, err := worker.Pop(); err != nil {
			break
		}
		consumed.Add(1)
	}

	stop.Store(true)
	wg.Wait()

	if got, want := consumed.Load(), produced.Load(); got != want {
		t.Fatalf("consumed %d items, produced %d", got, want)
	}
}
