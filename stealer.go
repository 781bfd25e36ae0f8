// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque

// Stealer is a clonable façade onto the top end of a Deque. Each
// Stealer value owns exactly one epoch record in the Deque's
// reclaimer; Clone registers a fresh record for a new goroutine, while
// ordinary Go assignment of a *Stealer[T] just hands over the same
// record without touching the reclaimer.
type Stealer[T any] struct {
	d   *core[T]
	rec *epochRecord
}

func newStealer[T any](d *core[T]) *Stealer[T] {
	return &Stealer[T]{d: d, rec: d.reclaimer.register()}
}

// Clone returns a new Stealer sharing the same Deque but registering
// its own epoch record, ready to be handed to another goroutine.
// Spawning a stealer goroutine should always go through Clone rather
// than sharing one *Stealer[T] across goroutines — steal() itself is
// safe to call concurrently, but the epoch record it updates is not
// meant to be written from more than one goroutine at a time.
func (s *Stealer[T]) Clone() *Stealer[T] {
	return newStealer(s.d)
}

// Steal removes and returns the top-most item. It returns
// ErrWouldBlock if the deque is empty, or if this steal's CAS lost the
// race against another steal or against the worker's pop.
//
// The epoch record is updated around the core steal so that wasIdle
// is released false before sampling deque state (so a concurrent
// reclamation pass that observes "not idle" folds in the idLastUsed
// stored at the end of this stealer's previous steal, which is no newer
// than any Segment this steal can load), then released true again once
// the attempt completes, then idLastUsed is refreshed
// from whatever Segment is currently published — which is at least as
// new as the one this steal could have read from.
func (s *Stealer[T]) Steal() (T, error) {
	s.rec.wasIdle.StoreRelease(false)
	item, err := s.d.steal()
	s.rec.wasIdle.StoreRelease(true)

	buf := s.d.buffer.Load()
	s.rec.idLastUsed.StoreRelaxed(buf.id)

	return item, err
}
