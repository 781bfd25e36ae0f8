// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque

// Worker is the single-owner façade onto one end of a Deque. Exactly
// one Worker exists per Deque; Go has no compile-time non-copyable
// enforcement, so it is enforced by convention: treat a *Worker[T] as
// non-copyable and pass it by reference, or move ownership by simply
// handing the pointer to another goroutine and not retaining it
// yourself.
type Worker[T any] struct {
	d *core[T]
}

// Push adds x to the bottom of the deque. It never fails; if the
// current Segment is nearly full, Push grows it first. Worker-only —
// calling Push from more than one goroutine concurrently is undefined
// behavior.
func (w *Worker[T]) Push(x T) {
	w.d.pushBottom(x)
}

// Pop removes and returns the bottom-most item. It returns
// ErrWouldBlock if the deque is empty, or if a concurrent stealer won
// the race for the last remaining item. Worker-only.
func (w *Worker[T]) Pop() (T, error) {
	return w.d.popBottom()
}

// Len returns an advisory, racy estimate of the number of items
// currently in the deque. It is not synchronized against concurrent
// pushes, pops, or steals and may be stale the instant it returns;
// like [code.hybscloud.com/lfq]'s queues, this package does not offer
// an exact length because an exact concurrent count would require
// expensive cross-core synchronization this deque otherwise avoids.
// Use it for diagnostics and tests, not control flow.
func (w *Worker[T]) Len() int {
	return w.d.len()
}
