// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque

// logInitialSize is log2 of the smallest segment a Deque ever publishes.
// Shrinking never goes below 1<<logInitialSize; this floor prevents a
// deque that oscillates around a small size from thrashing between a
// 1- and 2-slot segment on every other push/pop.
const logInitialSize = 4

// Segment is a fixed-capacity, ring-indexed backing array for one
// generation of a Deque's storage.
//
// A Segment is created once (at Deque construction, or by resize) and
// never mutated in place by more than one goroutine: only the worker
// calls put, and the worker is also the only writer of a Segment's
// successor link. Stealers only ever call get on a Segment they have
// already observed through an acquire load of the Deque's buffer
// pointer, at logical indices inside the occupied range — an immutable
// view from their side.
//
// Capacity is always a power of two so wrapping a logical index reduces
// to a bit-mask.
type segment[T any] struct {
	id     int64
	logCap uint
	mask   int64
	items  []T
	next   *segment[T]
}

// newSegment allocates an empty Segment of capacity 1<<logCap with the
// given generation id.
func newSegment[T any](logCap uint, id int64) *segment[T] {
	cap := int64(1) << logCap
	return &segment[T]{
		id:     id,
		logCap: logCap,
		mask:   cap - 1,
		items:  make([]T, cap),
	}
}

// cap returns the Segment's capacity, always a power of two.
func (s *segment[T]) cap() int64 {
	return s.mask + 1
}

// get returns the item at logical index i. The caller must ensure i
// lies in the occupied range [top, bottom) at the time of the call.
func (s *segment[T]) get(i int64) T {
	return s.items[i&s.mask]
}

// put writes x at logical index i. Worker-only.
func (s *segment[T]) put(i int64, x T) {
	s.items[i&s.mask] = x
}

// resize allocates a new Segment with capacity shifted by delta
// (+1 to grow, -1 to shrink), copies the live range [top, bottom)
// element-wise into it — each logical index re-wrapped to the new
// capacity's mask — links it as this Segment's successor, and returns
// it. The new Segment's id is this Segment's id + 1, preserving
// the rule that ids strictly increase toward the published
// Segment.
func (s *segment[T]) resize(bottom, top int64, delta int) *segment[T] {
	next := newSegment[T](uint(int(s.logCap)+delta), s.id+1)
	for i := top; i < bottom; i++ {
		next.put(i, s.get(i))
	}
	s.next = next
	return next
}
