// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// core is the Chase–Lev bottom/top protocol shared by one Worker and
// any number of Stealer clones. It is never exposed directly; New
// returns the two handles that front it.
//
// top and bottom are logical positions over the occupied range
// [top, bottom). bottom is advanced only by the worker (push, and the
// multi-item pop path); top is advanced by the worker (the single-item
// pop race) or by any stealer. buffer is the currently published
// Segment; unlinked is the worker-private head of the chain of retired
// Segments awaiting reclamation.
type core[T any] struct {
	_         pad
	top       atomix.Int64
	_         pad
	bottom    atomix.Int64
	_         pad
	buffer    atomic.Pointer[segment[T]]
	_         pad
	unlinked  *segment[T]
	reclaimer reclaimer
}

// pad is cache-line padding to keep the hot atomic fields on separate
// cache lines, the same discipline [code.hybscloud.com/lfq] applies to
// its FAA indices.
type pad [64]byte

func newCore[T any]() *core[T] {
	d := &core[T]{}
	d.buffer.Store(newSegment[T](logInitialSize, 0))
	return d
}

// pushBottom is the worker's single-owner write path. It never fails:
// when the current Segment is nearly full it grows first.
func (d *core[T]) pushBottom(x T) {
	bottom := d.bottom.LoadRelaxed()
	top := d.top.LoadAcquire()
	buf := d.buffer.Load()

	size := bottom - top
	if size >= buf.cap()-1 {
		if d.unlinked == nil {
			d.unlinked = buf
		}
		buf = buf.resize(bottom, top, 1)
		d.buffer.Store(buf)
		d.reclaim(buf)
	}

	buf.put(bottom, x)
	// StoreRelease doubles as the release fence needed ahead of the
	// index advance: it orders the plain item write above before any
	// stealer can observe the new bottom.
	d.bottom.StoreRelease(bottom + 1)
}

// popBottom is the worker's path; it may race a single stealer when
// exactly one item remains.
func (d *core[T]) popBottom() (T, error) {
	var zero T

	bottom := d.bottom.LoadRelaxed()
	buf := d.buffer.Load()

	// Tentative claim. A standalone sequentially-consistent fence before
	// the top load would normally follow a plain relaxed store here;
	// atomix exposes no bare fence, so the claim is expressed as a
	// fetch-and-add instead. The RMW instruction this compiles to is a
	// full barrier on every architecture atomix targets, giving the
	// same StoreLoad ordering the fence would.
	d.bottom.AddAcqRel(-1)
	top := d.top.LoadRelaxed()

	size := bottom - top
	if size <= 0 {
		// Empty: reverse the decrement, nothing to return.
		d.bottom.StoreRelaxed(bottom)
		return zero, ErrWouldBlock
	}

	if size == 1 {
		// Exactly one item: race any concurrent stealer for it.
		item := buf.get(top)
		won := d.top.CompareAndSwapAcqRel(top, top+1)
		d.bottom.StoreRelaxed(bottom)
		if !won {
			return zero, ErrWouldBlock
		}
		return item, nil
	}

	item := buf.get(bottom - 1)
	if size <= buf.cap()/3 && size > 1<<logInitialSize {
		if d.unlinked == nil {
			d.unlinked = buf
		}
		buf = buf.resize(bottom, top, -1)
		d.buffer.Store(buf)
		d.reclaim(buf)
	}
	return item, nil
}

// steal is the any-thread read path. The item is read before the CAS
// on top: the CAS is the linearization point that both claims the slot
// and confirms the read was valid, per the Chase–Lev discipline.
func (d *core[T]) steal() (T, error) {
	var zero T

	top := d.top.LoadAcquire()
	bottom := d.bottom.LoadAcquire()
	if bottom-top <= 0 {
		return zero, ErrWouldBlock
	}

	// buffer.Load is a sync/atomic operation; the Go memory model
	// defines sync/atomic operations as sequentially consistent, which
	// satisfies the consume-or-acquire requirement a C++ port of this
	// algorithm would need a separate fence for.
	buf := d.buffer.Load()
	item := buf.get(top)
	if !d.top.CompareAndSwapAcqRel(top, top+1) {
		return zero, ErrWouldBlock
	}
	return item, nil
}

// reclaim frees every unlinked Segment whose id is strictly less than
// the minimum id any not-idle stealer might still be reading from.
// Invoked only by the worker, only adjacent to a resize; it
// never runs from a background thread.
func (d *core[T]) reclaim(current *segment[T]) {
	minID := current.id

	for rec := d.reclaimer.headRecord(); rec != nil; rec = rec.next {
		if rec.wasIdle.LoadAcquire() {
			continue
		}
		if id := rec.idLastUsed.LoadRelaxed(); id < minID {
			minID = id
		}
	}

	for d.unlinked != nil && d.unlinked.id < minID {
		d.unlinked = d.unlinked.next
	}
}

// len returns an advisory, racy occupancy estimate. See Worker.Len.
func (d *core[T]) len() int {
	bottom := d.bottom.LoadRelaxed()
	top := d.top.LoadRelaxed()
	if bottom < top {
		return 0
	}
	return int(bottom - top)
}

// New constructs a Deque and returns its paired Worker and Stealer
// handles. The Worker is the sole owner of the push/pop end; Stealer
// may be cloned freely to spawn additional stealer threads, each clone
// registering its own epoch record with the Deque's reclaimer.
func New[T any]() (*Worker[T], *Stealer[T]) {
	d := newCore[T]()
	return &Worker[T]{d: d}, newStealer(d)
}
