// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// epochRecord is a per-stealer record the worker consults before
// freeing an unlinked Segment. idLastUsed names the oldest Segment
// generation this stealer's current steal might hold a reference into
// (the Segment published when its previous steal finished); wasIdle
// asserts the stealer is not currently inside steal() and therefore
// cannot hold any Segment reference at all, regardless of what
// idLastUsed says.
//
// idLastUsed and wasIdle are single-writer: only the stealer that owns
// this record ever stores into them. The worker only ever loads them,
// during reclamation.
type epochRecord struct {
	idLastUsed atomix.Int64
	wasIdle    atomix.Bool
	next       *epochRecord
}

// reclaimer owns the singleton intrusive list of epoch records. New
// registrations are lock-free prepends onto the list head; the worker
// is the list's only reader, and reads it read-only during
// reclamation.
type reclaimer struct {
	head atomic.Pointer[epochRecord]
}

// register constructs a fresh epoch record (idLastUsed=0, wasIdle=true
// — a freshly registered stealer is not mid-steal) and prepends it onto
// the list with a CAS loop. The CAS establishes release publication of
// the new record; the worker's traversal during reclamation uses
// acquire loads of wasIdle to observe it safely.
func (r *reclaimer) register() *epochRecord {
	rec := &epochRecord{}
	rec.wasIdle.StoreRelaxed(true)

	for {
		head := r.head.Load()
		rec.next = head
		if r.head.CompareAndSwap(head, rec) {
			return rec
		}
	}
}

// headRecord returns the current list head, for the worker's
// read-only traversal during reclamation.
func (r *reclaimer) headRecord() *epochRecord {
	return r.head.Load()
}
