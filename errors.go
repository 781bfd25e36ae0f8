// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation found nothing to return.
//
// For Pop: the deque is empty, or a concurrent stealer won the race for
// the last item.
// For Steal: the deque is empty, or the steal's CAS on top lost the race
// against another steal or against the worker's pop.
//
// ErrWouldBlock is a control flow signal, not a failure: every operation's
// "absent" outcome is encoded this way rather than thrown. The caller
// retries at its own discretion, typically with backoff.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// [code.hybscloud.com/lfq].
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := stealer.Steal()
//	    if err == nil {
//	        backoff.Reset()
//	        handle(v)
//	        continue
//	    }
//	    backoff.Wait()
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation found nothing
// to return. Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
