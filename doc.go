// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package deque provides a concurrent work-stealing deque: a
// single-owner, multiple-stealer double-ended queue for task-parallel
// runtimes.
//
// One worker goroutine pushes and pops at the "bottom" end; any number
// of stealer goroutines concurrently remove items from the "top" end.
// Pushing and popping are wait-free on the common (no-resize) path;
// stealing is lock-free. The backing storage grows and shrinks under
// contention without ever blocking a stealer, and detached storage is
// reclaimed once no stealer can still observe it.
//
// # Quick Start
//
//	worker, stealer := deque.New[Task]()
//
//	worker.Push(task)
//	t, err := worker.Pop()
//
//	// Spawn a stealer goroutine by cloning the stealer handle.
//	go func(s *deque.Stealer[Task]) {
//	    t, err := s.Steal()
//	    if err == nil {
//	        run(t)
//	    }
//	}(stealer.Clone())
//
// # Basic Usage
//
// New returns a Worker and a Stealer sharing one Deque. The Worker end
// is single-owner: exactly one goroutine should hold it and call Push
// or Pop. The Stealer end is clonable: call Clone once per goroutine
// that will steal, and hand each clone to its own goroutine. Cloning
// registers a fresh epoch record with the deque's reclaimer; passing
// an existing *Stealer[T] to another goroutine without cloning it does
// not, and the two goroutines would then be writing the same epoch
// record concurrently — don't do that.
//
// # Worker Pool
//
//	worker, stealer := deque.New[Job]()
//
//	for range numStealers {
//	    go func(s *deque.Stealer[Job]) {
//	        backoff := iox.Backoff{}
//	        for {
//	            job, err := s.Steal()
//	            if err != nil {
//	                backoff.Wait()
//	                continue
//	            }
//	            backoff.Reset()
//	            job.Run()
//	        }
//	    }(stealer.Clone())
//	}
//
//	// The owning goroutine pushes and drains its own backlog first,
//	// letting stealers pick up whatever it doesn't get to.
//	for _, job := range jobs {
//	    worker.Push(job)
//	}
//	for {
//	    job, err := worker.Pop()
//	    if err != nil {
//	        break
//	    }
//	    job.Run()
//	}
//
// # Error Handling
//
// Pop and Steal return [ErrWouldBlock] when there is nothing to
// return — the deque is empty, or the caller lost a race against
// another stealer or the worker's own pop of the last item. This is a
// control-flow signal, not a failure; the caller decides whether and
// how to retry.
//
//	backoff := iox.Backoff{}
//	for {
//	    job, err := stealer.Steal()
//	    if err == nil {
//	        backoff.Reset()
//	        run(job)
//	        continue
//	    }
//	    backoff.Wait()
//	}
//
// For semantic error classification:
//
//	deque.IsWouldBlock(err)  // true if nothing was available
//	deque.IsSemantic(err)    // true if err is a control-flow signal
//	deque.IsNonFailure(err)  // true for nil or ErrWouldBlock
//
// # Capacity
//
// There is no capacity to configure. The deque starts at 16 slots and
// grows by doubling whenever the worker's push would otherwise
// overflow the current segment, and shrinks by halving once occupancy
// falls to a third of the current segment's capacity — never below the
// initial 16. These are fixed design constants, not tunables: unlike
// [code.hybscloud.com/lfq]'s bounded
// queues, which must be sized up front because they cannot resize
// under contention, this deque's whole reason for existing is that it
// can.
//
// # Thread Safety
//
// Exactly one goroutine may hold and call methods on the Worker handle
// at a time. Any number of goroutines may each hold their own cloned
// Stealer handle and call Steal concurrently, including the same
// goroutine that owns the Worker (via its own stealer clone) — but two
// goroutines must never share one *Stealer[T] value, since Steal
// writes to that Stealer's epoch record.
//
// # Race Detection
//
// As with [code.hybscloud.com/lfq], Go's race detector cannot observe
// the happens-before edges this deque's atomic memory orderings
// establish between separate variables (the bottom/top/buffer triple).
// It will not report a *data* race on the item payloads — those only
// ever move through atomically-published Segments — but some of the
// index choreography can trip false positives under -race on
// weakly-ordered builds; see the package's stress tests for what is
// exercised with and without the detector.
package deque
