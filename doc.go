// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixq provides a fixed-capacity queue over caller-supplied storage.
//
// A [Queue] borrows a slice for its whole lifetime and never allocates,
// grows, or reallocates it. Elements occupy positions [0, Len()) of the
// storage; everything at or beyond Len() is stale and never read. The queue
// supports both ends plus indexed access:
//
//   - Push / Pop: append and remove at the back
//   - Unshift / Shift: insert and remove at the front
//   - Insert / Remove / Replace / Peek: positional access
//   - PushAll / Clear / MapInPlace: bulk operations
//   - All / Values / Pointers: forward iteration
//
// # Quick Start
//
// Storage can be a package-level array, so the queue itself lives in static
// memory:
//
//	var (
//	    slots [64]Event
//	    rx    fixq.Queue[Event]
//	)
//
//	func init() {
//	    rx.Init(slots[:], fixq.Options{})
//	}
//
// Or a slice allocated once by the caller:
//
//	q := fixq.NewQueue(make([]Event, 64))
//
// Builder API selects the guard strategy and overflow policy:
//
//	q := fixq.Build(fixq.New(), storage)                // atomic guard, ErrNoSpace on full
//	q := fixq.Build(fixq.New().Advisory(), storage)     // Flag guard
//	q := fixq.Build(fixq.New().Exclusive(), storage)    // no guard
//	q := fixq.Build(fixq.New().DropOnFull(), storage)   // drop writes when full
//
// # Basic Usage
//
//	var slots [16]uint32
//	q := fixq.NewQueue(slots[:])
//
//	q.Push(1)
//	q.Push(2)
//	q.Unshift(0)        // [0 1 2]
//
//	v, ok := q.Shift()  // 0, true
//	v, ok = q.Pop()     // 2, true
//
//	if err := q.Push(3); fixq.IsNoSpace(err) {
//	    // Storage exhausted - queue unchanged
//	}
//
// # Guard Strategies
//
// Every mutating operation runs inside one exclusion region: the guard is
// acquired, length and elements are updated, and the guard is released.
// Capacity and index checks happen inside the region, so they cannot go
// stale between check and write.
//
//	GuardAtomic    - SpinLock (atomix CAS + spin.Wait); safe across goroutines
//	GuardAdvisory  - Flag; plain loads and stores, no hardware atomicity
//	GuardExclusive - no lock; caller guarantees exclusive access
//
// The advisory [Flag] mirrors the lock found on small embedded targets:
// it prevents cooperative reentrancy, for example a handler calling back
// into a queue it is already mutating, but two goroutines running in
// parallel may both observe Unlocked and proceed. Use GuardAtomic whenever
// more than one goroutine mutates the queue.
//
// Read-only accessors (Len, Cap, Available, IsEmpty, IsFull, Peek, Slice)
// and iteration do not take the guard. Under concurrent mutation their
// results may be stale by the time they are used.
//
// # Overflow Policy
//
// By default a write that does not fit returns [ErrNoSpace] and leaves the
// queue unchanged. With DropOnFull the element is silently discarded and
// the write returns nil:
//
//	q := fixq.Build(fixq.New().DropOnFull(), make([]Sample, 8))
//	q.Push(s) // never fails; excess samples are dropped
//
// PushAll is all-or-nothing under the default policy: if the batch does
// not fit, nothing is appended. Under DropOnFull the prefix that fits is
// appended and the rest is dropped.
//
// # FIFO Interface
//
// [Queue] implements [FIFO] so it drops into code written against
// non-blocking queues:
//
//	var stage fixq.FIFO[Job] = fixq.NewQueue(make([]Job, 256))
//
//	backoff := iox.Backoff{}
//	for stage.Enqueue(&job) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
//	job, err := stage.Dequeue()
//	if fixq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// Enqueue always reports a full queue with [ErrNoSpace], regardless of the
// overflow policy, so producers can back off.
//
// # Error Handling
//
// [ErrNoSpace] wraps [ErrWouldBlock], which is sourced from
// [code.hybscloud.com/iox]. Both are control flow signals:
//
//	fixq.IsNoSpace(err)     // true if storage is exhausted
//	fixq.IsWouldBlock(err)  // true if queue full or empty
//	fixq.IsSemantic(err)    // true if control flow signal
//	fixq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Out-of-range indices are programming errors and panic. The guard is
// released before the panic propagates.
//
// # Race Detection
//
// The SpinLock orders storage accesses through atomix acquire-release
// operations, which Go's race detector does not observe. Concurrent tests
// skip when [RaceEnabled] is set, and concurrent examples are excluded via
// //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package fixq
