// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixq

import "iter"

// Queue is a fixed-capacity ordered sequence over caller-supplied storage.
//
// Valid elements occupy storage[:Len()] in logical order: index 0 is the
// front, Len()-1 the back. Slots past Len() are unused capacity and may hold
// stale values; the queue does not clear them. Element values are copied in
// and out.
//
// Every mutating operation runs under the queue's guard (see
// [GuardStrategy]). Accessors such as Len, Peek and Slice do not take the
// guard and observe an unsynchronized snapshot.
//
// Precondition violations (an index outside the permitted range) panic.
// Capacity exhaustion returns [ErrNoSpace], or is silently dropped under
// [OverflowDrop]. Removing from an empty queue is not an error.
//
// The zero Queue is unusable: bind it with Init before any mutating call.
// A Queue must not be copied after Init.
type Queue[T any] struct {
	storage []T
	length  int
	guard   Locker
	opts    Options

	atomicGuard SpinLock
	flagGuard   Flag
}

// NewQueue binds a new queue to storage with the default options: a
// [SpinLock] guard and [OverflowError].
//
// The queue borrows storage for its whole lifetime and never resizes it.
// Panics if storage is nil.
func NewQueue[T any](storage []T) *Queue[T] {
	return new(Queue[T]).Init(storage, Options{})
}

// Init binds q to storage with length zero and returns q.
//
// Init allows a queue to live in a package-level variable without any heap
// allocation:
//
//	var (
//	    slots [32]uint32
//	    rx    fixq.Queue[uint32]
//	)
//
//	func init() { rx.Init(slots[:], fixq.New().Advisory().Options()) }
//
// Prior contents of storage are ignored. Panics if storage is nil.
func (q *Queue[T]) Init(storage []T, opts Options) *Queue[T] {
	if storage == nil {
		panic("fixq: nil storage")
	}
	q.storage = storage
	q.length = 0
	q.opts = opts
	switch opts.guard {
	case GuardAdvisory:
		q.flagGuard.Release()
		q.guard = &q.flagGuard
	case GuardExclusive:
		q.guard = nopLocker{}
	default:
		q.atomicGuard.Release()
		q.guard = &q.atomicGuard
	}
	return q
}

// Options returns the options the queue was bound with.
func (q *Queue[T]) Options() Options {
	return q.opts
}

// Cap returns the number of slots in the backing storage.
func (q *Queue[T]) Cap() int {
	return len(q.storage)
}

// Len returns the number of valid elements.
func (q *Queue[T]) Len() int {
	return q.length
}

// Available returns the number of free slots.
func (q *Queue[T]) Available() int {
	return len(q.storage) - q.length
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.length == 0
}

// IsFull reports whether every slot is occupied.
func (q *Queue[T]) IsFull() bool {
	return q.length == len(q.storage)
}

// Slice returns the valid elements as a slice aliasing the storage.
//
// Elements may be modified in place through the returned slice. Its
// capacity is clipped to Len, so appending to it never writes into the
// queue's unused slots. The view is invalidated by any structural mutation.
func (q *Queue[T]) Slice() []T {
	return q.storage[:q.length:q.length]
}

// Peek returns a copy of the element at index.
//
// Panics unless 0 <= index < Len(). The slot at index Len() is unused
// capacity and is rejected rather than read.
func (q *Queue[T]) Peek(index int) T {
	if uint(index) >= uint(q.length) {
		panic("fixq: peek index out of range")
	}
	return q.storage[index]
}

// Push appends value at the back.
//
// Returns ErrNoSpace if the queue is full, or nil without writing under
// [OverflowDrop].
func (q *Queue[T]) Push(value T) error {
	return q.pushBack(value, q.opts.overflow)
}

// Pop removes and returns the back element.
// Returns (zero-value, false) if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	q.acquire()
	if q.length == 0 {
		q.guard.Release()
		var zero T
		return zero, false
	}
	q.length--
	elem := q.storage[q.length]
	q.guard.Release()
	return elem, true
}

// Unshift inserts value at the front, moving every element one slot back.
//
// Returns ErrNoSpace if the queue is full, or nil without writing under
// [OverflowDrop].
func (q *Queue[T]) Unshift(value T) error {
	q.acquire()
	if q.length == len(q.storage) {
		q.guard.Release()
		return overflowError(q.opts.overflow)
	}
	// copy moves overlapping ranges back to front.
	copy(q.storage[1:q.length+1], q.storage[:q.length])
	q.storage[0] = value
	q.length++
	q.guard.Release()
	return nil
}

// Shift removes and returns the front element, moving the rest one slot
// forward.
// Returns (zero-value, false) if the queue is empty.
func (q *Queue[T]) Shift() (T, bool) {
	q.acquire()
	if q.length == 0 {
		q.guard.Release()
		var zero T
		return zero, false
	}
	elem := q.storage[0]
	copy(q.storage, q.storage[1:q.length])
	q.length--
	q.guard.Release()
	return elem, true
}

// Insert places elem at index, moving elements at index and after one slot
// back. Insert at Len() appends.
//
// Panics unless 0 <= index <= Len(). Returns ErrNoSpace if the queue is
// full, or nil without writing under [OverflowDrop].
func (q *Queue[T]) Insert(index int, elem T) error {
	q.acquire()
	if uint(index) > uint(q.length) {
		q.guard.Release()
		panic("fixq: insert index out of range")
	}
	if q.length == len(q.storage) {
		q.guard.Release()
		return overflowError(q.opts.overflow)
	}
	copy(q.storage[index+1:q.length+1], q.storage[index:q.length])
	q.storage[index] = elem
	q.length++
	q.guard.Release()
	return nil
}

// Remove deletes and returns the element at index, moving later elements
// one slot forward.
//
// Panics unless 0 <= index < Len().
func (q *Queue[T]) Remove(index int) T {
	q.acquire()
	if uint(index) >= uint(q.length) {
		q.guard.Release()
		panic("fixq: remove index out of range")
	}
	elem := q.storage[index]
	copy(q.storage[index:], q.storage[index+1:q.length])
	q.length--
	q.guard.Release()
	return elem
}

// Replace overwrites the element at index and returns the previous value.
//
// Panics unless 0 <= index < Len().
func (q *Queue[T]) Replace(index int, elem T) T {
	q.acquire()
	if uint(index) >= uint(q.length) {
		q.guard.Release()
		panic("fixq: replace index out of range")
	}
	old := q.storage[index]
	q.storage[index] = elem
	q.guard.Release()
	return old
}

// PushAll appends items at the back, in order, under a single guard
// acquisition.
//
// Capacity is checked before anything is written. If items do not all fit,
// PushAll returns ErrNoSpace and the queue is unchanged. Under
// [OverflowDrop] the leading items that fit are appended and the rest are
// dropped.
func (q *Queue[T]) PushAll(items ...T) error {
	q.acquire()
	n := len(items)
	if free := len(q.storage) - q.length; n > free {
		if q.opts.overflow != OverflowDrop {
			q.guard.Release()
			return ErrNoSpace
		}
		n = free
	}
	copy(q.storage[q.length:], items[:n])
	q.length += n
	q.guard.Release()
	return nil
}

// Clear empties the queue. Slot contents are left as they are.
func (q *Queue[T]) Clear() {
	q.acquire()
	q.length = 0
	q.guard.Release()
}

// MapInPlace calls f on each element from front to back, letting f modify
// the element through the pointer.
//
// The guard is held for the whole pass; f must not call mutating methods
// of the same queue.
func (q *Queue[T]) MapInPlace(f func(elem *T)) {
	q.acquire()
	defer q.guard.Release()
	for i := range q.length {
		f(&q.storage[i])
	}
}

// All returns an iterator over index-value pairs from front to back.
//
// The sequence reads the queue each time it is ranged over, so it can be
// reused. It must not be ranged over concurrently with a structural
// mutation.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range q.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over elements from front to back.
// Same reuse and concurrency rules as All.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range q.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers returns an iterator over index-pointer pairs from front to back,
// for modifying elements in place.
// Same reuse and concurrency rules as All.
func (q *Queue[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		s := q.Slice()
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// Enqueue copies *elem to the back of the queue.
//
// Returns ErrNoSpace if the queue is full, whatever the overflow policy:
// FIFO producers rely on backpressure.
func (q *Queue[T]) Enqueue(elem *T) error {
	return q.pushBack(*elem, OverflowError)
}

// Dequeue removes and returns the front element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	elem, ok := q.Shift()
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

func (q *Queue[T]) pushBack(value T, policy OverflowPolicy) error {
	q.acquire()
	if q.length == len(q.storage) {
		q.guard.Release()
		return overflowError(policy)
	}
	q.storage[q.length] = value
	q.length++
	q.guard.Release()
	return nil
}

// acquire takes the guard. Panics if q was never bound to storage.
func (q *Queue[T]) acquire() {
	if q.guard == nil {
		panic("fixq: queue not initialized")
	}
	q.guard.Acquire()
}

func overflowError(policy OverflowPolicy) error {
	if policy == OverflowDrop {
		return nil
	}
	return ErrNoSpace
}
