// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixq

// Locker is the exclusion strategy a [Queue] wraps around its mutating
// operations.
//
// Implementations spin rather than park: there is no scheduler to hand
// control to. Acquire is not reentrant; calling it while the same context
// already holds the lock spins forever.
//
// Implemented by [*SpinLock] (hardware atomic) and [*Flag] (advisory).
type Locker interface {
	// Acquire spins until the lock is taken by the caller.
	Acquire()

	// TryAcquire makes a single attempt and reports whether it succeeded.
	TryAcquire() bool

	// Release frees the lock unconditionally.
	Release()
}

// FIFO is the combined producer-consumer interface.
//
// [Queue] implements FIFO so it can stand in for other bounded queues in
// code written against Enqueue/Dequeue. Enqueue appends at the back,
// Dequeue takes from the front.
//
// Example:
//
//	var slots [64]Event
//	var q fixq.FIFO[Event] = fixq.NewQueue(slots[:])
//
//	ev := Event{ID: 1}
//	if err := q.Enqueue(&ev); err != nil {
//	    // Handle full queue
//	}
//
//	ev, err := q.Dequeue()
//	if err == nil {
//	    handle(ev)
//	}
type FIFO[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer and copied into the backing storage, so
// the original can be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue copies an element to the back of the queue.
	// Returns nil on success, ErrNoSpace if the storage is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and returns the front element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}
