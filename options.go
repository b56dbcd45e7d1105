// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixq

// GuardStrategy selects how a [Queue] serializes its mutating operations.
type GuardStrategy uint8

const (
	// GuardAtomic wraps mutations in a [SpinLock]. Mutating calls are safe
	// from multiple goroutines. Default.
	GuardAtomic GuardStrategy = iota

	// GuardAdvisory wraps mutations in a [Flag]. For targets without atomic
	// instructions where concurrency means cooperative tasks or interrupt
	// reentrancy; not race-free under parallel execution.
	GuardAdvisory

	// GuardExclusive takes no internal lock. The caller guarantees that
	// nothing else touches the queue during a mutating call.
	GuardExclusive
)

// String returns the strategy name.
func (g GuardStrategy) String() string {
	switch g {
	case GuardAtomic:
		return "atomic"
	case GuardAdvisory:
		return "advisory"
	case GuardExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// OverflowPolicy defines how a full queue reacts to writes.
type OverflowPolicy uint8

const (
	// OverflowError rejects the write with [ErrNoSpace] and leaves the queue
	// unchanged. Default.
	OverflowError OverflowPolicy = iota

	// OverflowDrop silently drops the element being written and returns nil.
	// Best-effort semantics for producers that must never stall.
	OverflowDrop
)

// String returns the policy name.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowError:
		return "error"
	case OverflowDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Options configures queue creation.
type Options struct {
	guard    GuardStrategy
	overflow OverflowPolicy
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	var slots [256]Sample
//
//	// Defaults: atomic spin lock, ErrNoSpace on overflow
//	q := fixq.Build(fixq.New(), slots[:])
//
//	// Interrupt-context queue on a target without atomics, drop on overflow
//	q := fixq.Build(fixq.New().Advisory().DropOnFull(), slots[:])
type Builder struct {
	opts Options
}

// New creates a queue builder with default options.
func New() *Builder {
	return &Builder{}
}

// Advisory selects [GuardAdvisory].
func (b *Builder) Advisory() *Builder {
	b.opts.guard = GuardAdvisory
	return b
}

// Exclusive selects [GuardExclusive].
func (b *Builder) Exclusive() *Builder {
	b.opts.guard = GuardExclusive
	return b
}

// Guard selects an exclusion strategy explicitly.
// Panics on an unknown strategy.
func (b *Builder) Guard(g GuardStrategy) *Builder {
	if g > GuardExclusive {
		panic("fixq: unknown guard strategy")
	}
	b.opts.guard = g
	return b
}

// DropOnFull selects [OverflowDrop].
func (b *Builder) DropOnFull() *Builder {
	b.opts.overflow = OverflowDrop
	return b
}

// Options returns a copy of the accumulated options.
func (b *Builder) Options() Options {
	return b.opts
}

// GuardStrategy returns the configured exclusion strategy.
func (o Options) GuardStrategy() GuardStrategy {
	return o.guard
}

// OverflowPolicy returns the configured overflow policy.
func (o Options) OverflowPolicy() OverflowPolicy {
	return o.overflow
}

// Build binds a new queue to storage using the builder's options.
//
// The queue borrows storage for its whole lifetime and never resizes it;
// the caller must not use storage directly while the queue is in use.
// Panics if storage is nil.
func Build[T any](b *Builder, storage []T) *Queue[T] {
	return new(Queue[T]).Init(storage, b.opts)
}
