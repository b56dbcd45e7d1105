// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixq

import "code.hybscloud.com/spin"

// State is the position of a [Flag].
type State uint8

const (
	// Unlocked is the zero state of a Flag.
	Unlocked State = iota
	// Locked means some context holds the Flag.
	Locked
)

// String returns "unlocked" or "locked".
func (s State) String() string {
	if s == Locked {
		return "locked"
	}
	return "unlocked"
}

// Flag is an advisory two-state exclusion toggle.
//
// Flag uses plain loads and stores, no atomic read-modify-write. Acquire
// tests the state and then sets it as two separate steps, so two contexts
// running truly in parallel can both observe Unlocked and both proceed.
// Flag is meant for targets without atomic instructions, where the only
// concurrency is cooperative scheduling or interrupt reentrancy, and the
// check-then-set pair cannot be split by a preempting writer. Use [SpinLock]
// everywhere else.
//
// The Acquire loop reads the state with plain loads. It observes a Release
// from another goroutine only because each iteration calls [spin.Wait.Once],
// which keeps the compiler from hoisting the load out of the loop.
//
// The zero value is Unlocked. A Flag must not be copied after first use.
type Flag struct {
	state State
}

// Acquire spins until the flag is Unlocked, then sets it Locked.
//
// There is no timeout and no reentrancy: acquiring a Flag already held by
// the caller never returns.
func (f *Flag) Acquire() {
	sw := spin.Wait{}
	for f.state == Locked {
		sw.Once()
	}
	f.state = Locked
}

// TryAcquire sets the flag Locked if it is Unlocked and reports whether it
// did so. Same non-atomicity caveat as Acquire.
func (f *Flag) TryAcquire() bool {
	if f.state == Locked {
		return false
	}
	f.state = Locked
	return true
}

// Release sets the flag Unlocked regardless of its prior state.
func (f *Flag) Release() {
	f.state = Unlocked
}

// State returns the current state.
func (f *Flag) State() State {
	return f.state
}

// Locked reports whether the flag is held.
func (f *Flag) Locked() bool {
	return f.state == Locked
}
