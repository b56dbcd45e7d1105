// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SpinLock is a test-and-test-and-set lock on a single atomic word.
//
// Contenders poll the word with relaxed loads and only attempt the
// compare-and-swap once it reads free. Between attempts they back off with
// [spin.Wait].
//
// The zero value is unlocked. A SpinLock must not be copied after first use.
type SpinLock struct {
	state atomix.Uint64 // 0 = free, 1 = held
}

// Acquire spins until the lock is taken by the caller.
// Not reentrant.
func (l *SpinLock) Acquire() {
	sw := spin.Wait{}
	for {
		if l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

// TryAcquire attempts to take the lock once and reports whether it succeeded.
func (l *SpinLock) TryAcquire() bool {
	return l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1)
}

// Release frees the lock. Releasing a free lock has no effect.
func (l *SpinLock) Release() {
	l.state.StoreRelease(0)
}

// Locked reports whether the lock is currently held.
func (l *SpinLock) Locked() bool {
	return l.state.LoadAcquire() != 0
}

// nopLocker is the guard of queues built with [GuardExclusive]: exclusion is
// the caller's responsibility, so there is nothing to take.
type nopLocker struct{}

func (nopLocker) Acquire()         {}
func (nopLocker) TryAcquire() bool { return true }
func (nopLocker) Release()         {}
