// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// Returned by [Queue.Dequeue] when the queue is empty. [ErrNoSpace] wraps it,
// so a full queue also reports as would-block through [IsWouldBlock].
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrNoSpace indicates the storage has no free slot for the requested write.
//
// Returned by Push, Unshift, Insert, PushAll and Enqueue when the queue is
// configured with [OverflowError] (the default). Nothing has been written
// when ErrNoSpace is returned; the queue is unchanged.
//
// ErrNoSpace is a control flow signal, not a failure. Check
// [Queue.Available] beforehand, or retry after consumers make room:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Push(v)
//	    if err == nil {
//	        break
//	    }
//	    if fixq.IsNoSpace(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err
//	}
var ErrNoSpace = fmt.Errorf("fixq: no space left in storage: %w", iox.ErrWouldBlock)

// IsNoSpace reports whether err is, or wraps, [ErrNoSpace].
func IsNoSpace(err error) bool {
	return errors.Is(err, ErrNoSpace)
}

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock and ErrNoSpace.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
