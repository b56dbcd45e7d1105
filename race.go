// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package fixq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent queue tests: the detector does not see
// the ordering established by the atomix-based SpinLock, so storage accesses
// it serializes are reported as races.
const RaceEnabled = true
