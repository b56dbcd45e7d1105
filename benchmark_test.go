// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixq_test

import (
	"slices"
	"strconv"
	"testing"

	"code.hybscloud.com/fixq"
	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// =============================================================================
// Single-Goroutine Operation Cost per Guard Strategy
// =============================================================================

func BenchmarkPushPop(b *testing.B) {
	for s := range slices.Values(strategies) {
		b.Run(s.name, func(b *testing.B) {
			q := fixq.Build(s.builder(), make([]int, 1024))
			b.ResetTimer()
			for i := range b.N {
				q.Push(i)
				q.Pop()
			}
		})
	}
}

func BenchmarkPushShift(b *testing.B) {
	for _, depth := range []int{1, 16, 256} {
		for s := range slices.Values(strategies) {
			b.Run(s.name+"/depth="+strconv.Itoa(depth), func(b *testing.B) {
				q := fixq.Build(s.builder(), make([]int, 1024))
				for i := range depth - 1 {
					q.Push(i)
				}
				b.ResetTimer()
				for i := range b.N {
					q.Push(i)
					q.Shift()
				}
			})
		}
	}
}

func BenchmarkUnshiftPop(b *testing.B) {
	q := fixq.NewQueue(make([]int, 1024))
	for i := range 15 {
		q.Push(i)
	}
	b.ResetTimer()
	for i := range b.N {
		q.Unshift(i)
		q.Pop()
	}
}

func BenchmarkInsertRemoveMiddle(b *testing.B) {
	q := fixq.NewQueue(make([]int, 1024))
	for i := range 64 {
		q.Push(i)
	}
	b.ResetTimer()
	for i := range b.N {
		q.Insert(32, i)
		q.Remove(32)
	}
}

func BenchmarkPushAllClear(b *testing.B) {
	q := fixq.NewQueue(make([]int, 64))
	batch := make([]int, 64)
	b.ResetTimer()
	for range b.N {
		q.PushAll(batch...)
		q.Clear()
	}
}

// =============================================================================
// Guards
// =============================================================================

func BenchmarkFlagAcquireRelease(b *testing.B) {
	var f fixq.Flag
	for range b.N {
		f.Acquire()
		f.Release()
	}
}

func BenchmarkSpinLockAcquireRelease(b *testing.B) {
	var l fixq.SpinLock
	for range b.N {
		l.Acquire()
		l.Release()
	}
}

func BenchmarkSpinLockContended(b *testing.B) {
	if fixq.RaceEnabled {
		b.Skip("skip: atomix operations are invisible to the race detector")
	}
	var l fixq.SpinLock
	var counter int
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Acquire()
			counter++
			l.Release()
		}
	})
	_ = counter
}

// =============================================================================
// Comparison: fixq vs go-lock-free-ring (1 shard)
// =============================================================================

func BenchmarkCompareSPSC_Queue(b *testing.B) {
	if fixq.RaceEnabled {
		b.Skip("skip: atomix operations are invisible to the race detector")
	}
	q := fixq.NewQueue(make([]int, 1024))
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				q.Shift()
			}
		}
	}()

	b.ResetTimer()
	for i := range b.N {
		for q.Push(i) != nil {
		}
	}
	b.StopTimer()
	close(done)
	<-consumerDone
}

func BenchmarkCompareSPSC_ShardedRing(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 1)
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	b.ResetTimer()
	for i := range b.N {
		for !r.Write(0, i) {
		}
	}
	b.StopTimer()
	close(done)
	<-consumerDone
}
