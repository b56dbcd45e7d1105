// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"strconv"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/fixq"
	"code.hybscloud.com/iox"
)

// strategy pairs a guard name with the builder that produces it.
type strategy struct {
	name    string
	builder func() *fixq.Builder
}

var strategies = []strategy{
	{fixq.GuardAtomic.String(), fixq.New},
	{fixq.GuardAdvisory.String(), func() *fixq.Builder { return fixq.New().Advisory() }},
	{fixq.GuardExclusive.String(), func() *fixq.Builder { return fixq.New().Exclusive() }},
}

// Workload describes one run shape. Producers == 0 selects the inline
// workload: a single goroutine alternating Push and Shift.
type Workload struct {
	Producers int
	Consumers int
}

// Inline reports whether w runs on the calling goroutine only.
func (w Workload) Inline() bool { return w.Producers == 0 }

// Label names the workload on reports and plot axes.
func (w Workload) Label() string {
	if w.Inline() {
		return "inline"
	}
	return "p" + strconv.Itoa(w.Producers) + "c" + strconv.Itoa(w.Consumers)
}

// strategiesFor returns the guard strategies safe for w. Only the atomic
// guard serializes parallel goroutines.
func strategiesFor(w Workload) []strategy {
	if w.Inline() {
		return strategies
	}
	return strategies[:1]
}

// runInline pushes and shifts batches of half the capacity on the calling
// goroutine until d elapses. Returns the number of elements moved through.
func runInline(q *fixq.Queue[int], d time.Duration) (moved int64, elapsed time.Duration) {
	batch := max(q.Cap()/2, 1)
	start := time.Now()
	deadline := start.Add(d)
	for i := 0; time.Now().Before(deadline); i++ {
		for k := range batch {
			if q.Push(i*batch+k) != nil {
				break
			}
		}
		for {
			if _, ok := q.Shift(); !ok {
				break
			}
			moved++
		}
	}
	return moved, time.Since(start)
}

// runTimed spawns producers and consumers over q for duration d. Producers
// stop when the context expires; consumers then drain whatever remains.
// Returns the produced and consumed counts and the actual elapsed time.
func runTimed(q *fixq.Queue[int], w Workload, d time.Duration) (produced, consumed int64, elapsed time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	var (
		nProduced     atomix.Int64
		nConsumed     atomix.Int64
		stop          atomix.Bool
		producersDone atomix.Bool
		msgIndex      atomix.Int64
	)

	go func() {
		<-ctx.Done()
		stop.Store(true)
	}()

	start := time.Now()

	var prodWg sync.WaitGroup
	for range w.Producers {
		prodWg.Add(1)
		go func() {
			defer prodWg.Done()
			backoff := iox.Backoff{}
			for !stop.Load() {
				v := int(msgIndex.Add(1) - 1)
				for err := q.Push(v); err != nil; err = q.Push(v) {
					if !fixq.IsNoSpace(err) || stop.Load() {
						return
					}
					backoff.Wait()
				}
				backoff.Reset()
				nProduced.Add(1)
			}
		}()
	}

	var consWg sync.WaitGroup
	for range w.Consumers {
		consWg.Add(1)
		go func() {
			defer consWg.Done()
			backoff := iox.Backoff{}
			for {
				// Sampled before Shift: an empty queue after the producers
				// finished stays empty.
				done := producersDone.Load()
				if _, ok := q.Shift(); ok {
					nConsumed.Add(1)
					backoff.Reset()
					continue
				}
				if done {
					return
				}
				backoff.Wait()
			}
		}()
	}

	prodWg.Wait()
	producersDone.Store(true)
	consWg.Wait()

	return nProduced.Load(), nConsumed.Load(), time.Since(start)
}
