// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"code.hybscloud.com/fixq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCounts(t *testing.T) {
	counts, err := parseCounts("1, 2,8")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 8}, counts)

	counts, err = parseCounts("  ")
	require.NoError(t, err)
	assert.Empty(t, counts)

	for _, bad := range []string{"0", "-3", "x", "1,,2"} {
		_, err := parseCounts(bad)
		assert.ErrorIs(t, err, errBadCount, "input %q", bad)
	}
}

func TestWorkloadLabels(t *testing.T) {
	assert.Equal(t, "inline", Workload{}.Label())
	assert.Equal(t, "p4c2", Workload{Producers: 4, Consumers: 2}.Label())

	assert.Len(t, strategiesFor(Workload{}), 3)
	parallel := strategiesFor(Workload{Producers: 2, Consumers: 2})
	require.Len(t, parallel, 1)
	assert.Equal(t, "atomic", parallel[0].name)
}

func TestRunInline(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			q := fixq.Build(s.builder(), make([]int, 16))
			moved, elapsed := runInline(q, 20*time.Millisecond)
			assert.Positive(t, moved)
			assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
			assert.True(t, q.IsEmpty())
		})
	}
}

func TestRunTimedDrains(t *testing.T) {
	if fixq.RaceEnabled {
		t.Skip("skip: concurrent run relies on atomix ordering")
	}
	q := fixq.NewQueue(make([]int, 32))
	produced, consumed, elapsed := runTimed(q, Workload{Producers: 2, Consumers: 2}, 50*time.Millisecond)
	assert.Positive(t, produced)
	assert.Equal(t, produced, consumed, "every produced element is consumed")
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.True(t, q.IsEmpty())
}

func TestNewResultRates(t *testing.T) {
	w := Workload{Producers: 1, Consumers: 1}
	r := newResult("atomic", w, 64, 1000, 1000, time.Second, 2*time.Second)
	assert.Equal(t, "p1c1", r.Workload)
	assert.InDelta(t, 2e6, r.NsPerOp, 1e-6)
	assert.InDelta(t, 500, r.Throughput, 1e-6)
	assert.Equal(t, runtime.Version(), r.GoVersion)

	empty := newResult("atomic", w, 64, 0, 0, time.Second, time.Second)
	assert.Zero(t, empty.NsPerOp)
	assert.Zero(t, empty.Throughput)
}

func TestGatherSystemInfo(t *testing.T) {
	info := gatherSystemInfo()
	assert.Equal(t, runtime.NumCPU(), info.NumCPU)
	assert.Equal(t, runtime.GOARCH, info.GOARCH)
	assert.Positive(t, info.GOMAXPROCS)
}

func TestAppendReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	sessions, err := loadReports(path)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	first := FullReport{SessionTime: "first", Benchmarks: []BenchmarkResult{{Guard: "atomic", Consumed: 1}}}
	sessions, err = appendReport(path, first)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	second := FullReport{SessionTime: "second"}
	_, err = appendReport(path, second)
	require.NoError(t, err)

	sessions, err = loadReports(path)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "first", sessions[0].SessionTime)
	assert.Equal(t, "atomic", sessions[0].Benchmarks[0].Guard)
	assert.Equal(t, "second", sessions[1].SessionTime)
}

func TestLoadReportsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := loadReports(path)
	assert.Error(t, err)
	_, err = appendReport(path, FullReport{})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	lo, med, hi := summarize([]float64{5, 1, 3})
	assert.Equal(t, []float64{1, 3, 5}, []float64{lo, med, hi})

	lo, med, hi = summarize([]float64{4, 2, 8, 6})
	assert.Equal(t, []float64{2, 5, 8}, []float64{lo, med, hi})

	lo, med, hi = summarize(nil)
	assert.Zero(t, lo+med+hi)
}

func TestSavePlot(t *testing.T) {
	w := Workload{Producers: 2, Consumers: 2}
	fr := FullReport{
		SystemInfo: SystemInfo{GOMAXPROCS: 4},
		Benchmarks: []BenchmarkResult{
			newResult("atomic", Workload{}, 16, 100, 100, time.Second, time.Second),
			newResult("advisory", Workload{}, 16, 100, 100, time.Second, time.Second),
			newResult("atomic", w, 16, 50, 50, time.Second, time.Second),
			newResult("atomic", w, 16, 80, 80, time.Second, time.Second),
		},
	}

	prefix := filepath.Join(t.TempDir(), "chart")
	filename, err := savePlot(fr, prefix)
	require.NoError(t, err)
	assert.Equal(t, prefix+".png", filename)

	st, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestSavePlotNoData(t *testing.T) {
	_, err := savePlot(FullReport{}, filepath.Join(t.TempDir(), "chart"))
	assert.ErrorIs(t, err, errNoData)
}
