// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// BenchmarkResult holds the outcome of one timed run.
type BenchmarkResult struct {
	Guard         string  `json:"guard"`
	Workload      string  `json:"workload"`
	NumProducers  int     `json:"num_producers"`
	NumConsumers  int     `json:"num_consumers"`
	Capacity      int     `json:"capacity"`
	Produced      int64   `json:"produced"`
	Consumed      int64   `json:"consumed"`
	TestDuration  string  `json:"test_duration"`
	ActualElapsed string  `json:"actual_elapsed"`
	NsPerOp       float64 `json:"ns_per_op"`
	Throughput    float64 `json:"throughput_ops_sec"` // based on consumed count
	Timestamp     int64   `json:"timestamp"`
	GoVersion     string  `json:"go_version"`
}

// SystemInfo holds host details for a session.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	GOMAXPROCS  int     `json:"gomaxprocs"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	GOOS        string  `json:"go_os"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents one fixqbench session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// newResult derives the rate fields from raw counts.
func newResult(guard string, w Workload, capacity int, produced, consumed int64, d, elapsed time.Duration) BenchmarkResult {
	r := BenchmarkResult{
		Guard:         guard,
		Workload:      w.Label(),
		NumProducers:  w.Producers,
		NumConsumers:  w.Consumers,
		Capacity:      capacity,
		Produced:      produced,
		Consumed:      consumed,
		TestDuration:  d.String(),
		ActualElapsed: elapsed.String(),
		Timestamp:     time.Now().Unix(),
		GoVersion:     runtime.Version(),
	}
	if consumed > 0 {
		r.NsPerOp = float64(elapsed.Nanoseconds()) / float64(consumed)
		r.Throughput = float64(consumed) / elapsed.Seconds()
	}
	return r
}

// gatherSystemInfo collects basic CPU and memory details. Fields that
// gopsutil cannot read on this host stay zero.
func gatherSystemInfo() SystemInfo {
	info := SystemInfo{
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		GOARCH:     runtime.GOARCH,
		GOOS:       runtime.GOOS,
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
		info.CPUSpeedMHz = infos[0].Mhz
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}

// loadReports reads every session stored in path. A missing or empty file
// yields no sessions.
func loadReports(path string) ([]FullReport, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return sessions, nil
}

// appendReport appends fr to the sessions stored in path and returns the
// updated list.
func appendReport(path string, fr FullReport) ([]FullReport, error) {
	sessions, err := loadReports(path)
	if err != nil {
		return nil, err
	}
	sessions = append(sessions, fr)
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sessions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return sessions, nil
}
