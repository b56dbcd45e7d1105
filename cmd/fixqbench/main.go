// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command fixqbench measures fixq queue throughput for each guard strategy.
//
// Usage:
//
//	fixqbench [-duration d] [-iter n] [-cap n] [-producers list] [-json file] [-plot prefix] [-progress]
//
// Every run reports ns/op and throughput on stdout. With -json the session
// is appended to the given file; with -plot a PNG chart is drawn from it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"code.hybscloud.com/fixq"
	"github.com/schollz/progressbar/v3"
)

func main() {
	duration := flag.Duration("duration", time.Second, "Duration of each timed run")
	iterations := flag.Int("iter", 3, "Number of iterations per workload and guard")
	capacity := flag.Int("cap", 1024, "Queue capacity in elements")
	producers := flag.String("producers", "1,2,4", "Comma-separated producer counts; each runs with as many consumers")
	jsonFile := flag.String("json", "", "Append the session to this JSON file")
	plotPrefix := flag.String("plot", "", "Write a PNG chart of the session to <prefix>.png")
	progressFlag := flag.Bool("progress", false, "Display a progress bar")
	flag.Parse()

	counts, err := parseCounts(*producers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	if *iterations < 1 || *capacity < 1 {
		fmt.Fprintln(os.Stderr, "Error: -iter and -cap must be positive")
		os.Exit(2)
	}

	workloads := []Workload{{}}
	for _, n := range counts {
		workloads = append(workloads, Workload{Producers: n, Consumers: n})
	}

	total := 0
	for _, w := range workloads {
		total += len(strategiesFor(w)) * *iterations
	}
	var bar *progressbar.ProgressBar
	if *progressFlag {
		bar = progressbar.Default(int64(total), "benchmarking")
	}

	storage := make([]int, *capacity)
	var results []BenchmarkResult
	for _, w := range workloads {
		fmt.Printf("[%s]\n", w.Label())
		for iteration := 1; iteration <= *iterations; iteration++ {
			for _, s := range strategiesFor(w) {
				runtime.GC()
				q := fixq.Build(s.builder(), storage)

				var produced, consumed int64
				var elapsed time.Duration
				if w.Inline() {
					consumed, elapsed = runInline(q, *duration)
					produced = consumed
				} else {
					produced, consumed, elapsed = runTimed(q, w, *duration)
				}
				r := newResult(s.name, w, *capacity, produced, consumed, *duration, elapsed)
				results = append(results, r)

				if bar != nil {
					bar.Add(1)
					continue
				}
				fmt.Printf("  %d/%d %-9s produced=%d consumed=%d %.1f ns/op %.0f ops/s\n",
					iteration, *iterations, s.name, produced, consumed, r.NsPerOp, r.Throughput)
			}
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	session := FullReport{
		SessionTime: time.Now().Format(time.RFC3339),
		SystemInfo:  gatherSystemInfo(),
		Benchmarks:  results,
	}

	if *jsonFile != "" {
		sessions, err := appendReport(*jsonFile, session)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote session %d to %s\n", len(sessions), *jsonFile)
	}

	if *plotPrefix != "" {
		filename, err := savePlot(session, *plotPrefix)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Graph saved to %s\n", filename)
	}
}

var errBadCount = errors.New("fixqbench: producer count must be a positive integer")

// parseCounts parses a comma-separated list of positive integers.
func parseCounts(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var counts []int
	for field := range strings.SplitSeq(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q", errBadCount, field)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
