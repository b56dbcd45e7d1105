// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// errNoData reports a session with nothing to plot.
var errNoData = errors.New("fixqbench: no results to plot")

// spread is the min / median / max of the ns/op samples at one x position.
type spread struct {
	x, min, median, max float64
}

// spreadPoints implements plotter.XYer and plotter.YErrorer.
type spreadPoints []spread

func (s spreadPoints) Len() int                { return len(s) }
func (s spreadPoints) XY(i int) (x, y float64) { return s[i].x, s[i].median }
func (s spreadPoints) YError(i int) (low, high float64) {
	return s[i].median - s[i].min, s[i].max - s[i].median
}

// categoryTicks labels integer positions with workload names.
type categoryTicks []string

func (ct categoryTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, label := range ct {
		if pos := float64(i); pos >= min && pos <= max {
			ticks = append(ticks, plot.Tick{Value: pos, Label: label})
		}
	}
	return ticks
}

// summarize returns the minimum, median and maximum of vals. vals is sorted
// in place.
func summarize(vals []float64) (lo, med, hi float64) {
	if len(vals) == 0 {
		return 0, 0, 0
	}
	slices.Sort(vals)
	n := len(vals)
	med = vals[n/2]
	if n%2 == 0 {
		med = 0.5 * (vals[n/2-1] + vals[n/2])
	}
	return vals[0], med, vals[n-1]
}

// buildPlot draws ns/op per guard strategy over the workloads of fr.
func buildPlot(fr FullReport) (*plot.Plot, error) {
	// workload label -> guard -> ns/op samples
	var labels []string
	samples := make(map[string]map[string][]float64)
	for _, b := range fr.Benchmarks {
		if b.Consumed == 0 {
			continue
		}
		if !slices.Contains(labels, b.Workload) {
			labels = append(labels, b.Workload)
		}
		if samples[b.Guard] == nil {
			samples[b.Guard] = make(map[string][]float64)
		}
		samples[b.Guard][b.Workload] = append(samples[b.Guard][b.Workload], b.NsPerOp)
	}
	if len(labels) == 0 {
		return nil, errNoData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("fixq ns/op (min / median / max), GOMAXPROCS=%d", fr.SystemInfo.GOMAXPROCS)
	p.X.Label.Text = "Workload"
	p.Y.Label.Text = "Time per op (ns)"
	p.X.Tick.Marker = categoryTicks(labels)
	p.X.Min = -0.5
	p.X.Max = float64(len(labels)) - 0.5
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	guards := make([]string, 0, len(samples))
	for g := range samples {
		guards = append(guards, g)
	}
	slices.Sort(guards)

	colors := plotutil.SoftColors
	shapes := []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
	}

	for i, g := range guards {
		var pts spreadPoints
		for x, label := range labels {
			vals, ok := samples[g][label]
			if !ok {
				continue
			}
			lo, med, hi := summarize(vals)
			pts = append(pts, spread{x: float64(x), min: lo, median: med, max: hi})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", g, err)
		}
		line.Color = colors[i%len(colors)]

		points, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("scatter %s: %w", g, err)
		}
		points.GlyphStyle.Radius = vg.Points(4)
		points.Color = colors[i%len(colors)]
		points.Shape = shapes[i%len(shapes)]

		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, fmt.Errorf("error bars %s: %w", g, err)
		}
		bars.Color = colors[i%len(colors)]

		p.Add(line, points, bars)
		p.Legend.Add(g, line, points)
	}
	return p, nil
}

// savePlot renders the plot of fr to prefix.png.
func savePlot(fr FullReport, prefix string) (string, error) {
	p, err := buildPlot(fr)
	if err != nil {
		return "", err
	}
	filename := prefix + ".png"
	if err := p.Save(10*vg.Inch, 6*vg.Inch, filename); err != nil {
		return "", fmt.Errorf("save %s: %w", filename, err)
	}
	return filename, nil
}
