// Package convergence measures how a Monte Carlo estimate approaches the
// reference value as the sample count grows, and renders the result as a
// PNG chart or an interactive HTML page.
package convergence

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/quadrature-labs/mcint/internal/integrator"
)

// Point is one sweep measurement.
type Point struct {
	N        int
	Estimate float64
	AbsError float64
}

// Series maps a strategy name to its sweep points.
type Series map[string][]Point

// Sweep evaluates integ at each sample count in ns and records the
// estimate and its absolute error against ref. Each evaluation advances
// the integrator's engine, so points are independent draws, not prefixes
// of one long run.
func Sweep(integ integrator.Integrator, h integrator.Func, ref float64, ns []int) []Point {
	points := make([]Point, 0, len(ns))
	for _, n := range ns {
		est := integ.Integrate(h, n)
		points = append(points, Point{N: n, Estimate: est, AbsError: math.Abs(est - ref)})
	}
	return points
}

// Color palette for up to a handful of series.
var lineColors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
}

// sortedNames returns series keys in a stable order so colors and legends
// do not shuffle between runs.
func sortedNames(series Series) []string {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SavePlot writes a log-log absolute-error chart for each series to path.
// Points with zero error are skipped: a log scale cannot place them.
func SavePlot(series Series, path string) error {
	p := plot.New()
	p.Title.Text = "Monte Carlo convergence"
	p.X.Label.Text = "Samples"
	p.Y.Label.Text = "Absolute error"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Tick.Marker = plot.LogTicks{}

	plotted := 0
	for i, name := range sortedNames(series) {
		pts := make(plotter.XYs, 0, len(series[name]))
		for _, pt := range series[name] {
			if pt.AbsError <= 0 {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(pt.N), Y: pt.AbsError})
		}
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line for %s: %w", name, err)
		}
		line.Color = lineColors[i%len(lineColors)]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(name, line)
		plotted++
	}
	if plotted == 0 {
		return fmt.Errorf("no positive-error points to plot")
	}

	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// RenderHTML writes an interactive error-vs-samples line chart. All series
// are plotted against the sample counts of the first series in name order;
// sweeps built from the same ns slice line up exactly.
func RenderHTML(w io.Writer, series Series) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Monte Carlo convergence", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Monte Carlo convergence", Subtitle: "absolute error vs sample count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "samples"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "absolute error"}),
	)

	names := sortedNames(series)
	if len(names) > 0 {
		xs := make([]string, 0, len(series[names[0]]))
		for _, pt := range series[names[0]] {
			xs = append(xs, strconv.Itoa(pt.N))
		}
		line.SetXAxis(xs)
	}

	for _, name := range names {
		data := make([]opts.LineData, 0, len(series[name]))
		for _, pt := range series[name] {
			data = append(data, opts.LineData{Value: pt.AbsError})
		}
		line.AddSeries(name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
