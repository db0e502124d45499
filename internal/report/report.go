// Package report runs integration strategies side by side and renders the
// comparison against a known reference value.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/quadrature-labs/mcint/internal/integrator"
)

// Entry names a strategy to include in a comparison run.
type Entry struct {
	Name       string
	Integrator integrator.Integrator
}

// Row is one strategy's result against the reference value.
type Row struct {
	Method   string
	Estimate float64
	AbsError float64
}

// Run evaluates every entry once with the same sample count and reports
// each estimate with its absolute error against ref. Non-finite estimates
// are reported as-is.
func Run(h integrator.Func, ref float64, n int, entries []Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		est := e.Integrator.Integrate(h, n)
		rows = append(rows, Row{
			Method:   e.Name,
			Estimate: est,
			AbsError: math.Abs(est - ref),
		})
	}
	return rows
}

// WriteTable renders rows in the fixed-width comparison layout: a 15-column
// method field and a 20-column estimate field separated by pipes, under a
// rule of equals signs.
func WriteTable(w io.Writer, rows []Row) {
	fmt.Fprintf(w, "%-15s|%-20s|%s\n", "Method", "Estimate", "Error")
	fmt.Fprintln(w, strings.Repeat("=", 53))
	for _, r := range rows {
		fmt.Fprintf(w, "%-15s|%-20v|%v\n", r.Method, r.Estimate, r.AbsError)
	}
}

// Spread is a replication study: it builds a fresh strategy instance for
// each of rounds distinct seeds, integrates h with n draws every time, and
// returns the mean and sample variance of the estimates. Comparing spreads
// across strategies shows which one buys more accuracy per draw.
func Spread(mk func(seed int64) integrator.Integrator, h integrator.Func, n, rounds int) (mean, variance float64) {
	estimates := make([]float64, rounds)
	for i := range estimates {
		estimates[i] = mk(int64(i + 1)).Integrate(h, n)
	}
	return stat.MeanVariance(estimates, nil)
}
