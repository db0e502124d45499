// Command convergence sweeps both integration strategies over increasing
// sample counts and writes the error curves as a PNG chart and, optionally,
// an interactive HTML page.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/quadrature-labs/mcint/internal/convergence"
	"github.com/quadrature-labs/mcint/internal/integrator"
	"github.com/quadrature-labs/mcint/internal/monitoring"
	"github.com/quadrature-labs/mcint/internal/proposal"
)

var (
	seed     = flag.Int64("seed", 1, "Seed for the random engines")
	minN     = flag.Int("min-n", 1<<4, "Smallest sample count in the sweep")
	maxN     = flag.Int("max-n", 1<<20, "Largest sample count in the sweep")
	pngFile  = flag.String("png", "convergence.png", "PNG output path (empty to skip)")
	htmlFile = flag.String("html", "", "HTML output path (empty to skip)")
)

func main() {
	flag.Parse()

	if *minN <= 0 || *maxN < *minN {
		log.Fatal("Sample range must satisfy 0 < min-n <= max-n")
	}

	h := func(x float64) float64 { return 4 * math.Sqrt(1-x*x) }

	var ns []int
	for n := *minN; n <= *maxN; n <<= 1 {
		ns = append(ns, n)
	}

	ramp := proposal.LinearRamp(rand.New(rand.NewSource(*seed + 1)))
	series := convergence.Series{
		"crude":      convergence.Sweep(integrator.NewCrudeSeeded(*seed), h, math.Pi, ns),
		"importance": convergence.Sweep(integrator.NewImportance(ramp.PDF, ramp.Rand), h, math.Pi, ns),
	}

	if *pngFile != "" {
		if err := convergence.SavePlot(series, *pngFile); err != nil {
			log.Fatalf("Failed to write %s: %v", *pngFile, err)
		}
		monitoring.Logf("Wrote %s", *pngFile)
	}

	if *htmlFile != "" {
		f, err := os.Create(*htmlFile)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *htmlFile, err)
		}
		if err := convergence.RenderHTML(f, series); err != nil {
			f.Close()
			log.Fatalf("Failed to render %s: %v", *htmlFile, err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close %s: %v", *htmlFile, err)
		}
		monitoring.Logf("Wrote %s", *htmlFile)
	}
}
