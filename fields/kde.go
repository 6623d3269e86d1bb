// SPDX-License-Identifier: MIT

package fields

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/regulon/filter"
	"github.com/katalvlaran/regulon/grid"
)

// Transcript is one detected molecule.
type Transcript struct {
	Gene string
	X, Y float64
}

func checkCoords(xs, ys []float64) error {
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return fmt.Errorf("transcript %d (%g,%g): %w", i, xs[i], ys[i], grid.ErrNonFinite)
		}
	}

	return nil
}

// binIndex maps a coordinate onto [0, n-1], truncating toward zero.
func binIndex(v, origin, resolution float64, n int) int {
	t := (v - origin) / resolution
	switch {
	case t <= 0:
		return 0
	case t >= float64(n-1):
		return n - 1
	}

	return int(t)
}

// TranscriptKDE bins transcripts onto layout (coordinates outside the grid
// clip to the border cells) and smooths the counts with a Gaussian of
// bandwidth/resolution pixels. The result is a density per square micron.
func TranscriptKDE(xs, ys []float64, layout Layout, bandwidth float64) (*grid.Field, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("TranscriptKDE: len(xs)=%d len(ys)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if !finite(bandwidth) || bandwidth < 0 {
		return nil, fmt.Errorf("TranscriptKDE(bandwidth=%g): %w", bandwidth, ErrBadBandwidth)
	}
	ny, nx := layout.Shape()
	if ny == 0 || nx == 0 {
		return nil, fmt.Errorf("TranscriptKDE: %w", ErrEmptyLayout)
	}
	if !finite(layout.Resolution) || layout.Resolution <= 0 {
		return nil, fmt.Errorf("TranscriptKDE(resolution=%g): %w", layout.Resolution, ErrBadResolution)
	}
	if err := checkCoords(xs, ys); err != nil {
		return nil, fmt.Errorf("TranscriptKDE: %w", err)
	}

	counts, err := grid.NewField(ny, nx)
	if err != nil {
		return nil, fmt.Errorf("TranscriptKDE: %w", err)
	}
	c := counts.Data()
	for i := range xs {
		ix := binIndex(xs[i], layout.X[0], layout.Resolution, nx)
		iy := binIndex(ys[i], layout.Y[0], layout.Resolution, ny)
		c[iy*nx+ix]++
	}

	smoothed, err := filter.Gaussian(counts, bandwidth/layout.Resolution)
	if err != nil {
		return nil, fmt.Errorf("TranscriptKDE: %w", err)
	}

	return smoothed.Scale(1 / math.Pow(layout.Resolution, 2)), nil
}

// BuildGeneFields computes one KDE per gene, in genes order. Genes with no
// transcripts get an all-zero field. Transcripts of unlisted genes are
// ignored.
func BuildGeneFields(ctx context.Context, transcripts []Transcript, genes []string, layout Layout, bandwidth float64, workers int) (*grid.Stack, error) {
	type coords struct{ xs, ys []float64 }
	byGene := make(map[string]*coords, len(genes))
	for _, g := range genes {
		byGene[g] = &coords{}
	}
	for _, t := range transcripts {
		if c, ok := byGene[t.Gene]; ok {
			c.xs = append(c.xs, t.X)
			c.ys = append(c.ys, t.Y)
		}
	}

	out := make([]*grid.Field, len(genes))
	err := grid.ParallelEach(ctx, len(genes), workers, func(i int) error {
		c := byGene[genes[i]]
		f, err := TranscriptKDE(c.xs, c.ys, layout, bandwidth)
		if err != nil {
			return fmt.Errorf("gene %q: %w", genes[i], err)
		}
		out[i] = f
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("BuildGeneFields: %w", err)
	}

	m := make(map[string]*grid.Field, len(genes))
	for i, g := range genes {
		m[g] = out[i]
	}

	return grid.NewStack(m, genes)
}
