// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/regulon/coupling"
	"github.com/katalvlaran/regulon/grid"
	"github.com/katalvlaran/regulon/options"
	"github.com/katalvlaran/regulon/stability"
)

// Artifact names used as Report.Summaries keys.
const (
	ArtifactStrength     = "coupling_strength"
	ArtifactEffectiveDim = "effective_dimensionality"
	ArtifactBoundaries   = "phase_boundaries"
	ArtifactSigma1       = "sigma1"
	ArtifactRSI          = "rsi"
)

// Report collects every artifact of one run.
type Report struct {
	Names        []string     // field order; tensor component i is Names[i]
	Tensor       *grid.Tensor // (ny, nx, P, P)
	Strength     *grid.Field
	EffectiveDim *grid.Field
	Boundaries   *grid.Field
	Sigma1       *grid.Field
	RSI          *grid.Field
	Summaries    map[string]Summary

	// BoundaryLevel is the RegionQuantile percentile of Boundaries and
	// BoundaryRegions the connected areas at or above it, largest first.
	// Both are empty when the boundary map is flat.
	BoundaryLevel   float64
	BoundaryRegions []grid.Region
}

// Scalars returns the scalar artifacts keyed by artifact name.
func (r *Report) Scalars() map[string]*grid.Field {
	return map[string]*grid.Field{
		ArtifactStrength:     r.Strength,
		ArtifactEffectiveDim: r.EffectiveDim,
		ArtifactBoundaries:   r.Boundaries,
		ArtifactSigma1:       r.Sigma1,
		ArtifactRSI:          r.RSI,
	}
}

// Run validates cfg, then computes the coupling branch (tensor, summaries,
// boundaries) and the stability branch concurrently. The first failing
// branch cancels the other.
func Run(ctx context.Context, stack *grid.Stack, cfg Config) (*Report, error) {
	if stack == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	opts := options.New(cfg.Options...)
	start := time.Now()

	rep := &Report{Names: stack.Names()}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tr, err := coupling.ComputeTensorContext(gctx, stack, cfg.Delta, cfg.Resolution, cfg.Options...)
		if err != nil {
			return err
		}
		b, err := coupling.PhaseBoundariesContext(gctx, tr.Tensor, cfg.Resolution, cfg.BoundarySigma, cfg.Options...)
		if err != nil {
			return err
		}
		rep.Tensor, rep.Strength, rep.EffectiveDim, rep.Boundaries = tr.Tensor, tr.Strength, tr.EffectiveDim, b
		return nil
	})
	g.Go(func() error {
		sr, err := stability.ComputeContext(gctx, stack, cfg.Resolution, cfg.Options...)
		if err != nil {
			return err
		}
		rep.Sigma1, rep.RSI = sr.Sigma1, sr.RSI
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	rep.Summaries = make(map[string]Summary, 5)
	for name, f := range rep.Scalars() {
		s, err := Summarize(f)
		if err != nil {
			return nil, fmt.Errorf("Run: %s: %w", name, err)
		}
		rep.Summaries[name] = s
	}

	if err := rep.labelRegions(cfg, opts.Epsilon); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	ny, nx := stack.Shape()
	opts.Logger.Info("analysis complete",
		"grid", fmt.Sprintf("%dx%d", ny, nx),
		"fields", stack.Len(),
		"resolution", cfg.Resolution,
		"delta", cfg.Delta,
		"mean_rsi", rep.Summaries[ArtifactRSI].Mean,
		"mean_effective_dim", rep.Summaries[ArtifactEffectiveDim].Mean,
		"boundary_regions", len(rep.BoundaryRegions),
		"elapsed", time.Since(start),
	)

	return rep, nil
}

// labelRegions groups boundary cells at or above the configured percentile.
func (r *Report) labelRegions(cfg Config, eps float64) error {
	level, err := stats.PercentileNearestRank(r.Boundaries.Data(), cfg.RegionQuantile)
	if err != nil {
		return fmt.Errorf("boundary level: %w", err)
	}
	if level <= eps {
		return nil
	}
	r.BoundaryLevel = level
	r.BoundaryRegions = grid.Regions(r.Boundaries, level, cfg.RegionConn)

	return nil
}
