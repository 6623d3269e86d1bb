// SPDX-License-Identifier: MIT

// Package fields turns transcript point clouds into co-registered regulon
// activity fields ready for coupling and stability analysis.
//
// Pipeline:
//
//	MakeGrid         → Layout covering the transcript extent plus padding
//	BuildGeneFields  → per-gene density (binned counts, Gaussian KDE)
//	Normalize        → log(f/total·1e4 + 1), library-size style
//	ZScore           → per-field population z-score
//	Regulons         → weighted target combinations, one field per regulon
//
// Every stage returns a validated grid.Stack so names, order and shapes
// travel with the data.
package fields

import "errors"

var (
	// ErrNoTranscripts indicates an empty coordinate set.
	ErrNoTranscripts = errors.New("fields: no transcripts")

	// ErrLengthMismatch indicates x and y coordinate slices of different length.
	ErrLengthMismatch = errors.New("fields: coordinate length mismatch")

	// ErrBadResolution indicates a non-positive or non-finite grid spacing.
	ErrBadResolution = errors.New("fields: resolution must be finite and > 0")

	// ErrBadPadding indicates a negative or non-finite padding.
	ErrBadPadding = errors.New("fields: padding must be finite and ≥ 0")

	// ErrBadBandwidth indicates a negative or non-finite KDE bandwidth.
	ErrBadBandwidth = errors.New("fields: bandwidth must be finite and ≥ 0")

	// ErrEmptyLayout indicates a Layout with no grid columns or rows.
	ErrEmptyLayout = errors.New("fields: empty layout")

	// ErrNoTargets indicates none of a regulon's target genes are present.
	ErrNoTargets = errors.New("fields: no target genes available")

	// ErrBadWeights indicates a weight vector whose length differs from the targets.
	ErrBadWeights = errors.New("fields: weights must match targets")
)
