// Package regulon analyzes how co-registered spatial activity fields couple
// to one another, where that coupling changes, and how stable each point's
// multi-field response is.
//
// 🚀 What is regulon?
//
//	A pure-Go, allocation-conscious toolkit for per-grid-point tensor analysis
//	of spatial transcriptomics "regulon activity" fields:
//		• Coupling tensor: local covariance of P fields at every grid point
//		• Coupling strength & effective dimensionality of that tensor
//		• Phase boundaries: where the coupling structure changes fastest
//		• Stability: singular values of the per-point P×2 Jacobian (σ1, RSI)
//		• Field construction: transcript KDE, normalization, z-scoring
//
// Layout:
//
//	grid/      - Field, Stack (named, validated fields), Tensor, row-parallel executor
//	filter/    - Gaussian smoothing (reflect border), central-difference gradients
//	linalg/    - small symmetric eigenvalues and P×2 singular values
//	options/   - explicit numeric and execution configuration
//	coupling/  - coupling tensor, summaries, phase boundaries
//	stability/ - Jacobian singular values and the stability index
//	fields/    - transcripts → regulon activity fields
//	builder/   - deterministic synthetic fields for tests and demos
//	analysis/  - concurrent end-to-end run with distribution summaries
//
// Quick start:
//
//	stack, _ := builder.BuildStack(20, 20, nil,
//		builder.Entry("A", builder.RampX(1)),
//		builder.Entry("B", builder.RampY(1)),
//	)
//	rep, _ := analysis.Run(ctx, stack, analysis.DefaultConfig())
//	fmt.Println(rep.Summaries[analysis.ArtifactRSI].Median)
//
//	go get github.com/katalvlaran/regulon
package regulon
