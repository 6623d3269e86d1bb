// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regulon/grid"
)

// Truncate is the kernel half-width in standard deviations.
const Truncate = 4.0

// Kernel1D returns the normalized Gaussian weights for sigma, of length
// 2*radius+1 with radius = int(Truncate*sigma + 0.5).
func Kernel1D(sigma float64) []float64 {
	radius := int(Truncate*sigma + 0.5)
	k := make([]float64, 2*radius+1)
	inv := -0.5 / (sigma * sigma)
	sum := 0.0
	for i := range k {
		x := float64(i - radius)
		k[i] = math.Exp(inv * x * x)
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}

	return k
}

// reflectIndex folds idx into [0, n) with a half-sample symmetric border
// (d c b a | a b c d | d c b a), repeating as often as the kernel needs.
func reflectIndex(idx, n int) int {
	period := 2 * n
	idx %= period
	if idx < 0 {
		idx += period
	}
	if idx >= n {
		idx = period - 1 - idx
	}

	return idx
}

// Gaussian returns f smoothed with an isotropic Gaussian of standard
// deviation sigma pixels. sigma == 0 returns a copy of f.
// Complexity: O(ny*nx*r) time with r = kernel length, O(ny*nx) extra memory.
func Gaussian(f *grid.Field, sigma float64) (*grid.Field, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return nil, fmt.Errorf("Gaussian(sigma=%g): %w", sigma, ErrBadSigma)
	}
	if sigma == 0 {
		return f.Clone(), nil
	}

	ny, nx := f.Shape()
	k := Kernel1D(sigma)
	half := len(k) / 2
	src := f.Data()
	tmp := make([]float64, ny*nx)
	dst := make([]float64, ny*nx)

	// Axis 0 (y): row offsets are precomputed once per output row.
	offs := make([]int, len(k))
	for y := 0; y < ny; y++ {
		for t := range k {
			offs[t] = reflectIndex(y+t-half, ny) * nx
		}
		out := tmp[y*nx : (y+1)*nx]
		for x := 0; x < nx; x++ {
			var s float64
			for t, w := range k {
				s += src[offs[t]+x] * w
			}
			out[x] = s
		}
	}

	// Axis 1 (x): interior columns skip the reflect lookup.
	for y := 0; y < ny; y++ {
		row := tmp[y*nx : (y+1)*nx]
		out := dst[y*nx : (y+1)*nx]
		for x := 0; x < nx; x++ {
			var s float64
			if x-half >= 0 && x+half < nx {
				base := x - half
				for t, w := range k {
					s += row[base+t] * w
				}
			} else {
				for t, w := range k {
					s += row[reflectIndex(x+t-half, nx)] * w
				}
			}
			out[x] = s
		}
	}

	return grid.FieldFromData(ny, nx, dst)
}
