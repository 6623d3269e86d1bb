// SPDX-License-Identifier: MIT

package grid

import "sort"

// Connectivity selects neighbor connectivity for region labelling.
type Connectivity int

const (
	// Conn4 uses N, E, S, W neighbors.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	}

	return [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
}

// Region is a maximal connected set of cells whose value is ≥ a threshold.
// Cells holds row-major indices in ascending order; the centroid is the mean
// (row, column) of those cells and (PeakY, PeakX) locates the largest value.
type Region struct {
	Cells     []int
	Peak      float64
	PeakY     int
	PeakX     int
	CentroidY float64
	CentroidX float64
}

// Size returns the number of cells.
func (r Region) Size() int { return len(r.Cells) }

// Regions labels the connected areas of f with value ≥ threshold. Regions
// are ordered by size (largest first), ties by their first cell index.
//
// Time:   O(ny·nx·d), d = 4 or 8.
// Memory: O(ny·nx) for visited flags and output.
func Regions(f *Field, threshold float64, conn Connectivity) []Region {
	total := f.Len()
	seen := make([]bool, total)
	offsets := conn.offsets()
	var out []Region

	for i0, v0 := range f.data {
		if v0 < threshold || seen[i0] {
			continue
		}
		// BFS over the region
		queue := []int{i0}
		seen[i0] = true
		r := Region{Peak: v0, PeakY: i0 / f.nx, PeakX: i0 % f.nx}
		var sy, sx float64
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uy, ux := f.Coordinate(u)
			sy += float64(uy)
			sx += float64(ux)
			if f.data[u] > r.Peak {
				r.Peak, r.PeakY, r.PeakX = f.data[u], uy, ux
			}
			for _, d := range offsets {
				vy, vx := uy+d[0], ux+d[1]
				if !f.InBounds(vy, vx) {
					continue
				}
				vi := f.Index(vy, vx)
				if !seen[vi] && f.data[vi] >= threshold {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		sort.Ints(queue)
		n := float64(len(queue))
		r.Cells, r.CentroidY, r.CentroidX = queue, sy/n, sx/n
		out = append(out, r)
	}

	sort.SliceStable(out, func(a, b int) bool {
		return len(out[a].Cells) > len(out[b].Cells)
	})

	return out
}
