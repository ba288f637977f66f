// SPDX-License-Identifier: MIT

// Package builder: Grid(rows, cols).
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood; cell (r,c) is vertex r*cols+c
//     (row-major).
//   - For each cell in row-major order: edge to the right neighbor, then to
//     the bottom neighbor, where they exist. Directed grids point right and
//     down.

package builder

import (
	"github.com/cockroachdb/errors"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				methodGrid, rows, cols, minGridDim)
		}
		base := el.addVertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := base + r*cols + c
				if c+1 < cols {
					el.addEdge(cfg, v, v+1)
				}
				if r+1 < rows {
					el.addEdge(cfg, v, v+cols)
				}
			}
		}
		return nil
	}
}
