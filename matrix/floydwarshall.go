package matrix

import (
	"fmt"
	"math"
)

// initDistancesInPlace converts adjacency (0 / w) to distances in place:
// diagonal 0, off-diagonal 0 becomes +Inf, weights unchanged.
func initDistancesInPlace(d *Dense) {
	n := d.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				d.data[i*n+j] = 0
			case d.data[i*n+j] == 0:
				d.data[i*n+j] = math.Inf(1)
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// d must be square; +Inf means "no edge" and the diagonal must be 0.
// Loop order is fixed (k → i → j) and only strict improvements are written.
//
// Complexity: O(n³) time, O(1) extra space.
func FloydWarshall(d *Dense) error {
	if d.r != d.c {
		return fmt.Errorf("FloydWarshall: %dx%d: %w", d.r, d.c, ErrNonSquare)
	}
	n := d.r
	data := d.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// Distances returns the all-pairs shortest-path matrix; +Inf marks pairs
// in different components. The adjacency matrix is not modified.
func (am *AdjacencyMatrix) Distances() (*Dense, error) {
	d := am.Mat.Clone()
	initDistancesInPlace(d)
	if err := FloydWarshall(d); err != nil {
		return nil, fmt.Errorf("Distances: %w", err)
	}

	return d, nil
}
