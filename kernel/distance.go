// Package kernel implements the per-edge acceptance test: toroidal
// distance between two vertex positions, the GIRG connection
// probability, and the final hash-gated accept/reject decision.
//
// Ported from original_source/generator/core/src/algorithm.rs.
package kernel

// Distance returns the L∞ (Chebyshev) distance between two positions
// on the d-dimensional unit torus: for each coordinate, the shorter of
// the direct and wrap-around distance, then the max across
// coordinates. pi and pj must have equal, non-zero length.
func Distance(pi, pj []float32) float32 {
	var d float32
	for k := range pi {
		diff := pi[k] - pj[k]
		if diff < 0 {
			diff = -diff
		}
		wrapped := 1 - diff
		if wrapped < diff {
			d = maxF32(d, wrapped)
		} else {
			d = maxF32(d, diff)
		}
	}
	return d
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
