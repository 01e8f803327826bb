package kernel

import "github.com/girgraph/girg/rng"

// GenerateEdge runs the full per-candidate-edge test: compute the
// toroidal distance and connection probability from the vertices'
// positions and weights, draw the edge's hash-derived acceptance
// threshold, and accept iff probability strictly exceeds it.
//
// The strict '>' comparison (not '>=') matches the reference
// implementation exactly and matters at the boundary: a probability of
// exactly 0 must never accept an edge even if EdgeRandom also returns
// exactly 0.
func GenerateEdge(i, j uint64, wi, wj float32, pi, pj []float32, sumW float32, dims int, alpha float32, edgeSeed uint64) bool {
	d := Distance(pi, pj)
	p := Probability(d, wi, wj, sumW, dims, alpha)
	rp := rng.EdgeRandom(i, j, edgeSeed)
	return p > rp
}
