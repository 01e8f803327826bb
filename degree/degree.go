// Package degree provides an in-core consumer of the edge stream that
// accumulates each vertex's out-degree: a plain counter slice indexed
// by vertex id, owned exclusively by the goroutine that drains the
// edge queue, needing no locking.
//
// Ported from the degree_counters handling in
// original_source/girg_generator/src/main.rs.
package degree

import "github.com/girgraph/girg/tiling"

// Accumulator counts, per vertex, how many accepted directed edges
// originated at that vertex. The generator evaluates both (i,j) and
// (j,i), each on its own edge-hash draw, so either, both or neither may
// appear in the stream; Accumulator's counts are therefore out-degrees
// over the directed edge stream, not undirected-graph degrees. A
// self-loop (i,i) adds 1 to vertex i.
type Accumulator struct {
	counts []uint64
}

// New allocates an Accumulator for a graph of v vertices.
func New(v uint64) *Accumulator {
	return &Accumulator{counts: make([]uint64, v)}
}

// Add records one edge originating at vertex i.
func (a *Accumulator) Add(i uint64) {
	a.counts[i]++
}

// AddBatch records every edge in a batch, crediting each edge's origin
// vertex — the shape the pipeline's edge queue actually delivers.
func (a *Accumulator) AddBatch(edges []tiling.Edge) {
	for _, e := range edges {
		a.Add(e.I)
	}
}

// Degree returns vertex i's accumulated out-degree.
func (a *Accumulator) Degree(i uint64) uint64 {
	return a.counts[i]
}

// Counts returns the full per-vertex degree slice. The caller must
// not mutate it.
func (a *Accumulator) Counts() []uint64 {
	return a.counts
}

// Distribution returns, for each x in [0, len(counts)], the fraction
// of vertices whose degree is strictly greater than x — the
// complementary cumulative distribution the reference implementation
// writes to its degree-distribution sink.
func (a *Accumulator) Distribution() []float64 {
	out := make([]float64, len(a.counts)+1)
	n := float64(len(a.counts))
	for x := 0; x <= len(a.counts); x++ {
		var count float64
		for _, d := range a.counts {
			if d > uint64(x) {
				count++
			}
		}
		out[x] = count / n
	}
	return out
}
