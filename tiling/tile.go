// Package tiling decomposes the V×V adjacency matrix into fixed-size,
// deterministically-ordered tiles so that independent workers (CPU
// goroutines, simulated GPU threads, or separate shard processes) can
// each claim a disjoint slice of the matrix without coordination.
//
// Ported from original_source/generator/common/src/tiles.rs.
package tiling

// Edge is a directed pair of vertex indices.
type Edge struct {
	I, J uint64
}

// Tile is an inclusive rectangular region of the adjacency matrix:
// all (i, j) with Start.I <= i <= End.I and Start.J <= j <= End.J.
type Tile struct {
	Start, End Edge
}

// Iter returns an iterator over every edge in the tile, in row-major
// order (j outermost, i innermost) — matching TileIterator.next in the
// reference implementation.
func (t Tile) Iter() *TileIterator {
	return &TileIterator{i: t.Start.I, j: t.Start.J, t: t}
}

// TileIterator walks the edges of a single Tile in row-major order.
type TileIterator struct {
	i, j uint64
	t    Tile
}

// SkipTo advances the iterator to the given position, which must lie
// within the tile. It panics otherwise, matching the reference's
// skip_to, since a caller requesting an out-of-tile resume point is a
// programming error, not a runtime condition to recover from.
func (it *TileIterator) SkipTo(i, j uint64) {
	if i > it.t.End.I || j > it.t.End.J {
		panic("tiling: skip_to position outside tile")
	}
	it.i, it.j = i, j
}

// Next returns the next edge in the tile and true, or a zero Edge and
// false once the tile is exhausted.
func (it *TileIterator) Next() (Edge, bool) {
	if it.i > it.t.End.I || it.j > it.t.End.J {
		return Edge{}, false
	}

	e := Edge{I: it.i, J: it.j}

	it.i++
	if it.i > it.t.End.I {
		it.i = it.t.Start.I
		it.j++
	}

	return e, true
}
