package tiling

// Iterator enumerates every Tile covering a V×V matrix in row-major
// order, restricted to a single shard: Skip(shardIndex) and
// StepBy(shardCount) over the full sequence, matching
// CPUGenerationParameters::tiles in the reference implementation.
type Iterator struct {
	vertices, tileSize uint64
	i, j               uint64
	shardIndex         int
	shardCount         int
	seen               int
	done               bool
}

// NewIterator returns an Iterator over all tiles of a vertices×vertices
// matrix with the given tileSize, restricted to every shardCount-th
// tile starting at shardIndex. shardIndex 0 and shardCount 1 visits
// every tile.
func NewIterator(vertices, tileSize uint64, shardIndex, shardCount int) *Iterator {
	return &Iterator{
		vertices:   vertices,
		tileSize:   tileSize,
		shardIndex: shardIndex,
		shardCount: shardCount,
	}
}

// Next returns the next tile belonging to this shard and true, or a
// zero Tile and false once the matrix is fully covered.
func (it *Iterator) Next() (Tile, bool) {
	for {
		t, ok := it.nextRaw()
		if !ok {
			return Tile{}, false
		}
		if it.seen >= it.shardIndex && (it.seen-it.shardIndex)%it.shardCount == 0 {
			it.seen++
			return t, true
		}
		it.seen++
	}
}

func (it *Iterator) nextRaw() (Tile, bool) {
	if it.done || it.j >= it.vertices {
		it.done = true
		return Tile{}, false
	}

	iNext := min64(it.i+it.tileSize, it.vertices)
	jNext := min64(it.j+it.tileSize, it.vertices)

	next := Tile{
		Start: Edge{I: it.i, J: it.j},
		End:   Edge{I: iNext - 1, J: jNext - 1},
	}

	it.i = iNext
	if it.i >= it.vertices {
		it.j = jNext
		it.i = 0
	}

	return next, true
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// NumTiles returns the number of tiles this shard will see, matching
// CPUGenerationParameters::num_tiles: ceil(V/tileSize)^2 / shardCount.
// It assumes shardCount evenly divides the total tile count, as the
// reference implementation does.
func NumTiles(vertices, tileSize uint64, shardCount int) uint64 {
	perSide := divCeil(vertices, tileSize)
	return (perSide * perSide) / uint64(shardCount)
}

func divCeil(a, b uint64) uint64 {
	return (a + b - 1) / b
}
