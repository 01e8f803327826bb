// Package params holds the immutable, shared-by-reference run
// configuration: the seed vector and scalar parameters, plus derived
// quantities computed once at construction time (the total vertex
// weight Σweights).
//
// Ported from original_source/generator/core/src/params.rs (the
// portable GenerationParameters type) merged with
// original_source/generator/common/src/params/mod.rs (the host-side
// convenience methods CPUGenerationParameters adds on top), since Go
// has no device/host crate split at the type level — that split lives
// at the backend package boundary instead.
package params

import (
	"fmt"

	"github.com/girgraph/girg/buffer"
	"github.com/girgraph/girg/dist"
	"github.com/girgraph/girg/rng"
	"github.com/girgraph/girg/tiling"
)

// Params is the complete, immutable configuration of a single
// generation run. Construct with New or FromSeeds; never mutate a
// Params after construction — it is shared by pointer across every
// worker goroutine and backend.
type Params struct {
	Seeds              []uint64
	PregenerateNumbers bool
	Dims               int
	Pareto             dist.Pareto
	Alpha              float32
	SumW               float32
	V                  uint64
	TileSize           uint64
	EdgeBufferSize     uint64
	ShardIndex         int
	ShardCount         int
}

// Seed kinds, matching the reference implementation's SeedEnum:
// weight at index 0, edge at index 1, each spatial dimension after.
const (
	seedWeight = 0
	seedEdge   = 1
)

func dimSeedIndex(d int) int { return 2 + d }

// WeightSeed returns the seed used to draw every vertex's weight.
func (p *Params) WeightSeed() uint64 { return p.Seeds[seedWeight] }

// EdgeSeed returns the seed used to draw every edge's acceptance
// threshold.
func (p *Params) EdgeSeed() uint64 { return p.Seeds[seedEdge] }

// DimSeed returns the seed used to draw coordinate d of every
// vertex's position.
func (p *Params) DimSeed(d int) uint64 { return p.Seeds[dimSeedIndex(d)] }

// SeedsView returns a non-owning read-only view over the seed vector,
// the shape a consumer that only needs to inspect or log the seeds
// (never re-derive a value from them through WeightSeed/EdgeSeed/
// DimSeed) should hold instead of aliasing the Seeds slice field
// directly — matching §3's "Seed buffers: CPU-side immutable shared
// reference" contract.
func (p *Params) SeedsView() buffer.Ref[uint64] {
	return buffer.NewRef(p.Seeds)
}

// New validates the given scalar parameters, draws a fresh pairwise-
// distinct seed vector of length dims+2, and computes SumW eagerly.
func New(dims int, pareto dist.Pareto, alpha float32, v, tileSize, edgeBufferSize uint64, pregenerateNumbers bool, shardIndex, shardCount int) (*Params, error) {
	seeds, err := rng.GenerateSeeds(dims + 2)
	if err != nil {
		return nil, fmt.Errorf("params: generating seeds: %w", err)
	}
	return FromSeeds(dims, pareto, alpha, v, seeds, tileSize, edgeBufferSize, pregenerateNumbers, shardIndex, shardCount)
}

// FromSeeds is New but with an explicit, caller-supplied seed vector —
// used whenever a run must be reproducible from a recorded seed vector
// (the seed-fixed test scenarios, --seeds on the CLI).
func FromSeeds(dims int, pareto dist.Pareto, alpha float32, v uint64, seeds []uint64, tileSize, edgeBufferSize uint64, pregenerateNumbers bool, shardIndex, shardCount int) (*Params, error) {
	if len(seeds) != dims+2 {
		return nil, fmt.Errorf("params: invalid seed vector length %d, want %d", len(seeds), dims+2)
	}
	if dims < 1 {
		return nil, fmt.Errorf("params: dimensions must be >= 1, got %d", dims)
	}
	if shardCount < 1 || shardIndex < 0 || shardIndex >= shardCount {
		return nil, fmt.Errorf("params: invalid shard %d of %d", shardIndex, shardCount)
	}
	if tileSize == 0 {
		return nil, fmt.Errorf("params: tile_size must be > 0")
	}

	p := &Params{
		Seeds:              append([]uint64(nil), seeds...),
		PregenerateNumbers: pregenerateNumbers,
		Dims:               dims,
		Pareto:             pareto,
		Alpha:              alpha,
		V:                  v,
		TileSize:           tileSize,
		EdgeBufferSize:     edgeBufferSize,
		ShardIndex:         shardIndex,
		ShardCount:         shardCount,
	}

	p.SumW = p.computeSumWeights()
	return p, nil
}

// Weight returns vertex j's Pareto-distributed weight.
func (p *Params) Weight(j uint64) float32 {
	return p.Pareto.InverseCDF(rng.Property(j, p.WeightSeed()))
}

// Position returns vertex j's position as a freshly allocated slice of
// Dims coordinates, each uniform on [0,1).
func (p *Params) Position(j uint64) []float32 {
	out := make([]float32, p.Dims)
	p.FillPosition(j, out)
	return out
}

// FillPosition writes vertex j's position into out, which must have
// length Dims. Avoids an allocation per vertex when the caller already
// owns a reusable buffer (the CPU backend's inner loop does).
func (p *Params) FillPosition(j uint64, out []float32) {
	for d := 0; d < p.Dims; d++ {
		out[d] = rng.Property(j, p.DimSeed(d))
	}
}

func (p *Params) computeSumWeights() float32 {
	var sum float32
	for j := uint64(0); j < p.V; j++ {
		sum += p.Weight(j)
	}
	return sum
}

// NumTiles returns the number of tiles this shard will process.
func (p *Params) NumTiles() uint64 {
	return tiling.NumTiles(p.V, p.TileSize, p.ShardCount)
}

// Tiles returns an iterator over every tile belonging to this
// Params's shard, in deterministic row-major order.
func (p *Params) Tiles() *tiling.Iterator {
	return tiling.NewIterator(p.V, p.TileSize, p.ShardIndex, p.ShardCount)
}

// PosToTile returns the tile containing position (x, y): the
// TileSize-aligned square that (x, y) falls within.
func (p *Params) PosToTile(x, y uint64) tiling.Tile {
	bx := (x / p.TileSize) * p.TileSize
	by := (y / p.TileSize) * p.TileSize
	ex := bx + p.TileSize - 1
	ey := by + p.TileSize - 1
	if ex >= p.V {
		ex = p.V - 1
	}
	if ey >= p.V {
		ey = p.V - 1
	}
	return tiling.Tile{Start: tiling.Edge{I: bx, J: by}, End: tiling.Edge{I: ex, J: ey}}
}
