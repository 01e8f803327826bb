package cpu

import (
	"context"
	"testing"

	"github.com/girgraph/girg/dist"
	"github.com/girgraph/girg/params"
	"github.com/girgraph/girg/tiling"
)

func testParams(t *testing.T, pregenerate bool) *params.Params {
	t.Helper()
	seeds := []uint64{3702171088734132669, 7758113088146926290, 9158248949434531752, 12627271752717934084}
	p, err := params.FromSeeds(2, dist.Pareto{XMin: 1.0, Beta: 2.5}, 1.1, 200, seeds, 50, 4, pregenerate, 0, 1)
	if err != nil {
		t.Fatalf("FromSeeds: %v", err)
	}
	return p
}

func collectTile(tile tiling.Tile, p *params.Params) []tiling.Edge {
	var got []tiling.Edge
	WalkTile(tile, p, func(i, j uint64) {
		got = append(got, tiling.Edge{I: i, J: j})
	})
	return got
}

func TestWalkTileAgreesOnDemandAndPregenerated(t *testing.T) {
	onDemand := testParams(t, false)
	pre, err := params.FromSeeds(2, dist.Pareto{XMin: 1.0, Beta: 2.5}, 1.1, 200, onDemand.Seeds, 50, 4, true, 0, 1)
	if err != nil {
		t.Fatalf("FromSeeds: %v", err)
	}

	tile := tiling.Tile{Start: tiling.Edge{I: 0, J: 0}, End: tiling.Edge{I: 49, J: 49}}
	a := collectTile(tile, onDemand)
	b := collectTile(tile, pre)

	if len(a) != len(b) {
		t.Fatalf("on-demand found %d edges, pregenerated found %d", len(a), len(b))
	}
	set := make(map[tiling.Edge]bool, len(a))
	for _, e := range a {
		set[e] = true
	}
	for _, e := range b {
		if !set[e] {
			t.Fatalf("pregenerated produced edge %v not found on-demand", e)
		}
	}
}

func TestWorkerRespectsEdgeBufferSize(t *testing.T) {
	p := testParams(t, false)
	edges := make(chan []tiling.Edge, 100)
	tile := tiling.Tile{Start: tiling.Edge{I: 0, J: 0}, End: tiling.Edge{I: 49, J: 49}}

	Worker(tile, p, edges)
	close(edges)

	var total int
	for batch := range edges {
		if uint64(len(batch)) > p.EdgeBufferSize {
			t.Fatalf("batch size %d exceeds edge buffer size %d", len(batch), p.EdgeBufferSize)
		}
		total += len(batch)
	}

	want := collectTile(tile, p)
	if total != len(want) {
		t.Fatalf("Worker emitted %d edges across batches, want %d", total, len(want))
	}
}

func TestBackendRunDrainsUntilTilesClosed(t *testing.T) {
	p := testParams(t, false)
	b := &Backend{Params: p}

	tiles := make(chan tiling.Tile, p.NumTiles())
	edges := make(chan []tiling.Edge, 100)
	finished := make(chan tiling.Tile, 4)

	it := p.Tiles()
	var sent int
	for {
		tl, ok := it.Next()
		if !ok {
			break
		}
		tiles <- tl
		sent++
	}
	close(tiles)

	done := make(chan error, 1)
	go func() { done <- b.Run(context.Background(), tiles, edges, finished) }()
	go func() {
		for range edges {
			// drained concurrently so Worker never blocks on a full queue
		}
	}()

	var finishedCount int
	for finishedCount < sent {
		<-finished
		finishedCount++
	}
	if err := <-done; err != nil {
		t.Fatalf("Backend.Run: %v", err)
	}
	close(edges)
}
