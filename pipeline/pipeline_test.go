package pipeline

import (
	"context"
	"testing"

	"github.com/girgraph/girg/dist"
	"github.com/girgraph/girg/params"
)

func TestNewHasReferenceCapacities(t *testing.T) {
	p := New()
	if cap(p.Tiles) != TileQueueCapacity {
		t.Fatalf("Tiles capacity = %d, want %d", cap(p.Tiles), TileQueueCapacity)
	}
	if cap(p.Edges) != EdgeQueueCapacity {
		t.Fatalf("Edges capacity = %d, want %d", cap(p.Edges), EdgeQueueCapacity)
	}
	if cap(p.Finished) != FinishedQueueCapacity {
		t.Fatalf("Finished capacity = %d, want %d", cap(p.Finished), FinishedQueueCapacity)
	}
}

func TestRunProducerEmitsEveryTileThenCloses(t *testing.T) {
	prm, err := params.FromSeeds(2, dist.Pareto{XMin: 1, Beta: 2}, 1.5, 37, []uint64{1, 2, 3, 4}, 10, 1000, false, 0, 1)
	if err != nil {
		t.Fatalf("FromSeeds: %v", err)
	}

	pl := New()
	errc := make(chan error, 1)
	go func() { errc <- RunProducer(context.Background(), prm, pl.Tiles) }()

	var count int
	for range pl.Tiles {
		count++
	}
	if err := <-errc; err != nil {
		t.Fatalf("RunProducer: %v", err)
	}
	if want := prm.NumTiles(); uint64(count) != want {
		t.Fatalf("got %d tiles, want %d", count, want)
	}
}

func TestRunProducerStopsOnCancel(t *testing.T) {
	prm, err := params.FromSeeds(2, dist.Pareto{XMin: 1, Beta: 2}, 1.5, 100000, []uint64{1, 2, 3, 4}, 2, 1000, false, 0, 1)
	if err != nil {
		t.Fatalf("FromSeeds: %v", err)
	}

	pl := New()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- RunProducer(ctx, prm, pl.Tiles) }()

	cancel()
	for range pl.Tiles {
		// drain until producer observes cancellation and closes
	}
	if err := <-errc; err == nil {
		t.Fatal("expected context-canceled error")
	}
}
