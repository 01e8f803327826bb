package tiling

import "testing"

func TestTileIteratorCoversRectangle(t *testing.T) {
	tile := Tile{Start: Edge{I: 2, J: 3}, End: Edge{I: 4, J: 5}}
	it := tile.Iter()

	var got []Edge
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, e)
	}

	want := 3 * 3
	if len(got) != want {
		t.Fatalf("got %d edges, want %d", len(got), want)
	}
	seen := make(map[Edge]bool)
	for _, e := range got {
		if e.I < tile.Start.I || e.I > tile.End.I || e.J < tile.Start.J || e.J > tile.End.J {
			t.Fatalf("edge %v outside tile %v", e, tile)
		}
		if seen[e] {
			t.Fatalf("duplicate edge %v", e)
		}
		seen[e] = true
	}
}

func TestTileIteratorSkipTo(t *testing.T) {
	tile := Tile{Start: Edge{I: 0, J: 0}, End: Edge{I: 3, J: 3}}
	it := tile.Iter()
	it.SkipTo(2, 1)
	e, ok := it.Next()
	if !ok || e != (Edge{I: 2, J: 1}) {
		t.Fatalf("Next() after SkipTo(2,1) = %v, %v", e, ok)
	}
}

func TestTileIteratorSkipToOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-tile SkipTo")
		}
	}()
	tile := Tile{Start: Edge{I: 0, J: 0}, End: Edge{I: 3, J: 3}}
	it := tile.Iter()
	it.SkipTo(5, 5)
}

func TestIteratorPartitionsWholeMatrix(t *testing.T) {
	const vertices, tileSize = 13, 4
	it := NewIterator(vertices, tileSize, 0, 1)

	covered := make(map[Edge]bool)
	var tileCount int
	for {
		tile, ok := it.Next()
		if !ok {
			break
		}
		tileCount++
		for {
			e, ok := tile.Iter().Next()
			_ = e
			if !ok {
				break
			}
			break
		}
		iter := tile.Iter()
		for {
			e, ok := iter.Next()
			if !ok {
				break
			}
			if covered[e] {
				t.Fatalf("edge %v covered by more than one tile", e)
			}
			covered[e] = true
		}
	}

	if uint64(len(covered)) != vertices*vertices {
		t.Fatalf("covered %d edges, want %d", len(covered), vertices*vertices)
	}

	wantTiles := NumTiles(vertices, tileSize, 1)
	if uint64(tileCount) != wantTiles {
		t.Fatalf("got %d tiles, want %d (NumTiles)", tileCount, wantTiles)
	}
}

func TestShardUnionEqualsWhole(t *testing.T) {
	const vertices, tileSize, shardCount = 13, 4, 3

	whole := NewIterator(vertices, tileSize, 0, 1)
	var wantTiles []Tile
	for {
		tl, ok := whole.Next()
		if !ok {
			break
		}
		wantTiles = append(wantTiles, tl)
	}

	var gotTiles []Tile
	for shard := 0; shard < shardCount; shard++ {
		it := NewIterator(vertices, tileSize, shard, shardCount)
		for {
			tl, ok := it.Next()
			if !ok {
				break
			}
			gotTiles = append(gotTiles, tl)
		}
	}

	if len(gotTiles) != len(wantTiles) {
		t.Fatalf("shard union has %d tiles, want %d", len(gotTiles), len(wantTiles))
	}

	seen := make(map[Tile]bool)
	for _, tl := range gotTiles {
		if seen[tl] {
			t.Fatalf("tile %v produced by more than one shard", tl)
		}
		seen[tl] = true
	}
	for _, tl := range wantTiles {
		if !seen[tl] {
			t.Fatalf("tile %v from the unsharded iterator missing from shard union", tl)
		}
	}
}
