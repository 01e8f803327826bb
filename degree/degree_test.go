package degree

import (
	"testing"

	"github.com/girgraph/girg/tiling"
)

func TestAddIncrementsCount(t *testing.T) {
	a := New(5)
	a.Add(2)
	a.Add(2)
	a.Add(3)
	if a.Degree(2) != 2 {
		t.Fatalf("Degree(2) = %d, want 2", a.Degree(2))
	}
	if a.Degree(3) != 1 {
		t.Fatalf("Degree(3) = %d, want 1", a.Degree(3))
	}
	if a.Degree(0) != 0 {
		t.Fatalf("Degree(0) = %d, want 0", a.Degree(0))
	}
}

func TestAddBatchCreditsOriginVertexOnly(t *testing.T) {
	a := New(4)
	a.AddBatch([]tiling.Edge{{I: 0, J: 1}, {I: 0, J: 2}, {I: 1, J: 0}})
	if a.Degree(0) != 2 {
		t.Fatalf("Degree(0) = %d, want 2", a.Degree(0))
	}
	if a.Degree(1) != 1 {
		t.Fatalf("Degree(1) = %d, want 1", a.Degree(1))
	}
	if a.Degree(2) != 0 {
		t.Fatalf("Degree(2) = %d, want 0", a.Degree(2))
	}
}

func TestDistributionIsMonotonicallyDecreasing(t *testing.T) {
	a := New(4)
	a.AddBatch([]tiling.Edge{{I: 0}, {I: 0}, {I: 0}, {I: 1}, {I: 1}})
	dist := a.Distribution()
	for x := 1; x < len(dist); x++ {
		if dist[x] > dist[x-1] {
			t.Fatalf("Distribution not monotonic at x=%d: %v > %v", x, dist[x], dist[x-1])
		}
	}
	if dist[0] == 0 {
		t.Fatal("Distribution(0) should be > 0 when some vertex has degree > 0")
	}
}
