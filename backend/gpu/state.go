// Package gpu implements a software-simulated grid-of-threads backend:
// no CUDA (or other GPU-compute) binding exists anywhere in the
// retrieved reference pack, so a fixed pool of goroutines plays the
// role of GPU threads, State plays the role of the per-thread
// device-resident state, and Backend.Run replicates the round-based
// assign/launch/drain/resume driver loop exactly. This preserves the
// resumable-thread-state contract and the CPU/GPU backend-equivalence
// contract without real GPU hardware.
//
// Ported from original_source/generator/gpu/kernel/src/state/{cpu,gpu}.rs
// and original_source/generator/gpu/src/lib.rs.
package gpu

import "github.com/girgraph/girg/tiling"

// MaxDims bounds on-demand (not pregenerated) position computation,
// matching generator_core::MAX_DIMS in the reference implementation —
// the one real capability limit the simulated backend inherits.
const MaxDims = 2

// State holds the per-thread resumable state for every simulated GPU
// thread, stored as one slice per property indexed by thread id — the
// Go analogue of the reference's struct-of-device-pointers layout,
// without the host/device duplication those need to cross the PCIe
// boundary.
type State struct {
	CurrentX   []uint64
	CurrentY   []uint64
	EdgesS     []uint64
	EdgesT     []uint64
	EdgeSize   uint64
	EdgesCount []uint64
	Done       []bool
	NumThreads uint64
}

// NewState allocates per-thread state for numThreads simulated
// threads, each with an edge buffer of capacity edgeSize. All threads
// start marked Done so the first round assigns each a fresh tile.
func NewState(edgeSize, numThreads uint64) *State {
	s := &State{
		CurrentX:   make([]uint64, numThreads),
		CurrentY:   make([]uint64, numThreads),
		EdgesS:     make([]uint64, numThreads*edgeSize),
		EdgesT:     make([]uint64, numThreads*edgeSize),
		EdgeSize:   edgeSize,
		EdgesCount: make([]uint64, numThreads),
		Done:       make([]bool, numThreads),
		NumThreads: numThreads,
	}
	for i := range s.Done {
		s.Done[i] = true
	}
	return s
}

// CanAddEdge reports whether thread tid's edge buffer has room.
func (s *State) CanAddEdge(tid int) bool {
	return s.EdgesCount[tid] < s.EdgeSize
}

// AddEdge records an edge in thread tid's buffer. The caller must
// check CanAddEdge first; AddEdge panics otherwise, matching the
// reference kernel's contract.
func (s *State) AddEdge(tid int, i, j uint64) {
	if !s.CanAddEdge(tid) {
		panic("gpu: thread edge buffer is full")
	}
	pos := uint64(tid)*s.EdgeSize + s.EdgesCount[tid]
	s.EdgesS[pos] = i
	s.EdgesT[pos] = j
	s.EdgesCount[tid]++
}

// Edges returns thread tid's buffered edges.
func (s *State) Edges(tid int) []tiling.Edge {
	n := s.EdgesCount[tid]
	if n > s.EdgeSize {
		n = s.EdgeSize
	}
	offset := uint64(tid) * s.EdgeSize
	out := make([]tiling.Edge, n)
	for k := uint64(0); k < n; k++ {
		out[k] = tiling.Edge{I: s.EdgesS[offset+k], J: s.EdgesT[offset+k]}
	}
	return out
}

// ResetEdges clears thread tid's edge count after its buffer has been
// drained for the round, matching the reference's
// cpu_state.edges_count[tid] = 0 between rounds.
func (s *State) ResetEdges(tid int) {
	s.EdgesCount[tid] = 0
}
