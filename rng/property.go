package rng

import "math"

// maxUint32 is the normalizer for hash-to-uniform conversion: dividing
// by 2^32-1 (not 2^32) matches the reference implementation and keeps
// 1.0 reachable, which the strict '>' edge-acceptance test in package
// kernel relies on.
const maxUint32 = float64(math.MaxUint32)

// Property returns the uniform-[0,1] property value for vertex i under
// the given seed, derived from H2(i, seed). The division happens in
// float64 and is truncated to float32 last, matching the reference's
// "divide by 2^32-1 via a double intermediate" rounding rule.
func Property(i, seed uint64) float32 {
	h := H2(i, seed)
	v := float64(h) / maxUint32
	return float32(v)
}

// EdgeRandom returns the uniform-[0,1] acceptance threshold for the
// candidate edge (i,j) under the given seed, derived from H3(i,j,seed).
func EdgeRandom(i, j, seed uint64) float32 {
	h := H3(i, j, seed)
	v := float64(h) / maxUint32
	return float32(v)
}
