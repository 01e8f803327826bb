// Package rng provides the deterministic, state-free pseudo-random
// number scheme the rest of the generator is built on: every
// per-vertex or per-edge draw is a pure function of indices and
// seeds, so any tile can be generated in isolation by any backend.
//
// Ported from the MurmurHash3_x86_32 variant used by the reference
// implementation (original_source/generator/core/src/random/murmur3.rs,
// itself adapted from github.com/stusmall/murmur3), fixed at seed 0.
package rng

const (
	c1 uint32 = 0x85eb_ca6b
	c2 uint32 = 0xc2b2_ae35
	r1 uint32 = 16
	r2 uint32 = 13
	m  uint32 = 5
	n  uint32 = 0xe654_6b64

	kc1 uint32 = 0xcc9e_2d51
	kc2 uint32 = 0x1b87_3593
	kr1 uint32 = 15
)

func calcK(k uint32) uint32 {
	k *= kc1
	k = (k << kr1) | (k >> (32 - kr1))
	k *= kc2
	return k
}

func finish(state uint32, processed uint32) uint32 {
	h := state
	h ^= processed
	h ^= h >> r1
	h *= c1
	h ^= h >> r2
	h *= c2
	h ^= h >> r1
	return h
}

// process64 folds one big-endian u64 into two little-endian u32
// blocks, matching the reference implementation's byte layout exactly:
// each input is first serialized big-endian, then each 4-byte half is
// reinterpreted little-endian before mixing.
func process64(state *uint32, processed *uint32, v uint64) {
	be := [8]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
	for _, half := range [2][4]byte{
		{be[0], be[1], be[2], be[3]},
		{be[4], be[5], be[6], be[7]},
	} {
		k := uint32(half[0]) | uint32(half[1])<<8 | uint32(half[2])<<16 | uint32(half[3])<<24
		*processed += 4
		*state ^= calcK(k)
		*state = (*state << r2) | (*state >> (32 - r2))
		*state = (*state * m) + n
	}
}

// H2 hashes two uint64 keys together with MurmurHash3_x86_32, seed 0.
// This is the property hash behind rng.Property.
func H2(s1, s2 uint64) uint32 {
	var state uint32
	var processed uint32
	process64(&state, &processed, s1)
	process64(&state, &processed, s2)
	return finish(state, processed)
}

// H3 hashes three uint64 keys together with MurmurHash3_x86_32, seed 0.
// This is the edge-acceptance hash behind rng.EdgeRandom.
func H3(s1, s2, s3 uint64) uint32 {
	var state uint32
	var processed uint32
	process64(&state, &processed, s1)
	process64(&state, &processed, s2)
	process64(&state, &processed, s3)
	return finish(state, processed)
}
