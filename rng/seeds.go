package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/samber/lo"
)

// GenerateSeeds draws n pairwise-distinct uint64 seeds. No RNG library
// appears anywhere in the retrieved example pack, so this is the
// justified standard-library exception noted in DESIGN.md; entropy
// comes from crypto/rand rather than a seeded PRNG since nothing here
// needs the sequence to itself be reproducible — only the seeds it
// produces need to be, and those are recorded and passed explicitly
// from then on (see params.New).
//
// The reference implementation's generate_seeds has an off-by-one in
// its uniqueness check (it tests seeds[0:i-1], leaving seeds[i-1]
// unchecked against seeds[i]); this port uses the corrected half-open
// range seeds[0:i], per the resolved Open Question in SPEC_FULL.md.
func GenerateSeeds(n int) ([]uint64, error) {
	seeds := make([]uint64, n)
	var buf [8]byte

	for i := range seeds {
		for {
			if _, err := rand.Read(buf[:]); err != nil {
				return nil, fmt.Errorf("rng: generating seed %d: %w", i, err)
			}
			candidate := binary.BigEndian.Uint64(buf[:])
			if !lo.Contains(seeds[:i], candidate) {
				seeds[i] = candidate
				break
			}
		}
	}

	return seeds, nil
}
