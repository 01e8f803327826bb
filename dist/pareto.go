// Package dist implements the probability distributions used to draw
// per-vertex weights: a Pareto distribution with parameters (x_min,
// beta), sampled via inverse-CDF from a uniform property value.
//
// Ported from original_source/generator/core/src/random/mod.rs
// (ParetoDistribution::convert_uniform).
package dist

import "math"

// Pareto is a Type-I Pareto distribution with scale XMin and shape
// Beta. Both must be strictly positive; config.Config.Validate checks
// this, params.New and params.FromSeeds do not.
type Pareto struct {
	XMin float32
	Beta float32
}

// InverseCDF maps a uniform value u in [0,1) to a Pareto-distributed
// value: x_min / (1-u)^(1/beta). u must come from rng.Property so the
// mapping is a pure, repeatable function of a vertex index and seed.
func (p Pareto) InverseCDF(u float32) float32 {
	return p.XMin / float32(math.Pow(float64(1-u), 1/float64(p.Beta)))
}
