package kernel

import "math"

// Probability computes the GIRG connection probability for an edge of
// distance d between vertices of weight wi, wj, given the graph's
// total weight sumW, dimension count dims, and decay exponent alpha.
//
// When alpha is +Inf the model degenerates to a deterministic
// threshold test: connect iff d is within the volume implied by the
// vertices' weights. Otherwise it is the usual inverse-power-law
// kernel, capped at 1.
func Probability(d, wi, wj, sumW float32, dims int, alpha float32) float32 {
	if math.IsInf(float64(alpha), 1) {
		v := float32(math.Pow(float64((wi*wj)/sumW), 1/float64(dims)))
		if d <= v {
			return 1
		}
		return 0
	}

	num := float32(math.Pow(float64((wi*wj)/sumW), float64(alpha)))
	denom := float32(math.Pow(float64(d), float64(alpha*float32(dims))))
	p := num / denom
	if p > 1 {
		return 1
	}
	return p
}
