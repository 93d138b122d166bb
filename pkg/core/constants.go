package core

import "math"

const (
	// Epsilon is the lower bound of the parametric interval used for
	// continuation rays, so a ray does not re-hit the surface it left.
	Epsilon = 0.001

	// PDFEpsilon is the smallest sampling density treated as non-zero.
	PDFEpsilon = 1e-8
)

// Infinity is the open upper bound of a ray query
var Infinity = math.Inf(1)
