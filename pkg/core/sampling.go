package core

import (
	"math"
	"math/rand"
)

// RandomRange returns a random float64 in [lo, hi)
func RandomRange(random *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*random.Float64()
}

// RandomCosineDirection returns a cosine-weighted direction in the local
// hemisphere around +Z. Combine with an ONB to orient it.
func RandomCosineDirection(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)

	return NewVec3(x, y, z)
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	z := 1.0 - 2.0*random.Float64() // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * random.Float64()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitSphere generates a random point inside a unit sphere using
// the inverse CDF method instead of rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	r := math.Cbrt(random.Float64())
	return RandomUnitVector(random).Multiply(r)
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

// RandomToSphere samples a direction, in the local frame around +Z, inside
// the cone subtended by a sphere of the given radius at the given squared distance
func RandomToSphere(random *rand.Rand, radius, distanceSquared float64) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()

	cosThetaMax := math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))
	z := 1 + r2*(cosThetaMax-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return NewVec3(x, y, z)
}
