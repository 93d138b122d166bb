// Package pdf holds the direction sampling distributions used for
// importance sampling. Every distribution can both draw a direction and
// report the solid-angle density of an arbitrary direction.
package pdf

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a probability density over directions
type PDF interface {
	// Generate draws a direction from the distribution
	Generate(random *rand.Rand) core.Vec3

	// Value returns the solid-angle density of direction
	Value(random *rand.Rand, direction core.Vec3) float64
}

// Target is geometry that can be aimed at: lights are sampled through it
type Target interface {
	// PDFValue is the solid-angle density of hitting the target from origin along direction
	PDFValue(random *rand.Rand, origin, direction core.Vec3) float64

	// Random returns a direction from origin toward a random point on the target
	Random(random *rand.Rand, origin core.Vec3) core.Vec3
}

// CosinePDF samples the hemisphere around a normal proportionally to cosθ
type CosinePDF struct {
	basis core.ONB
}

// NewCosinePDF creates a cosine distribution around normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{basis: core.NewONB(normal)}
}

func (p *CosinePDF) Generate(random *rand.Rand) core.Vec3 {
	return p.basis.Local(core.RandomCosineDirection(random))
}

func (p *CosinePDF) Value(random *rand.Rand, direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.basis.W)
	return math.Max(0, cosine/math.Pi)
}

// SpherePDF samples all directions uniformly
type SpherePDF struct{}

// NewSpherePDF creates a uniform spherical distribution
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

func (p *SpherePDF) Generate(random *rand.Rand) core.Vec3 {
	return core.RandomUnitVector(random)
}

func (p *SpherePDF) Value(random *rand.Rand, direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}
