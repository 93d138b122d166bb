package pdf

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// HittablePDF samples directions from a fixed origin toward a target,
// typically the scene's lights
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF creates a distribution aimed at target from origin
func NewHittablePDF(target Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

func (p *HittablePDF) Generate(random *rand.Rand) core.Vec3 {
	return p.target.Random(random, p.origin)
}

func (p *HittablePDF) Value(random *rand.Rand, direction core.Vec3) float64 {
	return p.target.PDFValue(random, p.origin, direction)
}
