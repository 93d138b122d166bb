package pdf

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MixturePDF picks either of two distributions with equal probability
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF combines a and b with a fixed 50/50 split
func NewMixturePDF(a, b PDF) *MixturePDF {
	return &MixturePDF{p: [2]PDF{a, b}}
}

func (m *MixturePDF) Generate(random *rand.Rand) core.Vec3 {
	if random.Float64() < 0.5 {
		return m.p[0].Generate(random)
	}
	return m.p[1].Generate(random)
}

// Value is the mean of both densities, matching the selection probability
func (m *MixturePDF) Value(random *rand.Rand, direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(random, direction) + 0.5*m.p[1].Value(random, direction)
}
