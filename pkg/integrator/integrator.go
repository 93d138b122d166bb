package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace estimates the radiance arriving along ray. depth bounds the
	// number of bounces; zero depth gathers no light.
	Trace(random *rand.Rand, ray core.Ray, scene *scene.Scene, depth int) core.Vec3
}
