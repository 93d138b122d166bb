package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathTracer implements unidirectional path tracing with light sampling.
// Diffuse bounces draw from an even mixture of the material's distribution
// and the scene's lights. Depth is the only termination criterion.
type PathTracer struct{}

// NewPathTracer creates a new path tracing integrator
func NewPathTracer() *PathTracer {
	return &PathTracer{}
}

// Trace computes the color for a single ray
func (pt *PathTracer) Trace(random *rand.Rand, ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := s.World.Hit(random, ray, core.Epsilon, core.Infinity)
	if !isHit {
		return s.Background
	}

	emitted := hit.Material.Emitted(ray, hit)

	scatter, didScatter := hit.Material.Scatter(random, ray, hit)
	if !didScatter {
		return emitted
	}

	// Specular bounces follow the fixed ray and skip density weighting
	if scatter.IsSpecular() {
		return scatter.Attenuation.MultiplyVec(pt.Trace(random, *scatter.SpecularRay, s, depth-1))
	}

	return emitted.Add(pt.scatterDiffuse(random, ray, hit, scatter, s, depth))
}

// scatterDiffuse samples the continuation direction and weights the
// incoming radiance by scattering pdf over sampling density. Samples with a
// vanishing density or a non-finite weight contribute nothing.
func (pt *PathTracer) scatterDiffuse(random *rand.Rand, ray core.Ray, hit *material.HitRecord, scatter material.ScatterRecord, s *scene.Scene, depth int) core.Vec3 {
	if scatter.PDF == nil {
		return core.Vec3{}
	}

	sampling := scatter.PDF
	if s.HasLights() {
		sampling = pdf.NewMixturePDF(pdf.NewHittablePDF(s.Lights, hit.Point), scatter.PDF)
	}

	direction := sampling.Generate(random)
	if direction.NearZero() || !direction.IsFinite() {
		return core.Vec3{}
	}
	scattered := core.NewRayAtTime(hit.Point, direction, ray.Time)

	density := sampling.Value(random, direction)
	if math.IsNaN(density) || math.IsInf(density, 0) || density < core.PDFEpsilon {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(random, ray, hit, scattered)
	if scatteringPDF <= 0 || math.IsNaN(scatteringPDF) {
		return core.Vec3{}
	}

	incoming := pt.Trace(random, scattered, s, depth-1)
	contribution := scatter.Attenuation.Multiply(scatteringPDF / density).MultiplyVec(incoming)
	if !contribution.IsFinite() {
		return core.Vec3{}
	}

	return contribution
}
