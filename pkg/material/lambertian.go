package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter hands back a cosine distribution around the normal; the
// integrator decides the actual direction.
func (l *Lambertian) Scatter(random *rand.Rand, rayIn core.Ray, hit *HitRecord) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewCosinePDF(hit.Normal),
	}, true
}

// Emitted returns black: diffuse surfaces do not glow
func (l *Lambertian) Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is cos(θ)/π above the surface and zero below
func (l *Lambertian) ScatteringPDF(random *rand.Rand, rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}
