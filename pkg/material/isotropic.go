package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly over the sphere.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates a phase function with a constant color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates a phase function with a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Scatter(random *rand.Rand, rayIn core.Ray, hit *HitRecord) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewSpherePDF(),
	}, true
}

func (i *Isotropic) Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	return core.Vec3{}
}

func (i *Isotropic) ScatteringPDF(random *rand.Rand, rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
