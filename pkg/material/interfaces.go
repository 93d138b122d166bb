package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material governs how light interacts with a surface or volume
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(random *rand.Rand, rayIn core.Ray, hit *HitRecord) (ScatterRecord, bool)

	// Emitted returns the radiance emitted toward the incoming ray
	Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3

	// ScatteringPDF is the density of the material's own distribution for
	// the given scattered ray. It must match the PDF returned by Scatter.
	ScatteringPDF(random *rand.Rand, rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64
}

// ScatterRecord is the result of a successful scatter. Exactly one of
// SpecularRay and PDF is set.
type ScatterRecord struct {
	Attenuation core.Vec3 // Multiplicative tint of the gathered radiance
	SpecularRay *core.Ray // Deterministic continuation, skips density weighting
	PDF         pdf.PDF   // Distribution for probabilistic scattering
}

// IsSpecular returns true if the continuation ray is fixed by the material
func (s ScatterRecord) IsSpecular() bool {
	return s.SpecularRay != nil
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always opposing the ray
	Material  Material  // Material of the hit object
	U, V      float64   // Surface coordinates
	FrontFace bool      // Whether the geometric normal already opposed the ray
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
