package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emissive material that never scatters
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light emitting a constant color
func NewDiffuseLight(color core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(color)}
}

// NewTexturedDiffuseLight creates a light whose emission follows a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (d *DiffuseLight) Scatter(random *rand.Rand, rayIn core.Ray, hit *HitRecord) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the light color on the front face only
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(hit.U, hit.V, hit.Point)
}

func (d *DiffuseLight) ScatteringPDF(random *rand.Rand, rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}
