package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FlipFace swaps which side of its child counts as the front. Rectangles
// face the positive axis, so a ceiling light pointing down is wrapped in one.
type FlipFace struct {
	Child Hittable
}

// NewFlipFace wraps child with inverted face orientation
func NewFlipFace(child Hittable) *FlipFace {
	return &FlipFace{Child: child}
}

func (f *FlipFace) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Child.Hit(random, ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Child.BoundingBox(time0, time1)
}

func (f *FlipFace) PDFValue(random *rand.Rand, origin, direction core.Vec3) float64 {
	if target, ok := f.Child.(Sampleable); ok {
		return target.PDFValue(random, origin, direction)
	}
	return 0
}

func (f *FlipFace) Random(random *rand.Rand, origin core.Vec3) core.Vec3 {
	if target, ok := f.Child.(Sampleable); ok {
		return target.Random(random, origin)
	}
	return core.NewVec3(1, 0, 0)
}
