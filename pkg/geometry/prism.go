package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RectangularPrism is an axis-aligned box made of six rectangles
type RectangularPrism struct {
	Min   core.Vec3
	Max   core.Vec3
	sides *ObjectList
}

// NewRectangularPrism creates the prism spanned by two opposite corners
func NewRectangularPrism(p0, p1 core.Vec3, mat material.Material) *RectangularPrism {
	box := core.NewAABB(p0, p1)
	lo, hi := box.Min, box.Max

	sides := NewObjectList(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat),
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat),

		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat),
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat),

		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat),
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat),
	)

	return &RectangularPrism{Min: lo, Max: hi, sides: sides}
}

// NewCanonicalPrism creates the unit cube [0,1]³
func NewCanonicalPrism(mat material.Material) *RectangularPrism {
	return NewRectangularPrism(core.Vec3{}, core.Splat(1), mat)
}

// Hit returns the nearest face hit
func (p *RectangularPrism) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return p.sides.Hit(random, ray, tMin, tMax)
}

// BoundingBox returns the prism's own extent
func (p *RectangularPrism) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(p.Min, p.Max).Pad(boxPadding), true
}

func (p *RectangularPrism) PDFValue(random *rand.Rand, origin, direction core.Vec3) float64 {
	return p.sides.PDFValue(random, origin, direction)
}

func (p *RectangularPrism) Random(random *rand.Rand, origin core.Vec3) core.Vec3 {
	return p.sides.Random(random, origin)
}
