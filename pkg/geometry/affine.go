package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrSingularTransform is returned when a transform cannot be inverted
	ErrSingularTransform = errors.New("affine: transform is not invertible")

	errUnbuiltAffine = errors.New("affine: used without calling Build")
)

// AffineBuilder accumulates transforms for a child object. Operations are
// applied in call order: NewAffine(c).Scale(...).Translate(...) scales first.
type AffineBuilder struct {
	child     Hittable
	transform core.Transform
}

// NewAffine starts a builder with the identity transform
func NewAffine(child Hittable) *AffineBuilder {
	return &AffineBuilder{child: child, transform: core.IdentityTransform()}
}

func (b *AffineBuilder) then(t core.Transform) *AffineBuilder {
	b.transform = b.transform.Then(t)
	return b
}

// Scale scales each axis independently
func (b *AffineBuilder) Scale(sx, sy, sz float64) *AffineBuilder {
	return b.then(core.ScaleTransform(sx, sy, sz))
}

// ScaleUniform scales all axes by s
func (b *AffineBuilder) ScaleUniform(s float64) *AffineBuilder {
	return b.Scale(s, s, s)
}

// RotateX rotates about the X axis by the given angle in degrees
func (b *AffineBuilder) RotateX(degrees float64) *AffineBuilder {
	return b.then(core.RotateXTransform(degreesToRadians(degrees)))
}

// RotateY rotates about the Y axis by the given angle in degrees
func (b *AffineBuilder) RotateY(degrees float64) *AffineBuilder {
	return b.then(core.RotateYTransform(degreesToRadians(degrees)))
}

// RotateZ rotates about the Z axis by the given angle in degrees
func (b *AffineBuilder) RotateZ(degrees float64) *AffineBuilder {
	return b.then(core.RotateZTransform(degreesToRadians(degrees)))
}

// Translate moves the child by (dx, dy, dz)
func (b *AffineBuilder) Translate(dx, dy, dz float64) *AffineBuilder {
	return b.then(core.TranslateTransform(dx, dy, dz))
}

// Build freezes the accumulated transform and computes its inverse
func (b *AffineBuilder) Build() (*Affine, error) {
	inverse, ok := b.transform.Inverse()
	if !ok {
		return nil, fmt.Errorf("while building affine for %T: %w", b.child, ErrSingularTransform)
	}

	return &Affine{
		child:   b.child,
		toWorld: b.transform,
		toLocal: inverse,
		normals: inverse.Linear.Transpose(),
		built:   true,
	}, nil
}

// MustBuild is like Build but panics on a singular transform
func (b *AffineBuilder) MustBuild() *Affine {
	affine, err := b.Build()
	if err != nil {
		panic(err)
	}
	return affine
}

// Affine places a child object in the world with an invertible affine
// transform. Rays are mapped into the child's local space, hits back out.
type Affine struct {
	child   Hittable
	toWorld core.Transform
	toLocal core.Transform
	normals core.Mat3 // inverse transpose of the linear part
	built   bool
}

func (a *Affine) mustBeBuilt() {
	if !a.built {
		panic(errUnbuiltAffine)
	}
}

// Child returns the wrapped object
func (a *Affine) Child() Hittable {
	return a.child
}

// Hit intersects the child in local space. The parametric t is unchanged by
// the mapping, so tMin and tMax pass through as is.
func (a *Affine) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	a.mustBeBuilt()

	hit, ok := a.child.Hit(random, a.toLocal.Ray(ray), tMin, tMax)
	if !ok {
		return nil, false
	}

	// The inverse transpose preserves the sign of dot(normal, direction),
	// so the face orientation computed by the child still holds
	world := *hit
	world.Point = a.toWorld.Point(hit.Point)
	world.Normal = a.normals.MulVec(hit.Normal).Normalize()

	return &world, true
}

// BoundingBox bounds the transformed corners of the child's box
func (a *Affine) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	a.mustBeBuilt()

	box, ok := a.child.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := box.Corners()
	points := make([]core.Vec3, len(corners))
	for i, corner := range corners {
		points[i] = a.toWorld.Point(corner)
	}
	return core.NewAABBFromPoints(points...), true
}

// PDFValue evaluates the child's density in local space. Solid angle is
// only preserved by rotations, translations and uniform scales.
func (a *Affine) PDFValue(random *rand.Rand, origin, direction core.Vec3) float64 {
	a.mustBeBuilt()

	target, ok := a.child.(Sampleable)
	if !ok {
		return 0
	}
	return target.PDFValue(random, a.toLocal.Point(origin), a.toLocal.Vector(direction))
}

// Random samples the child in local space and maps the direction back out
func (a *Affine) Random(random *rand.Rand, origin core.Vec3) core.Vec3 {
	a.mustBeBuilt()

	target, ok := a.child.(Sampleable)
	if !ok {
		return core.NewVec3(1, 0, 0)
	}
	return a.toWorld.Vector(target.Random(random, a.toLocal.Point(origin)))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
