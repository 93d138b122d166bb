package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached unit normal, (V1-V0)×(V2-V0)
	area       float64
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		area:     cross.Length() / 2,
	}
	if t.area > 0 {
		t.normal = cross.Multiply(1 / (2 * t.area))
	}
	return t
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Area returns the surface area of the triangle
func (t *Triangle) Area() float64 {
	return t.area
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle, or the triangle is degenerate
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	root := f * edge2.Dot(q)
	if root < tMin || root > tMax {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: t.Material,
		U:        u,
		V:        v,
	}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2).Pad(boxPadding), true
}

// PDFValue converts the uniform area density to solid angle as seen from origin
func (t *Triangle) PDFValue(random *rand.Rand, origin, direction core.Vec3) float64 {
	hit, ok := t.Hit(random, core.NewRay(origin, direction), core.Epsilon, core.Infinity)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(t.normal)) / direction.Length()
	if cosine*t.area < core.PDFEpsilon {
		return 0
	}
	return distanceSquared / (cosine * t.area)
}

// Random returns the direction from origin to a uniformly sampled point on the triangle
func (t *Triangle) Random(random *rand.Rand, origin core.Vec3) core.Vec3 {
	u := random.Float64()
	v := random.Float64()
	// Fold the unit square onto the triangle
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	point := t.V0.Add(t.V1.Subtract(t.V0).Multiply(u)).Add(t.V2.Subtract(t.V0).Multiply(v))
	return point.Subtract(origin)
}
