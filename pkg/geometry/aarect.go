package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane names the orientation of an axis-aligned rectangle
type Plane int

const (
	PlaneXY Plane = iota // normal along +Z
	PlaneXZ              // normal along +Y
	PlaneYZ              // normal along +X
)

// axes returns the two in-plane axes and the normal axis
func (p Plane) axes() (a, b, n int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// AARect is an axis-aligned rectangle spanning [A0,A1]×[B0,B1] in its
// plane at offset K along the normal axis
type AARect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *AARect {
	return newAARect(PlaneXY, x0, x1, y0, y1, k, mat)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *AARect {
	return newAARect(PlaneXZ, x0, x1, z0, z1, k, mat)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *AARect {
	return newAARect(PlaneYZ, y0, y1, z0, z1, k, mat)
}

func newAARect(plane Plane, a0, a1, b0, b1, k float64, mat material.Material) *AARect {
	return &AARect{
		Plane:    plane,
		A0:       math.Min(a0, a1),
		A1:       math.Max(a0, a1),
		B0:       math.Min(b0, b1),
		B1:       math.Max(b0, b1),
		K:        k,
		Material: mat,
	}
}

// Normal returns the outward (positive axis) normal
func (r *AARect) Normal() core.Vec3 {
	_, _, n := r.Plane.axes()
	return axisVector(n, 1)
}

// Area returns the rectangle area
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// Hit tests if a ray intersects with the rectangle
func (r *AARect) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	a, b, n := r.Plane.axes()

	// Parallel rays never cross the plane
	denominator := ray.Direction.Axis(n)
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(n)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	pa := ray.Origin.Axis(a) + t*ray.Direction.Axis(a)
	pb := ray.Origin.Axis(b) + t*ray.Direction.Axis(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: r.Material,
		U:        (pa - r.A0) / (r.A1 - r.A0),
		V:        (pb - r.B0) / (r.B1 - r.B0),
	}
	hit.SetFaceNormal(ray, r.Normal())

	return hit, true
}

// BoundingBox returns the rectangle's box, padded along the normal axis
func (r *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	a, b, n := r.Plane.axes()
	var lo, hi [3]float64
	lo[a], hi[a] = r.A0, r.A1
	lo[b], hi[b] = r.B0, r.B1
	lo[n], hi[n] = r.K, r.K

	box := core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2]))
	return box.Pad(boxPadding), true
}

// PDFValue converts the uniform area density 1/A into solid angle:
// distance² / (|cos θ| · A)
func (r *AARect) PDFValue(random *rand.Rand, origin, direction core.Vec3) float64 {
	area := r.Area()
	if area <= 0 {
		return 0
	}

	hit, ok := r.Hit(random, core.NewRay(origin, direction), core.Epsilon, core.Infinity)
	if !ok {
		return 0
	}

	length := direction.Length()
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / length
	if cosine < core.PDFEpsilon {
		return 0
	}

	return distanceSquared / (cosine * area)
}

// Random returns the direction from origin to a uniform point on the rectangle
func (r *AARect) Random(random *rand.Rand, origin core.Vec3) core.Vec3 {
	a, b, n := r.Plane.axes()
	var p [3]float64
	p[a] = core.RandomRange(random, r.A0, r.A1)
	p[b] = core.RandomRange(random, r.B0, r.B1)
	p[n] = r.K
	return core.NewVec3(p[0], p[1], p[2]).Subtract(origin)
}

// axisVector returns a vector with value on the given axis and zero elsewhere
func axisVector(axis int, value float64) core.Vec3 {
	var v [3]float64
	v[axis] = value
	return core.NewVec3(v[0], v[1], v[2])
}
