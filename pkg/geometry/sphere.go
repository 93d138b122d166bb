package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// NewCanonicalSphere creates a unit sphere at the origin, meant to be
// placed with an Affine
func NewCanonicalSphere(mat material.Material) *Sphere {
	return NewSphere(core.Vec3{}, 1, mat)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to (u, v) in [0,1]²:
// u is the angle around Y starting at -X, v runs from -Y to +Y
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.Splat(math.Abs(s.Radius))
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// PDFValue returns the density of sampling direction uniformly over the
// cone the sphere subtends from origin
func (s *Sphere) PDFValue(random *rand.Rand, origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(random, core.NewRay(origin, direction), core.Epsilon, core.Infinity); !ok {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return 0
	}
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle < core.PDFEpsilon {
		return 0
	}

	return 1 / solidAngle
}

// Random returns a direction from origin inside the cone the sphere subtends
func (s *Sphere) Random(random *rand.Rand, origin core.Vec3) core.Vec3 {
	direction := s.Center.Subtract(origin)
	basis := core.NewONB(direction)
	return basis.Local(core.RandomToSphere(random, s.Radius, direction.LengthSquared()))
}
