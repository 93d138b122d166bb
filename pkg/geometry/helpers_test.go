package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// checkHitInvariants verifies the properties every hit record must satisfy
func checkHitInvariants(t *testing.T, ray core.Ray, hit *material.HitRecord) {
	t.Helper()
	if length := hit.Normal.Length(); math.Abs(length-1) > 1e-6 {
		t.Errorf("Normal %v has length %f, expected 1", hit.Normal, length)
	}
	if d := hit.Normal.Dot(ray.Direction); d > 1e-12 {
		t.Errorf("Normal %v does not oppose ray direction %v (dot=%g)", hit.Normal, ray.Direction, d)
	}
	if !vecNear(hit.Point, ray.At(hit.T), 1e-6) {
		t.Errorf("Hit point %v is not on the ray at t=%f (%v)", hit.Point, hit.T, ray.At(hit.T))
	}
}

// unbounded is a stand-in for objects without a bounding box
type unbounded struct{}

func (unbounded) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return nil, false
}

func (unbounded) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func testMaterial() material.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}
