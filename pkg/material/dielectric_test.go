package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectric_ReflectsAndRefracts(t *testing.T) {
	glass := NewDielectric(1.5)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		random := rand.New(rand.NewSource(seed))
		result, scattered := glass.Scatter(random, ray, hit)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if !result.IsSpecular() {
			t.Fatal("Dielectric should produce a specular ray")
		}
		if result.Attenuation != core.Splat(1) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}

		if result.SpecularRay.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasReflection || !hasRefraction {
		t.Errorf("Expected both reflection and refraction (reflect=%v refract=%v)", hasReflection, hasRefraction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(1))

	// Exiting glass at a shallow angle cannot refract
	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(1, 0.2, 0).Normalize())
	hit := &HitRecord{Normal: core.NewVec3(0, -1, 0), FrontFace: false}

	for i := 0; i < 100; i++ {
		result, _ := glass.Scatter(random, ray, hit)
		if result.SpecularRay.Direction.Y >= 0 {
			t.Fatalf("Expected reflection back into the glass, got %v", result.SpecularRay.Direction)
		}
	}
}

func TestReflectance_Bounds(t *testing.T) {
	if r := Reflectance(1.0, 1.0/1.5); math.Abs(r-0.04) > 1e-9 {
		t.Errorf("Expected 4%% reflectance at normal incidence, got %f", r)
	}
	if r := Reflectance(0.0, 1.0/1.5); math.Abs(r-1.0) > 1e-9 {
		t.Errorf("Expected full reflectance at grazing incidence, got %f", r)
	}
}
