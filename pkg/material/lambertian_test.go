package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_ScatterMatchesScatteringPDF(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(random, ray, hit)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.IsSpecular() || scatter.PDF == nil {
		t.Fatal("Lambertian scattering must be probabilistic")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}

	// The exposed distribution and ScatteringPDF must agree
	for i := 0; i < 100; i++ {
		direction := scatter.PDF.Generate(random)
		scattered := core.NewRay(hit.Point, direction)

		fromPDF := scatter.PDF.Value(random, direction)
		fromMaterial := lambertian.ScatteringPDF(random, ray, hit, scattered)
		if math.Abs(fromPDF-fromMaterial) > 1e-10 {
			t.Errorf("PDF mismatch: distribution %f, material %f", fromPDF, fromMaterial)
		}
	}
}

func TestLambertian_ScatteringPDFBelowSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	random := rand.New(rand.NewSource(1))
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0)}

	below := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))
	if got := lambertian.ScatteringPDF(random, core.Ray{}, hit, below); got != 0 {
		t.Errorf("Expected zero density below the surface, got %f", got)
	}

	straightUp := core.NewRay(core.Vec3{}, core.NewVec3(0, 5, 0))
	if got := lambertian.ScatteringPDF(random, core.Ray{}, hit, straightUp); math.Abs(got-1/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/π along the normal, got %f", got)
	}
}

func TestLambertian_TextureLookup(t *testing.T) {
	checker := NewCheckerTexture(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)
	random := rand.New(rand.NewSource(1))

	even := &HitRecord{Point: core.NewVec3(0.1, 0.1, 0.1), Normal: core.NewVec3(0, 1, 0)}
	odd := &HitRecord{Point: core.NewVec3(-0.1, 0.1, 0.1), Normal: core.NewVec3(0, 1, 0)}

	s1, _ := lambertian.Scatter(random, core.Ray{}, even)
	s2, _ := lambertian.Scatter(random, core.Ray{}, odd)
	if s1.Attenuation != core.NewVec3(1, 0, 0) || s2.Attenuation != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected checker colors, got %v and %v", s1.Attenuation, s2.Attenuation)
	}
}
