package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestRectangularPrism_Hit(t *testing.T) {
	prism := NewRectangularPrism(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 0), testMaterial())

	tests := []struct {
		name           string
		ray            core.Ray
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			// Face normals point along +axis, so the min faces report back hits from outside
			name:           "enters through near z face",
			ray:            core.NewRay(core.NewVec3(0.5, 1, -5), core.NewVec3(0, 0, 1)),
			expectedT:      5,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "enters through top",
			ray:            core.NewRay(core.NewVec3(0.5, 10, 1), core.NewVec3(0, -1, 0)),
			expectedT:      8,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "exits from inside",
			ray:            core.NewRay(core.NewVec3(0.5, 1, 1), core.NewVec3(1, 0, 0)),
			expectedT:      0.5,
			expectedFront:  false,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := prism.Hit(nil, tt.ray, core.Epsilon, core.Infinity)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, tolerance) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			checkHitInvariants(t, tt.ray, hit)
		})
	}
}

func TestRectangularPrism_Miss(t *testing.T) {
	prism := NewCanonicalPrism(testMaterial())
	ray := core.NewRay(core.NewVec3(2, 2, -5), core.NewVec3(0, 0, 1))

	if _, isHit := prism.Hit(nil, ray, core.Epsilon, core.Infinity); isHit {
		t.Error("Expected miss")
	}
}

func TestRectangularPrism_BoundingBox(t *testing.T) {
	prism := NewCanonicalPrism(testMaterial())

	box, ok := prism.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Prism should be bounded")
	}
	if !vecNear(box.Min, core.Vec3{}, tolerance) || !vecNear(box.Max, core.Splat(1), tolerance) {
		t.Errorf("Expected unit box, got %v", box)
	}
}

func TestRectangularPrism_PDFValueAveragesFaces(t *testing.T) {
	prism := NewRectangularPrism(core.NewVec3(-1, 1, -1), core.NewVec3(1, 3, 1), testMaterial())
	origin := core.Vec3{}

	// Straight up crosses the bottom face (pdf 1/4) and top face (pdf 9/4)
	expected := (0.25 + 2.25) / 6
	if got := prism.PDFValue(nil, origin, core.NewVec3(0, 1, 0)); math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected pdf %f, got %f", expected, got)
	}
}
