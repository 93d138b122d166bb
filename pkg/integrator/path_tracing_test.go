package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func vecNear(a, b core.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// mockPDF is a pdf whose samples and densities are fixed by the test
type mockPDF struct {
	direction core.Vec3
	density   float64
}

func (m mockPDF) Generate(random *rand.Rand) core.Vec3 { return m.direction }

func (m mockPDF) Value(random *rand.Rand, direction core.Vec3) float64 { return m.density }

// mockMaterial scatters through a fixed pdf and emits a fixed color
type mockMaterial struct {
	emission      core.Vec3
	pdf           pdf.PDF
	scatteringPDF float64
}

func (m *mockMaterial) Scatter(random *rand.Rand, rayIn core.Ray, hit *material.HitRecord) (material.ScatterRecord, bool) {
	return material.ScatterRecord{Attenuation: core.Splat(1), PDF: m.pdf}, true
}

func (m *mockMaterial) Emitted(rayIn core.Ray, hit *material.HitRecord) core.Vec3 {
	return m.emission
}

func (m *mockMaterial) ScatteringPDF(random *rand.Rand, rayIn core.Ray, hit *material.HitRecord, scattered core.Ray) float64 {
	return m.scatteringPDF
}

// createTestScene puts a single large floor at y=0 under a constant sky
func createTestScene(mat material.Material, background core.Vec3) *scene.Scene {
	floor := geometry.NewXZRect(-1000, 1000, -1000, 1000, 0, mat)
	return &scene.Scene{
		World:      geometry.NewObjectList(floor),
		Background: background,
	}
}

var downward = core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0.1, -1, 0.2))

func TestPathTracer_DepthTermination(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sc := createTestScene(material.NewLambertian(core.Splat(0.5)), core.Splat(1))
	pt := NewPathTracer()

	if got := pt.Trace(random, downward, sc, 0); got != (core.Vec3{}) {
		t.Errorf("Expected black for depth 0, got %v", got)
	}

	// One bounce: the floor is hit but its continuation has no depth left
	if got := pt.Trace(random, downward, sc, 1); got != (core.Vec3{}) {
		t.Errorf("Expected black for depth 1 off a non-emitter, got %v", got)
	}
}

func TestPathTracer_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.2, 0.3, 0.4)
	sc := &scene.Scene{World: geometry.NewObjectList(), Background: background}

	got := NewPathTracer().Trace(rand.New(rand.NewSource(1)), downward, sc, 5)
	if got != background {
		t.Errorf("Expected background %v, got %v", background, got)
	}
}

func TestPathTracer_LightOnlyScene(t *testing.T) {
	emission := core.NewVec3(0.3, 0.6, 0.9)
	sc := scene.NewLightOnly(emission)
	random := rand.New(rand.NewSource(3))
	pt := NewPathTracer()

	for i := 0; i < 100; i++ {
		ray := sc.Camera.GetRay(random, random.Float64(), random.Float64())
		if got := pt.Trace(random, ray, sc, 1); got != emission {
			t.Fatalf("Expected exact emission %v, got %v", emission, got)
		}
	}

	// Looking away from the panel sees only the background
	away := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	if got := pt.Trace(random, away, sc, 1); got != sc.Background {
		t.Errorf("Expected background %v, got %v", sc.Background, got)
	}
}

func TestPathTracer_DiffuseUnderUniformSky(t *testing.T) {
	// Every cosine sampled bounce off the floor escapes to the sky, so the
	// estimate is albedo × sky for every sample
	albedo := core.NewVec3(0.25, 0.5, 0.75)
	sc := createTestScene(material.NewLambertian(albedo), core.Splat(2))
	random := rand.New(rand.NewSource(5))
	pt := NewPathTracer()

	for i := 0; i < 100; i++ {
		got := pt.Trace(random, downward, sc, 2)
		if !vecNear(got, albedo.Multiply(2), 1e-9) {
			t.Fatalf("Expected %v, got %v", albedo.Multiply(2), got)
		}
	}
}

func TestPathTracer_EmptyLightListUsesMaterialPDF(t *testing.T) {
	// Same expectation as a scene without lights: an empty list must not
	// send half of the bounces in a fixed direction
	albedo := core.NewVec3(0.25, 0.5, 0.75)
	sc := createTestScene(material.NewLambertian(albedo), core.Splat(2))
	sc.Lights = geometry.NewObjectList()
	random := rand.New(rand.NewSource(5))
	pt := NewPathTracer()

	for i := 0; i < 100; i++ {
		got := pt.Trace(random, downward, sc, 2)
		if !vecNear(got, albedo.Multiply(2), 1e-9) {
			t.Fatalf("Expected %v, got %v", albedo.Multiply(2), got)
		}
	}
}

func TestPathTracer_SpecularBounce(t *testing.T) {
	mirror := geometry.NewXYRect(-10, 10, -10, 10, -1, material.NewMetal(core.Splat(0.8), 0))
	light := geometry.NewFlipFace(geometry.NewXYRect(-10, 10, -10, 10, 1, material.NewDiffuseLight(core.Splat(2))))
	sc := &scene.Scene{World: geometry.NewObjectList(mirror, light)}
	random := rand.New(rand.NewSource(7))
	pt := NewPathTracer()

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if got := pt.Trace(random, ray, sc, 2); !vecNear(got, core.Splat(1.6), 1e-12) {
		t.Errorf("Expected attenuated emission 1.6, got %v", got)
	}
	if got := pt.Trace(random, ray, sc, 1); got != (core.Vec3{}) {
		t.Errorf("Expected black when the reflection has no depth left, got %v", got)
	}
}

func TestPathTracer_DegenerateDensityContributesOnlyEmission(t *testing.T) {
	emission := core.NewVec3(0.1, 0.2, 0.3)
	up := core.NewVec3(0, 1, 0)

	tests := []struct {
		name string
		mat  *mockMaterial
	}{
		{"zero density", &mockMaterial{emission: emission, pdf: mockPDF{up, 0}, scatteringPDF: 1}},
		{"tiny density", &mockMaterial{emission: emission, pdf: mockPDF{up, 1e-12}, scatteringPDF: 1}},
		{"nan density", &mockMaterial{emission: emission, pdf: mockPDF{up, math.NaN()}, scatteringPDF: 1}},
		{"infinite density", &mockMaterial{emission: emission, pdf: mockPDF{up, math.Inf(1)}, scatteringPDF: 1}},
		{"zero direction", &mockMaterial{emission: emission, pdf: mockPDF{core.Vec3{}, 1}, scatteringPDF: 1}},
		{"nan direction", &mockMaterial{emission: emission, pdf: mockPDF{core.NewVec3(math.NaN(), 1, 0), 1}, scatteringPDF: 1}},
		{"nan scattering pdf", &mockMaterial{emission: emission, pdf: mockPDF{up, 1}, scatteringPDF: math.NaN()}},
		{"infinite weight", &mockMaterial{emission: emission, pdf: mockPDF{up, 1}, scatteringPDF: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := createTestScene(tt.mat, core.Splat(1))
			got := NewPathTracer().Trace(rand.New(rand.NewSource(1)), downward, sc, 3)
			if got != emission {
				t.Errorf("Expected emission only %v, got %v", emission, got)
			}
		})
	}
}

func TestPathTracer_CornellRadianceIsNonNegative(t *testing.T) {
	for _, build := range []func() *scene.Scene{scene.NewCornellBox, scene.NewCornellSmoke} {
		sc := build()
		random := rand.New(rand.NewSource(11))
		pt := NewPathTracer()

		nonBlack := 0
		for i := 0; i < 300; i++ {
			ray := sc.Camera.GetRay(random, random.Float64(), random.Float64())
			got := pt.Trace(random, ray, sc, 8)
			if !got.IsFinite() || got.X < 0 || got.Y < 0 || got.Z < 0 {
				t.Fatalf("sample %d: invalid radiance %v", i, got)
			}
			if got != (core.Vec3{}) {
				nonBlack++
			}
		}
		if nonBlack == 0 {
			t.Error("Expected the lit Cornell box to gather some light")
		}
	}
}
