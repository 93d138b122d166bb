package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTwoSpheres creates two large checkered spheres touching at the origin,
// lit only by a sky colored background
func NewTwoSpheres() *Scene {
	config := geometry.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}

	checker := material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	checkered := material.NewTexturedLambertian(checker)

	world := geometry.NewObjectList()
	for _, y := range []float64{-10, 10} {
		world.Add(geometry.NewAffine(geometry.NewCanonicalSphere(checkered)).
			ScaleUniform(10).
			Translate(0, y, 0).
			MustBuild())
	}

	return &Scene{
		World:      world,
		Camera:     geometry.NewCamera(config),
		Background: core.NewVec3(0.70, 0.80, 1.00),
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}
