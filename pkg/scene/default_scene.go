package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates spheres of every material in front of a mirror
// triangle on a large ground rectangle, lit by a sphere light and a sky
// colored background
func NewDefaultScene() *Scene {
	config := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:      core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
		Aperture:    0.05, // Slight depth of field blur
	}

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	metalMirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.05)
	materialGlass := material.NewDielectric(1.5)
	sun := material.NewDiffuseLight(core.NewVec3(15.0, 14.0, 13.0))

	sunSphere := geometry.NewSphere(core.NewVec3(30, 30.5, 15), 10, sun)

	world := geometry.NewObjectList(
		geometry.NewXZRect(-5000, 5000, -5000, 5000, 0, lambertianGreen), // ground
		sunSphere,
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass),

		// Hollow glass sphere with blue sphere inside. The negative radius
		// flips the normals of the inner surface.
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, materialGlass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, materialGlass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue),

		// Mirror backdrop
		geometry.NewTriangle(
			core.NewVec3(-2.5, 0, -2.5),
			core.NewVec3(2.5, 0, -2.5),
			core.NewVec3(0, 2.5, -2.5),
			metalMirror,
		),
	)

	return &Scene{
		World:      world,
		Lights:     sunSphere,
		Camera:     geometry.NewCamera(config),
		Background: core.NewVec3(0.5, 0.7, 1.0),
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
	}
}
