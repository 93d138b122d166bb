package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewLightOnly creates a scene whose every camera ray lands on the front of
// a single emitting rectangle, so each pixel is exactly the emitted color
func NewLightOnly(emission core.Vec3) *Scene {
	config := geometry.DefaultCameraConfig() // looks down -Z with a 90° field of view

	panel := geometry.NewXYRect(-100, 100, -100, 100, -1, material.NewDiffuseLight(emission))

	return &Scene{
		World:      geometry.NewObjectList(panel),
		Lights:     panel,
		Camera:     geometry.NewCamera(config),
		Background: core.Vec3{},
		SamplingConfig: SamplingConfig{
			Width:           32,
			Height:          32,
			SamplesPerPixel: 4,
			MaxDepth:        4,
		},
	}
}
