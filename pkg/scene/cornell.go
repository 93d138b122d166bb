package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// NewCornellBox creates the classic Cornell box: colored walls, a ceiling
// light and two rotated white boxes
func NewCornellBox() *Scene {
	s, world := newCornellRoom()
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall, short := cornellBlocks(white)
	world.Add(tall)
	world.Add(short)

	return s
}

// NewCornellSmoke is the Cornell box with the two blocks replaced by smoke:
// a dark medium in the tall block and a light one in the short block
func NewCornellSmoke() *Scene {
	s, world := newCornellRoom()
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall, short := cornellBlocks(white)
	world.Add(geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)))

	return s
}

// newCornellRoom builds the walls and light. The returned list is the
// scene's world so callers can add the contents.
func newCornellRoom() (*Scene, *geometry.ObjectList) {
	config := geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
	}

	// Create materials
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	ceilingLight := geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light)

	world := geometry.NewObjectList(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // left wall as seen from the camera
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // right wall
		geometry.NewFlipFace(ceilingLight),                         // emits downward
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // back wall
	)

	return &Scene{
		World:      world,
		Lights:     ceilingLight,
		Camera:     geometry.NewCamera(config),
		Background: core.Vec3{},
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}, world
}

// cornellBlocks returns the tall and short blocks, already placed
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewAffine(geometry.NewRectangularPrism(core.Vec3{}, core.NewVec3(165, 330, 165), mat)).
		RotateY(15).
		Translate(265, 0, 295).
		MustBuild()

	short = geometry.NewAffine(geometry.NewRectangularPrism(core.Vec3{}, core.Splat(165), mat)).
		RotateY(-18).
		Translate(130, 0, 65).
		MustBuild()

	return tall, short
}
