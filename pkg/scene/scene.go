package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World          geometry.Hittable   // Everything a ray can hit
	Lights         geometry.Sampleable // Importance sampled emitters, nil for none
	Camera         *geometry.Camera
	Background     core.Vec3 // Radiance returned by rays that escape
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the recommended rendering settings for a scene
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// HasLights returns true if the scene provides something to importance
// sample. An empty light list counts as no lights.
func (s *Scene) HasLights() bool {
	if s.Lights == nil {
		return false
	}
	if list, ok := s.Lights.(*geometry.ObjectList); ok {
		return list.Len() > 0
	}
	return true
}

// WithBVH returns a copy of the scene whose world is wrapped in a BVH. A
// world that is an ObjectList contributes its members as BVH leaves.
func WithBVH(s *Scene) (*Scene, error) {
	var objects []geometry.Hittable
	if list, ok := s.World.(*geometry.ObjectList); ok {
		objects = list.Objects
	} else if s.World != nil {
		objects = []geometry.Hittable{s.World}
	}

	bvh, err := geometry.NewBVHNode(objects, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("while building bvh for scene: %w", err)
	}

	accelerated := *s
	accelerated.World = bvh
	return &accelerated, nil
}
