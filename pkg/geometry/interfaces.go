// Package geometry contains everything a ray can hit: primitives,
// aggregates, the BVH, affine instances and participating media.
package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Hittable is implemented by every object that can be intersected
type Hittable interface {
	// Hit returns the closest intersection with t in [tMin, tMax]
	Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox encloses the object over [time0, time1]; false if unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// Sampleable is a Hittable that can be importance sampled, i.e. used as a light
type Sampleable interface {
	Hittable
	pdf.Target
}

// boxPadding keeps flat primitives from producing zero-thickness boxes
const boxPadding = 0.0001
