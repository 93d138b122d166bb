package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ObjectList is an unordered collection resolved by linear scan
type ObjectList struct {
	Objects []Hittable
}

// NewObjectList creates a list holding the given objects
func NewObjectList(objects ...Hittable) *ObjectList {
	return &ObjectList{Objects: objects}
}

// Add appends an object to the list
func (l *ObjectList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *ObjectList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest hit over all objects
func (l *ObjectList) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(random, ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox is the union of all children. An empty list, or one holding
// an unbounded object, is unbounded.
func (l *ObjectList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		childBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = childBox
		} else {
			box = box.Union(childBox)
		}
	}

	return box, true
}

// sampleable returns the children that can be importance sampled
func (l *ObjectList) sampleable() []Sampleable {
	targets := make([]Sampleable, 0, len(l.Objects))
	for _, object := range l.Objects {
		if s, ok := object.(Sampleable); ok {
			targets = append(targets, s)
		}
	}
	return targets
}

// PDFValue averages the densities of the sampleable children, matching
// the uniform choice made by Random
func (l *ObjectList) PDFValue(random *rand.Rand, origin, direction core.Vec3) float64 {
	targets := l.sampleable()
	if len(targets) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(targets))
	sum := 0.0
	for _, target := range targets {
		sum += weight * target.PDFValue(random, origin, direction)
	}
	return sum
}

// Random picks a sampleable child uniformly and samples a direction toward it
func (l *ObjectList) Random(random *rand.Rand, origin core.Vec3) core.Vec3 {
	targets := l.sampleable()
	if len(targets) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return targets[random.Intn(len(targets))].Random(random, origin)
}
