package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when a BVH is built from no objects
	ErrEmptyBVH = errors.New("bvh: no objects")

	// ErrUnboundedObject is returned when an object has no bounding box
	ErrUnboundedObject = errors.New("bvh: object has no bounding box")
)

var bvhLog = log.New("geometry")

// BVHNode is a binary bounding volume hierarchy node. Children are either
// further nodes or the leaf objects themselves.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB

	single bool // Left and Right are the same object
}

type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// NewBVHNode builds a hierarchy over objects. Every object must be bounded
// over [time0, time1]. The input slice is not modified.
func NewBVHNode(objects []Hittable, time0, time1 float64) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("while building bvh over object %d (%T): %w", i, object, ErrUnboundedObject)
		}
		entries[i] = bvhEntry{object: object, box: box.Pad(boxPadding)}
	}

	node := buildBVH(entries)
	if stats := node.getStats(); stats.totalNodes > 0 {
		bvhLog.Debugf("built bvh over %d objects: %d nodes, max depth %d", len(objects), stats.totalNodes, stats.maxDepth)
	}
	return node, nil
}

// buildBVH splits entries at the median of their box centers along the
// longest axis of the centroid bounds
func buildBVH(entries []bvhEntry) *BVHNode {
	switch len(entries) {
	case 1:
		return &BVHNode{Left: entries[0].object, Right: entries[0].object, Box: entries[0].box, single: true}
	case 2:
		return &BVHNode{
			Left:  entries[0].object,
			Right: entries[1].object,
			Box:   entries[0].box.Union(entries[1].box),
		}
	}

	centers := make([]core.Vec3, len(entries))
	for i, entry := range entries {
		centers[i] = entry.box.Center()
	}
	axis := core.NewAABBFromPoints(centers...).LongestAxis()

	sortEntriesByAxis(entries, axis)

	mid := len(entries) / 2
	left := buildBVH(entries[:mid])
	right := buildBVH(entries[mid:])

	return &BVHNode{Left: left, Right: right, Box: left.Box.Union(right.Box)}
}

// sortEntriesByAxis sorts entries by their bounding box center along the specified axis
func sortEntriesByAxis(entries []bvhEntry, axis int) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].box.Center().Axis(axis) < entries[j].box.Center().Axis(axis)
	})
}

// Hit tests the node box first and only then descends into the children.
// The right child is tested against the left child's hit distance.
func (n *BVHNode) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(random, ray, tMin, tMax)
	if n.single {
		return leftHit, hitLeft
	}

	closestSoFar := tMax
	if hitLeft {
		closestSoFar = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(random, ray, tMin, closestSoFar); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the box computed at construction
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	leafObjects int
	maxDepth    int
}

// getStats returns statistics about the BVH structure
func (n *BVHNode) getStats() bvhStats {
	stats := bvhStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	children := []Hittable{n.Left}
	if !n.single {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.leafObjects++
		}
	}
}
