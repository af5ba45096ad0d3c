// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package accel implements the bounding volume hierarchy the render
// package's integrator traverses for every primary and scattered ray:
// SAH-bucketed construction and stack-based, slab-pruned traversal.
package accel

import (
	"sort"

	"pathtracer/geom"
	"pathtracer/math/lin"
)

// numBuckets is the number of SAH bins tried per candidate split axis.
const numBuckets = 12

// maxLeafSize is the primitive-count threshold below which construction
// falls back to a median split instead of SAH bucket binning.
const maxLeafSize = 4

// node is one entry of the BVH's flattened node array.
type node struct {
	bounds geom.AABB

	// Leaf fields (isLeaf == true): primitives in [start, end) of the
	// BVH's owned, reordered primitive array belong to this leaf.
	start, end int

	// Interior fields: indices of the two children in the flattened
	// node array, and the axis the split was made along.
	left, right int
	axis        int

	isLeaf bool
}

// BVH is a bounding volume hierarchy over an immutable set of bounded
// hittables, built once at scene-freeze time. The primitive array is
// permuted in place during construction so every leaf's range is
// contiguous; callers must index through BVH.Primitives, not whatever
// slice they originally passed to Build.
type BVH struct {
	Primitives []geom.Hittable
	nodes      []node
	root       int
}

// Build constructs a BVH over prims, reordering prims in place.
func Build(prims []geom.Hittable) *BVH {
	b := &BVH{Primitives: prims}
	if len(prims) == 0 {
		b.nodes = append(b.nodes, node{isLeaf: true, bounds: geom.EmptyAABB()})
		b.root = 0
		return b
	}
	b.root = b.build(0, len(prims))
	return b
}

type primInfo struct {
	bounds   geom.AABB
	centroid geom.Vec3
}

func (b *BVH) build(start, end int) int {
	bounds := geom.EmptyAABB()
	centroidBounds := geom.EmptyAABB()
	infos := make([]primInfo, end-start)
	for i := start; i < end; i++ {
		pb := b.Primitives[i].BoundingBox()
		infos[i-start] = primInfo{bounds: pb, centroid: pb.Center()}
		bounds = bounds.Union(pb)
		centroidBounds = centroidBounds.UnionPoint(pb.Center())
	}

	n := end - start
	if n <= 1 || centroidBounds.Volume() == 0 {
		return b.emitLeaf(start, end, bounds)
	}

	axis := centroidBounds.LargestExtentAxis()

	if n <= maxLeafSize {
		b.partitionMedian(start, end, axis)
		return b.emitInterior(start, end, axis, bounds)
	}

	splitIdx, ok := b.sahSplit(start, end, axis, bounds, centroidBounds, infos)
	if !ok {
		return b.emitLeaf(start, end, bounds)
	}
	return b.emitInteriorAt(start, end, splitIdx, axis, bounds)
}

func (b *BVH) emitLeaf(start, end int, bounds geom.AABB) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, node{isLeaf: true, start: start, end: end, bounds: bounds})
	return idx
}

// emitInterior recurses on [start,end) split at its current midpoint
// (used by the median-partition path, where partitionMedian has
// already reordered around the n/2 midpoint).
func (b *BVH) emitInterior(start, end, axis int, bounds geom.AABB) int {
	mid := start + (end-start)/2
	return b.emitInteriorAt(start, end, mid, axis, bounds)
}

func (b *BVH) emitInteriorAt(start, end, mid, axis int, bounds geom.AABB) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, node{})
	left := b.build(start, mid)
	right := b.build(mid, end)
	b.nodes[idx] = node{
		isLeaf: false,
		left:   left,
		right:  right,
		axis:   axis,
		bounds: b.nodes[left].bounds.Union(b.nodes[right].bounds),
	}
	return idx
}

func (b *BVH) partitionMedian(start, end, axis int) {
	slice := b.Primitives[start:end]
	sort.Slice(slice, func(i, j int) bool {
		return slice[i].BoundingBox().Center().Component(axis) < slice[j].BoundingBox().Center().Component(axis)
	})
}

type bucket struct {
	count  int
	bounds geom.AABB
}

// sahSplit buckets primitives in [start,end) along axis into
// numBuckets bins, evaluates the surface-area-heuristic cost of every
// candidate split, and partitions in place at the lowest-cost split if
// it beats the cost of leaving the range as one leaf.
func (b *BVH) sahSplit(start, end, axis int, bounds, centroidBounds geom.AABB, infos []primInfo) (mid int, ok bool) {
	n := end - start
	buckets := make([]bucket, numBuckets)
	for i := range buckets {
		buckets[i].bounds = geom.EmptyAABB()
	}

	bucketOf := func(info primInfo) int {
		offset := centroidBounds.PointOffset(info.centroid).Component(axis)
		idx := int(float64(numBuckets) * offset)
		if idx < 0 {
			idx = 0
		}
		if idx > numBuckets-1 {
			idx = numBuckets - 1
		}
		return idx
	}

	for _, info := range infos {
		bi := bucketOf(info)
		buckets[bi].count++
		buckets[bi].bounds = buckets[bi].bounds.Union(info.bounds)
	}

	totalSA := bounds.SurfaceArea()
	bestCost := -1.0
	bestSplit := -1
	for i := 0; i < numBuckets-1; i++ {
		leftBounds, rightBounds := geom.EmptyAABB(), geom.EmptyAABB()
		nLeft, nRight := 0, 0
		for j := 0; j <= i; j++ {
			leftBounds = leftBounds.Union(buckets[j].bounds)
			nLeft += buckets[j].count
		}
		for j := i + 1; j < numBuckets; j++ {
			rightBounds = rightBounds.Union(buckets[j].bounds)
			nRight += buckets[j].count
		}
		if nLeft == 0 || nRight == 0 {
			continue
		}
		cost := 0.125 + (float64(nLeft)*leftBounds.SurfaceArea()+float64(nRight)*rightBounds.SurfaceArea())/totalSA
		if bestSplit < 0 || cost < bestCost {
			bestCost = cost
			bestSplit = i
		}
	}

	leafCost := float64(n)
	if bestSplit < 0 || bestCost >= leafCost {
		return 0, false
	}

	slice := b.Primitives[start:end]
	sliceInfos := infos
	mid = start + partitionByBucket(slice, sliceInfos, bucketOf, bestSplit)
	return mid, true
}

// partitionByBucket reorders slice (and its parallel infos) so every
// primitive whose bucket index is <= splitBucket comes first, and
// returns the count of primitives moved to the left side.
func partitionByBucket(slice []geom.Hittable, infos []primInfo, bucketOf func(primInfo) int, splitBucket int) int {
	i := 0
	for j := 0; j < len(slice); j++ {
		if bucketOf(infos[j]) <= splitBucket {
			slice[i], slice[j] = slice[j], slice[i]
			infos[i], infos[j] = infos[j], infos[i]
			i++
		}
	}
	return i
}

// Intersect walks the BVH with an explicit stack, slab-testing each
// node's AABB and tightening tMax as closer hits are found.
func (b *BVH) Intersect(r geom.Ray, tMin, tMax float64, rng lin.RNG) (geom.Hit, bool) {
	invDir := geom.Vec3{X: invComponent(r.Dir.X), Y: invComponent(r.Dir.Y), Z: invComponent(r.Dir.Z)}

	stack := make([]int, 0, 64)
	stack = append(stack, b.root)

	found := false
	var best geom.Hit
	closest := tMax

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := b.nodes[idx]

		tEnter, tExit, hit := n.bounds.RayIntersects(r, invDir, tMin, closest)
		if !hit || tEnter > tExit {
			continue
		}

		if n.isLeaf {
			for i := n.start; i < n.end; i++ {
				if h, ok := b.Primitives[i].Intersect(r, tMin, closest, rng); ok {
					closest = h.T
					best = h
					found = true
				}
			}
			continue
		}

		stack = append(stack, n.right, n.left)
	}

	return best, found
}

// BoundingBox returns the root node's AABB, letting a BVH itself be
// used as a geom.Hittable (e.g. nested inside another acceleration
// structure, or queried for a scene's overall extent).
func (b *BVH) BoundingBox() geom.AABB {
	return b.nodes[b.root].bounds
}

// SurfaceArea sums the surface area of every primitive the BVH holds.
func (b *BVH) SurfaceArea() float64 {
	total := 0.0
	for _, p := range b.Primitives {
		total += p.SurfaceArea()
	}
	return total
}

func invComponent(d float64) float64 {
	return 1 / d
}
