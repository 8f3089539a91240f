// Package octree implements the octree (3D) / quadtree (2D) spatial index,
// the alternative to package grid for accelerating per-cell neighbor search
// over heavily non-uniform generator distributions: recursive 2^D
// subdivision with a leaf capacity, and a best-first traversal ordered by
// per-node distance bound via container/heap. It exposes the same
// VisitNeighbors(self, query, radiusSq, visit) shape as package grid so the
// tessellation driver can use either index interchangeably.
package octree

import (
	"container/heap"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

type node3 struct {
	box      bbox.Box3
	children [8]*node3 // nil for a leaf
	indices  []int     // populated only at a leaf
}

func (n *node3) isLeaf() bool { return n.children[0] == nil }

// Octree3 is a static octree over a fixed domain box. Rebuilding is
// whole-tree only: package grid's O(1) SetGenerator is not mirrored here, a
// single moved generator triggers a full Build. Correct and simple, at the
// cost of O(N log N) instead of O(1) per move; prefer the grid when
// single-point moves dominate.
type Octree3 struct {
	root    *node3
	leafCap int
	points  []mgl64.Vec3
}

// NewOctree3 builds an index over box; each leaf holds at most leafCap
// points before it is subdivided.
func NewOctree3(box bbox.Box3, leafCap int) *Octree3 {
	if leafCap < 1 {
		leafCap = 1
	}
	return &Octree3{root: &node3{box: box}, leafCap: leafCap}
}

// Build replaces the generator set and rebuilds the whole tree.
func (t *Octree3) Build(points []mgl64.Vec3) {
	t.points = append(t.points[:0], points...)
	root := &node3{box: t.root.box}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	t.subdivide(root, idx, 0)
	t.root = root
}

// maxDepth bounds recursion against degenerate inputs (many coincident
// points would otherwise subdivide forever).
const maxDepth = 24

func (t *Octree3) subdivide(n *node3, idx []int, depth int) {
	if len(idx) <= t.leafCap || depth >= maxDepth {
		n.indices = idx
		return
	}
	mid := n.box.Center()
	var buckets [8][]int
	for _, i := range idx {
		p := t.points[i]
		oct := 0
		if p.X() > mid.X() {
			oct |= 1
		}
		if p.Y() > mid.Y() {
			oct |= 2
		}
		if p.Z() > mid.Z() {
			oct |= 4
		}
		buckets[oct] = append(buckets[oct], i)
	}
	for oct := 0; oct < 8; oct++ {
		childBox := octant3(n.box, mid, oct)
		child := &node3{box: childBox}
		t.subdivide(child, buckets[oct], depth+1)
		n.children[oct] = child
	}
}

func octant3(box bbox.Box3, mid mgl64.Vec3, oct int) bbox.Box3 {
	min, max := box.Min, box.Max
	if oct&1 != 0 {
		min = mgl64.Vec3{mid.X(), min.Y(), min.Z()}
	} else {
		max = mgl64.Vec3{mid.X(), max.Y(), max.Z()}
	}
	if oct&2 != 0 {
		min = mgl64.Vec3{min.X(), mid.Y(), min.Z()}
	} else {
		max = mgl64.Vec3{max.X(), mid.Y(), max.Z()}
	}
	if oct&4 != 0 {
		min = mgl64.Vec3{min.X(), min.Y(), mid.Z()}
	} else {
		max = mgl64.Vec3{max.X(), max.Y(), mid.Z()}
	}
	return bbox.NewBox3(min, max)
}

// boxDistSq returns the squared distance from p to the nearest point of box
// (0 if p is inside).
func boxDistSq3(box bbox.Box3, p mgl64.Vec3) float64 {
	d := 0.0
	for axis := 0; axis < 3; axis++ {
		var lo, hi, x float64
		switch axis {
		case 0:
			lo, hi, x = box.Min.X(), box.Max.X(), p.X()
		case 1:
			lo, hi, x = box.Min.Y(), box.Max.Y(), p.Y()
		default:
			lo, hi, x = box.Min.Z(), box.Max.Z(), p.Z()
		}
		if x < lo {
			d += (lo - x) * (lo - x)
		} else if x > hi {
			d += (x - hi) * (x - hi)
		}
	}
	return d
}

type heapItem3 struct {
	n         *node3
	distBound float64
}

type nodeHeap3 []heapItem3

func (h nodeHeap3) Len() int            { return len(h) }
func (h nodeHeap3) Less(i, j int) bool  { return h[i].distBound < h[j].distBound }
func (h nodeHeap3) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap3) Push(x interface{}) { *h = append(*h, x.(heapItem3)) }
func (h *nodeHeap3) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// VisitNeighbors performs a best-first descent of the tree, visiting every
// generator in a leaf as soon as that leaf's box distance bound is reached,
// and stopping once the next candidate's bound exceeds 4*radiusSq(), the
// same diameter-squared test the grid applies.
func (t *Octree3) VisitNeighbors(self int, query mgl64.Vec3, radiusSq func() float64, visit func(j int)) {
	h := &nodeHeap3{{n: t.root, distBound: boxDistSq3(t.root.box, query)}}
	for h.Len() > 0 {
		item := (*h)[0]
		if item.distBound > 4*radiusSq() {
			return
		}
		heap.Pop(h)
		n := item.n
		if n.isLeaf() {
			for _, j := range n.indices {
				if j != self {
					visit(j)
				}
			}
			continue
		}
		for _, c := range n.children {
			if c == nil {
				continue
			}
			if c.isLeaf() && len(c.indices) == 0 {
				continue
			}
			heap.Push(h, heapItem3{n: c, distBound: boxDistSq3(c.box, query)})
		}
	}
}

// Generators returns the current backing position slice.
func (t *Octree3) Generators() []mgl64.Vec3 {
	return t.points
}

// SetGenerators is an alias for Build, satisfying the tessellation
// driver's Index3 interface alongside package grid.
func (t *Octree3) SetGenerators(points []mgl64.Vec3) {
	t.Build(points)
}

// SetGenerator updates (or appends) a single generator's position by
// rebuilding the whole tree — see the Octree3 doc comment.
func (t *Octree3) SetGenerator(i int, p mgl64.Vec3) {
	points := append([]mgl64.Vec3(nil), t.points...)
	if i < len(points) {
		points[i] = p
	} else {
		points = append(points, p)
	}
	t.Build(points)
}
