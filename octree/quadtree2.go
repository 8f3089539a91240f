package octree

import (
	"container/heap"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

type node2 struct {
	box      bbox.Box2
	children [4]*node2
	indices  []int
}

func (n *node2) isLeaf() bool { return n.children[0] == nil }

// Quadtree2 is the 2D analogue of Octree3.
type Quadtree2 struct {
	root    *node2
	leafCap int
	points  []mgl64.Vec2
}

// NewQuadtree2 builds an index over box with the given leaf capacity.
func NewQuadtree2(box bbox.Box2, leafCap int) *Quadtree2 {
	if leafCap < 1 {
		leafCap = 1
	}
	return &Quadtree2{root: &node2{box: box}, leafCap: leafCap}
}

// Build replaces the generator set and rebuilds the whole tree.
func (t *Quadtree2) Build(points []mgl64.Vec2) {
	t.points = append(t.points[:0], points...)
	root := &node2{box: t.root.box}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	t.subdivide(root, idx, 0)
	t.root = root
}

func (t *Quadtree2) subdivide(n *node2, idx []int, depth int) {
	if len(idx) <= t.leafCap || depth >= maxDepth {
		n.indices = idx
		return
	}
	mid := n.box.Center()
	var buckets [4][]int
	for _, i := range idx {
		p := t.points[i]
		quad := 0
		if p.X() > mid.X() {
			quad |= 1
		}
		if p.Y() > mid.Y() {
			quad |= 2
		}
		buckets[quad] = append(buckets[quad], i)
	}
	for quad := 0; quad < 4; quad++ {
		childBox := quadrant2(n.box, mid, quad)
		child := &node2{box: childBox}
		t.subdivide(child, buckets[quad], depth+1)
		n.children[quad] = child
	}
}

func quadrant2(box bbox.Box2, mid mgl64.Vec2, quad int) bbox.Box2 {
	min, max := box.Min, box.Max
	if quad&1 != 0 {
		min = mgl64.Vec2{mid.X(), min.Y()}
	} else {
		max = mgl64.Vec2{mid.X(), max.Y()}
	}
	if quad&2 != 0 {
		min = mgl64.Vec2{min.X(), mid.Y()}
	} else {
		max = mgl64.Vec2{max.X(), mid.Y()}
	}
	return bbox.NewBox2(min, max)
}

func boxDistSq2(box bbox.Box2, p mgl64.Vec2) float64 {
	d := 0.0
	for axis := 0; axis < 2; axis++ {
		var lo, hi, x float64
		if axis == 0 {
			lo, hi, x = box.Min.X(), box.Max.X(), p.X()
		} else {
			lo, hi, x = box.Min.Y(), box.Max.Y(), p.Y()
		}
		if x < lo {
			d += (lo - x) * (lo - x)
		} else if x > hi {
			d += (x - hi) * (x - hi)
		}
	}
	return d
}

type heapItem2 struct {
	n         *node2
	distBound float64
}

type nodeHeap2 []heapItem2

func (h nodeHeap2) Len() int            { return len(h) }
func (h nodeHeap2) Less(i, j int) bool  { return h[i].distBound < h[j].distBound }
func (h nodeHeap2) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap2) Push(x interface{}) { *h = append(*h, x.(heapItem2)) }
func (h *nodeHeap2) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// VisitNeighbors is the 2D analogue of Octree3.VisitNeighbors: it stops
// once the next candidate's bound exceeds 4*radiusSq().
func (t *Quadtree2) VisitNeighbors(self int, query mgl64.Vec2, radiusSq func() float64, visit func(j int)) {
	h := &nodeHeap2{{n: t.root, distBound: boxDistSq2(t.root.box, query)}}
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
			heap.Push(h, heapItem2{n: c, distBound: boxDistSq2(c.box, query)})
		}
	}
}

// Generators returns the current backing position slice.
func (t *Quadtree2) Generators() []mgl64.Vec2 {
	return t.points
}

// SetGenerators is an alias for Build.
func (t *Quadtree2) SetGenerators(points []mgl64.Vec2) {
	t.Build(points)
}

// SetGenerator updates (or appends) a single generator's position by
// rebuilding the whole tree.
func (t *Quadtree2) SetGenerator(i int, p mgl64.Vec2) {
	points := append([]mgl64.Vec2(nil), t.points...)
	if i < len(points) {
		points[i] = p
	} else {
		points = append(points, p)
	}
	t.Build(points)
}
