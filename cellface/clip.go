package cellface

import (
	"sync"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// edgeKey is the dedup key for an intersection vertex created by cutting an
// undirected original-polytope edge. Keyed by endpoint indices (not
// positions) so numerically close but topologically distinct edges never
// collide, and so the two faces sharing a cut edge agree on the vertex.
type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Scratch is a per-worker reusable workspace for Cell.Clip. Its buffers are
// reset ([:0]) rather than reallocated between cells. A Scratch must not be
// shared between goroutines; the tessellation driver hands one to each
// worker for the lifetime of its task.
type Scratch struct {
	dist     []float64 // per-vertex signed distance, this clip only
	newIndex []int     // old vertex index -> new vertex index, -1 if dropped

	vertsOut []mgl64.Vec3

	faceCountsOut    []int
	faceIndicesOut   []int
	faceNeighborsOut []bbox.NeighborID

	edgeCache map[edgeKey]int
	lidNext   map[int]int

	ring []int // scratch ring buffer reused per face during the walk
}

// NewScratch allocates a Scratch with modest initial capacity. Capacity
// grows on demand like any Go slice/map; the point of reuse is to avoid
// reallocating across the many clips performed for one cell, not to avoid
// ever allocating.
func NewScratch() *Scratch {
	return &Scratch{
		dist:             make([]float64, 0, 64),
		newIndex:         make([]int, 0, 64),
		vertsOut:         make([]mgl64.Vec3, 0, 64),
		faceCountsOut:    make([]int, 0, 32),
		faceIndicesOut:   make([]int, 0, 128),
		faceNeighborsOut: make([]bbox.NeighborID, 0, 32),
		edgeCache:        make(map[edgeKey]int, 32),
		lidNext:          make(map[int]int, 16),
		ring:             make([]int, 0, 16),
	}
}

// scratchPool recycles Scratch instances so clip buffers survive across the
// many cells a worker processes within one Calculate call and across
// successive calls.
var scratchPool = sync.Pool{
	New: func() interface{} { return NewScratch() },
}

// AcquireScratch fetches a Scratch from the pool, allocating a fresh one if
// none is available. Callers must return it with ReleaseScratch once their
// task completes.
func AcquireScratch() *Scratch {
	return scratchPool.Get().(*Scratch)
}

// ReleaseScratch returns s to the pool for reuse by a future Acquire call.
func ReleaseScratch(s *Scratch) {
	scratchPool.Put(s)
}

func (s *Scratch) reset(n int) {
	if cap(s.dist) < n {
		s.dist = make([]float64, n)
		s.newIndex = make([]int, n)
	} else {
		s.dist = s.dist[:n]
		s.newIndex = s.newIndex[:n]
	}
	s.vertsOut = s.vertsOut[:0]
	s.faceCountsOut = s.faceCountsOut[:0]
	s.faceIndicesOut = s.faceIndicesOut[:0]
	s.faceNeighborsOut = s.faceNeighborsOut[:0]
	clear(s.edgeCache)
	clear(s.lidNext)
}

// Clip intersects c with the half-space {x : (x-q)·n <= 0}, discarding the
// side n points toward, and labels the new cut face (if any) with label.
// If generator is non-nil, the returned radiusSq is the new maximum squared
// distance from *generator to any vertex of the clipped cell; it is only
// meaningful when changed is true.
//
// The cut classifies every vertex, early-outs when the plane misses the
// cell, and otherwise rebuilds every face, emitting kept vertices and
// clamped plane intersections deduped per undirected edge. The lid face is
// then stitched from the (entry, exit) segment each cut face contributes:
// following the chain entry -> exit -> ... until it closes yields the lid
// polygon with the winding the outward-normal convention requires.
func (c *Cell) Clip(s *Scratch, q, n mgl64.Vec3, label bbox.NeighborID, generator *mgl64.Vec3) (changed bool, radiusSq float64) {
	if c.IsEmpty() {
		return false, 0
	}

	nv := len(c.Vertices)
	s.reset(nv)

	allInside, allOutside := true, true
	for i, v := range c.Vertices {
		d := v.Sub(q).Dot(n)
		s.dist[i] = d
		if d > Tolerance {
			allInside = false
		}
		if d < -Tolerance {
			allOutside = false
		}
	}
	if allInside {
		return false, 0
	}
	if allOutside {
		c.Clear()
		return true, 0
	}

	// Copy kept vertices, building the old->new index map.
	for i, v := range c.Vertices {
		if s.dist[i] <= Tolerance {
			s.newIndex[i] = len(s.vertsOut)
			s.vertsOut = append(s.vertsOut, v)
		} else {
			s.newIndex[i] = -1
		}
	}

	intersect := func(a, b int) int {
		key := makeEdgeKey(a, b)
		if idx, ok := s.edgeCache[key]; ok {
			return idx
		}
		da, db := s.dist[a], s.dist[b]
		t := da / (da - db)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		p := c.Vertices[a].Add(c.Vertices[b].Sub(c.Vertices[a]).Mul(t))
		idx := len(s.vertsOut)
		s.vertsOut = append(s.vertsOut, p)
		s.edgeCache[key] = idx
		return idx
	}

	offset := 0
	for f, count := range c.FaceCounts {
		faceIdx := c.FaceIndices[offset : offset+count]
		offset += count

		s.ring = s.ring[:0]
		exitPoint, entryPoint := -1, -1

		for k := 0; k < count; k++ {
			a := faceIdx[k]
			b := faceIdx[(k+1)%count]
			aIn := s.dist[a] <= Tolerance
			bIn := s.dist[b] <= Tolerance

			switch {
			case aIn && bIn:
				s.ring = append(s.ring, s.newIndex[b])
			case aIn && !bIn:
				iv := intersect(a, b)
				s.ring = append(s.ring, iv)
				exitPoint = iv
			case !aIn && bIn:
				iv := intersect(a, b)
				s.ring = append(s.ring, iv)
				s.ring = append(s.ring, s.newIndex[b])
				entryPoint = iv
			default:
				// both outside: emit nothing
			}
		}

		if len(s.ring) >= 3 {
			s.faceCountsOut = append(s.faceCountsOut, len(s.ring))
			s.faceIndicesOut = append(s.faceIndicesOut, s.ring...)
			s.faceNeighborsOut = append(s.faceNeighborsOut, c.FaceNeighbors[f])
		}

		if entryPoint >= 0 && exitPoint >= 0 {
			// This face's boundary runs entryPoint -> ... -> exitPoint
			// (in the face's own outward orientation); the lid face
			// borders it in the opposite direction.
			s.lidNext[entryPoint] = exitPoint
		}
	}

	// Stitch the lid face by following the directed chain until it closes.
	if len(s.lidNext) > 0 {
		var start int
		for k := range s.lidNext {
			start = k
			break
		}
		lid := make([]int, 0, len(s.lidNext))
		cur := start
		for {
			lid = append(lid, cur)
			next, ok := s.lidNext[cur]
			if !ok {
				lid = nil // broken chain: degenerate, drop the lid
				break
			}
			cur = next
			if cur == start {
				break
			}
			if len(lid) > len(s.lidNext)+1 {
				lid = nil // safety valve against a malformed chain
				break
			}
		}
		if len(lid) >= 3 {
			s.faceCountsOut = append(s.faceCountsOut, len(lid))
			s.faceIndicesOut = append(s.faceIndicesOut, lid...)
			s.faceNeighborsOut = append(s.faceNeighborsOut, label)
		}
	}

	// Swap the rebuilt geometry into the cell; next call reuses these
	// now-stale slices as its own scratch output buffers.
	c.Vertices, s.vertsOut = s.vertsOut, c.Vertices[:0]
	c.FaceCounts, s.faceCountsOut = s.faceCountsOut, c.FaceCounts[:0]
	c.FaceIndices, s.faceIndicesOut = s.faceIndicesOut, c.FaceIndices[:0]
	c.FaceNeighbors, s.faceNeighborsOut = s.faceNeighborsOut, c.FaceNeighbors[:0]

	if len(c.Vertices) == 0 {
		return true, 0
	}

	if generator != nil {
		radiusSq = c.MaxRadiusSq(*generator)
	}
	return true, radiusSq
}
