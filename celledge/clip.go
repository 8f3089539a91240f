package celledge

import (
	"sync"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Scratch is a per-worker reusable workspace for Cell.Clip. Its distance,
// index and vertex buffers and its bookkeeping maps are reset between calls
// rather than reallocated; the outgoing-edge lists are allocated afresh on
// each cutting call.
type Scratch struct {
	dist     []float64
	newIndex []int

	vertsOut []mgl64.Vec3
	outOut   [][]HalfEdge

	// boundary point bookkeeping, keyed by the originating directed edge
	boundaryOf  map[[2]int]int          // (u,v) with u surviving, v excised -> new vertex index
	exitByFace  map[bbox.NeighborID]int
	entryByFace map[bbox.NeighborID]int
	fL          map[int]bbox.NeighborID // boundary vertex -> its own leftFace
	fR          map[int]bbox.NeighborID // boundary vertex -> its own rightFace
	anchor      map[int]int             // boundary vertex -> surviving anchor u
}

// NewScratch allocates a Scratch with modest initial capacity.
func NewScratch() *Scratch {
	return &Scratch{
		dist:        make([]float64, 0, 64),
		newIndex:    make([]int, 0, 64),
		vertsOut:    make([]mgl64.Vec3, 0, 64),
		outOut:      make([][]HalfEdge, 0, 64),
		boundaryOf:  make(map[[2]int]int, 32),
		exitByFace:  make(map[bbox.NeighborID]int, 16),
		entryByFace: make(map[bbox.NeighborID]int, 16),
		fL:          make(map[int]bbox.NeighborID, 16),
		fR:          make(map[int]bbox.NeighborID, 16),
		anchor:      make(map[int]int, 16),
	}
}

// scratchPool recycles Scratch instances across cells and Calculate calls.
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
	s.outOut = s.outOut[:0]
	clear(s.boundaryOf)
	clear(s.exitByFace)
	clear(s.entryByFace)
	clear(s.fL)
	clear(s.fR)
	clear(s.anchor)
}

// Clip intersects c with the half-space {x : (x-q)·n <= 0}, exactly as
// cellface.Cell.Clip, but rebuilds the adjacency-graph representation:
// copy kept vertices, create one boundary vertex per cut edge, rewire the
// surviving outgoing lists, then attach each boundary vertex's three edges
// (anchor, lid-previous, lid-next).
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

	inside := func(i int) bool { return s.dist[i] <= Tolerance }

	// Pass 1: copy kept vertices.
	for i, v := range c.Vertices {
		if inside(i) {
			s.newIndex[i] = len(s.vertsOut)
			s.vertsOut = append(s.vertsOut, v)
		} else {
			s.newIndex[i] = -1
		}
	}

	// Pass 2: create one boundary vertex per (surviving -> excised) cut
	// edge, recording the faces incident to it.
	for u := range c.Out {
		if !inside(u) {
			continue
		}
		for _, he := range c.Out[u] {
			v := he.To
			if inside(v) {
				continue
			}
			if _, ok := s.boundaryOf[[2]int{u, v}]; ok {
				continue
			}
			da, db := s.dist[u], s.dist[v]
			t := da / (da - db)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			p := c.Vertices[u].Add(c.Vertices[v].Sub(c.Vertices[u]).Mul(t))

			fLabel := he.Face
			rLabel := labelOf(c.Out, v, u) // left-face of the reverse edge v->u

			pIdx := len(s.vertsOut)
			s.vertsOut = append(s.vertsOut, p)
			s.boundaryOf[[2]int{u, v}] = pIdx
			s.fL[pIdx] = fLabel
			s.fR[pIdx] = rLabel
			s.anchor[pIdx] = s.newIndex[u]
			s.exitByFace[fLabel] = pIdx
			s.entryByFace[rLabel] = pIdx
		}
	}

	s.outOut = make([][]HalfEdge, len(s.vertsOut))

	// Pass 3: rebuild each surviving vertex's outgoing list.
	for u := range c.Out {
		if !inside(u) {
			continue
		}
		nu := s.newIndex[u]
		out := make([]HalfEdge, 0, len(c.Out[u]))
		for _, he := range c.Out[u] {
			if inside(he.To) {
				out = append(out, HalfEdge{To: s.newIndex[he.To], Face: he.Face})
			} else {
				p := s.boundaryOf[[2]int{u, he.To}]
				out = append(out, HalfEdge{To: p, Face: he.Face})
			}
		}
		s.outOut[nu] = out
	}

	// Pass 4: attach the 3 outgoing edges of each boundary vertex.
	for pIdx, anchorV := range s.anchor {
		fl := s.fL[pIdx]
		fr := s.fR[pIdx]
		out := make([]HalfEdge, 0, 3)
		out = append(out, HalfEdge{To: anchorV, Face: fr})
		if prev, ok := s.exitByFace[fr]; ok {
			out = append(out, HalfEdge{To: prev, Face: label})
		}
		if next, ok := s.entryByFace[fl]; ok {
			out = append(out, HalfEdge{To: next, Face: fl})
		}
		s.outOut[pIdx] = out
	}

	c.Vertices, s.vertsOut = s.vertsOut, c.Vertices[:0]
	c.Out, s.outOut = s.outOut, c.Out[:0]

	if len(c.Vertices) == 0 {
		return true, 0
	}
	if generator != nil {
		radiusSq = c.MaxRadiusSq(*generator)
	}
	return true, radiusSq
}

// labelOf returns the left-face label of directed edge (u, v) in out, or 0
// if absent (degenerate input only: the reverse edge always exists when the
// adjacency invariant holds).
func labelOf(out [][]HalfEdge, u, v int) bbox.NeighborID {
	for _, he := range out[u] {
		if he.To == v {
			return he.Face
		}
	}
	return 0
}
