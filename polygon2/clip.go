package polygon2

import (
	"sync"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Scratch is a per-worker reusable workspace for Cell.Clip, mirroring
// cellface.Scratch.
type Scratch struct {
	dist     []float64
	vertsOut []mgl64.Vec2
	// incoming[k] is the neighbor label of the edge ending at vertsOut[k];
	// rotated into Cell.Neighbors (which indexes by the edge's *start*)
	// once the walk completes.
	incoming []bbox.NeighborID
}

// NewScratch allocates a Scratch with modest initial capacity.
func NewScratch() *Scratch {
	return &Scratch{
		dist:     make([]float64, 0, 32),
		vertsOut: make([]mgl64.Vec2, 0, 32),
		incoming: make([]bbox.NeighborID, 0, 32),
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
	} else {
		s.dist = s.dist[:n]
	}
	s.vertsOut = s.vertsOut[:0]
	s.incoming = s.incoming[:0]
}

// Clip intersects c with the half-plane {x : (x-q)·n <= 0}, a single-pass
// simplification of cellface.Cell.Clip: since a 2D cell is its own single
// face, at most one in->out and one out->in transition occur (the cell
// stays convex), and the new edge joining them is labeled directly instead
// of needing a separate lid-stitching pass.
func (c *Cell) Clip(s *Scratch, q, n mgl64.Vec2, label bbox.NeighborID, generator *mgl64.Vec2) (changed bool, radiusSq float64) {
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

	intersect := func(a, b int) mgl64.Vec2 {
		da, db := s.dist[a], s.dist[b]
		t := da / (da - db)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		return c.Vertices[a].Add(c.Vertices[b].Sub(c.Vertices[a]).Mul(t))
	}

	for i := 0; i < nv; i++ {
		j := (i + 1) % nv
		aIn := s.dist[i] <= Tolerance
		bIn := s.dist[j] <= Tolerance
		edgeLabel := c.Neighbors[i]

		switch {
		case aIn && bIn:
			s.vertsOut = append(s.vertsOut, c.Vertices[j])
			s.incoming = append(s.incoming, edgeLabel)
		case aIn && !bIn:
			s.vertsOut = append(s.vertsOut, intersect(i, j))
			s.incoming = append(s.incoming, edgeLabel)
		case !aIn && bIn:
			s.vertsOut = append(s.vertsOut, intersect(i, j))
			s.incoming = append(s.incoming, label)
			s.vertsOut = append(s.vertsOut, c.Vertices[j])
			s.incoming = append(s.incoming, edgeLabel)
		default:
			// both outside: emit nothing
		}
	}

	out := len(s.vertsOut)
	if out < 3 {
		c.Clear()
		return true, 0
	}

	// Neighbors[k] labels the edge starting at vertsOut[k], i.e. ending at
	// vertsOut[k+1]; that's incoming[(k+1)%out].
	neighborsOut := s.incoming[:0:0]
	for k := 0; k < out; k++ {
		neighborsOut = append(neighborsOut, s.incoming[(k+1)%out])
	}

	c.Vertices, s.vertsOut = s.vertsOut, c.Vertices[:0]
	c.Neighbors = append(c.Neighbors[:0], neighborsOut...)

	if generator != nil {
		radiusSq = c.MaxRadiusSq(*generator)
	}
	return true, radiusSq
}
