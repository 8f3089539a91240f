// Package grid implements the uniform-bin spatial index used to accelerate
// per-cell neighbor search: a dense array of bins, each holding the indices
// of the generators that fall inside it. Candidate bins are visited shell by
// shell (Chebyshev rings of bins around the query's own bin), in ascending
// order of each shell's distance lower bound, so the search can stop once a
// shell's bound exceeds twice the shrinking-sphere radius.
package grid

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Grid3 is a uniform 3D grid of generator bins.
type Grid3 struct {
	box        bbox.Box3
	nx, ny, nz int
	cellSize   mgl64.Vec3
	bins       [][]int
	points     []mgl64.Vec3
	binOf      []int // generator index -> bin index, for SetGenerator removal
}

// NewGrid3 builds an empty grid over box with the given per-axis resolution.
// nx, ny, nz must each be at least 1.
func NewGrid3(box bbox.Box3, nx, ny, nz int) *Grid3 {
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	if nz < 1 {
		nz = 1
	}
	d := box.Max.Sub(box.Min)
	g := &Grid3{
		box: box,
		nx:  nx, ny: ny, nz: nz,
		cellSize: mgl64.Vec3{d.X() / float64(nx), d.Y() / float64(ny), d.Z() / float64(nz)},
		bins:     make([][]int, nx*ny*nz),
	}
	return g
}

func (g *Grid3) binCoord(p mgl64.Vec3) (ix, iy, iz int) {
	ix = clampIdx(int((p.X()-g.box.Min.X())/g.cellSize.X()), g.nx)
	iy = clampIdx(int((p.Y()-g.box.Min.Y())/g.cellSize.Y()), g.ny)
	iz = clampIdx(int((p.Z()-g.box.Min.Z())/g.cellSize.Z()), g.nz)
	return
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (g *Grid3) binIndex(ix, iy, iz int) int {
	return (iz*g.ny+iy)*g.nx + ix
}

// SetGenerators replaces the full generator set and rebuilds every bin.
func (g *Grid3) SetGenerators(points []mgl64.Vec3) {
	for i := range g.bins {
		g.bins[i] = g.bins[i][:0]
	}
	g.points = append(g.points[:0], points...)
	g.binOf = make([]int, len(points))
	for i, p := range points {
		ix, iy, iz := g.binCoord(p)
		b := g.binIndex(ix, iy, iz)
		g.binOf[i] = b
		g.bins[b] = append(g.bins[b], i)
	}
}

// SetGenerator updates (or appends, if i == len(points)) a single
// generator's position, moving it between bins as needed without touching
// any other bin.
func (g *Grid3) SetGenerator(i int, p mgl64.Vec3) {
	ix, iy, iz := g.binCoord(p)
	newBin := g.binIndex(ix, iy, iz)

	if i < len(g.points) {
		oldBin := g.binOf[i]
		if oldBin != newBin {
			bin := g.bins[oldBin]
			for k, idx := range bin {
				if idx == i {
					g.bins[oldBin] = append(bin[:k], bin[k+1:]...)
					break
				}
			}
			g.bins[newBin] = append(g.bins[newBin], i)
			g.binOf[i] = newBin
		}
		g.points[i] = p
		return
	}

	g.points = append(g.points, p)
	g.binOf = append(g.binOf, newBin)
	g.bins[newBin] = append(g.bins[newBin], i)
}

// Generators returns the current backing position slice (read-only; callers
// must not retain it across a further SetGenerators call).
func (g *Grid3) Generators() []mgl64.Vec3 {
	return g.points
}

// VisitNeighbors calls visit(j) for every generator j (j != self) whose bin
// might contain a candidate within the caller's shrinking search radius,
// shell by shell in ascending order of the shell's distance lower bound
// (bins within one shell are not sorted). radiusSq is re-queried
// before each shell so the search narrows as the caller's cell shrinks; the
// scan stops as soon as a shell's distance lower bound exceeds 4*radiusSq()
// — the diameter-squared test: a candidate can only affect the cell if its
// bisector crosses a vertex, which requires distance at most
// 2*sqrt(radiusSq) from the query.
func (g *Grid3) VisitNeighbors(self int, query mgl64.Vec3, radiusSq func() float64, visit func(j int)) {
	cx, cy, cz := g.binCoord(query)
	maxRing := g.nx
	if g.ny > maxRing {
		maxRing = g.ny
	}
	if g.nz > maxRing {
		maxRing = g.nz
	}
	minCell := math.Min(g.cellSize.X(), math.Min(g.cellSize.Y(), g.cellSize.Z()))

	for r := 0; r <= maxRing; r++ {
		bound := ringMinDistSq(r, minCell)
		if bound > 4*radiusSq() {
			return
		}
		g.visitRing(cx, cy, cz, r, self, query, radiusSq, visit)
	}
}

// binDistSq returns the squared distance from p to the nearest point of bin
// (ix, iy, iz), the tighter per-bin bound applied on top of the coarse ring
// bound.
func (g *Grid3) binDistSq(ix, iy, iz int, p mgl64.Vec3) float64 {
	d := 0.0
	lo := g.box.Min.X() + float64(ix)*g.cellSize.X()
	hi := lo + g.cellSize.X()
	if p.X() < lo {
		d += (lo - p.X()) * (lo - p.X())
	} else if p.X() > hi {
		d += (p.X() - hi) * (p.X() - hi)
	}
	lo = g.box.Min.Y() + float64(iy)*g.cellSize.Y()
	hi = lo + g.cellSize.Y()
	if p.Y() < lo {
		d += (lo - p.Y()) * (lo - p.Y())
	} else if p.Y() > hi {
		d += (p.Y() - hi) * (p.Y() - hi)
	}
	lo = g.box.Min.Z() + float64(iz)*g.cellSize.Z()
	hi = lo + g.cellSize.Z()
	if p.Z() < lo {
		d += (lo - p.Z()) * (lo - p.Z())
	} else if p.Z() > hi {
		d += (p.Z() - hi) * (p.Z() - hi)
	}
	return d
}

// ringMinDistSq is a conservative (never-too-large) lower bound on the
// squared distance from the query point to any point in a cell at Chebyshev
// ring-distance r from the query's own cell: at ring r>=1 the nearest such
// cell can be as little as (r-1) whole cells away along the shortest axis.
func ringMinDistSq(r int, minCellDim float64) float64 {
	if r == 0 {
		return 0
	}
	d := float64(r-1) * minCellDim
	if d < 0 {
		d = 0
	}
	return d * d
}

func (g *Grid3) visitRing(cx, cy, cz, r, self int, query mgl64.Vec3, radiusSq func() float64, visit func(j int)) {
	visitBin := func(ix, iy, iz int) {
		if ix < 0 || ix >= g.nx || iy < 0 || iy >= g.ny || iz < 0 || iz >= g.nz {
			return
		}
		if g.binDistSq(ix, iy, iz, query) > 4*radiusSq() {
			return
		}
		for _, j := range g.bins[g.binIndex(ix, iy, iz)] {
			if j != self {
				visit(j)
			}
		}
	}

	if r == 0 {
		visitBin(cx, cy, cz)
		return
	}

	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			for dz := -r; dz <= r; dz++ {
				if abs(dx) != r && abs(dy) != r && abs(dz) != r {
					continue // interior of the cube, already visited at a smaller ring
				}
				visitBin(cx+dx, cy+dy, cz+dz)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
