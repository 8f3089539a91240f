package grid

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Grid2 is the 2D analogue of Grid3.
type Grid2 struct {
	box      bbox.Box2
	nx, ny   int
	cellSize mgl64.Vec2
	bins     [][]int
	points   []mgl64.Vec2
	binOf    []int
}

// NewGrid2 builds an empty grid over box with the given per-axis resolution.
func NewGrid2(box bbox.Box2, nx, ny int) *Grid2 {
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	d := box.Max.Sub(box.Min)
	return &Grid2{
		box: box,
		nx:  nx, ny: ny,
		cellSize: mgl64.Vec2{d.X() / float64(nx), d.Y() / float64(ny)},
		bins:     make([][]int, nx*ny),
	}
}

func (g *Grid2) binCoord(p mgl64.Vec2) (ix, iy int) {
	ix = clampIdx(int((p.X()-g.box.Min.X())/g.cellSize.X()), g.nx)
	iy = clampIdx(int((p.Y()-g.box.Min.Y())/g.cellSize.Y()), g.ny)
	return
}

func (g *Grid2) binIndex(ix, iy int) int {
	return iy*g.nx + ix
}

// SetGenerators replaces the full generator set and rebuilds every bin.
func (g *Grid2) SetGenerators(points []mgl64.Vec2) {
	for i := range g.bins {
		g.bins[i] = g.bins[i][:0]
	}
	g.points = append(g.points[:0], points...)
	g.binOf = make([]int, len(points))
	for i, p := range points {
		ix, iy := g.binCoord(p)
		b := g.binIndex(ix, iy)
		g.binOf[i] = b
		g.bins[b] = append(g.bins[b], i)
	}
}

// SetGenerator updates (or appends) a single generator's position.
func (g *Grid2) SetGenerator(i int, p mgl64.Vec2) {
	ix, iy := g.binCoord(p)
	newBin := g.binIndex(ix, iy)

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

// Generators returns the current backing position slice.
func (g *Grid2) Generators() []mgl64.Vec2 {
	return g.points
}

// VisitNeighbors is the 2D analogue of Grid3.VisitNeighbors: the scan stops
// as soon as a shell's distance lower bound exceeds 4*radiusSq(), the same
// diameter-squared test Grid3 applies.
func (g *Grid2) VisitNeighbors(self int, query mgl64.Vec2, radiusSq func() float64, visit func(j int)) {
	cx, cy := g.binCoord(query)
	maxRing := g.nx
	if g.ny > maxRing {
		maxRing = g.ny
	}
	minCell := math.Min(g.cellSize.X(), g.cellSize.Y())

	for r := 0; r <= maxRing; r++ {
		bound := ringMinDistSq(r, minCell)
		if bound > 4*radiusSq() {
			return
		}
		g.visitRing(cx, cy, r, self, query, radiusSq, visit)
	}
}

// binDistSq is the 2D analogue of Grid3.binDistSq.
func (g *Grid2) binDistSq(ix, iy int, p mgl64.Vec2) float64 {
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
	return d
}

func (g *Grid2) visitRing(cx, cy, r, self int, query mgl64.Vec2, radiusSq func() float64, visit func(j int)) {
	visitBin := func(ix, iy int) {
		if ix < 0 || ix >= g.nx || iy < 0 || iy >= g.ny {
			return
		}
		if g.binDistSq(ix, iy, query) > 4*radiusSq() {
			return
		}
		for _, j := range g.bins[g.binIndex(ix, iy)] {
			if j != self {
				visit(j)
			}
		}
	}

	if r == 0 {
		visitBin(cx, cy)
		return
	}

	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if abs(dx) != r && abs(dy) != r {
				continue
			}
			visitBin(cx+dx, cy+dy)
		}
	}
}
