package tessellation

import (
	"math/rand"
	"sync"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/brackenforge/voronoi/polygon2"
	"github.com/brackenforge/voronoi/seed"
	"github.com/brackenforge/voronoi/wall"
	"github.com/go-gl/mathgl/mgl64"
)

// Index2 is the 2D analogue of Index3, implemented by grid.Grid2 and
// octree.Quadtree2.
type Index2 interface {
	SetGenerators(points []mgl64.Vec2)
	SetGenerator(i int, p mgl64.Vec2)
	VisitNeighbors(self int, query mgl64.Vec2, radiusSq func() float64, visit func(j int))
	Generators() []mgl64.Vec2
}

// T2 is the 2D analogue of T3.
type T2 struct {
	mu sync.RWMutex

	box        bbox.Box2
	index      Index2
	generators []mgl64.Vec2
	walls      []wall.Wall2
	cells      []*polygon2.Cell

	Workers int
}

// NewT2 builds a driver over box using index for neighbor search.
func NewT2(box bbox.Box2, index Index2) *T2 {
	return &T2{box: box, index: index, Workers: DefaultWorkers}
}

// admits reports whether p lies inside the domain box and every installed
// wall's valid region. Callers must hold at least a read lock.
func (t *T2) admits(p mgl64.Vec2) bool {
	if !t.box.Contains(p) {
		return false
	}
	for _, w := range t.walls {
		if !w.Contains(p) {
			return false
		}
	}
	return true
}

// SetGenerators replaces the full generator set, rejecting any point outside
// the domain box or any registered wall. Surviving
// generators are compactly renumbered and returns the new count.
func (t *T2) SetGenerators(points []mgl64.Vec2) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := make([]mgl64.Vec2, 0, len(points))
	for _, p := range points {
		if t.admits(p) {
			kept = append(kept, p)
		}
	}
	t.generators = kept
	t.index.SetGenerators(t.generators)
	t.cells = make([]*polygon2.Cell, len(t.generators))
	return len(t.generators)
}

// SetGenerator updates generator i's position, or appends a new generator
// if i == CountGenerators(). Rejected outright if i is out of range, or if p
// lies outside the domain box or any registered wall.
func (t *T2) SetGenerator(i int, p mgl64.Vec2) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i > len(t.generators) || !t.admits(p) {
		return false
	}
	switch {
	case i == len(t.generators):
		t.generators = append(t.generators, p)
		t.cells = append(t.cells, nil)
	default:
		t.generators[i] = p
	}
	t.index.SetGenerator(i, p)
	return true
}

// RandomGenerators replaces the generator set with up to n points drawn
// uniformly from the domain box, rejecting points outside any registered
// wall. It returns the number actually placed, which is fewer than n if the
// walls are over-restrictive — not an error.
func (t *T2) RandomGenerators(n int, rng *rand.Rand) int {
	t.mu.RLock()
	box, walls := t.box, append([]wall.Wall2(nil), t.walls...)
	t.mu.RUnlock()

	if rng == nil {
		rng = seed.NewRNG(seed.DefaultSeed)
	}
	points := seed.RandomGenerators2(box, walls, n, rng)
	return t.SetGenerators(points)
}

// ImportGenerators replaces the generator set with the points parsed from
// path.
func (t *T2) ImportGenerators(path string) (int, error) {
	points, err := seed.ImportGenerators2(path)
	if err != nil {
		return 0, err
	}
	return t.SetGenerators(points), nil
}

// AddWall registers a wall that every cell is clipped against, then
// re-filters existing generators through the full wall list (including the
// new wall), dropping any that now fall outside and compactly renumbering
// the survivors.
func (t *T2) AddWall(w wall.Wall2) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.walls = append(t.walls, w)

	kept := make([]mgl64.Vec2, 0, len(t.generators))
	for _, p := range t.generators {
		if t.admits(p) {
			kept = append(kept, p)
		}
	}
	t.generators = kept
	t.index.SetGenerators(t.generators)
	t.cells = make([]*polygon2.Cell, len(t.generators))
}

// ClearWalls removes every registered wall.
func (t *T2) ClearWalls() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.walls = t.walls[:0]
}

// Calculate (re)computes every generator's cell, splitting the generators
// across t.Workers goroutines (DefaultWorkers, i.e. one, if unset).
func (t *T2) Calculate() {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := len(t.generators)
	if n == 0 {
		return
	}
	if len(t.cells) != n {
		t.cells = make([]*polygon2.Cell, n)
	}

	workers := t.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	task(workers, n, func(start, end int) {
		scratch := polygon2.AcquireScratch()
		defer polygon2.ReleaseScratch(scratch)
		for i := start; i < end; i++ {
			t.cells[i] = t.calculateCell(i, scratch)
		}
	})
}

func (t *T2) calculateCell(i int, scratch *polygon2.Scratch) *polygon2.Cell {
	g := t.generators[i]
	cell := polygon2.Seed(t.box)
	radiusSq := cell.MaxRadiusSq(g)

	for _, w := range t.walls {
		w.Cut(g, func(point, n mgl64.Vec2) {
			if cell.IsEmpty() {
				return
			}
			if changed, newR := cell.Clip(scratch, point, n, w.ID(), &g); changed {
				radiusSq = newR
			}
		})
		if cell.IsEmpty() {
			return cell
		}
	}

	currentRadiusSq := func() float64 { return radiusSq }
	t.index.VisitNeighbors(i, g, currentRadiusSq, func(j int) {
		if cell.IsEmpty() {
			return
		}
		gj := t.generators[j]
		d := gj.Sub(g)
		distSq := d.Dot(d)
		if distSq > 4*radiusSq {
			return
		}
		length := d.Len()
		if length == 0 {
			// Coincident generators: the earlier index keeps the cell,
			// the later one comes out empty.
			if i > j {
				cell.Clear()
				radiusSq = 0
			}
			return
		}
		mid := g.Add(gj).Mul(0.5)
		n := d.Mul(1 / length)
		if changed, newR := cell.Clip(scratch, mid, n, bbox.NeighborID(j), &g); changed {
			radiusSq = newR
		}
	})

	return cell
}

// Map calls f for every generator/cell pair, in generator order.
func (t *T2) Map(f func(i int, c *polygon2.Cell)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, c := range t.cells {
		f(i, c)
	}
}

// Relax moves every generator to its current cell's centroid and
// recalculates.
func (t *T2) Relax() {
	t.mu.RLock()
	prior := append([]mgl64.Vec2(nil), t.generators...)
	cells := append([]*polygon2.Cell(nil), t.cells...)
	t.mu.RUnlock()

	relaxed := seed.Relax2(cells, prior)
	t.SetGenerators(relaxed)
	t.Calculate()
}

// CountGenerators returns the current generator count.
func (t *T2) CountGenerators() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.generators)
}

// CountCells returns the current cell count.
func (t *T2) CountCells() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cells)
}

// GetGenerator returns generator i's position.
func (t *T2) GetGenerator(i int) mgl64.Vec2 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.generators[i]
}

// GetCell returns generator i's current cell.
func (t *T2) GetCell(i int) *polygon2.Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cells[i]
}

// Generators returns a copy of the current generator positions.
func (t *T2) Generators() []mgl64.Vec2 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]mgl64.Vec2(nil), t.generators...)
}

// Cells returns a copy of the current cell slice.
func (t *T2) Cells() []*polygon2.Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*polygon2.Cell(nil), t.cells...)
}
