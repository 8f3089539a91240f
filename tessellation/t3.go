package tessellation

import (
	"math/rand"
	"sync"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/brackenforge/voronoi/cellface"
	"github.com/brackenforge/voronoi/seed"
	"github.com/brackenforge/voronoi/wall"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultWorkers is the worker count used when T3.Workers / T2.Workers is
// left unset. Callers wanting parallel cell computation raise Workers to
// the core count themselves.
const DefaultWorkers = 1

// Index3 is the spatial-index contract shared by grid.Grid3 and
// octree.Octree3, letting T3 use either interchangeably.
type Index3 interface {
	SetGenerators(points []mgl64.Vec3)
	SetGenerator(i int, p mgl64.Vec3)
	VisitNeighbors(self int, query mgl64.Vec3, radiusSq func() float64, visit func(j int))
	Generators() []mgl64.Vec3
}

// T3 is the 3D bounded-Voronoi tessellation driver. Mutators (SetGenerators,
// SetGenerator, AddWall, ClearWalls) take the exclusive lock; Calculate
// takes the shared lock since concurrent workers only read the generator
// set, wall list and index while writing their own, disjoint cell slots.
type T3 struct {
	mu sync.RWMutex

	box        bbox.Box3
	index      Index3
	generators []mgl64.Vec3
	walls      []wall.Wall3
	cells      []*cellface.Cell

	Workers int
}

// NewT3 builds a driver over box using index for neighbor search.
func NewT3(box bbox.Box3, index Index3) *T3 {
	return &T3{box: box, index: index, Workers: DefaultWorkers}
}

// admits reports whether p lies inside the domain box and every installed
// wall's valid region. Callers must hold at least a read lock.
func (t *T3) admits(p mgl64.Vec3) bool {
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

// SetGenerators replaces the full generator set, rejecting any point
// outside the domain box or any registered wall. Surviving generators are
// compactly renumbered; the new count is returned.
func (t *T3) SetGenerators(points []mgl64.Vec3) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := make([]mgl64.Vec3, 0, len(points))
	for _, p := range points {
		if t.admits(p) {
			kept = append(kept, p)
		}
	}
	t.generators = kept
	t.index.SetGenerators(t.generators)
	t.cells = make([]*cellface.Cell, len(t.generators))
	return len(t.generators)
}

// SetGenerator updates generator i's position, or appends a new generator
// if i == CountGenerators(). Reports whether the move was accepted: it is
// rejected outright if i is out of range, or if p lies outside the domain
// box or any registered wall.
func (t *T3) SetGenerator(i int, p mgl64.Vec3) bool {
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
func (t *T3) RandomGenerators(n int, rng *rand.Rand) int {
	t.mu.RLock()
	box, walls := t.box, append([]wall.Wall3(nil), t.walls...)
	t.mu.RUnlock()

	if rng == nil {
		rng = seed.NewRNG(seed.DefaultSeed)
	}
	points := seed.RandomGenerators3(box, walls, n, rng)
	return t.SetGenerators(points)
}

// ImportGenerators replaces the generator set with the points parsed from
// path.
func (t *T3) ImportGenerators(path string) (int, error) {
	points, err := seed.ImportGenerators3(path)
	if err != nil {
		return 0, err
	}
	return t.SetGenerators(points), nil
}

// AddWall registers a wall that every cell is clipped against, then
// re-filters existing generators through the full wall list (including the
// new wall), dropping any that now fall outside and compactly renumbering
// the survivors.
func (t *T3) AddWall(w wall.Wall3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.walls = append(t.walls, w)

	kept := make([]mgl64.Vec3, 0, len(t.generators))
	for _, p := range t.generators {
		if t.admits(p) {
			kept = append(kept, p)
		}
	}
	t.generators = kept
	t.index.SetGenerators(t.generators)
	t.cells = make([]*cellface.Cell, len(t.generators))
}

// ClearWalls removes every registered wall.
func (t *T3) ClearWalls() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.walls = t.walls[:0]
}

// Calculate (re)computes every generator's cell, splitting the generators
// across t.Workers goroutines (DefaultWorkers, i.e. one, if unset).
func (t *T3) Calculate() {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := len(t.generators)
	if n == 0 {
		return
	}
	if len(t.cells) != n {
		t.cells = make([]*cellface.Cell, n)
	}

	workers := t.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	task(workers, n, func(start, end int) {
		scratch := cellface.AcquireScratch()
		defer cellface.ReleaseScratch(scratch)
		for i := start; i < end; i++ {
			t.cells[i] = t.calculateCell(i, scratch)
		}
	})
}

// calculateCell clips the domain box by every wall and then by every
// nearby generator's bisector plane, narrowing the shrinking-sphere search
// radius as the cell shrinks, until the spatial index reports no closer
// candidates remain.
func (t *T3) calculateCell(i int, scratch *cellface.Scratch) *cellface.Cell {
	g := t.generators[i]
	cell := cellface.Seed(t.box)
	radiusSq := cell.MaxRadiusSq(g)

	for _, w := range t.walls {
		w.Cut(g, func(point, n mgl64.Vec3) {
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
func (t *T3) Map(f func(i int, c *cellface.Cell)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, c := range t.cells {
		f(i, c)
	}
}

// Relax moves every generator to its current cell's centroid and
// recalculates — one Lloyd-relaxation step.
func (t *T3) Relax() {
	t.mu.RLock()
	prior := append([]mgl64.Vec3(nil), t.generators...)
	cells := append([]*cellface.Cell(nil), t.cells...)
	t.mu.RUnlock()

	relaxed := seed.Relax3(cells, prior)
	t.SetGenerators(relaxed)
	t.Calculate()
}

// CountGenerators returns the current generator count.
func (t *T3) CountGenerators() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.generators)
}

// CountCells returns the current cell count (equal to CountGenerators once
// Calculate has run at least once).
func (t *T3) CountCells() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cells)
}

// GetGenerator returns generator i's position.
func (t *T3) GetGenerator(i int) mgl64.Vec3 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.generators[i]
}

// GetCell returns generator i's current cell.
func (t *T3) GetCell(i int) *cellface.Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cells[i]
}

// Generators returns a copy of the current generator positions.
func (t *T3) Generators() []mgl64.Vec3 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]mgl64.Vec3(nil), t.generators...)
}

// Cells returns a copy of the current cell slice.
func (t *T3) Cells() []*cellface.Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*cellface.Cell(nil), t.cells...)
}
