package tessellation

import (
	"math"
	"testing"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/brackenforge/voronoi/grid"
	"github.com/brackenforge/voronoi/wall"
	"github.com/go-gl/mathgl/mgl64"
)

// 2D square clipped by a line wall: a single generator at (0.3, 0.5) inside
// the unit square, clipped by a line through (0.5, 0.5) with inward normal
// (-1, 0), leaves exactly half the square with centroid x = 0.25.
func TestSquareWithLineClip(t *testing.T) {
	box := bbox.NewBox2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
	idx := grid.NewGrid2(box, 2, 2)
	tess := NewT2(box, idx)
	tess.AddWall(wall.NewLine(-1000, mgl64.Vec2{0.5, 0.5}, mgl64.Vec2{-1, 0}))
	tess.SetGenerators([]mgl64.Vec2{{0.3, 0.5}})
	tess.Calculate()

	c := tess.GetCell(0)
	if c.IsEmpty() {
		t.Fatalf("cell unexpectedly empty")
	}
	if got, want := c.Area(), 0.5; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Area() = %v, want %v", got, want)
	}
	centroid := c.Centroid()
	if math.Abs(centroid.X()-0.25) > 1e-9 {
		t.Fatalf("Centroid().X() = %v, want 0.25", centroid.X())
	}
}

// A single 2D generator claims the whole domain.
func TestSingleGenerator2DClaimsWholeDomain(t *testing.T) {
	box := bbox.NewBox2(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10})
	idx := grid.NewGrid2(box, 2, 2)
	tess := NewT2(box, idx)
	tess.SetGenerators([]mgl64.Vec2{{5, 5}})
	tess.Calculate()

	c := tess.GetCell(0)
	if c.IsEmpty() {
		t.Fatalf("lone generator's cell is empty")
	}
	if math.Abs(c.Area()-100.0) > 1e-9 {
		t.Fatalf("area = %v, want 100", c.Area())
	}
}
