package polygon2

import (
	"math"
	"testing"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

func unitBox() bbox.Box2 {
	return bbox.NewBox2(mgl64.Vec2{-1, -1}, mgl64.Vec2{1, 1})
}

func TestSeedAreaAndCentroid(t *testing.T) {
	c := Seed(unitBox())
	if got, want := c.Area(), 4.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Area() = %v, want %v", got, want)
	}
	if got, want := c.Centroid(), (mgl64.Vec2{0, 0}); got.Sub(want).Len() > 1e-9 {
		t.Fatalf("Centroid() = %v, want %v", got, want)
	}
	if got, want := len(c.Neighbors), 4; got != want {
		t.Fatalf("len(Neighbors) = %d, want %d", got, want)
	}
}

func TestClipHalvesArea(t *testing.T) {
	c := Seed(unitBox())
	s := NewScratch()
	g := mgl64.Vec2{-0.5, 0}

	label := bbox.NeighborID(3)
	changed, _ := c.Clip(s, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, label, &g)
	if !changed {
		t.Fatalf("Clip reported no change for a half-space that bisects the cell")
	}
	if got, want := c.Area(), 2.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Area() after clip = %v, want %v", got, want)
	}
	if len(c.Vertices) != len(c.Neighbors) {
		t.Fatalf("len(Vertices)=%d != len(Neighbors)=%d", len(c.Vertices), len(c.Neighbors))
	}

	found := false
	for _, n := range c.Neighbors {
		if n == label {
			found = true
		}
	}
	if !found {
		t.Fatalf("clipped polygon's edges %v do not include the clip label %v", c.Neighbors, label)
	}
}

// Every edge label must correctly describe the edge STARTING at its
// matching vertex index: Vertices[i]->Vertices[i+1] is labeled Neighbors[i].
func TestNeighborLabelAlignment(t *testing.T) {
	c := Seed(unitBox())
	s := NewScratch()
	g := mgl64.Vec2{0, 0}
	c.Clip(s, mgl64.Vec2{0.3, 0}, mgl64.Vec2{1, 0}, bbox.NeighborID(9), &g)
	c.Clip(s, mgl64.Vec2{0, 0.3}, mgl64.Vec2{0, 1}, bbox.NeighborID(10), &g)

	n := len(c.Vertices)
	for i := 0; i < n; i++ {
		a, b := c.Vertices[i], c.Vertices[(i+1)%n]
		edge := b.Sub(a)
		label := c.Neighbors[i]
		// The two new cut edges must lie on x=0.3 or y=0.3.
		if label == bbox.NeighborID(9) {
			if math.Abs(a.X()-0.3) > 1e-9 || math.Abs(b.X()-0.3) > 1e-9 {
				t.Fatalf("edge %d labeled 9 does not lie on x=0.3: %v -> %v", i, a, b)
			}
		}
		if label == bbox.NeighborID(10) {
			if math.Abs(a.Y()-0.3) > 1e-9 || math.Abs(b.Y()-0.3) > 1e-9 {
				t.Fatalf("edge %d labeled 10 does not lie on y=0.3: %v -> %v", i, a, b)
			}
		}
		_ = edge
	}
}

func TestClipEmptiesCell(t *testing.T) {
	c := Seed(unitBox())
	s := NewScratch()
	g := mgl64.Vec2{0, 0}
	changed, _ := c.Clip(s, mgl64.Vec2{-10, 0}, mgl64.Vec2{1, 0}, bbox.NeighborID(1), &g)
	if !changed {
		t.Fatalf("Clip reported no change for a half-space entirely excluding the cell")
	}
	if !c.IsEmpty() {
		t.Fatalf("cell not empty after a fully-excluding clip")
	}
}
