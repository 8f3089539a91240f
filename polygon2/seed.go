package polygon2

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// boxEdges[i] labels the edge from corner i to corner i+1 of bbox.Box2's CCW
// corner ring (Min, (Max.X,Min.Y), Max, (Min.X,Max.Y)).
var boxEdges = [4]struct {
	axis  int
	isMax bool
}{
	{1, false}, // Min -> (Max.X,Min.Y): bottom edge, -Y
	{0, true},  // (Max.X,Min.Y) -> Max: right edge, +X
	{1, true},  // Max -> (Min.X,Max.Y): top edge, +Y
	{0, false}, // (Min.X,Max.Y) -> Min: left edge, -X
}

// Seed builds the domain box as a 2D cell.
func Seed(box bbox.Box2) *Cell {
	corners := box.Corners()
	c := &Cell{
		Vertices:  append([]mgl64.Vec2(nil), corners[:]...),
		Neighbors: make([]bbox.NeighborID, 4),
	}
	for i, e := range boxEdges {
		c.Neighbors[i] = bbox.BoxSide(e.axis, e.isMax)
	}
	return c
}
