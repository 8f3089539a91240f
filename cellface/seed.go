package cellface

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// cubeFaces lists, for each of the 6 box faces, the corner indices (as
// returned by bbox.Box3.Corners, where bit0/1/2 of the index select
// Max on axis 0/1/2) in outward-normal, right-hand-rule order, together
// with the axis and max-side flag used to build the BoxSide label.
var cubeFaces = [6]struct {
	corners [4]int
	axis    int
	isMax   bool
}{
	{[4]int{0, 4, 6, 2}, 0, false}, // -X
	{[4]int{1, 3, 7, 5}, 0, true},  // +X
	{[4]int{0, 1, 5, 4}, 1, false}, // -Y
	{[4]int{2, 6, 7, 3}, 1, true},  // +Y
	{[4]int{0, 2, 3, 1}, 2, false}, // -Z
	{[4]int{4, 5, 7, 6}, 2, true},  // +Z
}

// Seed builds the domain box as a cell: 8 vertices, 6 quad faces, each
// labeled with the corresponding box-side neighbor id.
func Seed(box bbox.Box3) *Cell {
	corners := box.Corners()
	c := &Cell{
		Vertices:      append([]mgl64.Vec3(nil), corners[:]...),
		FaceCounts:    make([]int, 0, 6),
		FaceIndices:   make([]int, 0, 24),
		FaceNeighbors: make([]bbox.NeighborID, 0, 6),
	}
	for _, f := range cubeFaces {
		c.FaceCounts = append(c.FaceCounts, 4)
		c.FaceIndices = append(c.FaceIndices, f.corners[:]...)
		c.FaceNeighbors = append(c.FaceNeighbors, bbox.BoxSide(f.axis, f.isMax))
	}
	return c
}
