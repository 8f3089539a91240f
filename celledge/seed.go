package celledge

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// cubeEdges[v] lists vertex v's 3 outgoing edges on the unit cube, using
// the same corner numbering as cellface.Seed (bit0/1/2 of the index select
// Max on axis 0/1/2), with the left-face label of each directed edge
// derived from the same winding as cellface's cubeFaces table.
var cubeEdges = [8][3]struct {
	to    int
	axis  int
	isMax bool
}{
	0: {{1, 1, false}, {2, 2, false}, {4, 0, false}},
	1: {{0, 2, false}, {3, 0, true}, {5, 1, false}},
	2: {{3, 2, false}, {0, 0, false}, {6, 1, true}},
	3: {{2, 1, true}, {1, 2, false}, {7, 0, true}},
	4: {{5, 2, true}, {6, 0, false}, {0, 1, false}},
	5: {{4, 1, false}, {7, 2, true}, {1, 0, true}},
	6: {{7, 1, true}, {4, 2, true}, {2, 0, false}},
	7: {{6, 2, true}, {5, 0, true}, {3, 1, true}},
}

// Seed builds the domain box as a cell in the adjacency-graph
// representation: 8 vertices, each with 3 outgoing edges labeled by the
// box-side neighbor id of the face to their left.
func Seed(box bbox.Box3) *Cell {
	corners := box.Corners()
	c := &Cell{
		Vertices: append([]mgl64.Vec3(nil), corners[:]...),
		Out:      make([][]HalfEdge, 8),
	}
	for v := 0; v < 8; v++ {
		edges := make([]HalfEdge, 0, 3)
		for _, e := range cubeEdges[v] {
			edges = append(edges, HalfEdge{To: e.to, Face: bbox.BoxSide(e.axis, e.isMax)})
		}
		c.Out[v] = edges
	}
	return c
}
