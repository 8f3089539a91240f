// Package celledge implements the adjacency-graph (half-edge-like)
// representation of a clipped Voronoi cell polytope in 3D: per vertex, a
// small list of outgoing edges, each carrying the label of the face to its
// left.
//
// The adjacency is stored densely (a slice of outgoing lists indexed by
// vertex) and rebuilt through a reusable Scratch; one cell's clip always
// runs single-threaded within one worker, so no locking is involved.
package celledge

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance matches cellface.Tolerance; duplicated rather than imported so
// the two clip implementations stay independently readable. Both
// representations must produce the same volume, centroid, and neighbor set
// for the same input without one depending on the other.
const Tolerance = 1e-9

// HalfEdge is one outgoing edge from some vertex. Face is the neighbor
// label of the face lying to the left of this directed edge.
type HalfEdge struct {
	To   int
	Face bbox.NeighborID
}

// Cell is a convex 3D polytope stored as a vertex list plus, per vertex, its
// outgoing half-edges.
type Cell struct {
	Vertices []mgl64.Vec3
	Out      [][]HalfEdge
}

// IsEmpty reports whether the cell has collapsed to nothing.
func (c *Cell) IsEmpty() bool {
	return len(c.Vertices) == 0
}

// Clear empties the cell.
func (c *Cell) Clear() {
	c.Vertices = c.Vertices[:0]
	c.Out = c.Out[:0]
}

// MaxRadiusSq returns the maximum squared distance from g to any vertex.
func (c *Cell) MaxRadiusSq(g mgl64.Vec3) float64 {
	var maxSq float64
	for _, v := range c.Vertices {
		d := v.Sub(g)
		if sq := d.Dot(d); sq > maxSq {
			maxSq = sq
		}
	}
	return maxSq
}

// Faces reconstructs every face polygon on demand by walking the directed
// edges: pick an unvisited edge, follow "take the outgoing edge from the
// arrival vertex whose left-face label matches" until the start recurs.
// Each directed edge is visited at most once.
//
// A face whose label cannot be completed within |Vertices| steps (a sliver
// produced by inconsistent labels near a curved or non-convex wall) is
// skipped rather than looped forever.
func (c *Cell) Faces() (vertsByFace [][]int, labels []bbox.NeighborID) {
	type key struct {
		v int
		e int // index into Out[v]
	}
	visited := make(map[key]bool)

	for v := range c.Out {
		for e, he := range c.Out[v] {
			k := key{v, e}
			if visited[k] {
				continue
			}
			label := he.Face
			ring := []int{v}
			visited[k] = true
			cur := he.To
			startV := v
			ok := true
			for cur != startV {
				if len(ring) > len(c.Vertices)+1 {
					ok = false
					break
				}
				ring = append(ring, cur)
				idx := -1
				for i, nhe := range c.Out[cur] {
					if !visited[key{cur, i}] && nhe.Face == label {
						idx = i
						break
					}
				}
				if idx == -1 {
					ok = false
					break
				}
				visited[key{cur, idx}] = true
				cur = c.Out[cur][idx].To
			}
			if ok && len(ring) >= 3 {
				vertsByFace = append(vertsByFace, ring)
				labels = append(labels, label)
			}
		}
	}
	return vertsByFace, labels
}

// Volume computes the cell's volume by reconstructing faces and
// fan-triangulating each, exactly as cellface.Cell.Volume does.
func (c *Cell) Volume() float64 {
	if c.IsEmpty() {
		return 0
	}
	faces, _ := c.Faces()
	var sixV float64
	for _, ring := range faces {
		if len(ring) < 3 {
			continue
		}
		v0 := c.Vertices[ring[0]]
		for k := 1; k < len(ring)-1; k++ {
			v1 := c.Vertices[ring[k]]
			v2 := c.Vertices[ring[k+1]]
			sixV += v0.Dot(v1.Cross(v2))
		}
	}
	return math.Abs(sixV) / 6.0
}

// Centroid computes the cell's centroid the same way as
// cellface.Cell.Centroid.
func (c *Cell) Centroid() mgl64.Vec3 {
	if c.IsEmpty() {
		return mgl64.Vec3{}
	}
	faces, _ := c.Faces()
	var sumDet float64
	var sumWeighted mgl64.Vec3
	for _, ring := range faces {
		if len(ring) < 3 {
			continue
		}
		v0 := c.Vertices[ring[0]]
		for k := 1; k < len(ring)-1; k++ {
			v1 := c.Vertices[ring[k]]
			v2 := c.Vertices[ring[k+1]]
			det := v0.Dot(v1.Cross(v2))
			sumDet += det
			sumWeighted = sumWeighted.Add(v0.Add(v1).Add(v2).Mul(det))
		}
	}
	if math.Abs(sumDet) < 1e-9 {
		return mgl64.Vec3{}
	}
	return sumWeighted.Mul(1.0 / (4.0 * sumDet))
}
