// Package polygon2 implements the 2D analogue of cellface: a clipped
// Voronoi cell is a single convex polygon, stored as a CCW vertex ring plus
// one neighbor label per edge. 2D needs no faces-vs-edges split since a
// polygon already *is* its own single face.
package polygon2

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance matches cellface.Tolerance / celledge.Tolerance.
const Tolerance = 1e-9

// Cell is a convex 2D polygon: Vertices[i] -> Vertices[i+1 mod n] is the
// edge labeled Neighbors[i].
type Cell struct {
	Vertices  []mgl64.Vec2
	Neighbors []bbox.NeighborID
}

// IsEmpty reports whether the cell has collapsed to nothing.
func (c *Cell) IsEmpty() bool {
	return len(c.Vertices) == 0
}

// Clear empties the cell.
func (c *Cell) Clear() {
	c.Vertices = c.Vertices[:0]
	c.Neighbors = c.Neighbors[:0]
}

// Area computes the polygon's area via the shoelace formula.
func (c *Cell) Area() float64 {
	n := len(c.Vertices)
	if n < 3 {
		return 0
	}
	var sum2 float64
	for i := 0; i < n; i++ {
		a := c.Vertices[i]
		b := c.Vertices[(i+1)%n]
		sum2 += a.X()*b.Y() - b.X()*a.Y()
	}
	return math.Abs(sum2) / 2.0
}

// Centroid computes the polygon's area-weighted centroid.
func (c *Cell) Centroid() mgl64.Vec2 {
	n := len(c.Vertices)
	if n < 3 {
		return mgl64.Vec2{}
	}
	var sum2 float64
	var cx, cy float64
	for i := 0; i < n; i++ {
		a := c.Vertices[i]
		b := c.Vertices[(i+1)%n]
		cross := a.X()*b.Y() - b.X()*a.Y()
		sum2 += cross
		cx += (a.X() + b.X()) * cross
		cy += (a.Y() + b.Y()) * cross
	}
	if math.Abs(sum2) < 1e-9 {
		return mgl64.Vec2{}
	}
	f := 1.0 / (3.0 * sum2)
	return mgl64.Vec2{cx * f, cy * f}
}

// EdgeLength returns the length of edge i.
func (c *Cell) EdgeLength(i int) float64 {
	n := len(c.Vertices)
	a := c.Vertices[i]
	b := c.Vertices[(i+1)%n]
	return b.Sub(a).Len()
}

// MaxRadiusSq returns the maximum squared distance from g to any vertex.
func (c *Cell) MaxRadiusSq(g mgl64.Vec2) float64 {
	var maxSq float64
	for _, v := range c.Vertices {
		d := v.Sub(g)
		if sq := d.Dot(d); sq > maxSq {
			maxSq = sq
		}
	}
	return maxSq
}
