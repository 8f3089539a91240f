// Package cellface implements the face-indexed representation of a clipped
// Voronoi cell polytope in 3D: a vertex list plus a flat run of
// (face vertex-count, face vertex-indices, face neighbor label) triples.
//
// The clip algorithm rebuilds the face list in place through a reusable
// Scratch workspace, so the many successive cuts that carve one cell out of
// the domain box reuse their vertex and face buffers instead of reallocating
// them; only the lid ring is allocated afresh by each cutting call.
package cellface

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance is the fixed epsilon used to classify a vertex as "on the
// plane, inside" during clipping.
const Tolerance = 1e-9

// Cell is a convex 3D polytope: a vertex list plus a face-indexed boundary.
// Faces are listed in FaceCounts/FaceIndices in a consistent
// outward-normal, right-hand-rule order.
type Cell struct {
	Vertices []mgl64.Vec3

	// FaceCounts[f] is the vertex count of face f.
	FaceCounts []int
	// FaceIndices is the concatenation of each face's vertex indices.
	FaceIndices []int
	// FaceNeighbors[f] is the neighbor label for face f.
	FaceNeighbors []bbox.NeighborID
}

// IsEmpty reports whether the cell has collapsed to nothing (e.g. after a
// clip classified every vertex outside the half-space).
func (c *Cell) IsEmpty() bool {
	return len(c.Vertices) == 0
}

// FaceVertexIndices returns the slice of vertex indices making up face f.
// The returned slice aliases c.FaceIndices and must not be retained across
// further mutation of the cell.
func (c *Cell) FaceVertexIndices(f int) []int {
	start := 0
	for i := 0; i < f; i++ {
		start += c.FaceCounts[i]
	}
	return c.FaceIndices[start : start+c.FaceCounts[f]]
}

// NumFaces returns the number of faces in the cell.
func (c *Cell) NumFaces() int {
	return len(c.FaceCounts)
}

// Volume computes the cell's volume by fan-triangulating each face from its
// first vertex and summing signed tetrahedra against the origin.
func (c *Cell) Volume() float64 {
	if c.IsEmpty() {
		return 0
	}
	var sixV float64
	offset := 0
	for _, count := range c.FaceCounts {
		idx := c.FaceIndices[offset : offset+count]
		offset += count
		if count < 3 {
			continue
		}
		v0 := c.Vertices[idx[0]]
		for k := 1; k < count-1; k++ {
			v1 := c.Vertices[idx[k]]
			v2 := c.Vertices[idx[k+1]]
			sixV += v0.Dot(v1.Cross(v2))
		}
	}
	return math.Abs(sixV) / 6.0
}

// Centroid computes the cell's centroid by accumulating signed-tetrahedron
// centroids. If the accumulated volume is near zero the centroid is
// reported as the origin and the caller should check IsEmpty first.
func (c *Cell) Centroid() mgl64.Vec3 {
	if c.IsEmpty() {
		return mgl64.Vec3{}
	}
	var sumDet float64
	var sumWeighted mgl64.Vec3
	offset := 0
	for _, count := range c.FaceCounts {
		idx := c.FaceIndices[offset : offset+count]
		offset += count
		if count < 3 {
			continue
		}
		v0 := c.Vertices[idx[0]]
		for k := 1; k < count-1; k++ {
			v1 := c.Vertices[idx[k]]
			v2 := c.Vertices[idx[k+1]]
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

// FaceArea returns the area of face f via triangulated cross-product
// magnitude.
func (c *Cell) FaceArea(f int) float64 {
	idx := c.FaceVertexIndices(f)
	if len(idx) < 3 {
		return 0
	}
	var area float64
	v0 := c.Vertices[idx[0]]
	for k := 1; k < len(idx)-1; k++ {
		v1 := c.Vertices[idx[k]]
		v2 := c.Vertices[idx[k+1]]
		area += v1.Sub(v0).Cross(v2.Sub(v0)).Len()
	}
	return area / 2.0
}

// MaxRadiusSq returns the maximum squared distance from g to any vertex of
// the cell — the shrinking-sphere termination radius used by the
// tessellation driver.
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

// Clear empties the cell (used when a clip collapses it entirely).
func (c *Cell) Clear() {
	c.Vertices = c.Vertices[:0]
	c.FaceCounts = c.FaceCounts[:0]
	c.FaceIndices = c.FaceIndices[:0]
	c.FaceNeighbors = c.FaceNeighbors[:0]
}
