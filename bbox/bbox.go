// Package bbox defines the axis-aligned domain box that seeds every cell
// before wall clipping and neighbor search begin.
package bbox

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NeighborID tags a cell face (3D) or edge (2D) with who shares it:
// non-negative values are generator indices, values at or below WallIDMax
// identify a wall, and the 2D range in between is reserved for the domain
// box's own 2*D faces.
type NeighborID int32

// WallIDMax is the largest (closest to zero) id a wall may use. Callers must
// pick wall ids at or below this constant so they never collide with a
// BoxSide id.
const WallIDMax NeighborID = -1000

// BoxSide returns the neighbor id for the box face on the given axis
// (0-indexed) and side (max face if isMax, min face otherwise). The
// encoding yields -1 for axis 0 min face through -2*D for the last axis's
// max face, leaving -1000 and below free for walls.
func BoxSide(axis int, isMax bool) NeighborID {
	bit := 0
	if isMax {
		bit = 1
	}
	return NeighborID(-1 - (2*axis + bit))
}

// Box3 is an axis-aligned 3D bounding box with Min[k] <= Max[k] per axis.
type Box3 struct {
	Min, Max mgl64.Vec3
}

// NewBox3 constructs a Box3 from two corner points.
func NewBox3(min, max mgl64.Vec3) Box3 {
	return Box3{Min: min, Max: max}
}

// Contains reports whether p lies within the box (inclusive).
func (b Box3) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Volume returns the box's enclosed volume.
func (b Box3) Volume() float64 {
	d := b.Max.Sub(b.Min)
	return d.X() * d.Y() * d.Z()
}

// Center returns the box's geometric center.
func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Corners returns the 8 vertices of the box, ordered so that bit i of the
// index selects Max on axis i (matches the bit layout BoxSide/Vertices in
// cellface.Seed rely on).
func (b Box3) Corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		out[i] = mgl64.Vec3{
			axisCoord(b.Min.X(), b.Max.X(), i&1 != 0),
			axisCoord(b.Min.Y(), b.Max.Y(), i&2 != 0),
			axisCoord(b.Min.Z(), b.Max.Z(), i&4 != 0),
		}
	}
	return out
}

func axisCoord(min, max float64, isMax bool) float64 {
	if isMax {
		return max
	}
	return min
}

// Box2 is an axis-aligned 2D bounding box.
type Box2 struct {
	Min, Max mgl64.Vec2
}

// NewBox2 constructs a Box2 from two corner points.
func NewBox2(min, max mgl64.Vec2) Box2 {
	return Box2{Min: min, Max: max}
}

// Contains reports whether p lies within the box (inclusive).
func (b Box2) Contains(p mgl64.Vec2) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
}

// Area returns the box's enclosed area.
func (b Box2) Area() float64 {
	d := b.Max.Sub(b.Min)
	return d.X() * d.Y()
}

// Center returns the box's geometric center.
func (b Box2) Center() mgl64.Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Corners returns the 4 vertices of the box in counter-clockwise order
// starting at Min, matching polygon2.Seed's winding.
func (b Box2) Corners() [4]mgl64.Vec2 {
	return [4]mgl64.Vec2{
		{b.Min.X(), b.Min.Y()},
		{b.Max.X(), b.Min.Y()},
		{b.Max.X(), b.Max.Y()},
		{b.Min.X(), b.Max.Y()},
	}
}
