// Package wall implements the analytic clipping-boundary catalogue that
// confines a tessellation to something other than a plain axis-aligned
// box. Every wall is, from
// the clipper's point of view, just one or more half-space cuts computed
// per-generator: Cut finds the tangent plane (point + outward normal) that
// would clip that generator's cell to stay inside the wall's valid region,
// exactly as cellface.Cell.Clip / celledge.Cell.Clip / polygon2.Cell.Clip
// already accept for the domain box's own faces.
package wall

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Wall3 is a 3D clipping boundary.
type Wall3 interface {
	ID() bbox.NeighborID
	// Contains reports whether p lies in the wall's valid (kept) region.
	Contains(p mgl64.Vec3) bool
	// Cut emits zero or more (point, outwardNormal) half-space cuts that
	// together bound generator's cell to the valid region near it.
	// outwardNormal points away from the valid region, matching the n
	// argument cellface/celledge's Clip expects directly.
	Cut(generator mgl64.Vec3, emit func(point, outwardNormal mgl64.Vec3))
}

// Wall2 is the 2D analogue of Wall3.
type Wall2 interface {
	ID() bbox.NeighborID
	Contains(p mgl64.Vec2) bool
	Cut(generator mgl64.Vec2, emit func(point, outwardNormal mgl64.Vec2))
}

// checkID rejects wall ids in the range reserved for generator indices and
// domain-box faces. Every constructor runs its id through this; a colliding
// id would silently mislabel faces, so it fails loudly at construction.
func checkID(id bbox.NeighborID) bbox.NeighborID {
	if id > bbox.WallIDMax {
		panic("wall: id must be <= bbox.WallIDMax")
	}
	return id
}

func normalize3(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return v.Mul(1 / l)
}

func normalize2(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec2{0, 1}
	}
	return v.Mul(1 / l)
}
