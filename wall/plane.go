package wall

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Plane confines the tessellation to one side of a 3D plane, the planar
// analogue of the 2D Line wall.
type Plane struct {
	id     bbox.NeighborID
	Point  mgl64.Vec3
	Normal mgl64.Vec3 // normalized, points INTO the valid region
}

// NewPlane constructs a plane wall; normal points toward the valid region
// and need not be normalized.
func NewPlane(id bbox.NeighborID, point, normal mgl64.Vec3) *Plane {
	return &Plane{id: checkID(id), Point: point, Normal: normalize3(normal)}
}

func (pl *Plane) ID() bbox.NeighborID { return pl.id }

func (pl *Plane) Contains(p mgl64.Vec3) bool {
	return p.Sub(pl.Point).Dot(pl.Normal) >= 0
}

func (pl *Plane) Cut(_ mgl64.Vec3, emit func(point, outwardNormal mgl64.Vec3)) {
	emit(pl.Point, pl.Normal.Mul(-1))
}
