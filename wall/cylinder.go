package wall

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Cylinder confines the tessellation to the interior of an infinite
// circular cylinder.
type Cylinder struct {
	id     bbox.NeighborID
	Center mgl64.Vec3
	Axis   mgl64.Vec3 // normalized
	Radius float64
}

// NewCylinder constructs a cylindrical wall; axis need not be normalized.
func NewCylinder(id bbox.NeighborID, center, axis mgl64.Vec3, radius float64) *Cylinder {
	return &Cylinder{id: checkID(id), Center: center, Axis: normalize3(axis), Radius: radius}
}

func (c *Cylinder) ID() bbox.NeighborID { return c.id }

func (c *Cylinder) perp(p mgl64.Vec3) (perp mgl64.Vec3, along float64) {
	d := p.Sub(c.Center)
	along = d.Dot(c.Axis)
	perp = d.Sub(c.Axis.Mul(along))
	return
}

func (c *Cylinder) Contains(p mgl64.Vec3) bool {
	perp, _ := c.perp(p)
	return perp.Dot(perp) <= c.Radius*c.Radius
}

func (c *Cylinder) Cut(generator mgl64.Vec3, emit func(point, outwardNormal mgl64.Vec3)) {
	perp, along := c.perp(generator)
	dist := perp.Len()
	if dist == 0 {
		return
	}
	n := perp.Mul(1 / dist)
	point := c.Center.Add(c.Axis.Mul(along)).Add(n.Mul(c.Radius))
	emit(point, n)
}
