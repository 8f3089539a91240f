package wall

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Cone confines the tessellation to the interior of an infinite circular
// cone opening along Axis from Tip.
type Cone struct {
	id    bbox.NeighborID
	Tip   mgl64.Vec3
	Axis  mgl64.Vec3 // normalized, points into the cone
	Angle float64    // half-angle, radians
}

// NewCone constructs a conical wall; axis need not be normalized.
func NewCone(id bbox.NeighborID, tip, axis mgl64.Vec3, angle float64) *Cone {
	return &Cone{id: checkID(id), Tip: tip, Axis: normalize3(axis), Angle: angle}
}

func (c *Cone) ID() bbox.NeighborID { return c.id }

func (c *Cone) Contains(p mgl64.Vec3) bool {
	d := p.Sub(c.Tip)
	h := d.Dot(c.Axis)
	r := d.Sub(c.Axis.Mul(h)).Len()
	return h >= 0 && r <= h*math.Tan(c.Angle)
}

func (c *Cone) Cut(generator mgl64.Vec3, emit func(point, outwardNormal mgl64.Vec3)) {
	d := generator.Sub(c.Tip)
	h := d.Dot(c.Axis)
	radial := d.Sub(c.Axis.Mul(h))
	r := radial.Len()
	if r == 0 {
		return
	}
	rDir := radial.Mul(1 / r)

	cosA, sinA := math.Cos(c.Angle), math.Sin(c.Angle)
	dist := r*cosA - h*sinA

	p2dR := r - dist*cosA
	p2dH := h + dist*sinA

	if p2dH < 0 {
		distTip := d.Len()
		if distTip == 0 {
			return
		}
		emit(c.Tip, d.Mul(1/distTip))
		return
	}

	surf := c.Tip.Add(c.Axis.Mul(p2dH)).Add(rDir.Mul(p2dR))
	n := rDir.Mul(cosA).Sub(c.Axis.Mul(sinA))
	emit(surf, n)
}
