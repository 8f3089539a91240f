package wall

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Torus confines the tessellation to the interior of a torus tube.
type Torus struct {
	id          bbox.NeighborID
	Center      mgl64.Vec3
	Axis        mgl64.Vec3 // normalized
	MajorRadius float64
	MinorRadius float64
}

// NewTorus constructs a toroidal wall; axis need not be normalized.
func NewTorus(id bbox.NeighborID, center, axis mgl64.Vec3, major, minor float64) *Torus {
	return &Torus{id: checkID(id), Center: center, Axis: normalize3(axis), MajorRadius: major, MinorRadius: minor}
}

func (t *Torus) ID() bbox.NeighborID { return t.id }

func (t *Torus) Contains(p mgl64.Vec3) bool {
	d := p.Sub(t.Center)
	along := d.Dot(t.Axis)
	perp := d.Sub(t.Axis.Mul(along))
	distPerp := perp.Len()
	distTube := math.Hypot(distPerp-t.MajorRadius, along)
	return distTube <= t.MinorRadius
}

func (t *Torus) Cut(generator mgl64.Vec3, emit func(point, outwardNormal mgl64.Vec3)) {
	d := generator.Sub(t.Center)
	along := d.Dot(t.Axis)
	perp := d.Sub(t.Axis.Mul(along))
	distPerp := perp.Len()

	var dir mgl64.Vec3
	if distPerp < 1e-9 {
		tangent := mgl64.Vec3{1, 0, 0}
		if math.Abs(t.Axis.X()) > 0.9 {
			tangent = mgl64.Vec3{0, 1, 0}
		}
		tDot := tangent.Dot(t.Axis)
		a := tangent.Sub(t.Axis.Mul(tDot))
		l := a.Len()
		if l == 0 {
			return
		}
		dir = a.Mul(1 / l)
	} else {
		dir = perp.Mul(1 / distPerp)
	}

	tubeCenter := t.Center.Add(dir.Mul(t.MajorRadius))
	toGen := generator.Sub(tubeCenter)
	distC := toGen.Len()
	if distC == 0 {
		return
	}
	n := toGen.Mul(1 / distC)
	point := tubeCenter.Add(n.Mul(t.MinorRadius))
	emit(point, n)
}
