package wall

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Circle confines the tessellation to the interior of a circle.
type Circle struct {
	id     bbox.NeighborID
	Center mgl64.Vec2
	Radius float64
}

// NewCircle constructs a circular wall.
func NewCircle(id bbox.NeighborID, center mgl64.Vec2, radius float64) *Circle {
	return &Circle{id: checkID(id), Center: center, Radius: radius}
}

func (c *Circle) ID() bbox.NeighborID { return c.id }

func (c *Circle) Contains(p mgl64.Vec2) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

func (c *Circle) Cut(generator mgl64.Vec2, emit func(point, outwardNormal mgl64.Vec2)) {
	d := generator.Sub(c.Center)
	dist := d.Len()
	if dist == 0 {
		return
	}
	n := d.Mul(1 / dist)
	emit(c.Center.Add(n.Mul(c.Radius)), n)
}

// Annulus confines the tessellation to the region between two concentric
// circles.
type Annulus struct {
	id                       bbox.NeighborID
	Center                   mgl64.Vec2
	InnerRadius, OuterRadius float64
}

// NewAnnulus constructs an annular wall.
func NewAnnulus(id bbox.NeighborID, center mgl64.Vec2, innerRadius, outerRadius float64) *Annulus {
	return &Annulus{id: checkID(id), Center: center, InnerRadius: innerRadius, OuterRadius: outerRadius}
}

func (a *Annulus) ID() bbox.NeighborID { return a.id }

func (a *Annulus) Contains(p mgl64.Vec2) bool {
	d := p.Sub(a.Center)
	d2 := d.Dot(d)
	return d2 >= a.InnerRadius*a.InnerRadius && d2 <= a.OuterRadius*a.OuterRadius
}

func (a *Annulus) Cut(generator mgl64.Vec2, emit func(point, outwardNormal mgl64.Vec2)) {
	d := generator.Sub(a.Center)
	dist := d.Len()
	if dist == 0 {
		return
	}
	dir := d.Mul(1 / dist)
	emit(a.Center.Add(dir.Mul(a.OuterRadius)), dir)
	emit(a.Center.Add(dir.Mul(a.InnerRadius)), dir.Mul(-1))
}
