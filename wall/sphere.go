package wall

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Sphere confines the tessellation to the interior of a sphere.
type Sphere struct {
	id     bbox.NeighborID
	Center mgl64.Vec3
	Radius float64
}

// NewSphere constructs a spherical wall.
func NewSphere(id bbox.NeighborID, center mgl64.Vec3, radius float64) *Sphere {
	return &Sphere{id: checkID(id), Center: center, Radius: radius}
}

func (s *Sphere) ID() bbox.NeighborID { return s.id }

func (s *Sphere) Contains(p mgl64.Vec3) bool {
	d := p.Sub(s.Center)
	return d.Dot(d) <= s.Radius*s.Radius
}

func (s *Sphere) Cut(generator mgl64.Vec3, emit func(point, outwardNormal mgl64.Vec3)) {
	d := generator.Sub(s.Center)
	dist := d.Len()
	if dist == 0 {
		return
	}
	n := d.Mul(1 / dist)
	point := s.Center.Add(n.Mul(s.Radius))
	emit(point, n)
}
