package wall

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// ConvexPolygon confines the tessellation to the intersection of a fixed
// set of 2D half-planes.
type ConvexPolygon struct {
	id      bbox.NeighborID
	points  []mgl64.Vec2
	normals []mgl64.Vec2 // normalized, point OUT of the valid region
}

// NewConvexPolygon builds a polygon wall from parallel point/normal lists
// (one per edge); normals point out of the valid region.
func NewConvexPolygon(id bbox.NeighborID, points, normals []mgl64.Vec2) *ConvexPolygon {
	p := &ConvexPolygon{id: checkID(id), points: append([]mgl64.Vec2(nil), points...)}
	p.normals = make([]mgl64.Vec2, len(normals))
	for i, n := range normals {
		p.normals[i] = normalize2(n)
	}
	return p
}

// NewRegularPolygon builds a regular n-sided polygon wall centered at
// center with the given circumradius.
func NewRegularPolygon(id bbox.NeighborID, center mgl64.Vec2, radius float64, sides int) *ConvexPolygon {
	p := &ConvexPolygon{id: checkID(id)}
	angleStep := 2 * math.Pi / float64(sides)
	inradius := radius * math.Cos(math.Pi/float64(sides))
	for i := 0; i < sides; i++ {
		angle := float64(i) * angleStep
		n := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
		p.normals = append(p.normals, n)
		p.points = append(p.points, center.Add(n.Mul(inradius)))
	}
	return p
}

func (p *ConvexPolygon) ID() bbox.NeighborID { return p.id }

func (p *ConvexPolygon) Contains(x mgl64.Vec2) bool {
	for i, n := range p.normals {
		if x.Sub(p.points[i]).Dot(n) > 0 {
			return false
		}
	}
	return true
}

func (p *ConvexPolygon) Cut(_ mgl64.Vec2, emit func(point, outwardNormal mgl64.Vec2)) {
	for i, n := range p.normals {
		emit(p.points[i], n)
	}
}
