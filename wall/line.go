package wall

import (
	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// Line confines the tessellation to one side of a 2D line.
type Line struct {
	id     bbox.NeighborID
	Point  mgl64.Vec2
	Normal mgl64.Vec2 // normalized, points INTO the valid region
}

// NewLine constructs a line wall; normal points toward the valid region and
// need not be normalized.
func NewLine(id bbox.NeighborID, point, normal mgl64.Vec2) *Line {
	return &Line{id: checkID(id), Point: point, Normal: normalize2(normal)}
}

func (l *Line) ID() bbox.NeighborID { return l.id }

func (l *Line) Contains(p mgl64.Vec2) bool {
	return p.Sub(l.Point).Dot(l.Normal) >= 0
}

func (l *Line) Cut(_ mgl64.Vec2, emit func(point, outwardNormal mgl64.Vec2)) {
	emit(l.Point, l.Normal.Mul(-1))
}
