package wall

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

func closestOnSegment2(a, b, p mgl64.Vec2) mgl64.Vec2 {
	v := b.Sub(a)
	w := p.Sub(a)
	c2 := v.Dot(v)
	if c2 <= 0 {
		return a
	}
	t := w.Dot(v) / c2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(v.Mul(t))
}

func cubicBezierPoint2(p0, p1, p2, p3 mgl64.Vec2, t float64) mgl64.Vec2 {
	mt := 1 - t
	mt2, t2 := mt*mt, t*t
	mt3, t3 := mt2*mt, t2*t
	return p0.Mul(mt3).
		Add(p1.Mul(3 * mt2 * t)).
		Add(p2.Mul(3 * mt * t2)).
		Add(p3.Mul(t3))
}

// CubicBezierTube confines the tessellation to a 2D strip swept around a
// cubic Bezier curve.
type CubicBezierTube struct {
	id      bbox.NeighborID
	Samples []mgl64.Vec2
	Radius  float64
	Closed  bool
}

// NewCubicBezierTube samples the curve p0..p3 and builds a strip wall of
// the given radius.
func NewCubicBezierTube(id bbox.NeighborID, p0, p1, p2, p3 mgl64.Vec2, radius float64, resolution int, closed bool) *CubicBezierTube {
	samples := make([]mgl64.Vec2, resolution+1)
	for i := 0; i <= resolution; i++ {
		t := float64(i) / float64(resolution)
		samples[i] = cubicBezierPoint2(p0, p1, p2, p3, t)
	}
	return &CubicBezierTube{id: checkID(id), Samples: samples, Radius: radius, Closed: closed}
}

func (t *CubicBezierTube) ID() bbox.NeighborID { return t.id }

func (t *CubicBezierTube) closestPoint(p mgl64.Vec2) mgl64.Vec2 {
	n := len(t.Samples)
	if n == 0 {
		return mgl64.Vec2{}
	}
	limit := n - 1
	if t.Closed {
		limit = n
	}
	best := t.Samples[0]
	bestSq := math.MaxFloat64
	for i := 0; i < limit; i++ {
		a := t.Samples[i]
		b := t.Samples[(i+1)%n]
		proj := closestOnSegment2(a, b, p)
		if d := p.Sub(proj); d.Dot(d) < bestSq {
			bestSq = d.Dot(d)
			best = proj
		}
	}
	return best
}

func (t *CubicBezierTube) Contains(p mgl64.Vec2) bool {
	d := p.Sub(t.closestPoint(p))
	return d.Dot(d) <= t.Radius*t.Radius
}

func (t *CubicBezierTube) Cut(generator mgl64.Vec2, emit func(point, outwardNormal mgl64.Vec2)) {
	closest := t.closestPoint(generator)
	d := generator.Sub(closest)
	dist := d.Len()
	if dist == 0 {
		return
	}
	n := d.Mul(1 / dist)
	emit(closest.Add(n.Mul(t.Radius)), n)
}
