package wall

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// tube3 confines the tessellation to the interior of a swept tube around a
// sampled 3D curve. Shared by CubicBezier, CatmullRom and TrefoilKnot, which
// differ only in how they generate Samples: Contains and Cut both reduce
// to "nearest point on the sampled polyline".
type tube3 struct {
	id      bbox.NeighborID
	Samples []mgl64.Vec3
	Radius  float64
	Closed  bool
}

func (t *tube3) ID() bbox.NeighborID { return t.id }

func closestOnSegment3(a, b, p mgl64.Vec3) mgl64.Vec3 {
	v := b.Sub(a)
	w := p.Sub(a)
	c2 := v.Dot(v)
	if c2 <= 0 {
		return a
	}
	tt := w.Dot(v) / c2
	if tt < 0 {
		tt = 0
	} else if tt > 1 {
		tt = 1
	}
	return a.Add(v.Mul(tt))
}

func (t *tube3) closestPoint(p mgl64.Vec3) mgl64.Vec3 {
	n := len(t.Samples)
	if n == 0 {
		return mgl64.Vec3{}
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
		proj := closestOnSegment3(a, b, p)
		if d := p.Sub(proj); d.Dot(d) < bestSq {
			bestSq = d.Dot(d)
			best = proj
		}
	}
	return best
}

func (t *tube3) Contains(p mgl64.Vec3) bool {
	d := p.Sub(t.closestPoint(p))
	return d.Dot(d) <= t.Radius*t.Radius
}

func (t *tube3) Cut(generator mgl64.Vec3, emit func(point, outwardNormal mgl64.Vec3)) {
	closest := t.closestPoint(generator)
	d := generator.Sub(closest)
	dist := d.Len()
	if dist == 0 {
		return
	}
	n := d.Mul(1 / dist)
	emit(closest.Add(n.Mul(t.Radius)), n)
}

func cubicBezierPoint3(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	mt := 1 - t
	mt2, t2 := mt*mt, t*t
	mt3, t3 := mt2*mt, t2*t
	return p0.Mul(mt3).
		Add(p1.Mul(3 * mt2 * t)).
		Add(p2.Mul(3 * mt * t2)).
		Add(p3.Mul(t3))
}

// CubicBezier confines the tessellation to a tube swept around a cubic
// Bezier curve.
type CubicBezier struct{ tube3 }

// NewCubicBezier samples the curve p0..p3 at the given resolution and
// builds a tube wall of the given radius.
func NewCubicBezier(id bbox.NeighborID, p0, p1, p2, p3 mgl64.Vec3, radius float64, resolution int, closed bool) *CubicBezier {
	samples := make([]mgl64.Vec3, resolution+1)
	for i := 0; i <= resolution; i++ {
		t := float64(i) / float64(resolution)
		samples[i] = cubicBezierPoint3(p0, p1, p2, p3, t)
	}
	return &CubicBezier{tube3{id: checkID(id), Samples: samples, Radius: radius, Closed: closed}}
}

// TrefoilKnot confines the tessellation to a tube swept around a trefoil
// knot curve.
type TrefoilKnot struct{ tube3 }

// NewTrefoilKnot builds a trefoil-knot tube wall centered at center.
func NewTrefoilKnot(id bbox.NeighborID, center mgl64.Vec3, scale, tubeRadius float64, resolution int) *TrefoilKnot {
	samples := make([]mgl64.Vec3, resolution)
	for i := 0; i < resolution; i++ {
		t := (float64(i) / float64(resolution)) * 2 * math.Pi
		x := math.Sin(t) + 2*math.Sin(2*t)
		y := math.Cos(t) - 2*math.Cos(2*t)
		z := -math.Sin(3 * t)
		samples[i] = center.Add(mgl64.Vec3{x, y, z}.Mul(scale))
	}
	return &TrefoilKnot{tube3{id: checkID(id), Samples: samples, Radius: tubeRadius, Closed: true}}
}

// CatmullRom confines the tessellation to a tube swept around a
// centripetal Catmull-Rom spline through the given control points.
type CatmullRom struct{ tube3 }

// NewCatmullRom samples the spline through points at the given resolution.
func NewCatmullRom(id bbox.NeighborID, points []mgl64.Vec3, tubeRadius float64, resolution int, closed bool) *CatmullRom {
	if len(points) < 2 {
		return &CatmullRom{tube3{id: checkID(id), Radius: tubeRadius, Closed: closed}}
	}
	samples := make([]mgl64.Vec3, resolution+1)
	for i := 0; i <= resolution; i++ {
		t := float64(i) / float64(resolution)
		samples[i] = catmullRomPoint(t, points, closed)
	}
	return &CatmullRom{tube3{id: checkID(id), Samples: samples, Radius: tubeRadius, Closed: closed}}
}

func catmullRomPoint(t float64, points []mgl64.Vec3, closed bool) mgl64.Vec3 {
	l := len(points)
	end := 1.0
	if closed {
		end = 0.0
	}
	p := (float64(l) - end) * t
	intPoint := int(math.Floor(p))
	weight := p - float64(intPoint)

	if closed {
		if intPoint <= 0 {
			intPoint += (abs(intPoint)/l + 1) * l
		}
	} else if weight == 0 && intPoint == l-1 {
		intPoint = l - 2
	}

	mod := func(i int) int {
		return ((i % l) + l) % l
	}

	var p0, p1, p2, p3 mgl64.Vec3
	if closed || intPoint > 0 {
		p0 = points[mod(intPoint-1)]
	} else {
		p0 = points[0].Sub(points[1].Sub(points[0]))
	}
	p1 = points[mod(intPoint)]
	p2 = points[mod(intPoint+1)]
	if closed || intPoint+2 < l {
		p3 = points[mod(intPoint+2)]
	} else {
		last, prev := points[l-1], points[l-2]
		p3 = last.Sub(prev.Sub(last))
	}

	pow := 0.25
	dt0 := math.Pow(p0.Sub(p1).Dot(p0.Sub(p1)), pow)
	dt1 := math.Pow(p1.Sub(p2).Dot(p1.Sub(p2)), pow)
	dt2 := math.Pow(p2.Sub(p3).Dot(p2.Sub(p3)), pow)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	x := nonuniformCatmullRom(p0.X(), p1.X(), p2.X(), p3.X(), dt0, dt1, dt2).calc(weight)
	y := nonuniformCatmullRom(p0.Y(), p1.Y(), p2.Y(), p3.Y(), dt0, dt1, dt2).calc(weight)
	z := nonuniformCatmullRom(p0.Z(), p1.Z(), p2.Z(), p3.Z(), dt0, dt1, dt2).calc(weight)
	return mgl64.Vec3{x, y, z}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

type cubicPoly struct{ c0, c1, c2, c3 float64 }

func (c cubicPoly) calc(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return c.c0 + c.c1*t + c.c2*t2 + c.c3*t3
}

func nonuniformCatmullRom(x0, x1, x2, x3, dt0, dt1, dt2 float64) cubicPoly {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return cubicPoly{c0, c1, c2, c3}
}
