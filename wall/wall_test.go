package wall

import (
	"math"
	"testing"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSphereContains(t *testing.T) {
	s := NewSphere(-1000, mgl64.Vec3{0, 0, 0}, 2)
	if !s.Contains(mgl64.Vec3{1, 1, 1}) {
		t.Fatalf("point within radius should be contained")
	}
	if s.Contains(mgl64.Vec3{2, 2, 2}) {
		t.Fatalf("point well outside radius should not be contained")
	}
}

func TestSphereCutEmitsTangentPlaneAwayFromCenter(t *testing.T) {
	s := NewSphere(-1000, mgl64.Vec3{0, 0, 0}, 2)
	var gotPoint, gotNormal mgl64.Vec3
	calls := 0
	s.Cut(mgl64.Vec3{5, 0, 0}, func(point, n mgl64.Vec3) {
		calls++
		gotPoint, gotNormal = point, n
	})
	if calls != 1 {
		t.Fatalf("expected exactly one emitted cut, got %d", calls)
	}
	if math.Abs(gotPoint.Sub(mgl64.Vec3{2, 0, 0}).Len()) > 1e-9 {
		t.Fatalf("tangent point = %v, want (2,0,0)", gotPoint)
	}
	if math.Abs(gotNormal.Sub(mgl64.Vec3{1, 0, 0}).Len()) > 1e-9 {
		t.Fatalf("outward normal = %v, want (1,0,0)", gotNormal)
	}
}

func TestCylinderContains(t *testing.T) {
	c := NewCylinder(-1000, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, 3)
	if !c.Contains(mgl64.Vec3{1, 1, 100}) {
		t.Fatalf("point within radial distance (any z) should be contained")
	}
	if c.Contains(mgl64.Vec3{3, 3, 0}) {
		t.Fatalf("point outside the radius should not be contained")
	}
}

func TestLineContainsAndCut(t *testing.T) {
	l := NewLine(-1000, mgl64.Vec2{0.5, 0.5}, mgl64.Vec2{-1, 0})
	if !l.Contains(mgl64.Vec2{0.3, 0.5}) {
		t.Fatalf("point on the valid side should be contained")
	}
	if l.Contains(mgl64.Vec2{0.7, 0.5}) {
		t.Fatalf("point on the invalid side should not be contained")
	}

	var n mgl64.Vec2
	l.Cut(mgl64.Vec2{0.3, 0.5}, func(_, outward mgl64.Vec2) { n = outward })
	if n.X() <= 0 {
		t.Fatalf("outward normal should point away from the valid (x<=0.5) region, got %v", n)
	}
}

func TestPlaneContainsAndCut(t *testing.T) {
	pl := NewPlane(-1000, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	if !pl.Contains(mgl64.Vec3{0, 0, 3}) {
		t.Fatalf("point on the valid side should be contained")
	}
	if pl.Contains(mgl64.Vec3{0, 0, 7}) {
		t.Fatalf("point on the invalid side should not be contained")
	}

	var n mgl64.Vec3
	pl.Cut(mgl64.Vec3{0, 0, 3}, func(_, outward mgl64.Vec3) { n = outward })
	if n.Z() <= 0 {
		t.Fatalf("outward normal should point away from the valid (z<=5) region, got %v", n)
	}
}

func TestWallIDCollisionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("an id above bbox.WallIDMax must panic at construction")
		}
	}()
	NewSphere(-1, mgl64.Vec3{}, 1)
}

func TestRegularPolyhedraWallIDs(t *testing.T) {
	const id = bbox.NeighborID(-1000)
	for _, w := range []Wall3{
		NewTetrahedron(id, mgl64.Vec3{0, 0, 0}, 1),
		NewHexahedron(id, mgl64.Vec3{0, 0, 0}, 1),
		NewOctahedron(id, mgl64.Vec3{0, 0, 0}, 1),
		NewDodecahedron(id, mgl64.Vec3{0, 0, 0}, 1),
		NewIcosahedron(id, mgl64.Vec3{0, 0, 0}, 1),
	} {
		if w.ID() != id {
			t.Fatalf("wall ID = %v, want %v", w.ID(), id)
		}
		if !w.Contains(mgl64.Vec3{0, 0, 0}) {
			t.Fatalf("center of a regular polyhedron must be contained")
		}
		if w.Contains(mgl64.Vec3{1000, 1000, 1000}) {
			t.Fatalf("a far point must not be contained")
		}
	}
}
