package bbox

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoxSideDistinct(t *testing.T) {
	seen := map[NeighborID]bool{}
	for axis := 0; axis < 3; axis++ {
		for _, isMax := range []bool{false, true} {
			id := BoxSide(axis, isMax)
			if seen[id] {
				t.Fatalf("BoxSide(%d, %v) collides with a previous side: %d", axis, isMax, id)
			}
			seen[id] = true
			if id <= WallIDMax {
				t.Fatalf("BoxSide(%d, %v) = %d overlaps the wall id range (<= %d)", axis, isMax, id, WallIDMax)
			}
			if id >= 0 {
				t.Fatalf("BoxSide(%d, %v) = %d overlaps the generator id range (>= 0)", axis, isMax, id)
			}
		}
	}
}

func TestBox3VolumeAndCenter(t *testing.T) {
	b := NewBox3(mgl64.Vec3{-1, -2, -3}, mgl64.Vec3{1, 2, 3})
	if got, want := b.Volume(), 48.0; got != want {
		t.Fatalf("Volume() = %v, want %v", got, want)
	}
	if got, want := b.Center(), (mgl64.Vec3{0, 0, 0}); got != want {
		t.Fatalf("Center() = %v, want %v", got, want)
	}
	if !b.Contains(b.Center()) {
		t.Fatalf("box does not contain its own center")
	}
	if b.Contains(mgl64.Vec3{2, 0, 0}) {
		t.Fatalf("box incorrectly contains a point outside its bounds")
	}
}

func TestBox3CornersBitLayout(t *testing.T) {
	b := NewBox3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	corners := b.Corners()
	for i, c := range corners {
		wantX, wantY, wantZ := 0.0, 0.0, 0.0
		if i&1 != 0 {
			wantX = 1
		}
		if i&2 != 0 {
			wantY = 1
		}
		if i&4 != 0 {
			wantZ = 1
		}
		if c.X() != wantX || c.Y() != wantY || c.Z() != wantZ {
			t.Fatalf("Corners()[%d] = %v, want (%v,%v,%v)", i, c, wantX, wantY, wantZ)
		}
	}
}

func TestBox2AreaAndCorners(t *testing.T) {
	b := NewBox2(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 3})
	if got, want := b.Area(), 6.0; got != want {
		t.Fatalf("Area() = %v, want %v", got, want)
	}
	corners := b.Corners()
	if len(corners) != 4 {
		t.Fatalf("Corners() returned %d corners, want 4", len(corners))
	}
}
