package celledge

import (
	"math"
	"testing"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/brackenforge/voronoi/cellface"
	"github.com/go-gl/mathgl/mgl64"
)

func unitBox() bbox.Box3 {
	return bbox.NewBox3(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
}

func TestSeedVolumeAndFaces(t *testing.T) {
	c := Seed(unitBox())
	if c.IsEmpty() {
		t.Fatalf("seeded cell is empty")
	}
	if got, want := c.Volume(), 8.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Volume() = %v, want %v", got, want)
	}
	faces, labels := c.Faces()
	if got, want := len(faces), 6; got != want {
		t.Fatalf("Faces() returned %d faces, want %d", got, want)
	}
	if len(labels) != len(faces) {
		t.Fatalf("Faces() returned %d labels for %d faces", len(labels), len(faces))
	}
	for v, out := range c.Out {
		if len(out) != 3 {
			t.Fatalf("vertex %d has %d outgoing edges, want 3", v, len(out))
		}
	}
}

func TestClipHalvesVolumeAndKeepsThreeOutPerBoundaryVertex(t *testing.T) {
	c := Seed(unitBox())
	s := NewScratch()
	g := mgl64.Vec3{-0.5, 0, 0}

	label := bbox.NeighborID(7)
	changed, _ := c.Clip(s, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, label, &g)
	if !changed {
		t.Fatalf("Clip reported no change for a half-space that bisects the cell")
	}
	if got, want := c.Volume(), 4.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Volume() after clip = %v, want %v", got, want)
	}
	for v, out := range c.Out {
		if len(out) != 3 {
			t.Fatalf("vertex %d has %d outgoing edges after clip, want 3", v, len(out))
		}
	}

	foundLabel := false
	for _, out := range c.Out {
		for _, he := range out {
			if he.Face == label {
				foundLabel = true
			}
		}
	}
	if !foundLabel {
		t.Fatalf("clipped cell has no edge labeled with the new lid face %v", label)
	}
}

func TestClipEmptiesCell(t *testing.T) {
	c := Seed(unitBox())
	s := NewScratch()
	g := mgl64.Vec3{0, 0, 0}

	changed, _ := c.Clip(s, mgl64.Vec3{-10, 0, 0}, mgl64.Vec3{1, 0, 0}, bbox.NeighborID(1), &g)
	if !changed {
		t.Fatalf("Clip reported no change for a half-space entirely excluding the cell")
	}
	if !c.IsEmpty() {
		t.Fatalf("cell not empty after a fully-excluding clip")
	}
}

// cellface and celledge must agree on volume/centroid for the same clip
// sequence, even though they store the boundary differently.
func TestAgreesWithCellfaceAfterClip(t *testing.T) {
	c := Seed(unitBox())
	s := NewScratch()
	g := mgl64.Vec3{0.2, 0.1, -0.3}

	c.Clip(s, mgl64.Vec3{0.4, 0, 0}, mgl64.Vec3{1, 0, 0}, bbox.NeighborID(5), &g)
	c.Clip(s, mgl64.Vec3{0, 0.4, 0}, mgl64.Vec3{0, 1, 0}, bbox.NeighborID(6), &g)

	wantVolume := 1.4 * 1.4 * 2.0 // [-1,0.4]x[-1,0.4]x[-1,1]
	if math.Abs(c.Volume()-wantVolume) > 1e-9 {
		t.Fatalf("Volume() = %v, want %v", c.Volume(), wantVolume)
	}

	f := cellface.Seed(unitBox())
	fs := cellface.NewScratch()
	f.Clip(fs, mgl64.Vec3{0.4, 0, 0}, mgl64.Vec3{1, 0, 0}, bbox.NeighborID(5), &g)
	f.Clip(fs, mgl64.Vec3{0, 0.4, 0}, mgl64.Vec3{0, 1, 0}, bbox.NeighborID(6), &g)
	if math.Abs(c.Volume()-f.Volume()) > 1e-9 {
		t.Fatalf("celledge Volume() = %v, cellface Volume() = %v", c.Volume(), f.Volume())
	}
	if d := c.Centroid().Sub(f.Centroid()).Len(); d > 1e-9 {
		t.Fatalf("celledge Centroid() = %v, cellface Centroid() = %v", c.Centroid(), f.Centroid())
	}
}
