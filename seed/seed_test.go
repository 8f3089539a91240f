package seed

import (
	"math/rand"
	"os"
	"testing"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/brackenforge/voronoi/cellface"
	"github.com/brackenforge/voronoi/wall"
	"github.com/go-gl/mathgl/mgl64"
)

func TestNewRNGIsReproducible(t *testing.T) {
	a := NewRNG(DefaultSeed)
	b := NewRNG(DefaultSeed)
	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d diverged: %v != %v", i, x, y)
		}
	}
}

func TestRandomGenerators3RejectsOutsideWalls(t *testing.T) {
	box := bbox.NewBox3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10})
	walls := []wall.Wall3{wall.NewSphere(-1000, mgl64.Vec3{5, 5, 5}, 3)}
	rng := rand.New(rand.NewSource(1))

	points := RandomGenerators3(box, walls, 50, rng)
	if len(points) != 50 {
		t.Fatalf("got %d points, want 50", len(points))
	}
	for _, p := range points {
		if !walls[0].Contains(p) {
			t.Fatalf("point %v lies outside the sphere wall", p)
		}
	}
}

func TestRandomGenerators3BoundsAttempts(t *testing.T) {
	box := bbox.NewBox3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10})
	// A sphere wall that does not intersect the domain box at all makes
	// every attempt fail; RandomGenerators3 must give up rather than loop
	// forever, returning fewer points than requested rather than erroring.
	walls := []wall.Wall3{wall.NewSphere(-1000, mgl64.Vec3{1000, 1000, 1000}, 1)}
	rng := rand.New(rand.NewSource(1))

	points := RandomGenerators3(box, walls, 5, rng)
	if len(points) != 0 {
		t.Fatalf("got %d points, want 0", len(points))
	}
}

func TestImportGenerators3DiscardsIDAndIgnoresExtraTokens(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "generators-*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("0 1.0 2.0 3.0\n\n1 4.0 5.0 6.0 extra ignored\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	points, err := ImportGenerators3(f.Name())
	if err != nil {
		t.Fatalf("ImportGenerators3: %v", err)
	}
	want := []mgl64.Vec3{{1, 2, 3}, {4, 5, 6}}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i, p := range points {
		if p != want[i] {
			t.Fatalf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestRelax3KeepsEmptyCellAtPriorPosition(t *testing.T) {
	box := bbox.NewBox3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10})
	full := cellface.Seed(box)
	empty := cellface.Seed(box)
	empty.Clear()

	cells := []*cellface.Cell{full, empty}
	prior := []mgl64.Vec3{{1, 2, 3}, {9, 9, 9}}

	out := Relax3(cells, prior)
	if out[0] != full.Centroid() {
		t.Fatalf("non-empty cell should relax to its centroid, got %v", out[0])
	}
	if out[1] != prior[1] {
		t.Fatalf("empty cell should keep its prior position, got %v want %v", out[1], prior[1])
	}
}
