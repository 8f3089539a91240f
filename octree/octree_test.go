package octree

import (
	"sort"
	"testing"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOctree3VisitNeighborsMatchesBruteForce(t *testing.T) {
	box := bbox.NewBox3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	points := []mgl64.Vec3{
		{0.1, 0.1, 0.1}, {0.9, 0.1, 0.1}, {0.1, 0.9, 0.1}, {0.1, 0.1, 0.9},
		{0.5, 0.5, 0.5}, {0.9, 0.9, 0.9}, {0.3, 0.7, 0.2}, {0.8, 0.2, 0.6},
		{0.4, 0.4, 0.4}, {0.6, 0.6, 0.1},
	}
	tr := NewOctree3(box, 2)
	tr.Build(points)

	for self := range points {
		for _, radius := range []float64{0.1, 0.3, 0.6, 1.0, 2.0} {
			radiusSq := radius * radius
			// Node box bounds over-approximate; the exact point test is
			// the visitor's half of the contract.
			var got []int
			tr.VisitNeighbors(self, points[self], func() float64 { return radiusSq }, func(j int) {
				d := points[j].Sub(points[self])
				if d.Dot(d) <= 4*radiusSq {
					got = append(got, j)
				}
			})
			sort.Ints(got)

			var want []int
			q := points[self]
			for j, p := range points {
				if j == self {
					continue
				}
				d := p.Sub(q)
				// The same 4*radiusSq diameter-squared test
				// VisitNeighbors applies.
				if d.Dot(d) <= 4*radiusSq {
					want = append(want, j)
				}
			}
			sort.Ints(want)
			if !equalInts(got, want) {
				t.Fatalf("self=%d radius=%v: got %v, want %v", self, radius, got, want)
			}
		}
	}
}

func TestOctree3SetGeneratorRebuilds(t *testing.T) {
	box := bbox.NewBox3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	points := []mgl64.Vec3{{0.1, 0.1, 0.1}, {0.9, 0.9, 0.9}}
	tr := NewOctree3(box, 1)
	tr.SetGenerators(points)

	moved := mgl64.Vec3{0.05, 0.05, 0.05}
	tr.SetGenerator(0, moved)
	if got := tr.Generators()[0]; got != moved {
		t.Fatalf("Generators()[0] = %v, want %v", got, moved)
	}

	radiusSq := 4.0
	var got []int
	tr.VisitNeighbors(0, moved, func() float64 { return radiusSq }, func(j int) { got = append(got, j) })
	if !equalInts(got, []int{1}) {
		t.Fatalf("VisitNeighbors after SetGenerator = %v, want [1]", got)
	}

	// Appending a new generator via SetGenerator(len, p).
	tr.SetGenerator(2, mgl64.Vec3{0.5, 0.5, 0.5})
	if got, want := len(tr.Generators()), 3; got != want {
		t.Fatalf("len(Generators()) after append = %d, want %d", got, want)
	}
}

func TestQuadtree2VisitNeighborsMatchesBruteForce(t *testing.T) {
	box := bbox.NewBox2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
	points := []mgl64.Vec2{
		{0.1, 0.1}, {0.9, 0.1}, {0.1, 0.9}, {0.5, 0.5}, {0.9, 0.9}, {0.3, 0.7},
	}
	tr := NewQuadtree2(box, 2)
	tr.Build(points)

	for self := range points {
		radiusSq := 0.5 * 0.5
		var got []int
		tr.VisitNeighbors(self, points[self], func() float64 { return radiusSq }, func(j int) {
			d := points[j].Sub(points[self])
			if d.Dot(d) <= 4*radiusSq {
				got = append(got, j)
			}
		})
		sort.Ints(got)

		var want []int
		q := points[self]
		for j, p := range points {
			if j == self {
				continue
			}
			d := p.Sub(q)
			if d.Dot(d) <= 4*radiusSq {
				want = append(want, j)
			}
		}
		sort.Ints(want)
		if !equalInts(got, want) {
			t.Fatalf("self=%d: got %v, want %v", self, got, want)
		}
	}
}
