package grid

import (
	"sort"
	"testing"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

func samplePoints3() []mgl64.Vec3 {
	return []mgl64.Vec3{
		{0.1, 0.1, 0.1}, {0.9, 0.1, 0.1}, {0.1, 0.9, 0.1}, {0.1, 0.1, 0.9},
		{0.5, 0.5, 0.5}, {0.9, 0.9, 0.9}, {0.3, 0.7, 0.2}, {0.8, 0.2, 0.6},
	}
}

// bruteForce3 enumerates every j whose distance from points[self] satisfies
// the same 4*radiusSq diameter-squared test VisitNeighbors applies, not the
// bare radiusSq.
func bruteForce3(points []mgl64.Vec3, self int, radiusSq float64) []int {
	var got []int
	q := points[self]
	for j, p := range points {
		if j == self {
			continue
		}
		d := p.Sub(q)
		if d.Dot(d) <= 4*radiusSq {
			got = append(got, j)
		}
	}
	sort.Ints(got)
	return got
}

func TestGrid3VisitNeighborsMatchesBruteForce(t *testing.T) {
	box := bbox.NewBox3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	points := samplePoints3()
	g := NewGrid3(box, 3, 3, 3)
	g.SetGenerators(points)

	for self := range points {
		for _, radius := range []float64{0.1, 0.3, 0.6, 1.0, 2.0} {
			radiusSq := radius * radius
			// The bin bounds over-approximate; the exact point test is the
			// visitor's half of the contract, applied here as the driver
			// would.
			var got []int
			g.VisitNeighbors(self, points[self], func() float64 { return radiusSq }, func(j int) {
				d := points[j].Sub(points[self])
				if d.Dot(d) <= 4*radiusSq {
					got = append(got, j)
				}
			})
			sort.Ints(got)
			want := bruteForce3(points, self, radiusSq)
			if !equalInts(got, want) {
				t.Fatalf("self=%d radius=%v: got %v, want %v", self, radius, got, want)
			}
		}
	}
}

func TestGrid3SetGeneratorMovesBin(t *testing.T) {
	box := bbox.NewBox3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	points := samplePoints3()
	g := NewGrid3(box, 3, 3, 3)
	g.SetGenerators(points)

	moved := mgl64.Vec3{0.95, 0.95, 0.95}
	g.SetGenerator(0, moved)
	if got := g.Generators()[0]; got != moved {
		t.Fatalf("Generators()[0] = %v, want %v", got, moved)
	}

	radiusSq := 0.1 * 0.1
	points[0] = moved
	var got []int
	g.VisitNeighbors(0, moved, func() float64 { return radiusSq }, func(j int) {
		d := points[j].Sub(moved)
		if d.Dot(d) <= 4*radiusSq {
			got = append(got, j)
		}
	})
	sort.Ints(got)
	want := bruteForce3(points, 0, radiusSq)
	if !equalInts(got, want) {
		t.Fatalf("after SetGenerator: got %v, want %v", got, want)
	}
}

func TestRingMinDistSqMonotonic(t *testing.T) {
	prev := -1.0
	for r := 0; r < 5; r++ {
		cur := ringMinDistSq(r, 0.25)
		if cur < prev {
			t.Fatalf("ringMinDistSq(%d) = %v is less than ringMinDistSq(%d) = %v", r, cur, r-1, prev)
		}
		prev = cur
	}
}

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

func TestGrid2VisitNeighborsMatchesBruteForce(t *testing.T) {
	box := bbox.NewBox2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
	points := []mgl64.Vec2{
		{0.1, 0.1}, {0.9, 0.1}, {0.1, 0.9}, {0.5, 0.5}, {0.9, 0.9}, {0.3, 0.7},
	}
	g := NewGrid2(box, 3, 3)
	g.SetGenerators(points)

	for self := range points {
		radiusSq := 0.5 * 0.5
		var got []int
		g.VisitNeighbors(self, points[self], func() float64 { return radiusSq }, func(j int) {
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
