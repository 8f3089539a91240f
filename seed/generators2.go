package seed

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/brackenforge/voronoi/polygon2"
	"github.com/brackenforge/voronoi/wall"
	"github.com/go-gl/mathgl/mgl64"
)

// RandomGenerators2 is the 2D analogue of RandomGenerators3: it returns
// fewer than n points, not an error, if walls are over-restrictive.
func RandomGenerators2(box bbox.Box2, walls []wall.Wall2, n int, rng *rand.Rand) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, 0, n)
	d := box.Max.Sub(box.Min)
	maxAttempts := maxRejectionFactor * n
	if maxAttempts < maxRejectionFactor {
		maxAttempts = maxRejectionFactor
	}

	for attempt := 0; len(out) < n && attempt < maxAttempts; attempt++ {
		p := mgl64.Vec2{
			box.Min.X() + rng.Float64()*d.X(),
			box.Min.Y() + rng.Float64()*d.Y(),
		}
		if !validPoint2(p, walls) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func validPoint2(p mgl64.Vec2, walls []wall.Wall2) bool {
	for _, w := range walls {
		if !w.Contains(p) {
			return false
		}
	}
	return true
}

// ImportGenerators2 parses one record per non-empty line of the file at
// path: "<id> <x> <y> [ignored...]", discarding the leading id
// token the same way ImportGenerators3 does.
func ImportGenerators2(path string) ([]mgl64.Vec2, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: import generators: %w", err)
	}
	defer f.Close()

	var points []mgl64.Vec2
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		var v [2]float64
		for i := 0; i < 2; i++ {
			v[i], _ = strconv.ParseFloat(fields[i+1], 64)
		}
		points = append(points, mgl64.Vec2{v[0], v[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seed: import generators: %w", err)
	}
	return points, nil
}

// Relax2 is the 2D analogue of Relax3.
func Relax2(cells []*polygon2.Cell, prior []mgl64.Vec2) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(cells))
	for i, c := range cells {
		if c == nil || c.IsEmpty() {
			out[i] = prior[i]
			continue
		}
		out[i] = c.Centroid()
	}
	return out
}
