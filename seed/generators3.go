package seed

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/brackenforge/voronoi/cellface"
	"github.com/brackenforge/voronoi/wall"
	"github.com/go-gl/mathgl/mgl64"
)

// maxRejectionFactor bounds rejection sampling: RandomGenerators3 gives up
// once it has made maxRejectionFactor*n attempts without placing n points,
// rather than looping forever against a degenerate (near-empty) valid
// region.
const maxRejectionFactor = 1000

// RandomGenerators3 draws up to n points uniformly from box, rejecting any
// point not contained by every wall in walls, using rng for reproducibility.
// If walls are over-restrictive it gives up after maxRejectionFactor*n
// attempts and returns fewer than n points; that is expected, not an error.
func RandomGenerators3(box bbox.Box3, walls []wall.Wall3, n int, rng *rand.Rand) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, n)
	d := box.Max.Sub(box.Min)
	maxAttempts := maxRejectionFactor * n
	if maxAttempts < maxRejectionFactor {
		maxAttempts = maxRejectionFactor
	}

	for attempt := 0; len(out) < n && attempt < maxAttempts; attempt++ {
		p := mgl64.Vec3{
			box.Min.X() + rng.Float64()*d.X(),
			box.Min.Y() + rng.Float64()*d.Y(),
			box.Min.Z() + rng.Float64()*d.Z(),
		}
		if !validPoint3(p, walls) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func validPoint3(p mgl64.Vec3, walls []wall.Wall3) bool {
	for _, w := range walls {
		if !w.Contains(p) {
			return false
		}
	}
	return true
}

// ImportGenerators3 parses one record per non-empty line of the file at
// path: "<id> <x> <y> <z> [ignored...]". The leading id token
// is discarded — the generator's index is its position within the file, not
// the id — and any tokens past the third coordinate are ignored. A
// malformed coordinate defaults to 0.0 rather than failing the whole import.
func ImportGenerators3(path string) ([]mgl64.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: import generators: %w", err)
	}
	defer f.Close()

	var points []mgl64.Vec3
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		var v [3]float64
		for i := 0; i < 3; i++ {
			v[i], _ = strconv.ParseFloat(fields[i+1], 64)
		}
		points = append(points, mgl64.Vec3{v[0], v[1], v[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seed: import generators: %w", err)
	}
	return points, nil
}

// Relax3 returns each non-empty cell's centroid, in cell order, for a
// Lloyd-relaxation step: the caller re-seeds the tessellation's generators
// from this slice and recalculates. Empty cells (fully clipped away) keep
// their prior position so the generator count never shrinks.
func Relax3(cells []*cellface.Cell, prior []mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(cells))
	for i, c := range cells {
		if c == nil || c.IsEmpty() {
			out[i] = prior[i]
			continue
		}
		out[i] = c.Centroid()
	}
	return out
}
