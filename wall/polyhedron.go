package wall

import (
	"math"

	"github.com/brackenforge/voronoi/bbox"
	"github.com/go-gl/mathgl/mgl64"
)

// ConvexPolyhedron confines the tessellation to the intersection of a fixed
// set of half-spaces. Constructors for the five Platonic solids build on
// it.
type ConvexPolyhedron struct {
	id      bbox.NeighborID
	points  []mgl64.Vec3
	normals []mgl64.Vec3 // normalized, point OUT of the valid region
}

// NewConvexPolyhedron builds a polyhedron wall from parallel point/normal
// lists (one per face); normals point out of the valid region.
func NewConvexPolyhedron(id bbox.NeighborID, points, normals []mgl64.Vec3) *ConvexPolyhedron {
	p := &ConvexPolyhedron{id: checkID(id), points: append([]mgl64.Vec3(nil), points...)}
	p.normals = make([]mgl64.Vec3, len(normals))
	for i, n := range normals {
		p.normals[i] = normalize3(n)
	}
	return p
}

func facesFromNormals(center mgl64.Vec3, dist float64, normals [][3]float64) *ConvexPolyhedron {
	p := &ConvexPolyhedron{}
	for _, raw := range normals {
		n := normalize3(mgl64.Vec3{raw[0], raw[1], raw[2]})
		p.normals = append(p.normals, n)
		p.points = append(p.points, center.Add(n.Mul(dist)))
	}
	return p
}

// NewTetrahedron builds a regular tetrahedron wall with the given
// circumradius.
func NewTetrahedron(id bbox.NeighborID, center mgl64.Vec3, radius float64) *ConvexPolyhedron {
	dist := radius / 3.0
	p := facesFromNormals(center, dist, [][3]float64{
		{-1, -1, -1}, {-1, 1, 1}, {1, -1, 1}, {1, 1, -1},
	})
	p.id = checkID(id)
	return p
}

// NewHexahedron builds a cube wall with the given circumradius.
func NewHexahedron(id bbox.NeighborID, center mgl64.Vec3, radius float64) *ConvexPolyhedron {
	dist := radius / math.Sqrt(3)
	p := facesFromNormals(center, dist, [][3]float64{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	})
	p.id = checkID(id)
	return p
}

// NewOctahedron builds a regular octahedron wall with the given
// circumradius.
func NewOctahedron(id bbox.NeighborID, center mgl64.Vec3, radius float64) *ConvexPolyhedron {
	dist := radius / math.Sqrt(3)
	var normals [][3]float64
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				normals = append(normals, [3]float64{x, y, z})
			}
		}
	}
	p := facesFromNormals(center, dist, normals)
	p.id = checkID(id)
	return p
}

// NewDodecahedron builds a regular dodecahedron wall with the given
// circumradius.
func NewDodecahedron(id bbox.NeighborID, center mgl64.Vec3, radius float64) *ConvexPolyhedron {
	phi := (1 + math.Sqrt(5)) / 2
	xi := math.Sqrt((5 + 2*math.Sqrt(5)) / 15)
	dist := radius * xi
	normals := [][3]float64{
		{0, phi, 1}, {0, -phi, 1}, {0, phi, -1}, {0, -phi, -1},
		{1, 0, phi}, {1, 0, -phi}, {-1, 0, phi}, {-1, 0, -phi},
		{phi, 1, 0}, {phi, -1, 0}, {-phi, 1, 0}, {-phi, -1, 0},
	}
	p := facesFromNormals(center, dist, normals)
	p.id = checkID(id)
	return p
}

// NewIcosahedron builds a regular icosahedron wall with the given
// circumradius.
func NewIcosahedron(id bbox.NeighborID, center mgl64.Vec3, radius float64) *ConvexPolyhedron {
	phi := (1 + math.Sqrt(5)) / 2
	xi := math.Sqrt((5 + 2*math.Sqrt(5)) / 15)
	dist := radius * xi
	oneOverPhi := 1 / phi

	var normals [][3]float64
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				normals = append(normals, [3]float64{x, y, z})
			}
		}
	}
	for _, y := range []float64{-1, 1} {
		for _, z := range []float64{-1, 1} {
			normals = append(normals, [3]float64{0, y * phi, z * oneOverPhi})
		}
	}
	for _, x := range []float64{-1, 1} {
		for _, z := range []float64{-1, 1} {
			normals = append(normals, [3]float64{x * oneOverPhi, 0, z * phi})
		}
	}
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			normals = append(normals, [3]float64{x * phi, y * oneOverPhi, 0})
		}
	}

	p := facesFromNormals(center, dist, normals)
	p.id = checkID(id)
	return p
}

func (p *ConvexPolyhedron) ID() bbox.NeighborID { return p.id }

func (p *ConvexPolyhedron) Contains(x mgl64.Vec3) bool {
	for i, n := range p.normals {
		if x.Sub(p.points[i]).Dot(n) > 0 {
			return false
		}
	}
	return true
}

func (p *ConvexPolyhedron) Cut(_ mgl64.Vec3, emit func(point, outwardNormal mgl64.Vec3)) {
	for i, n := range p.normals {
		emit(p.points[i], n)
	}
}
