package render

import "github.com/go-gl/mathgl/mgl64"

// Wireframe is a set of points joined by edges, in object space.
type Wireframe struct {
	Points []mgl64.Vec3
	Edges  [][2]int

	pointIndex map[mgl64.Vec3]int
}

func NewWireframe() *Wireframe {
	return &Wireframe{
		pointIndex: make(map[mgl64.Vec3]int),
	}
}

// AddPoint returns the index of p, adding it if it is not already present.
func (w *Wireframe) AddPoint(p mgl64.Vec3) int {
	if index, found := w.pointIndex[p]; found {
		return index
	}
	w.Points = append(w.Points, p)
	index := len(w.Points) - 1
	w.pointIndex[p] = index
	return index
}

// AddEdge joins a and b, adding either point as needed.
func (w *Wireframe) AddEdge(a, b mgl64.Vec3) {
	w.Edges = append(w.Edges, [2]int{w.AddPoint(a), w.AddPoint(b)})
}

// Copy must also duplicate the point index.
func (w *Wireframe) Copy() *Wireframe {
	idx := make(map[mgl64.Vec3]int, len(w.pointIndex))
	for k, v := range w.pointIndex {
		idx[k] = v
	}
	return &Wireframe{
		Points:     append([]mgl64.Vec3(nil), w.Points...),
		Edges:      append([][2]int(nil), w.Edges...),
		pointIndex: idx,
	}
}

// NewCube is an axis-aligned cube of the given edge length centred on the
// origin.
func NewCube(size float64) *Wireframe {
	h := size / 2
	w := NewWireframe()
	corner := func(i int) mgl64.Vec3 {
		v := mgl64.Vec3{-h, -h, -h}
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				v[axis] = h
			}
		}
		return v
	}
	// Corners differing in exactly one bit share an edge.
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			j := i | 1<<axis
			if j != i {
				w.AddEdge(corner(i), corner(j))
			}
		}
	}
	return w
}

// NewGrid is a square grid of lines spanning the plane of u and v, with
// half cells on each side of the origin.
func NewGrid(half int, step float64, u, v mgl64.Vec3) *Wireframe {
	w := NewWireframe()
	extent := float64(half) * step
	for i := -half; i <= half; i++ {
		o := float64(i) * step
		w.AddEdge(u.Mul(o).Add(v.Mul(-extent)), u.Mul(o).Add(v.Mul(extent)))
		w.AddEdge(v.Mul(o).Add(u.Mul(-extent)), v.Mul(o).Add(u.Mul(extent)))
	}
	return w
}
