package render

import "github.com/go-gl/mathgl/mgl64"

// Segment is a line in screen pixels, y pointing down.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// clipNear clips the clip-space segment a-b to the near half-space
// z >= -w. It reports false when the whole segment lies behind the near
// plane.
func clipNear(a, b mgl64.Vec4) (mgl64.Vec4, mgl64.Vec4, bool) {
	da := a[2] + a[3]
	db := b[2] + b[3]
	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da >= 0 && db >= 0:
		return a, b, true
	}

	t := da / (da - db)
	p := a.Add(b.Sub(a).Mul(t))
	if da < 0 {
		return p, b, true
	}
	return a, p, true
}

// toScreen divides by w and maps NDC [-1, 1] onto a width x height target.
func toScreen(v mgl64.Vec4, width, height float64) (x, y float32) {
	nx := v[0] / v[3]
	ny := v[1] / v[3]
	return float32((nx + 1) / 2 * width), float32((1 - ny) / 2 * height)
}

// projectEdges transforms the wireframe by mvp and returns the visible part
// of every edge in screen space.
func projectEdges(w *Wireframe, mvp mgl64.Mat4, width, height float64, out []Segment) []Segment {
	clip := make([]mgl64.Vec4, len(w.Points))
	for i, p := range w.Points {
		clip[i] = mvp.Mul4x1(p.Vec4(1))
	}

	for _, e := range w.Edges {
		a, b, ok := clipNear(clip[e[0]], clip[e[1]])
		if !ok {
			continue
		}
		x0, y0 := toScreen(a, width, height)
		x1, y1 := toScreen(b, width, height)
		out = append(out, Segment{X0: x0, Y0: y0, X1: x1, Y1: y1})
	}
	return out
}
