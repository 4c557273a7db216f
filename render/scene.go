package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

const strokeWidth = 1.5

// Viewer is the part of a camera a renderer reads each frame.
type Viewer interface {
	Eye() mgl64.Vec3
	Transformation() mgl64.Mat4
}

type object struct {
	wire  *Wireframe
	pos   mgl64.Vec3
	color color.RGBA
}

// Scene is a list of wireframes placed in world space.
type Scene struct {
	objects []object
}

func NewScene() *Scene {
	return &Scene{}
}

// Add places w at pos, translated but not rotated.
func (s *Scene) Add(w *Wireframe, pos mgl64.Vec3, clr color.RGBA) {
	s.objects = append(s.objects, object{wire: w, pos: pos, color: clr})
}

func (s *Scene) Len() int {
	return len(s.objects)
}

// drawOrder returns object indices sorted far to near from eye.
func (s *Scene) drawOrder(eye mgl64.Vec3) []int {
	order := make([]int, len(s.objects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		di := s.objects[order[i]].pos.Sub(eye).LenSqr()
		dj := s.objects[order[j]].pos.Sub(eye).LenSqr()
		return di > dj
	})
	return order
}

// Projected is the visible part of one object in screen space.
type Projected struct {
	Color    color.RGBA
	Segments []Segment
}

// Project returns the visible screen segments of every object, far objects
// first, for a width x height target.
func (s *Scene) Project(v Viewer, width, height float64) []Projected {
	vp := v.Transformation()
	order := s.drawOrder(v.Eye())

	out := make([]Projected, 0, len(order))
	for _, i := range order {
		obj := s.objects[i]
		// object space to world space, then world space to clip space
		objToWorld := mgl64.Translate3D(obj.pos[0], obj.pos[1], obj.pos[2])
		out = append(out, Projected{
			Color:    obj.color,
			Segments: projectEdges(obj.wire, vp.Mul4(objToWorld), width, height, nil),
		})
	}
	return out
}

// Draw renders the scene onto screen as seen by v.
func (s *Scene) Draw(screen *ebiten.Image, v Viewer) {
	b := screen.Bounds()
	for _, p := range s.Project(v, float64(b.Dx()), float64(b.Dy())) {
		strokeSegments(screen, p.Segments, strokeWidth, p.Color)
	}
}
