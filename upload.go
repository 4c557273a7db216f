package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Uniform is renderer-owned storage for one shader matrix.
type Uniform interface {
	Upload(m mgl32.Mat4)
}

// UniformFunc adapts a plain function to Uniform.
type UniformFunc func(m mgl32.Mat4)

func (f UniformFunc) Upload(m mgl32.Mat4) {
	f(m)
}

// Upload writes the current projection and view matrices into the
// renderer's uniform slots.
func (c *Camera) Upload(proj, view Uniform) {
	proj.Upload(Mat4To32(c.proj))
	view.Upload(Mat4To32(c.view))
}

// Mat4To32 narrows a column-major matrix to float32 for GPU upload.
func Mat4To32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
