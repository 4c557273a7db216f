package flycam

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultFov    = math.Pi / 4
	DefaultNear   = 0.1
	DefaultFar    = 1024.0
	DefaultAspect = 800.0 / 600.0
)

// ErrInvalidFrustum is returned when perspective parameters cannot describe
// a finite, non-empty frustum.
var ErrInvalidFrustum = errors.New("invalid frustum")

// Frustum holds the perspective projection parameters. Fov is the vertical
// field of view in radians and Aspect is width / height.
type Frustum struct {
	Fov    float64
	Aspect float64
	Near   float64
	Far    float64
}

// DefaultFrustum is 45° vertical fov, near 0.1, far 1024 at 800x600.
func DefaultFrustum() Frustum {
	return Frustum{
		Fov:    DefaultFov,
		Aspect: DefaultAspect,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// Validate reports whether the frustum can produce a finite projection.
func (f Frustum) Validate() error {
	for _, v := range []float64{f.Fov, f.Aspect, f.Near, f.Far} {
		if !isFinite(v) {
			return fmt.Errorf("%w: non-finite parameter in %+v", ErrInvalidFrustum, f)
		}
	}
	switch {
	case f.Fov <= 0 || f.Fov >= math.Pi:
		return fmt.Errorf("%w: fov %v must be in (0, π)", ErrInvalidFrustum, f.Fov)
	case f.Near <= 0:
		return fmt.Errorf("%w: near plane %v must be positive", ErrInvalidFrustum, f.Near)
	case f.Near >= f.Far:
		return fmt.Errorf("%w: near plane %v must be closer than far plane %v", ErrInvalidFrustum, f.Near, f.Far)
	case f.Aspect <= 0:
		return fmt.Errorf("%w: aspect %v must be positive", ErrInvalidFrustum, f.Aspect)
	}
	return nil
}

// Matrix is the OpenGL-style perspective matrix for f.
func (f Frustum) Matrix() mgl64.Mat4 {
	return mgl64.Perspective(f.Fov, f.Aspect, f.Near, f.Far)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
