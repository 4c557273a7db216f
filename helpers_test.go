package flycam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// vecAlmostEqual compares component-wise with an absolute tolerance.
// mgl64's ApproxEqualThreshold is relative and too strict near zero.
func vecAlmostEqual(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if !almostEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func vec4AlmostEqual(a, b mgl64.Vec4, eps float64) bool {
	for i := range a {
		if !almostEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func quatAlmostEqual(a, b mgl64.Quat, eps float64) bool {
	return almostEqual(a.W, b.W, eps) && vecAlmostEqual(a.V, b.V, eps)
}

func matAlmostEqual(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		if !almostEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func isFiniteVec(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func isFiniteMat(m mgl64.Mat4) bool {
	for _, c := range m {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func mustCamera(t *testing.T, eye, at mgl64.Vec3, opts ...Option) *Camera {
	t.Helper()
	c, err := New(eye, at, opts...)
	if err != nil {
		t.Fatalf("New(%v, %v) error: %v", eye, at, err)
	}
	return c
}
