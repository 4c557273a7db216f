package flycam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type fakeInput struct {
	keys map[Key]bool
	x, y float64
}

func (f *fakeInput) IsKeyPressed(k Key) bool {
	return f.keys[k]
}

func (f *fakeInput) CursorPosition() (x, y float64) {
	return f.x, f.y
}

func newTestController(t *testing.T) (*Camera, *FlyController) {
	t.Helper()
	// Looking along +Z with Y up: yaw π/2, pitch π/2, right is -X.
	cam := mustCamera(t, mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 0, 1})
	return cam, NewFlyController(cam, 0.5, 0.001)
}

func TestControllerMovement(t *testing.T) {
	testCases := []struct {
		name string
		keys []Key
		want mgl64.Vec3
	}{
		{"forward", []Key{KeyW}, mgl64.Vec3{0, 0, -9.5}},
		{"back", []Key{KeyS}, mgl64.Vec3{0, 0, -10.5}},
		{"right", []Key{KeyD}, mgl64.Vec3{-0.5, 0, -10}},
		{"left", []Key{KeyA}, mgl64.Vec3{0.5, 0, -10}},
		{"up", []Key{KeySpace}, mgl64.Vec3{0, 0.5, -10}},
		{"down", []Key{KeyLeftShift}, mgl64.Vec3{0, -0.5, -10}},
		{"forward and back cancel", []Key{KeyW, KeyS}, mgl64.Vec3{0, 0, -10}},
		{"diagonal", []Key{KeyW, KeyD, KeySpace}, mgl64.Vec3{-0.5, 0.5, -9.5}},
		{"no keys", nil, mgl64.Vec3{0, 0, -10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam, fc := newTestController(t)
			in := &fakeInput{keys: map[Key]bool{}}
			for _, k := range tc.keys {
				in.keys[k] = true
			}
			fc.Update(cam, in)
			if got := cam.Eye(); !vecAlmostEqual(got, tc.want, 1e-12) {
				t.Errorf("Eye() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestControllerMovementIgnoresPitch(t *testing.T) {
	cam, fc := newTestController(t)
	// Looking steeply down must not move the eye vertically.
	fc.SetYawPitch(cam, math.Pi/2, math.Pi-0.2)
	fc.Move(cam, mgl64.Vec3{1, 0, 0})
	if got := cam.Eye(); !vecAlmostEqual(got, mgl64.Vec3{0, 0, -9.5}, 1e-12) {
		t.Errorf("Eye() = %v, want (0, 0, -9.5)", got)
	}
}

func TestControllerLook(t *testing.T) {
	cam, fc := newTestController(t)
	in := &fakeInput{keys: map[Key]bool{}, x: 400, y: 300}

	fc.Update(cam, in)
	if !almostEqual(cam.Yaw(), math.Pi/2, 1e-12) || !almostEqual(cam.Pitch(), math.Pi/2, 1e-12) {
		t.Fatalf("first sample turned the camera to (%v, %v)", cam.Yaw(), cam.Pitch())
	}

	in.x, in.y = 500, 250
	fc.Update(cam, in)
	if want := math.Pi/2 + 0.1; !almostEqual(cam.Yaw(), want, 1e-12) {
		t.Errorf("Yaw() = %v, want %v", cam.Yaw(), want)
	}
	if want := math.Pi/2 - 0.05; !almostEqual(cam.Pitch(), want, 1e-12) {
		t.Errorf("Pitch() = %v, want %v", cam.Pitch(), want)
	}

	fc.ResetCursor()
	in.x, in.y = 0, 0
	fc.Update(cam, in)
	if want := math.Pi/2 + 0.1; !almostEqual(cam.Yaw(), want, 1e-12) {
		t.Errorf("Yaw() after ResetCursor = %v, want %v", cam.Yaw(), want)
	}
}

func TestControllerPitchClamp(t *testing.T) {
	testCases := []struct {
		name string
		dy   float64
		want float64
	}{
		{"past straight down", 1e6, math.Pi - DefaultPitchMargin},
		{"past straight up", -1e6, DefaultPitchMargin},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam, fc := newTestController(t)
			fc.Look(cam, 0, tc.dy)
			if !almostEqual(cam.Pitch(), tc.want, 1e-12) {
				t.Errorf("Pitch() = %v, want %v", cam.Pitch(), tc.want)
			}
			if _, p := fc.YawPitch(); p != cam.Pitch() {
				t.Errorf("YawPitch() pitch = %v, camera has %v", p, cam.Pitch())
			}
			if dir := cam.EyeDir(); !isFiniteVec(dir) {
				t.Errorf("EyeDir() = %v", dir)
			}
		})
	}
}

func TestNewFlyControllerClampsSeedPitch(t *testing.T) {
	cam := mustCamera(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 5, 0})
	fc := NewFlyController(cam, 1, 1)
	if _, p := fc.YawPitch(); p != DefaultPitchMargin {
		t.Errorf("seed pitch = %v, want %v", p, DefaultPitchMargin)
	}
}

func TestMoveBasisZUp(t *testing.T) {
	up := mgl64.Vec3{0, 0, 1}
	cam := mustCamera(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, WithUpAxis(up))
	forward, right, basisUp := MoveBasis(cam)

	if !vecAlmostEqual(basisUp, up, 1e-12) {
		t.Errorf("up = %v, want %v", basisUp, up)
	}
	if !vecAlmostEqual(forward, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("forward = %v, want (0, 1, 0)", forward)
	}
	if !vecAlmostEqual(right, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("right = %v, want (1, 0, 0)", right)
	}
}

func TestControllerCustomBindings(t *testing.T) {
	cam, fc := newTestController(t)
	fc.Bindings.Forward = KeyEscape
	fc.Update(cam, &fakeInput{keys: map[Key]bool{KeyEscape: true}})
	if got := cam.Eye(); !vecAlmostEqual(got, mgl64.Vec3{0, 0, -9.5}, 1e-12) {
		t.Errorf("Eye() = %v, want (0, 0, -9.5)", got)
	}
}
