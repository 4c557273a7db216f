package flycam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultSpeed       = 0.3
	DefaultSensitivity = 0.001

	// DefaultPitchMargin keeps pitch this far from the poles.
	DefaultPitchMargin = 0.01
)

// Bindings maps movement directions to keys.
type Bindings struct {
	Forward Key
	Back    Key
	Left    Key
	Right   Key
	Up      Key
	Down    Key
}

// DefaultBindings is WASD for planar movement, Space and left Shift for
// vertical.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: KeyW,
		Back:    KeyS,
		Left:    KeyA,
		Right:   KeyD,
		Up:      KeySpace,
		Down:    KeyLeftShift,
	}
}

// FlyController turns key state and cursor motion into camera mutations.
// Speed is world units per Update with a key held; Sensitivity is radians
// per pixel of cursor motion.
type FlyController struct {
	Speed       float64
	Sensitivity float64
	PitchMargin float64
	Bindings    Bindings

	yaw   float64
	pitch float64

	lastX, lastY float64
	haveCursor   bool
}

// NewFlyController creates a controller whose look angles start from the
// camera's current orientation.
func NewFlyController(cam *Camera, speed, sensitivity float64) *FlyController {
	fc := &FlyController{
		Speed:       speed,
		Sensitivity: sensitivity,
		PitchMargin: DefaultPitchMargin,
		Bindings:    DefaultBindings(),
		yaw:         cam.Yaw(),
	}
	fc.pitch = fc.clampPitch(cam.Pitch())
	return fc
}

func (fc *FlyController) clampPitch(p float64) float64 {
	return mgl64.Clamp(p, fc.PitchMargin, math.Pi-fc.PitchMargin)
}

// YawPitch returns the accumulated look angles.
func (fc *FlyController) YawPitch() (yaw, pitch float64) {
	return fc.yaw, fc.pitch
}

// SetYawPitch overrides the accumulated look angles and applies them.
func (fc *FlyController) SetYawPitch(cam *Camera, yaw, pitch float64) {
	fc.yaw = yaw
	fc.pitch = fc.clampPitch(pitch)
	cam.SetYawPitch(fc.yaw, fc.pitch)
}

// MoveBasis returns unit vectors for walking: forward is the look direction
// projected onto the ground plane, right is forward × up, and up is the
// world up axis. Forward comes from yaw alone so it stays defined when the
// camera looks straight up or down.
func MoveBasis(cam *Camera) (forward, right, up mgl64.Vec3) {
	sinYaw, cosYaw := math.Sincos(cam.Yaw())
	up = cam.UpAxis()
	forward = cam.CoordFrame().FromCanonical(mgl64.Vec3{cosYaw, 0, sinYaw})
	right = forward.Cross(up).Normalize()
	return forward, right, up
}

// Move translates the camera by intent in the movement basis: intent[0]
// forward, intent[1] up, intent[2] right, scaled by Speed.
func (fc *FlyController) Move(cam *Camera, intent mgl64.Vec3) {
	if intent == (mgl64.Vec3{}) {
		return
	}
	forward, right, up := MoveBasis(cam)
	delta := forward.Mul(intent[0]).
		Add(up.Mul(intent[1])).
		Add(right.Mul(intent[2])).
		Mul(fc.Speed)
	cam.Translate(delta)
}

// Look turns the camera by a cursor delta in pixels. Moving the cursor down
// increases pitch, tilting the view towards the ground.
func (fc *FlyController) Look(cam *Camera, dx, dy float64) {
	fc.yaw += dx * fc.Sensitivity
	fc.pitch = fc.clampPitch(fc.pitch + dy*fc.Sensitivity)
	cam.SetYawPitch(fc.yaw, fc.pitch)
}

// Update applies one frame of input: movement keys first, then the cursor
// delta since the previous Update. The first cursor sample only sets the
// baseline.
func (fc *FlyController) Update(cam *Camera, in Input) {
	fc.Move(cam, fc.intent(in))

	x, y := in.CursorPosition()
	if !fc.haveCursor {
		fc.lastX, fc.lastY = x, y
		fc.haveCursor = true
		return
	}
	dx, dy := x-fc.lastX, y-fc.lastY
	fc.lastX, fc.lastY = x, y
	if dx != 0 || dy != 0 {
		fc.Look(cam, dx, dy)
	}
}

// ResetCursor forgets the last cursor sample, e.g. after the cursor has been
// warped or recaptured.
func (fc *FlyController) ResetCursor() {
	fc.haveCursor = false
}

func (fc *FlyController) intent(in Input) mgl64.Vec3 {
	var v mgl64.Vec3
	b := fc.Bindings
	if in.IsKeyPressed(b.Forward) {
		v[0]++
	}
	if in.IsKeyPressed(b.Back) {
		v[0]--
	}
	if in.IsKeyPressed(b.Left) {
		v[2]--
	}
	if in.IsKeyPressed(b.Right) {
		v[2]++
	}
	if in.IsKeyPressed(b.Up) {
		v[1]++
	}
	if in.IsKeyPressed(b.Down) {
		v[1]--
	}
	return v
}
