package flycam

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minLookDistance is the smallest eye-to-target distance LookAt accepts.
const minLookDistance = 1e-12

// parallelEpsilon bounds |dir × up| below which the up axis is no usable
// LookAt hint.
const parallelEpsilon = 1e-9

// ErrDegenerateLookAt is returned when the eye and target coincide, leaving
// the pitch undefined.
var ErrDegenerateLookAt = errors.New("degenerate look-at")

// Camera is a first-person camera. Orientation is a yaw/pitch pair in the
// Y-up canonical frame; pitch is measured from +Y (0 looks straight up, π
// straight down) and yaw is the azimuth in the X-Z plane.
//
// All derived matrices are recomputed by every mutator, so reads always
// reflect the latest state. A Camera is owned by a single frame loop and is
// not safe for concurrent use; hand render passes a Snapshot instead.
type Camera struct {
	eye     mgl64.Vec3
	yaw     float64
	pitch   float64
	frustum Frustum
	frame   CoordFrame

	view        mgl64.Mat4
	viewIso     Isometry
	proj        mgl64.Mat4
	projView    mgl64.Mat4
	invProjView mgl64.Mat4
}

// Option configures a Camera before its first look-at.
type Option func(*Camera)

// WithUpAxis sets the world up axis. The default is +Y.
func WithUpAxis(up mgl64.Vec3) Option {
	return func(c *Camera) {
		c.frame = NewCoordFrame(up)
	}
}

// WithAspect sets the initial aspect ratio (width / height), replacing the
// 800x600 default used until the first Resize.
func WithAspect(aspect float64) Option {
	return func(c *Camera) {
		c.frustum.Aspect = aspect
	}
}

// New creates a camera at eye looking at at, with the default frustum.
func New(eye, at mgl64.Vec3, opts ...Option) (*Camera, error) {
	return NewWithFrustum(DefaultFov, DefaultNear, DefaultFar, eye, at, opts...)
}

// NewWithFrustum creates a camera with the given vertical fov (radians) and
// clip planes.
func NewWithFrustum(fov, near, far float64, eye, at mgl64.Vec3, opts ...Option) (*Camera, error) {
	c := &Camera{
		frustum: Frustum{Fov: fov, Aspect: DefaultAspect, Near: near, Far: far},
		frame:   NewCoordFrame(yAxis),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.frustum.Validate(); err != nil {
		return nil, err
	}
	if err := c.LookAt(eye, at); err != nil {
		return nil, err
	}

	return c, nil
}

// LookAt moves the camera to eye and turns it towards at. The camera is left
// unchanged if the two points coincide.
func (c *Camera) LookAt(eye, at mgl64.Vec3) error {
	dist := at.Sub(eye).Len()
	if !(dist > minLookDistance) || math.IsInf(dist, 0) {
		return fmt.Errorf("%w: eye %v target %v", ErrDegenerateLookAt, eye, at)
	}

	d := c.frame.ToCanonical(at).Sub(c.frame.ToCanonical(eye))

	c.eye = eye
	// acos(dy/dist) loses precision near the poles; atan2 does not.
	c.pitch = math.Atan2(math.Hypot(d[0], d[2]), d[1])
	c.yaw = math.Atan2(d[2], d[0])
	c.update()

	return nil
}

// SetYawPitch stores the angles as given. Callers keep pitch away from 0 and
// π when they derive a movement basis from EyeDir.
func (c *Camera) SetYawPitch(yaw, pitch float64) {
	c.yaw = yaw
	c.pitch = pitch
	c.update()
}

// Translate moves the eye by d in world space.
func (c *Camera) Translate(d mgl64.Vec3) {
	c.eye = c.eye.Add(d)
	c.update()
}

// Resize sets the aspect ratio from the render target size in pixels.
// Non-positive sizes, as reported for minimized windows, are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.frustum.Aspect = float64(width) / float64(height)
	c.update()
}

// SetFrustum replaces fov and clip planes, keeping the current aspect.
func (c *Camera) SetFrustum(fov, near, far float64) error {
	f := Frustum{Fov: fov, Aspect: c.frustum.Aspect, Near: near, Far: far}
	if err := f.Validate(); err != nil {
		return err
	}
	c.frustum = f
	c.update()
	return nil
}

// lookDir is the unit look direction in the canonical frame.
func (c *Camera) lookDir() mgl64.Vec3 {
	sinPitch, cosPitch := math.Sincos(c.pitch)
	sinYaw, cosYaw := math.Sincos(c.yaw)
	return mgl64.Vec3{cosYaw * sinPitch, cosPitch, sinYaw * sinPitch}
}

// screenUp is the canonical-frame direction that points up on screen for the
// current orientation. It is perpendicular to lookDir even at the poles.
func (c *Camera) screenUp() mgl64.Vec3 {
	sinPitch, cosPitch := math.Sincos(c.pitch)
	sinYaw, cosYaw := math.Sincos(c.yaw)
	return mgl64.Vec3{-cosYaw * cosPitch, sinPitch, -sinYaw * cosPitch}
}

// At is the point one unit in front of the eye.
func (c *Camera) At() mgl64.Vec3 {
	// R⁻¹(R·eye + d) == eye + R⁻¹d
	return c.eye.Add(c.frame.FromCanonical(c.lookDir()))
}

// EyeDir is the unit direction the camera looks in, in world space.
func (c *Camera) EyeDir() mgl64.Vec3 {
	return c.At().Sub(c.eye).Normalize()
}

func (c *Camera) update() {
	at := c.At()
	up := c.frame.Up()
	if at.Sub(c.eye).Cross(up).Len() < parallelEpsilon {
		up = c.frame.FromCanonical(c.screenUp())
	}

	c.view = mgl64.LookAtV(c.eye, at, up)
	c.viewIso = isometryFromMat4(c.view)
	c.proj = c.frustum.Matrix()
	c.projView = c.proj.Mul4(c.view)
	if inv, ok := invert(c.projView); ok {
		c.invProjView = inv
	}
}

// invert returns m⁻¹, or false when m is singular or the result is not
// finite.
func invert(m mgl64.Mat4) (mgl64.Mat4, bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return mgl64.Mat4{}, false
	}
	inv := m.Inv()
	for _, v := range inv {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return mgl64.Mat4{}, false
		}
	}
	return inv, true
}

func (c *Camera) Eye() mgl64.Vec3 {
	return c.eye
}

func (c *Camera) Yaw() float64 {
	return c.yaw
}

func (c *Camera) Pitch() float64 {
	return c.pitch
}

func (c *Camera) Frustum() Frustum {
	return c.frustum
}

func (c *Camera) UpAxis() mgl64.Vec3 {
	return c.frame.Up()
}

func (c *Camera) CoordFrame() CoordFrame {
	return c.frame
}

// View is the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return c.view
}

// ViewTransform is View as a rigid transform.
func (c *Camera) ViewTransform() Isometry {
	return c.viewIso
}

func (c *Camera) Projection() mgl64.Mat4 {
	return c.proj
}

// Transformation is Projection * View, mapping world space to clip space.
func (c *Camera) Transformation() mgl64.Mat4 {
	return c.projView
}

// InverseTransformation is the inverse of Transformation. If the latest
// Transformation was singular it holds the last invertible one's inverse.
func (c *Camera) InverseTransformation() mgl64.Mat4 {
	return c.invProjView
}

// ClipPlanes returns the near and far plane distances.
func (c *Camera) ClipPlanes() (near, far float64) {
	return c.frustum.Near, c.frustum.Far
}

// Snapshot returns an independent copy of the camera. Mutating either one
// does not affect the other.
func (c *Camera) Snapshot() *Camera {
	s := *c
	return &s
}
