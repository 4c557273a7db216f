package flycam

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configuration that cannot be decoded or
// turned into a camera.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Window   WindowConfig   `yaml:"window"`
}

type CameraConfig struct {
	Eye        []float64 `yaml:"eye"`
	Target     []float64 `yaml:"target"`
	Up         []float64 `yaml:"up"`
	FovDegrees float64   `yaml:"fov_degrees"`
	Near       float64   `yaml:"near"`
	Far        float64   `yaml:"far"`
}

type ControlsConfig struct {
	Speed       float64 `yaml:"speed"`
	Sensitivity float64 `yaml:"sensitivity"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DefaultConfig places the eye at (0, 0, -10) looking towards +Z with the
// default frustum in an 800x600 window.
func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{
			Eye:        []float64{0, 0, -10},
			Target:     []float64{0, 0, 1},
			Up:         []float64{0, 1, 0},
			FovDegrees: mgl64.RadToDeg(DefaultFov),
			Near:       DefaultNear,
			Far:        DefaultFar,
		},
		Controls: ControlsConfig{
			Speed:       DefaultSpeed,
			Sensitivity: DefaultSensitivity,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "flycam",
		},
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep
// their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the shape of the config. Frustum and look-at geometry are
// checked when the camera is built.
func (c Config) Validate() error {
	vectors := []struct {
		name string
		v    []float64
	}{
		{"camera.eye", c.Camera.Eye},
		{"camera.target", c.Camera.Target},
		{"camera.up", c.Camera.Up},
	}
	for _, f := range vectors {
		if len(f.v) != 3 {
			return fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidConfig, f.name, len(f.v))
		}
		for _, x := range f.v {
			if !isFinite(x) {
				return fmt.Errorf("%w: %s has non-finite component %v", ErrInvalidConfig, f.name, x)
			}
		}
	}
	if vec3(c.Camera.Up) == (mgl64.Vec3{}) {
		return fmt.Errorf("%w: camera.up must be non-zero", ErrInvalidConfig)
	}

	controls := []struct {
		name string
		v    float64
	}{
		{"controls.speed", c.Controls.Speed},
		{"controls.sensitivity", c.Controls.Sensitivity},
	}
	for _, f := range controls {
		if !isFinite(f.v) || f.v < 0 {
			return fmt.Errorf("%w: %s must be finite and non-negative, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return nil
}

func vec3(v []float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// NewCamera builds the configured camera with the window's aspect ratio.
func (c Config) NewCamera() (*Camera, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cam, err := NewWithFrustum(
		mgl64.DegToRad(c.Camera.FovDegrees),
		c.Camera.Near,
		c.Camera.Far,
		vec3(c.Camera.Eye),
		vec3(c.Camera.Target),
		WithUpAxis(vec3(c.Camera.Up)),
		WithAspect(float64(c.Window.Width)/float64(c.Window.Height)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cam, nil
}

// NewController builds a FlyController for cam with the configured speed
// and sensitivity.
func (c Config) NewController(cam *Camera) *FlyController {
	return NewFlyController(cam, c.Controls.Speed, c.Controls.Sensitivity)
}
