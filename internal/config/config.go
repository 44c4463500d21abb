package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
)

const (
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultTitle        = "gravityvisualizer"
	DefaultFOV          = 45.0
	DefaultNear         = 0.1
	DefaultFar          = 50.0
	DefaultDistance     = 20.0
	DefaultGridSize     = 10
	DefaultSpacing      = 1.0
	DefaultStep         = 0.1
	DefaultFrameDelayMS = 10

	BackendGL     = "gl"
	BackendRaylib = "raylib"
	BackendTerm   = "term"

	AudioPortAudio = "portaudio"
	AudioBeep      = "beep"
)

var (
	// ErrInvalid marks a configuration value outside its valid range.
	ErrInvalid = errors.New("config: invalid value")

	ErrUnknownPreset = errors.New("config: unknown preset")
)

// FieldError names the offending field of an invalid configuration.
type FieldError struct {
	Field string
	Value any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: invalid %s: %v", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return ErrInvalid }

type Config struct {
	Backend      string           `yaml:"backend"`
	Window       WindowConfig     `yaml:"window"`
	Projection   ProjectionConfig `yaml:"projection"`
	Grid         GridConfig       `yaml:"grid"`
	Lens         LensConfig       `yaml:"lens"`
	Animation    AnimationConfig  `yaml:"animation"`
	Sphere       SphereConfig     `yaml:"sphere"`
	FrameDelayMS int              `yaml:"frame_delay_ms"`
	Audio        bool             `yaml:"audio"`
	AudioDriver  string           `yaml:"audio_driver"`
	Theme        string           `yaml:"theme"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ProjectionConfig struct {
	FOV      float64 `yaml:"fov"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
	Distance float64 `yaml:"distance"`
}

type GridConfig struct {
	Size    int     `yaml:"size"`
	Spacing float64 `yaml:"spacing"`
}

// LensConfig leaves MaxDistance at zero to derive it from the spacing.
type LensConfig struct {
	Strength    float64 `yaml:"strength"`
	MaxDistance float64 `yaml:"max_distance"`
}

type AnimationConfig struct {
	Step float64 `yaml:"step"`
}

type SphereConfig struct {
	Radius float64 `yaml:"radius"`
	Lats   int     `yaml:"lats"`
	Longs  int     `yaml:"longs"`
}

func DefaultConfig() *Config {
	sp := render.DefaultSphere()
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		Projection: ProjectionConfig{
			FOV:      DefaultFOV,
			Near:     DefaultNear,
			Far:      DefaultFar,
			Distance: DefaultDistance,
		},
		Grid: GridConfig{
			Size:    DefaultGridSize,
			Spacing: DefaultSpacing,
		},
		Lens: LensConfig{
			Strength: lens.DefaultStrength,
		},
		Animation: AnimationConfig{
			Step: DefaultStep,
		},
		Sphere: SphereConfig{
			Radius: sp.Radius,
			Lats:   sp.Lats,
			Longs:  sp.Longs,
		},
		Backend:      BackendGL,
		FrameDelayMS: DefaultFrameDelayMS,
		AudioDriver:  AudioPortAudio,
		Theme:        "void",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Backend != BackendGL && c.Backend != BackendRaylib && c.Backend != BackendTerm:
		return &FieldError{"backend", c.Backend}
	case c.AudioDriver != AudioPortAudio && c.AudioDriver != AudioBeep:
		return &FieldError{"audio_driver", c.AudioDriver}
	case c.Window.Width <= 0:
		return &FieldError{"window.width", c.Window.Width}
	case c.Window.Height <= 0:
		return &FieldError{"window.height", c.Window.Height}
	case !(c.Projection.FOV > 0 && c.Projection.FOV < 180):
		return &FieldError{"projection.fov", c.Projection.FOV}
	case !positive(c.Projection.Near):
		return &FieldError{"projection.near", c.Projection.Near}
	case !positive(c.Projection.Far) || c.Projection.Far <= c.Projection.Near:
		return &FieldError{"projection.far", c.Projection.Far}
	case c.Grid.Size < 1:
		return &FieldError{"grid.size", c.Grid.Size}
	case !positive(c.Grid.Spacing):
		return &FieldError{"grid.spacing", c.Grid.Spacing}
	case !finite(c.Lens.Strength):
		return &FieldError{"lens.strength", c.Lens.Strength}
	case !finite(c.Lens.MaxDistance) || c.Lens.MaxDistance < 0:
		return &FieldError{"lens.max_distance", c.Lens.MaxDistance}
	case !positive(c.Animation.Step):
		return &FieldError{"animation.step", c.Animation.Step}
	case !positive(c.Sphere.Radius):
		return &FieldError{"sphere.radius", c.Sphere.Radius}
	case c.Sphere.Lats < 1:
		return &FieldError{"sphere.lats", c.Sphere.Lats}
	case c.Sphere.Longs < 1:
		return &FieldError{"sphere.longs", c.Sphere.Longs}
	case c.FrameDelayMS < 0:
		return &FieldError{"frame_delay_ms", c.FrameDelayMS}
	}
	return nil
}

// NaN fails every comparison, so these are written to reject it.
func finite(v float64) bool   { return !math.IsNaN(v) && !math.IsInf(v, 0) }
func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func (c *Config) Lattice() (lens.Lattice, error) {
	return lens.NewLattice(c.Grid.Size, c.Grid.Spacing)
}

func (c *Config) LensParams() lens.Params {
	p := lens.DefaultParams(c.Grid.Spacing)
	p.Strength = c.Lens.Strength
	if c.Lens.MaxDistance > 0 {
		p.MaxDistance = c.Lens.MaxDistance
	}
	return p
}

func (c *Config) SphereParams() render.Sphere {
	return render.Sphere{Radius: c.Sphere.Radius, Lats: c.Sphere.Lats, Longs: c.Sphere.Longs}
}

func (c *Config) Camera() render.Camera {
	return render.Camera{
		FOV:      c.Projection.FOV,
		Near:     c.Projection.Near,
		Far:      c.Projection.Far,
		Distance: c.Projection.Distance,
		Width:    c.Window.Width,
		Height:   c.Window.Height,
	}
}

func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMS) * time.Millisecond
}
