package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"

	"hypercube-renderer/internal/mathutil"
)

// DefaultPerspectiveDist keeps the projection clear of the ±1 coordinates.
const DefaultPerspectiveDist = 2.5

const (
	CameraTilt  = "tilt"
	CameraFront = "front"
)

// Config holds the scene description and render settings.
type Config struct {
	// Scene
	Dimensions      int             `json:"dimensions"`
	PerspectiveDist *float64        `json:"perspective_dist"` // nil = unset; 0 is a valid distance
	Rotations       []RotationEntry `json:"rotations"`

	// Output
	OutputDir string  `json:"output_dir"`
	Frames    int     `json:"frames"`
	Period    float64 `json:"period"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	LineWidth   int    `json:"line_width"`
	DotRadius   int    `json:"dot_radius"`
	Workers     int    `json:"workers"`
	Camera      string `json:"camera"` // "tilt" or "front"
}

// RotationEntry is one plane rotation as written in the config file:
// {"axes": [0, 3], "speed": 1}.
type RotationEntry struct {
	Axes  [2]int  `json:"axes"`
	Speed float64 `json:"speed"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Dimensions > 0 {
		c.Dimensions = flags.Dimensions
	}
	if flags.PerspectiveDist != nil {
		d := *flags.PerspectiveDist
		c.PerspectiveDist = &d
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Scene defaults: a tesseract spinning in the X-W plane
	if c.Dimensions <= 0 {
		c.Dimensions = 4
	}
	if c.PerspectiveDist == nil {
		d := DefaultPerspectiveDist
		c.PerspectiveDist = &d
	}
	if len(c.Rotations) == 0 {
		c.Rotations = []RotationEntry{{Axes: [2]int{0, c.Dimensions - 1}, Speed: 1}}
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Period <= 0 {
		c.Period = 2 * math.Pi
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 1
	}
	if c.DotRadius < 0 {
		c.DotRadius = 0
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Camera == "" {
		c.Camera = CameraTilt
	}
}

// Perspective returns the resolved perspective distance.
func (c *Config) Perspective() float64 {
	if c.PerspectiveDist == nil {
		return DefaultPerspectiveDist
	}
	return *c.PerspectiveDist
}

// CameraMatrix maps the camera name to its rotation.
func (c *Config) CameraMatrix() (mathutil.Mat3, error) {
	switch c.Camera {
	case "", CameraTilt:
		return mathutil.DefaultCamera, nil
	case CameraFront:
		return mathutil.FrontCamera, nil
	}
	return mathutil.Mat3{}, fmt.Errorf("config: unknown camera %q", c.Camera)
}

// PlaneRotations converts the config entries for the scene package.
func (c *Config) PlaneRotations() []mathutil.PlaneRotation {
	out := make([]mathutil.PlaneRotation, len(c.Rotations))
	for i, r := range c.Rotations {
		out[i] = mathutil.PlaneRotation{
			Plane: mathutil.Plane{A: r.Axes[0], B: r.Axes[1]},
			Speed: r.Speed,
		}
	}
	return out
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Dimensions      int
	PerspectiveDist *float64 // nil when the flag was not given
	OutputDir       string
	Frames          int
	RenderSize      int
	Workers         int
}
