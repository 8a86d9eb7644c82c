package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/boids/ecs"
	"gopkg.in/yaml.v3"
)

// DefaultSpecFile is the embedded flock spec every other spec overrides.
const DefaultSpecFile = "flock.yaml"

// ErrUnknownFormat is returned for spec files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("prefabs: unknown spec format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the decoder for a spec file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// FlockSpec holds every tunable of a flock and its window.
type FlockSpec struct {
	Count    int     `yaml:"count" toml:"count"`
	Seed     int64   `yaml:"seed" toml:"seed"`
	Scenario string  `yaml:"scenario" toml:"scenario"` // script under prefabs/scripts, empty for random placement
	Speed    float64 `yaml:"speed" toml:"speed"`
	MaxDt    float64 `yaml:"max_dt" toml:"max_dt"` // longest wall-clock step fed to the world

	Arena    ArenaSpec    `yaml:"arena" toml:"arena"`
	Neighbor NeighborSpec `yaml:"neighbor" toml:"neighbor"`
	Steering SteeringSpec `yaml:"steering" toml:"steering"`
	Boundary BoundarySpec `yaml:"boundary" toml:"boundary"`
	Window   WindowSpec   `yaml:"window" toml:"window"`
}

type ArenaSpec struct {
	HalfWidth  float64 `yaml:"half_width" toml:"half_width"`
	HalfHeight float64 `yaml:"half_height" toml:"half_height"`
}

type NeighborSpec struct {
	Distance float64 `yaml:"distance" toml:"distance"`
	Angle    float64 `yaml:"angle" toml:"angle"`
}

type SteeringSpec struct {
	ConvergenceWeight float64 `yaml:"convergence_weight" toml:"convergence_weight"`
	AvoidanceWeight   float64 `yaml:"avoidance_weight" toml:"avoidance_weight"`
	TurnDivisor       float64 `yaml:"turn_divisor" toml:"turn_divisor"`
	AlignBlend        float64 `yaml:"align_blend" toml:"align_blend"`
}

type BoundarySpec struct {
	Damping float64 `yaml:"damping" toml:"damping"`
}

type WindowSpec struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	TPS    int `yaml:"tps" toml:"tps"`
}

// DefaultSpec decodes the embedded reference spec.
func DefaultSpec() (*FlockSpec, error) {
	data, err := Load(DefaultSpecFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", DefaultSpecFile, err)
	}
	var spec FlockSpec
	if err := DecodeSpec(data, FormatYAML, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", DefaultSpecFile, err)
	}
	return &spec, nil
}

// LoadSpec reads the spec file at path on top of the defaults.
// An empty path returns the defaults.
func LoadSpec(path string) (*FlockSpec, error) {
	spec, err := DefaultSpec()
	if err != nil {
		return nil, err
	}
	if path == "" {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		return spec, nil
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	if err := DecodeSpec(data, format, spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return spec, nil
}

// DecodeSpec overlays data onto spec. Keys absent from data keep their
// current values; unknown keys are an error.
func DecodeSpec(data []byte, format Format, spec *FlockSpec) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(spec); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case FormatTOML:
		md, err := toml.Decode(string(data), spec)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys %v", undecoded)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Validate checks the spec without building a world.
func (s *FlockSpec) Validate() error {
	switch {
	case s.Count < 0:
		return fmt.Errorf("%w: count %d must not be negative", ecs.ErrInvalidParams, s.Count)
	case !(s.MaxDt > 0):
		return fmt.Errorf("%w: max_dt %g must be positive", ecs.ErrInvalidParams, s.MaxDt)
	case s.Window.Width <= 0 || s.Window.Height <= 0 || s.Window.TPS <= 0:
		return fmt.Errorf("%w: window %dx%d@%d must be positive", ecs.ErrInvalidParams, s.Window.Width, s.Window.Height, s.Window.TPS)
	}
	return s.Params().Validate()
}

// Params converts the spec into world parameters.
func (s *FlockSpec) Params() ecs.Params {
	return ecs.Params{
		HalfWidth:         s.Arena.HalfWidth,
		HalfHeight:        s.Arena.HalfHeight,
		NeighborDistance:  s.Neighbor.Distance,
		NeighborAngle:     s.Neighbor.Angle,
		Speed:             s.Speed,
		ConvergenceWeight: s.Steering.ConvergenceWeight,
		AvoidanceWeight:   s.Steering.AvoidanceWeight,
		TurnDivisor:       s.Steering.TurnDivisor,
		AlignBlend:        s.Steering.AlignBlend,
		Damping:           s.Boundary.Damping,
	}
}

// Clone returns a copy of the spec.
func (s *FlockSpec) Clone() *FlockSpec {
	c := *s
	return &c
}
