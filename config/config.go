// Package config loads the launch scene layout and timing from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidConfig = errors.New("invalid config")

// Offset is a row/col displacement from the frame anchor
type Offset struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Layout places each static sprite relative to the frame anchor
type Layout struct {
	// AnchorFromBottom is subtracted from the screen height to get the anchor row
	AnchorFromBottom int `yaml:"anchor_from_bottom"`
	// AnchorFromCenter is subtracted from half the screen width to get the anchor column
	AnchorFromCenter int `yaml:"anchor_from_center"`

	Rocket  Offset `yaml:"rocket"`
	Arm     Offset `yaml:"arm"`
	Tower   Offset `yaml:"tower"`
	Number  Offset `yaml:"number"`
	Liftoff Offset `yaml:"liftoff"`
}

// Plume is one engine exhaust, drawn directly beneath the rocket
type Plume struct {
	Col  int `yaml:"col"`
	Size int `yaml:"size"`
}

// Timing paces each phase of the script
type Timing struct {
	ArmStep       time.Duration `yaml:"arm_step"`
	CountdownStep time.Duration `yaml:"countdown_step"`

	// IgnitionAt is the count at which the engines light
	IgnitionAt        int           `yaml:"ignition_at"`
	RefreshRate       int           `yaml:"refresh_rate"`
	JiggleFrames      int           `yaml:"jiggle_frames"`
	LaunchExtraFrames int           `yaml:"launch_extra_frames"`
	LaunchInterval    time.Duration `yaml:"launch_interval"`
	LaunchDecay       float64       `yaml:"launch_decay"`
	FinaleFrames      int           `yaml:"finale_frames"`
	FinaleInterval    time.Duration `yaml:"finale_interval"`
}

// Audio tunes the optional sound cues
type Audio struct {
	Volume float64 `yaml:"volume"`
	TickHz float64 `yaml:"tick_hz"`
}

// Scene is the full launch configuration
type Scene struct {
	Layout         Layout  `yaml:"layout"`
	Plumes         []Plume `yaml:"plumes"`
	Timing         Timing  `yaml:"timing"`
	SparkleModulus int     `yaml:"sparkle_modulus"`
	Audio          Audio   `yaml:"audio"`
}

// Default returns the embedded configuration
func Default() *Scene {
	s, err := parse(defaultYAML, &Scene{})
	if err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return s
}

// Load overlays the YAML file at path onto the defaults
// An empty path returns the defaults
func Load(path string) (*Scene, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return Parse(data)
}

// Parse overlays data onto the defaults and validates the result
func Parse(data []byte) (*Scene, error) {
	return parse(data, Default())
}

func parse(data []byte, base *Scene) (*Scene, error) {
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// Validate checks ranges the script depends on
func (s *Scene) Validate() error {
	t := s.Timing
	switch {
	case s.SparkleModulus < 1:
		return fmt.Errorf("%w: sparkle_modulus %d must be >= 1", ErrInvalidConfig, s.SparkleModulus)
	case t.RefreshRate < 1:
		return fmt.Errorf("%w: refresh_rate %d must be >= 1", ErrInvalidConfig, t.RefreshRate)
	case t.IgnitionAt < 1 || t.IgnitionAt > 10:
		return fmt.Errorf("%w: ignition_at %d must be in 1..10", ErrInvalidConfig, t.IgnitionAt)
	case t.LaunchDecay <= 0 || t.LaunchDecay > 1:
		return fmt.Errorf("%w: launch_decay %.2f must be in (0,1]", ErrInvalidConfig, t.LaunchDecay)
	case t.ArmStep < 0 || t.CountdownStep < 0 || t.LaunchInterval < 0 || t.FinaleInterval < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	case t.JiggleFrames < 0 || t.LaunchExtraFrames < 0 || t.FinaleFrames < 0:
		return fmt.Errorf("%w: frame counts must not be negative", ErrInvalidConfig)
	case s.Audio.Volume < 0 || s.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %.2f must be in [0,1]", ErrInvalidConfig, s.Audio.Volume)
	}

	for i, p := range s.Plumes {
		if p.Size < 1 {
			return fmt.Errorf("%w: plume %d size %d must be >= 1", ErrInvalidConfig, i, p.Size)
		}
	}
	return nil
}

// Scaled returns a copy with every duration divided by factor
func (s *Scene) Scaled(factor float64) *Scene {
	out := *s
	out.Plumes = append([]Plume(nil), s.Plumes...)
	if factor <= 0 || factor == 1 {
		return &out
	}
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) / factor)
	}
	out.Timing.ArmStep = scale(s.Timing.ArmStep)
	out.Timing.CountdownStep = scale(s.Timing.CountdownStep)
	out.Timing.LaunchInterval = scale(s.Timing.LaunchInterval)
	out.Timing.FinaleInterval = scale(s.Timing.FinaleInterval)
	return &out
}
