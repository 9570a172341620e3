// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Stage     StageConfig     `yaml:"stage"`
	Round     RoundConfig     `yaml:"round"`
	Character CharacterConfig `yaml:"character"`
	Food      FoodConfig      `yaml:"food"`
	Movement  MovementConfig  `yaml:"movement"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StageConfig holds the playable area size and palette.
// The stage is centred in the window; the margin around it becomes the walls.
type StageConfig struct {
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Color     [3]uint8 `yaml:"color"`
	WallColor [3]uint8 `yaml:"wall_color"`
}

// RoundConfig holds the per-round settings the user can change between rounds.
type RoundConfig struct {
	Characters int `yaml:"characters"`
	Foods      int `yaml:"foods"`
	TTLSeconds int `yaml:"ttl_seconds"` // round time limit
	FPS        int `yaml:"fps"`         // ticks per simulated second
}

// Range is an inclusive integer interval written as [min, max] in YAML.
type Range [2]int

// Min returns the lower bound.
func (r Range) Min() int { return r[0] }

// Max returns the upper bound.
func (r Range) Max() int { return r[1] }

// CharacterConfig holds agent creation parameters.
type CharacterConfig struct {
	Size         int      `yaml:"size"`
	Color        [3]uint8 `yaml:"color"`
	SensingRange Range    `yaml:"sensing_range"`
	SpeedRange   Range    `yaml:"speed_range"`
	Need         int      `yaml:"need"` // nutrition required before heading home
}

// FoodConfig holds food spawning and decay parameters.
type FoodConfig struct {
	Size       int      `yaml:"size"`
	Color      [3]uint8 `yaml:"color"`
	ValueRange Range    `yaml:"value_range"`
	Target     int      `yaml:"target"`      // amount the batch decays toward
	UpdateStep int      `yaml:"update_step"` // batch shrink per decay step
	UpdateDays int      `yaml:"update_days"` // rounds between decay steps
}

// MovementConfig holds movement rules.
type MovementConfig struct {
	OnlyWalls bool `yaml:"only_walls"` // false = agents also block each other
	Wander    bool `yaml:"wander"`     // hungry agents that sense nothing take random steps
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow   int  `yaml:"perf_window"`    // ticks averaged by the perf collector
	LogPerfEvery int  `yaml:"log_perf_every"` // rounds between perf log lines (0 = never)
	WriteConfig  bool `yaml:"write_config"`   // snapshot config.yaml into the output dir
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	StageX, StageY int   // top-left corner of the stage inside the window
	TTLMillis      int64 // Round.TTLSeconds in milliseconds
	StageArea      int   // usable stage area
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Defaults returns the embedded default configuration.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate checks ranges and that the requested populations can be placed.
// Random placement retries until it finds a free spot, so an over-packed
// stage would never finish spawning.
func (c *Config) Validate() error {
	if c.Stage.Width <= 0 || c.Stage.Height <= 0 {
		return fmt.Errorf("%w: stage size %dx%d", ErrInvalid, c.Stage.Width, c.Stage.Height)
	}
	if c.Screen.Width < c.Stage.Width+2 || c.Screen.Height < c.Stage.Height+2 {
		return fmt.Errorf("%w: stage %dx%d leaves no walls inside screen %dx%d", ErrInvalid,
			c.Stage.Width, c.Stage.Height, c.Screen.Width, c.Screen.Height)
	}
	if c.Character.Size <= 0 || c.Food.Size <= 0 {
		return fmt.Errorf("%w: entity sizes must be positive", ErrInvalid)
	}
	for name, r := range map[string]Range{
		"character.sensing_range": c.Character.SensingRange,
		"character.speed_range":   c.Character.SpeedRange,
		"food.value_range":        c.Food.ValueRange,
	} {
		if r.Min() < 0 || r.Min() > r.Max() {
			return fmt.Errorf("%w: %s [%d, %d]", ErrInvalid, name, r.Min(), r.Max())
		}
	}
	if c.Character.SpeedRange.Min() < 1 {
		return fmt.Errorf("%w: character.speed_range must start at 1 or more", ErrInvalid)
	}
	if c.Round.FPS <= 0 || c.Round.TTLSeconds <= 0 {
		return fmt.Errorf("%w: round fps and ttl must be positive", ErrInvalid)
	}
	if c.Food.UpdateDays <= 0 || c.Food.UpdateStep < 0 {
		return fmt.Errorf("%w: food update_days must be positive and update_step non-negative", ErrInvalid)
	}
	return c.CheckDensity(c.Round.Characters, c.Round.Foods)
}

// CheckDensity reports whether the given populations fit comfortably on the stage.
// Both populations together may cover at most half of the usable area.
func (c *Config) CheckDensity(characters, foods int) error {
	if characters < 0 || foods < 0 {
		return fmt.Errorf("%w: negative population", ErrInvalid)
	}
	fw := c.Stage.Width - 2*c.Food.Size
	fh := c.Stage.Height - 2*c.Food.Size
	if foods > 0 && (fw < c.Food.Size || fh < c.Food.Size) {
		return fmt.Errorf("%w: stage too small for food of size %d", ErrInvalid, c.Food.Size)
	}
	area := c.Stage.Width * c.Stage.Height
	cs := c.Character.Size
	fs := c.Food.Size
	used := characters*cs*cs + foods*fs*fs
	if used*2 > area {
		return fmt.Errorf("%w: %d characters and %d foods cover %d of %d stage units",
			ErrInvalid, characters, foods, used, area)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.StageX = (c.Screen.Width - c.Stage.Width) / 2
	c.Derived.StageY = (c.Screen.Height - c.Stage.Height) / 2
	c.Derived.TTLMillis = int64(c.Round.TTLSeconds) * 1000
	c.Derived.StageArea = c.Stage.Width * c.Stage.Height
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
