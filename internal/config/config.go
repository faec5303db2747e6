package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/SortVis/internal/sorting"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Run     RunConfig     `yaml:"run" json:"run"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Sound   SoundConfig   `yaml:"sound" json:"sound"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// RunConfig configures a visualization run
type RunConfig struct {
	Algorithm     string        `yaml:"algorithm" json:"algorithm"`           // bubble|selection|bogo|merge
	Arrangement   string        `yaml:"arrangement" json:"arrangement"`       // random|reversed|nearly-sorted|few-unique|sorted
	TickInterval  time.Duration `yaml:"tick_interval" json:"tick_interval"`   // delay between ticks
	SweepInterval time.Duration `yaml:"sweep_interval" json:"sweep_interval"` // 0 = same as tick_interval
	BarWidth      int           `yaml:"bar_width" json:"bar_width"`           // cells per bar
	Size          int           `yaml:"size" json:"size"`                     // 0 = fit the terminal
	Seed          uint64        `yaml:"seed" json:"seed"`                     // 0 = time based
	Countdown     int           `yaml:"countdown" json:"countdown"`           // seconds before the run starts
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|csv|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Theme         string `yaml:"theme" json:"theme"`                   // default|high-contrast|minimal
	Emoji         bool   `yaml:"emoji" json:"emoji"`
}

// SoundConfig configures the tone emitter
type SoundConfig struct {
	Enabled   bool    `yaml:"enabled" json:"enabled"`
	Volume    float64 `yaml:"volume" json:"volume"` // 0..1
	BaseHz    float64 `yaml:"base_hz" json:"base_hz"`
	HzPerUnit float64 `yaml:"hz_per_unit" json:"hz_per_unit"`
}

// LoggingConfig configures diagnostics
type LoggingConfig struct {
	File    string `yaml:"file" json:"file"` // log file used while the TUI runs
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Run: RunConfig{
			Algorithm:     "bubble",
			Arrangement:   "random",
			TickInterval:  10 * time.Millisecond,
			SweepInterval: 0,
			BarWidth:      1,
			Size:          0,
			Seed:          0,
			Countdown:     3,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Theme:         "default",
			Emoji:         true,
		},
		Sound: SoundConfig{
			Enabled:   true,
			Volume:    0.01,
			BaseHz:    200,
			HzPerUnit: 2,
		},
		Logging: LoggingConfig{
			File:    "",
			Verbose: false,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateRunConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateSoundConfig(); err != nil {
		return err
	}
	return nil
}

// validateRunConfig validates run-related configuration
func (c *Config) validateRunConfig() error {
	if _, err := sorting.ParseKind(c.Run.Algorithm); err != nil {
		return fmt.Errorf("invalid algorithm: %s (must be one of: %s)", c.Run.Algorithm, strings.Join(algorithmKeys(), ", "))
	}
	if c.Run.Arrangement != "" {
		if _, err := sorting.ParseArrangement(c.Run.Arrangement); err != nil {
			return fmt.Errorf("invalid arrangement: %s (must be one of: %s)", c.Run.Arrangement, strings.Join(sorting.Arrangements(), ", "))
		}
	}
	if c.Run.TickInterval < time.Millisecond {
		return fmt.Errorf("tick_interval must be at least 1ms")
	}
	if c.Run.SweepInterval < 0 {
		return fmt.Errorf("sweep_interval must be non-negative")
	}
	if c.Run.BarWidth < 1 {
		return fmt.Errorf("bar_width must be greater than 0")
	}
	if c.Run.Size < 0 {
		return fmt.Errorf("size must be non-negative")
	}
	if c.Run.Countdown < 0 {
		return fmt.Errorf("countdown must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"csv":      true,
			"markdown": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, csv, markdown)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	if c.Output.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Output.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Output.Theme)
		}
	}
	return nil
}

// validateSoundConfig validates tone settings
func (c *Config) validateSoundConfig() error {
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1")
	}
	if c.Sound.BaseHz < 0 {
		return fmt.Errorf("base_hz must be non-negative")
	}
	if c.Sound.HzPerUnit <= 0 && c.Sound.Enabled {
		return fmt.Errorf("hz_per_unit must be greater than 0")
	}
	return nil
}

// ToRunConfig converts the run section into the immutable per-run settings.
// Unsupported algorithms are rejected here so a run never starts with them.
func (c *Config) ToRunConfig() (driver.RunConfig, error) {
	kind, err := sorting.ParseKind(c.Run.Algorithm)
	if err != nil {
		return driver.RunConfig{}, err
	}
	rc := driver.RunConfig{
		Algorithm:     kind,
		Arrangement:   c.Run.Arrangement,
		TickInterval:  c.Run.TickInterval,
		SweepInterval: c.Run.SweepInterval,
		BarWidth:      c.Run.BarWidth,
		Countdown:     c.Run.Countdown,
		Seed:          c.Run.Seed,
	}
	if err := rc.Validate(); err != nil {
		return driver.RunConfig{}, err
	}
	return rc, nil
}

// ToneEmitter builds the sound emitter described by the sound section
func (c *Config) ToneEmitter() *driver.ToneEmitter {
	volume := c.Sound.Volume
	if !c.Sound.Enabled {
		volume = 0
	}
	e := driver.NewToneEmitter(volume)
	if c.Sound.BaseHz > 0 {
		e.BaseHz = c.Sound.BaseHz
	}
	if c.Sound.HzPerUnit > 0 {
		e.HzPerUnit = c.Sound.HzPerUnit
	}
	return e
}

func algorithmKeys() []string {
	keys := make([]string, 0, len(sorting.Kinds()))
	for _, k := range sorting.Kinds() {
		keys = append(keys, k.String())
	}
	return keys
}
