// Package config holds the tuning values of a scroll stack and loads them
// from an optional YAML or TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/snapscroll/pkg/animation"
	"github.com/go-drift/snapscroll/pkg/geometry"
)

// Config is passed to a stack at construction. There is no global default
// lookup; start from [Default] and override fields.
type Config struct {
	// Elasticity is the rubber-band exponent in (0, 1]. 1 disables damping.
	Elasticity float64 `yaml:"elasticity" koanf:"elasticity"`
	// Tolerance is the largest distance at which a free-scroll destination
	// still snaps onto a nearby guide.
	Tolerance float64 `yaml:"tolerance" koanf:"tolerance"`
	// DecelerationRate scales settle duration. Zero makes settles instant.
	DecelerationRate float64 `yaml:"deceleration_rate" koanf:"deceleration_rate"`
	// MaxDuration caps settle duration.
	MaxDuration time.Duration `yaml:"max_duration" koanf:"max_duration"`
	// CurveName names the settle easing curve (see animation.CurveByName).
	CurveName string `yaml:"curve" koanf:"curve"`
	// AxesName lists the scrollable axes: "x", "y" or "xy".
	AxesName string `yaml:"axes" koanf:"axes"`
}

// Default returns the stock tuning: iOS-like damping and deceleration.
func Default() Config {
	return Config{
		Elasticity:       0.875,
		Tolerance:        50,
		DecelerationRate: 0.998,
		MaxDuration:      time.Second,
		CurveName:        "easeOut",
		AxesName:         "xy",
	}
}

// Curve returns the settle curve, falling back to ease-out for unknown names.
func (c Config) Curve() animation.Curve {
	curve, err := animation.CurveByName(c.CurveName)
	if err != nil {
		return animation.EaseOut
	}
	return curve
}

// Axes returns the scrollable axes, falling back to both for unknown names.
func (c Config) Axes() geometry.Axes {
	axes, err := geometry.ParseAxes(c.AxesName)
	if err != nil {
		return geometry.AllAxes
	}
	return axes
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	_, err := c.Sanitized()
	return err
}

// Sanitized returns c with each invalid field replaced by its default, and
// an error describing the replacements (nil when c was already valid).
func (c Config) Sanitized() (Config, error) {
	def := Default()
	var errs []error

	if !(c.Elasticity > 0 && c.Elasticity <= 1) {
		errs = append(errs, fmt.Errorf("elasticity must be in (0, 1], got %v", c.Elasticity))
		c.Elasticity = def.Elasticity
	}
	if !(c.Tolerance >= 0) || !geometry.IsFinite(c.Tolerance) {
		errs = append(errs, fmt.Errorf("tolerance must be a finite value >= 0, got %v", c.Tolerance))
		c.Tolerance = def.Tolerance
	}
	if !(c.DecelerationRate >= 0) || !geometry.IsFinite(c.DecelerationRate) {
		errs = append(errs, fmt.Errorf("deceleration_rate must be a finite value >= 0, got %v", c.DecelerationRate))
		c.DecelerationRate = def.DecelerationRate
	}
	if c.MaxDuration < 0 {
		errs = append(errs, fmt.Errorf("max_duration must be >= 0, got %v", c.MaxDuration))
		c.MaxDuration = def.MaxDuration
	}
	if _, err := animation.CurveByName(c.CurveName); err != nil {
		errs = append(errs, err)
		c.CurveName = def.CurveName
	}
	if _, err := geometry.ParseAxes(c.AxesName); err != nil {
		errs = append(errs, err)
		c.AxesName = def.AxesName
	}
	return c, errors.Join(errs...)
}

// Load reads a config file over [Default]. Keys missing from the file keep
// their default value, and a missing file yields the defaults.
//
// The format follows the extension: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := loadYAML(path, &cfg); err != nil {
			return Default(), err
		}
	case ".toml":
		if err := loadTOML(path, &cfg); err != nil {
			return Default(), err
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func loadTOML(path string, cfg *Config) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
