// Package config loads the page behaviour settings: counter timing and
// trigger geometry, scroll offsets, content locations and theme tokens.
// Defaults ship embedded in the module; a YAML file may override any subset.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	siteui "github.com/goliatone/go-siteui"
	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/visibility"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Counters     Counters     `yaml:"counters"`
	Scroll       Scroll       `yaml:"scroll"`
	LazyImages   LazyImages   `yaml:"lazy_images"`
	Testimonials Testimonials `yaml:"testimonials"`
	Theme        Theme        `yaml:"theme"`
}

// Counters configures the statistic counters.
type Counters struct {
	Selector   string            `yaml:"selector" validate:"required"`
	TargetAttr string            `yaml:"target_attr" validate:"required"`
	Duration   time.Duration     `yaml:"duration" validate:"gt=0"`
	Step       time.Duration     `yaml:"step" validate:"gt=0,ltefield=Duration"`
	Threshold  float64           `yaml:"threshold" validate:"gte=0,lte=1"`
	RootMargin visibility.Margin `yaml:"root_margin"`
}

// Scroll configures smooth scrolling and the scroll-to-top button.
type Scroll struct {
	HeaderOffset float64 `yaml:"header_offset" validate:"gte=0"`
	TopThreshold float64 `yaml:"top_threshold" validate:"gte=0"`
}

// LazyImages configures deferred image loading.
type LazyImages struct {
	Threshold float64 `yaml:"threshold" validate:"gte=0,lte=1"`
}

// Testimonials configures the "show more" content.
type Testimonials struct {
	// Source is an optional YAML file replacing the embedded testimonials.
	Source string `yaml:"source"`
	Avatar string `yaml:"avatar"`
}

// Theme describes the theme manifest supplying colour tokens for generated
// controls. Variant selects one entry of Variants whose tokens override the
// base tokens.
type Theme struct {
	Name     string                       `yaml:"name" validate:"required"`
	Version  string                       `yaml:"version" validate:"required"`
	Variant  string                       `yaml:"variant"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
}

var structValidator = validator.New()

// Default returns the embedded defaults.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(siteui.DefaultConfig(), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode defaults: %w", err)
	}
	return cfg, nil
}

// Load decodes r on top of the defaults and validates the result.
func Load(r io.Reader) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if r != nil {
		data, err := io.ReadAll(r)
		if err != nil {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: decode: %w", err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile loads path on top of the defaults. An empty path yields the
// defaults.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Load(nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the struct tags and that the counter selector parses.
func (c Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := dom.Selector(c.Counters.Selector); err != nil {
		return fmt.Errorf("%w: counters.selector: %v", ErrInvalid, err)
	}
	if c.Theme.Variant != "" {
		if _, ok := c.Theme.Variants[c.Theme.Variant]; !ok {
			return fmt.Errorf("%w: theme.variant %q is not defined", ErrInvalid, c.Theme.Variant)
		}
	}
	return nil
}
