// Package config loads the hexwatch YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/hexcolor"
	"github.com/isabelacmor/hexwatch/internal/log"
	"github.com/isabelacmor/hexwatch/internal/pixoo"
	"github.com/isabelacmor/hexwatch/internal/render"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "HEXWATCH_CONFIG"

// Clock formats.
const (
	Clock12h = "12h"
	Clock24h = "24h"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Config is the root of the YAML file.
type Config struct {
	Face    FaceConfig    `yaml:"face"`
	Display DisplayConfig `yaml:"display"`
	Pixoo   PixooConfig   `yaml:"pixoo"`
	Log     LogConfig     `yaml:"log"`
}

// FaceConfig selects the face behaviour.
type FaceConfig struct {
	Clock          string        `yaml:"clock"`
	Variant        string        `yaml:"variant"`
	Threshold      *float64      `yaml:"threshold"`
	LuminanceScale string        `yaml:"luminance_scale"`
	TapTimeout     time.Duration `yaml:"tap_timeout"`
	ShowColorName  bool          `yaml:"show_color_name"`
}

// DisplayConfig selects the render target.
type DisplayConfig struct {
	Profile  string `yaml:"profile"`
	Dither   bool   `yaml:"dither"`
	Quantize bool   `yaml:"quantize"`
}

// PixooConfig addresses a Pixoo64 device.
type PixooConfig struct {
	IP         string        `yaml:"ip"`
	Port       int           `yaml:"port"`
	Timeout    time.Duration `yaml:"timeout"`
	Brightness *int          `yaml:"brightness"`
	// Registry is the device database path. "off" disables it.
	Registry string `yaml:"registry"`
}

// RegistryOff disables the device registry.
const RegistryOff = "off"

// LogConfig configures the root logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ValidationError lists every problem found in a config.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Face: FaceConfig{
			Clock:          Clock24h,
			Variant:        face.VariantTick.String(),
			LuminanceScale: hexcolor.ScaleRaw.String(),
			TapTimeout:     face.DefaultTapTimeout,
		},
		Display: DisplayConfig{
			Profile: domain.ProfileBasalt.Name,
		},
		Pixoo: PixooConfig{
			Port:    pixoo.DefaultPort,
			Timeout: pixoo.DefaultTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: log.FormatText,
		},
	}
}

// Load reads the file at path, expands ${VAR} references, applies defaults and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(strings.NewReader(interpolateEnv(string(raw))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover returns the config path to use: explicit, then $HEXWATCH_CONFIG, then
// the user config dir. It returns "" when none exists.
func Discover(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "hexwatch", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func interpolateEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Face.Clock == "" {
		c.Face.Clock = d.Face.Clock
	}
	if c.Face.Variant == "" {
		c.Face.Variant = d.Face.Variant
	}
	if c.Face.LuminanceScale == "" {
		c.Face.LuminanceScale = d.Face.LuminanceScale
	}
	if c.Face.TapTimeout == 0 {
		c.Face.TapTimeout = d.Face.TapTimeout
	}
	if c.Display.Profile == "" {
		c.Display.Profile = d.Display.Profile
	}
	if c.Pixoo.Port == 0 {
		c.Pixoo.Port = d.Pixoo.Port
	}
	if c.Pixoo.Timeout == 0 {
		c.Pixoo.Timeout = d.Pixoo.Timeout
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// Validate checks every field and returns a *ValidationError listing all problems.
func (c *Config) Validate() error {
	verr := &ValidationError{}

	switch c.Face.Clock {
	case Clock12h, Clock24h:
	default:
		verr.add("face.clock: %q is not 12h or 24h", c.Face.Clock)
	}
	if _, err := face.ParseVariant(c.Face.Variant); err != nil {
		verr.add("face.variant: %v", err)
	}
	if _, err := hexcolor.ParseScale(c.Face.LuminanceScale); err != nil {
		verr.add("face.luminance_scale: %v", err)
	}
	if c.Face.Threshold != nil && *c.Face.Threshold < 0 {
		verr.add("face.threshold: must not be negative")
	}
	if c.Face.TapTimeout < 0 {
		verr.add("face.tap_timeout: must not be negative")
	}
	if _, ok := domain.LookupProfile(c.Display.Profile); !ok {
		verr.add("display.profile: unknown profile %q", c.Display.Profile)
	}
	if c.Pixoo.Port < 0 || c.Pixoo.Port > 65535 {
		verr.add("pixoo.port: %d out of range", c.Pixoo.Port)
	}
	if c.Pixoo.Timeout < 0 {
		verr.add("pixoo.timeout: must not be negative")
	}
	if b := c.Pixoo.Brightness; b != nil && (*b < 0 || *b > 100) {
		verr.add("pixoo.brightness: %d not in 0-100", *b)
	}
	if envVarPattern.MatchString(c.Pixoo.IP) {
		verr.add("pixoo.ip: environment variable ${%s} is not set", envVarPattern.FindStringSubmatch(c.Pixoo.IP)[1])
	}
	if err := log.ValidateFormat(c.Log.Format); err != nil {
		verr.add("log.format: %v", err)
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

// FaceOptions converts the face section. The threshold defaults per variant.
func (c *Config) FaceOptions(logger hclog.Logger) (face.Options, error) {
	variant, err := face.ParseVariant(c.Face.Variant)
	if err != nil {
		return face.Options{}, err
	}
	scale, err := hexcolor.ParseScale(c.Face.LuminanceScale)
	if err != nil {
		return face.Options{}, err
	}

	opts := face.DefaultOptions(variant)
	opts.Use24Hour = c.Face.Clock != Clock12h
	opts.TapTimeout = c.Face.TapTimeout
	opts.ShowColorName = c.Face.ShowColorName
	opts.Classifier.Scale = scale
	if c.Face.Threshold != nil {
		opts.Classifier.Threshold = *c.Face.Threshold
	}
	opts.Logger = logger
	return opts, nil
}

// Profile returns the display profile, falling back to basalt.
func (c *Config) Profile() domain.Profile {
	if p, ok := domain.LookupProfile(c.Display.Profile); ok {
		return p
	}
	return domain.ProfileBasalt
}

// RenderOptions returns the colour handling for the renderer.
func (c *Config) RenderOptions() render.Options {
	return render.Options{Quantize: c.Display.Quantize, Dither: c.Display.Dither}
}

// PixooOptions returns the client options for the device.
func (c *Config) PixooOptions(logger hclog.Logger) pixoo.Options {
	return pixoo.Options{Port: c.Pixoo.Port, Timeout: c.Pixoo.Timeout, Logger: logger}
}

// RegistryPath returns the device database path, or "" when the registry is off.
func (c *Config) RegistryPath() string {
	switch c.Pixoo.Registry {
	case RegistryOff:
		return ""
	case "":
		dir, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		return filepath.Join(dir, "hexwatch", "devices.db")
	}
	return c.Pixoo.Registry
}

// LogOptions returns the logger options.
func (c *Config) LogOptions(out io.Writer) log.Options {
	return log.Options{Level: c.Log.Level, Format: c.Log.Format, Output: out}
}
