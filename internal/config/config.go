// Package config loads the explorer configuration from a YAML or JSON file
// and BLOCH_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/bloch/internal/logging"
	"github.com/aretw0/bloch/pkg/plot"
	"github.com/aretw0/bloch/pkg/qubit"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Server     ServerConfig  `yaml:"server" json:"server" mapstructure:"server"`
	Log        LogConfig     `yaml:"log" json:"log" mapstructure:"log"`
	Projection string        `yaml:"projection" json:"projection" mapstructure:"projection" validate:"projection"`
	Sphere     SphereConfig  `yaml:"sphere" json:"sphere" mapstructure:"sphere"`
	Metrics    MetricsConfig `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" json:"port" mapstructure:"port" validate:"required,numeric"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level" validate:"loglevel"`
	Format string `yaml:"format" json:"format" mapstructure:"format" validate:"oneof=text json"`
}

type SphereConfig struct {
	Radius      float64 `yaml:"radius" json:"radius" mapstructure:"radius" validate:"gt=0"`
	Resolution  int     `yaml:"resolution" json:"resolution" mapstructure:"resolution" validate:"min=2"`
	ColorScale  string  `yaml:"color_scale" json:"color_scale" mapstructure:"color_scale"`
	Opacity     float64 `yaml:"opacity" json:"opacity" mapstructure:"opacity" validate:"gte=0,lte=1"`
	ScaleVector bool    `yaml:"scale_vector" json:"scale_vector" mapstructure:"scale_vector"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" json:"path" mapstructure:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	s := plot.DefaultSphere()
	return Config{
		Server: ServerConfig{Port: "8080", ShutdownTimeout: 5 * time.Second},
		Log:    LogConfig{Level: "info", Format: "text"},

		Projection: string(qubit.ProjectionFull),
		Sphere: SphereConfig{
			Radius:     s.Radius,
			Resolution: s.Resolution,
			ColorScale: s.ColorScale,
			Opacity:    s.Opacity,
		},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// envOverrides maps environment variables onto config keys.
var envOverrides = []struct {
	env  string
	path []string
}{
	{"BLOCH_SERVER_PORT", []string{"server", "port"}},
	{"BLOCH_SERVER_SHUTDOWN_TIMEOUT", []string{"server", "shutdown_timeout"}},
	{"BLOCH_LOG_LEVEL", []string{"log", "level"}},
	{"BLOCH_LOG_FORMAT", []string{"log", "format"}},
	{"BLOCH_PROJECTION", []string{"projection"}},
	{"BLOCH_SPHERE_RADIUS", []string{"sphere", "radius"}},
	{"BLOCH_SPHERE_RESOLUTION", []string{"sphere", "resolution"}},
	{"BLOCH_METRICS_ENABLED", []string{"metrics", "enabled"}},
}

// Load reads path (YAML, or JSON for a .json extension), applies environment
// overrides and validates the result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	raw, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	applyEnv(raw, os.LookupEnv)

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	raw := map[string]any{}
	if path == "" {
		return raw, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return raw, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func applyEnv(raw map[string]any, lookup func(string) (string, bool)) {
	for _, o := range envOverrides {
		v, ok := lookup(o.env)
		if !ok || v == "" {
			continue
		}
		node := raw
		for _, key := range o.path[:len(o.path)-1] {
			child, ok := node[key].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[key] = child
			}
			node = child
		}
		node[o.path[len(o.path)-1]] = v
	}
}

func decode(raw map[string]any, out *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %q: %s", e.Key, e.Reason)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
	_ = v.RegisterValidation("projection", func(fl validator.FieldLevel) bool {
		_, err := qubit.ParseProjection(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logging.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks every field and returns all failures joined.
func (c Config) Validate() error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = append(errs, &ValidationError{Key: fieldKey(fe), Reason: reason(fe)})
		}
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, &ValidationError{Key: "metrics.path", Reason: "must start with /"})
	}
	return errors.Join(errs...)
}

// fieldKey turns "Config.sphere.radius" into "sphere.radius".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "projection":
		return fmt.Sprintf("unknown projection %q", fe.Value())
	case "loglevel":
		return fmt.Sprintf("unknown log level %q", fe.Value())
	case "required":
		return "must not be empty"
	case "numeric":
		return "must be a number"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

// PlotSphere converts the sphere settings for the plot package.
func (c Config) PlotSphere() plot.Sphere {
	return plot.Sphere{
		Radius:      c.Sphere.Radius,
		Resolution:  c.Sphere.Resolution,
		ColorScale:  c.Sphere.ColorScale,
		Opacity:     c.Sphere.Opacity,
		ScaleVector: c.Sphere.ScaleVector,
	}
}

// ProjectionMode returns the validated projection.
func (c Config) ProjectionMode() qubit.Projection {
	p, err := qubit.ParseProjection(c.Projection)
	if err != nil {
		return qubit.ProjectionFull
	}
	return p
}
