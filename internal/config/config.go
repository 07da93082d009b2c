package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Tiliavir/dial/internal/timecalc"
)

// Config is the root configuration for dial, stored in ~/.dial/config.yaml.
type Config struct {
	Render   RenderConfig   `mapstructure:"render"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Timezone TimezoneConfig `mapstructure:"timezone"`
	Log      LogConfig      `mapstructure:"log"`
}

// RenderConfig controls the size and format of rendered frames.
type RenderConfig struct {
	// Margin is subtracted from the smaller viewport edge.
	Margin int `mapstructure:"margin"`
	// Viewport is the default container size, "WIDTHxHEIGHT".
	Viewport string `mapstructure:"viewport"`
	// Format is "svg" or "png".
	Format string `mapstructure:"format"`
	// Glyphs draws the decorative tangram on the face.
	Glyphs bool `mapstructure:"glyphs"`
}

// ThemeConfig holds the face colors.
type ThemeConfig struct {
	Face        string  `mapstructure:"face"`
	Ink         string  `mapstructure:"ink"`
	Second      string  `mapstructure:"second"`
	BusyOpacity float64 `mapstructure:"busy_opacity"`
}

// TimezoneConfig selects how the display timezone is resolved.
type TimezoneConfig struct {
	// Mode is one of "utc", "local", "name" or "auto".
	Mode string `mapstructure:"mode"`
	// Name is the IANA zone used with mode "name", e.g. "Europe/Berlin".
	Name string `mapstructure:"name"`
	// Endpoint is queried with mode "auto"; it must answer {"timezone": "..."}.
	Endpoint string `mapstructure:"endpoint"`
	// Token is sent as a bearer token to Endpoint when set.
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

const (
	ModeUTC   = "utc"
	ModeLocal = "local"
	ModeName  = "name"
	ModeAuto  = "auto"

	// DefaultEndpoint answers with the caller's timezone, based on its IP.
	DefaultEndpoint = "https://ipinfo.io/json"
)

// configTemplate is the annotated config written on first run.
const configTemplate = `# dial configuration – ~/.dial/config.yaml
#
# All settings are optional; the values below are the built-in defaults.
# Every key can also be set through the environment, e.g. DIAL_TIMEZONE_MODE=local.

render:
  # Pixels subtracted from the smaller viewport edge.
  margin: 10
  # Container size used when no --viewport flag is given.
  viewport: 510x510
  # Output format: svg or png.
  format: svg
  # Draw the decorative tangram glyphs on the face.
  glyphs: false

theme:
  face: white
  ink: black
  second: red
  # Fill opacity of busy bands, between 0 and 1.
  busy_opacity: 0.4

timezone:
  # utc   – always UTC
  # local – the zone of this machine
  # name  – the IANA zone below
  # auto  – look the zone up once at startup; UTC stays in effect on failure
  mode: utc
  name: ""
  endpoint: https://ipinfo.io/json
  # Optional bearer token for the lookup endpoint.
  token: ""
  timeout: 5s

log:
  # debug, info, warn or error
  level: info
  # Human-readable console output instead of JSON.
  development: false
`

func setDefaults(v *viper.Viper) {
	v.SetDefault("render.margin", 10)
	v.SetDefault("render.viewport", "510x510")
	v.SetDefault("render.format", "svg")
	v.SetDefault("render.glyphs", false)
	v.SetDefault("theme.face", "white")
	v.SetDefault("theme.ink", "black")
	v.SetDefault("theme.second", "red")
	v.SetDefault("theme.busy_opacity", 0.4)
	v.SetDefault("timezone.mode", ModeUTC)
	v.SetDefault("timezone.name", "")
	v.SetDefault("timezone.endpoint", DefaultEndpoint)
	v.SetDefault("timezone.token", "")
	v.SetDefault("timezone.timeout", "5s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// DefaultPath returns the path to ~/.dial/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".dial", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Load reads the configuration. With an empty path it uses
// ~/.dial/config.yaml and creates it with annotated defaults on first run;
// an explicit path must exist. DIAL_* environment variables override the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("DIAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), err
		}
		path = p
	}

	_, statErr := os.Stat(path)
	switch {
	case errors.Is(statErr, os.ErrNotExist) && explicit:
		return Default(), fmt.Errorf("config file %s does not exist", path)
	case errors.Is(statErr, os.ErrNotExist):
		// First run: write the annotated template so users can discover options.
		if err := writeDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, err)
		}
	case statErr != nil:
		return Default(), fmt.Errorf("reading config file %s: %w", path, statErr)
	default:
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("decoding config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Render.Margin < 0 {
		return fmt.Errorf("render.margin must not be negative, got %d", c.Render.Margin)
	}
	if _, err := timecalc.ParseViewport(c.Render.Viewport); err != nil {
		return fmt.Errorf("render.viewport: %w", err)
	}
	switch c.Render.Format {
	case "svg", "png":
	default:
		return fmt.Errorf("render.format must be svg or png, got %q", c.Render.Format)
	}
	if c.Theme.BusyOpacity < 0 || c.Theme.BusyOpacity > 1 {
		return fmt.Errorf("theme.busy_opacity must be between 0 and 1, got %v", c.Theme.BusyOpacity)
	}
	switch c.Timezone.Mode {
	case ModeUTC, ModeLocal, ModeAuto:
	case ModeName:
		if c.Timezone.Name == "" {
			return fmt.Errorf("timezone.name is required with timezone.mode %q", ModeName)
		}
	default:
		return fmt.Errorf("timezone.mode must be one of utc, local, name, auto; got %q", c.Timezone.Mode)
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
