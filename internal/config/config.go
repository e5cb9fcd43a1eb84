// Package config loads the process-wide settings once at startup.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/palette"
)

// Config is read once and treated as immutable afterwards.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Animation AnimationConfig `mapstructure:"animation"`
	Palette   palette.Spec    `mapstructure:"palette"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Window    WindowConfig    `mapstructure:"window"`
}

// ServerConfig points at the solving service.
type ServerConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AnimationConfig controls the sweep speed.
type AnimationConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DBConfig locates the batch journal. An empty path means the default
// ~/.cubeview/cubeview.db; Enabled turns the journal off.
type DBConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// WindowConfig sizes the 3D window.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "http://localhost:8000")
	v.SetDefault("server.timeout", "5s")

	v.SetDefault("animation.duration", "300ms")

	def := palette.DefaultSpec()
	v.SetDefault("palette.up", def.Up)
	v.SetDefault("palette.left", def.Left)
	v.SetDefault("palette.front", def.Front)
	v.SetDefault("palette.right", def.Right)
	v.SetDefault("palette.back", def.Back)
	v.SetDefault("palette.down", def.Down)
	v.SetDefault("palette.interior", def.Interior)
	v.SetDefault("palette.unresolved", def.Unresolved)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("db.enabled", true)
	v.SetDefault("db.path", "")

	v.SetDefault("metrics.addr", "")

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 800)
}

// New returns a viper instance with defaults and CUBEVIEW_* environment
// bindings applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("cubeview")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from v. When path is set the file must exist;
// otherwise cubeview.{json,yaml,toml} is looked up in the working directory
// and ~/.cubeview, and a missing file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("cubeview")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cubeview")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	if cfg.Animation.Duration <= 0 {
		cfg.Animation.Duration = anim.MinDuration
	}
	if cfg.Server.URL == "" {
		return Config{}, errors.New("server.url must be set")
	}

	return cfg, nil
}
