// Package config resolves runtime settings from defaults, an optional config
// file, CONVOY_ environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CONVOY"

var ErrInvalidConfig = errors.New("config: invalid")

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type SceneConfig struct {
	File      string `mapstructure:"file"`
	Dir       string `mapstructure:"dir"`
	HotReload bool   `mapstructure:"hotReload"`
	// FixedStep, when positive, advances sim time by this many seconds per
	// frame instead of following the wall clock.
	FixedStep float64 `mapstructure:"fixedStep"`
}

type Config struct {
	LogLevel string       `mapstructure:"logLevel"`
	Window   WindowConfig `mapstructure:"window"`
	Scene    SceneConfig  `mapstructure:"scene"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "convoy")

	v.SetDefault("scene.file", "scene.yaml")
	v.SetDefault("scene.dir", "prefabs")
	v.SetDefault("scene.hotReload", false)
	v.SetDefault("scene.fixedStep", 0.0)
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("convoy", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.Int("width", 1280, "window width")
	fs.Int("height", 720, "window height")
	fs.String("scene", "scene.yaml", "scene spec name")
	fs.String("scene-dir", "prefabs", "directory holding scene overrides")
	fs.Bool("hot-reload", false, "rebuild the scene when its spec changes on disk")
	fs.Float64("fixed-step", 0, "seconds per frame; 0 follows the wall clock")
	return fs
}

var flagKeys = map[string]string{
	"log-level":  "logLevel",
	"width":      "window.width",
	"height":     "window.height",
	"scene":      "scene.file",
	"scene-dir":  "scene.dir",
	"hot-reload": "scene.hotReload",
	"fixed-step": "scene.fixedStep",
}

// Load parses args and resolves the configuration.
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Scene.File == "" {
		return fmt.Errorf("%w: empty scene file", ErrInvalidConfig)
	}
	if c.Scene.FixedStep < 0 {
		return fmt.Errorf("%w: negative fixed step %v", ErrInvalidConfig, c.Scene.FixedStep)
	}
	return nil
}
