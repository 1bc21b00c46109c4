// Package config provides configuration types, defaults and loading for wiki.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/csheth/wiki/internal/log"
	"github.com/csheth/wiki/internal/viewstate"
)

// EnvPrefix namespaces environment overrides, e.g. WIKI_LAYOUT_LOOKAHEAD.
const EnvPrefix = "WIKI"

// Config holds all configuration options.
type Config struct {
	Content   string       `mapstructure:"content"`    // profile YAML; empty uses the built-in one
	StateFile string       `mapstructure:"state_file"` // preference file; empty uses the default location
	Persist   bool         `mapstructure:"persist"`    // false keeps the theme in memory for this session only
	Watch     bool         `mapstructure:"watch"`
	AltScreen bool         `mapstructure:"alt_screen"`
	Mouse     bool         `mapstructure:"mouse"`
	Debug     bool         `mapstructure:"debug"`
	LogFile   string       `mapstructure:"log_file"`
	Layout    LayoutConfig `mapstructure:"layout"`
}

// LayoutConfig holds the view constants in terminal units: rows for
// vertical distances and columns for widths.
type LayoutConfig struct {
	LoadingDelay time.Duration `mapstructure:"loading_delay"`
	Lookahead    int           `mapstructure:"lookahead"`
	HeaderOffset int           `mapstructure:"header_offset"`
	NarrowWidth  int           `mapstructure:"narrow_width"`
	SidebarWidth int           `mapstructure:"sidebar_width"`
	ScrollStep   time.Duration `mapstructure:"scroll_step"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Persist:   true,
		AltScreen: true,
		Mouse:     true,
		LogFile:   "debug.log",
		Layout: LayoutConfig{
			LoadingDelay: 1500 * time.Millisecond,
			Lookahead:    2,
			HeaderOffset: 1,
			NarrowWidth:  100,
			SidebarWidth: 24,
			ScrollStep:   16 * time.Millisecond,
		},
	}
}

// SetDefaults registers Defaults on v so file and env values layer on top.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("content", d.Content)
	v.SetDefault("state_file", d.StateFile)
	v.SetDefault("persist", d.Persist)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("alt_screen", d.AltScreen)
	v.SetDefault("mouse", d.Mouse)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("layout.loading_delay", d.Layout.LoadingDelay)
	v.SetDefault("layout.lookahead", d.Layout.Lookahead)
	v.SetDefault("layout.header_offset", d.Layout.HeaderOffset)
	v.SetDefault("layout.narrow_width", d.Layout.NarrowWidth)
	v.SetDefault("layout.sidebar_width", d.Layout.SidebarWidth)
	v.SetDefault("layout.scroll_step", d.Layout.ScrollStep)
}

// Load layers defaults, the config file and WIKI_* env vars onto v and
// decodes the result. With an empty path the lookup order is
// .wiki/config.yaml, then ~/.config/wiki/config.yaml. A missing file is not
// an error unless path was given explicitly.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else if _, err := os.Stat(filepath.Join(".wiki", "config.yaml")); err == nil {
		v.SetConfigFile(filepath.Join(".wiki", "config.yaml"))
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wiki"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		log.Debug(log.CatConfig, "loaded config", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects layout values the view cannot work with.
func (c Config) Validate() error {
	l := c.Layout
	switch {
	case l.LoadingDelay < 0:
		return fmt.Errorf("layout.loading_delay must not be negative, got %s", l.LoadingDelay)
	case l.Lookahead < 0:
		return fmt.Errorf("layout.lookahead must not be negative, got %d", l.Lookahead)
	case l.HeaderOffset < 0:
		return fmt.Errorf("layout.header_offset must not be negative, got %d", l.HeaderOffset)
	case l.NarrowWidth < 0:
		return fmt.Errorf("layout.narrow_width must not be negative, got %d", l.NarrowWidth)
	case l.SidebarWidth < 8:
		return fmt.Errorf("layout.sidebar_width must be at least 8, got %d", l.SidebarWidth)
	case l.ScrollStep <= 0:
		return fmt.Errorf("layout.scroll_step must be positive, got %s", l.ScrollStep)
	}
	return nil
}

// ViewOptions converts the layout into controller options.
func (c Config) ViewOptions() viewstate.Options {
	return viewstate.Options{
		LoadingDelay: c.Layout.LoadingDelay,
		Lookahead:    c.Layout.Lookahead,
		HeaderOffset: c.Layout.HeaderOffset,
		NarrowWidth:  c.Layout.NarrowWidth,
	}
}
