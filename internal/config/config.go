// Package config loads listdemo settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds demo configuration.
type Config struct {
	Window  WindowConfig
	Theme   ThemeConfig
	Demo    DemoConfig
	Verbose bool
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Width   int
	Height  int
	Backend string
}

// ThemeConfig selects the list theme.
type ThemeConfig struct {
	Name string
	File string
}

// DemoConfig shapes the sample data.
type DemoConfig struct {
	Samples int
	Matcher string
}

// Backends and matchers the demo understands.
var (
	Backends = []string{"gl", "tui"}
	Matchers = []string{"substring", "fuzzy", "typo"}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 360)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.backend", "tui")
	v.SetDefault("theme.name", "Dark")
	v.SetDefault("theme.file", "")
	v.SetDefault("demo.samples", 40)
	v.SetDefault("demo.matcher", "substring")
	v.SetDefault("verbose", false)
}

// BindFlags registers the flags Load understands on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default $HOME/.config/listkit/config.toml)")
	fs.Int("width", 0, "window width in pixels")
	fs.Int("height", 0, "window height in pixels")
	fs.String("theme", "", "theme name")
	fs.String("theme-file", "", "TOML or YAML theme file")
	fs.Int("samples", 0, "number of sample elements")
	fs.String("matcher", "", "search matcher: "+strings.Join(Matchers, ", "))
	fs.BoolP("verbose", "v", false, "debug logging")
}

var flagKeys = map[string]string{
	"width":      "window.width",
	"height":     "window.height",
	"theme":      "theme.name",
	"theme-file": "theme.file",
	"samples":    "demo.samples",
	"matcher":    "demo.matcher",
	"verbose":    "verbose",
}

// Load reads configuration from defaults, a TOML file, LISTKIT_* env vars
// and finally any flags of fs that were set. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	path := os.Getenv("LISTKIT_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "listkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LISTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the default location is optional.
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Demo.Samples < 0 {
		return fmt.Errorf("invalid sample count %d", c.Demo.Samples)
	}
	if !slices.Contains(Backends, c.Window.Backend) {
		return fmt.Errorf("unknown backend %q", c.Window.Backend)
	}
	if !slices.Contains(Matchers, c.Demo.Matcher) {
		return fmt.Errorf("unknown matcher %q", c.Demo.Matcher)
	}
	return nil
}
