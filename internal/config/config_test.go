package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory and clears LISTKIT_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"LISTKIT_CONFIG", "LISTKIT_WINDOW_WIDTH", "LISTKIT_WINDOW_BACKEND",
		"LISTKIT_THEME_NAME", "LISTKIT_DEMO_SAMPLES", "LISTKIT_DEMO_MATCHER",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	isolate(t)
	c, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 360, c.Window.Width)
	assert.Equal(t, 480, c.Window.Height)
	assert.Equal(t, "tui", c.Window.Backend)
	assert.Equal(t, "Dark", c.Theme.Name)
	assert.Empty(t, c.Theme.File)
	assert.Equal(t, 40, c.Demo.Samples)
	assert.Equal(t, "substring", c.Demo.Matcher)
	assert.False(t, c.Verbose)
}

func TestHomeConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".config", "listkit", "config.toml"), `
[window]
backend = "gl"
width = 640

[theme]
name = "Purple"
`)
	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "gl", c.Window.Backend)
	assert.Equal(t, 640, c.Window.Width)
	assert.Equal(t, 480, c.Window.Height)
	assert.Equal(t, "Purple", c.Theme.Name)
}

func TestPrecedence(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	writeConfig(t, path, `
[demo]
samples = 10
matcher = "fuzzy"

[theme]
name = "Blue"
`)
	t.Setenv("LISTKIT_DEMO_SAMPLES", "20")
	t.Setenv("LISTKIT_THEME_NAME", "Green")

	c, err := Load(flags(t, "--config", path, "--theme", "Light", "-v"))
	require.NoError(t, err)
	assert.Equal(t, "fuzzy", c.Demo.Matcher)
	assert.Equal(t, 20, c.Demo.Samples)
	assert.Equal(t, "Light", c.Theme.Name)
	assert.True(t, c.Verbose)
}

func TestConfigPathFromEnv(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "elsewhere.toml")
	writeConfig(t, path, "[demo]\nmatcher = \"typo\"\n")
	t.Setenv("LISTKIT_CONFIG", path)

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "typo", c.Demo.Matcher)
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	isolate(t)
	t.Setenv("LISTKIT_WINDOW_WIDTH", "500")

	c, err := Load(flags(t, "--samples", "3"))
	require.NoError(t, err)
	assert.Equal(t, 500, c.Window.Width)
	assert.Equal(t, 3, c.Demo.Samples)
}

func TestExplicitConfigMustExist(t *testing.T) {
	home := isolate(t)
	_, err := Load(flags(t, "--config", filepath.Join(home, "nope.toml")))
	assert.Error(t, err)
}

func TestMalformedConfig(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".config", "listkit", "config.toml"), "[window\nwidth = ")
	_, err := Load(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Window: WindowConfig{Width: 10, Height: 10, Backend: "gl"},
		Demo:   DemoConfig{Samples: 0, Matcher: "fuzzy"},
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"zero width":      func(c *Config) { c.Window.Width = 0 },
		"negative height": func(c *Config) { c.Window.Height = -1 },
		"negative sample": func(c *Config) { c.Demo.Samples = -2 },
		"backend":         func(c *Config) { c.Window.Backend = "vulkan" },
		"matcher":         func(c *Config) { c.Demo.Matcher = "regex" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	_, err := Load(flags(t, "--matcher", "regex"))
	assert.ErrorContains(t, err, "unknown matcher")
}
