package listkit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for theme files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown theme file format")

// Format names a theme file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// themeFile is the on-disk shape of a theme database.
type themeFile struct {
	Themes []*Theme `toml:"themes" yaml:"themes"`
}

// themeFields has Theme's fields without its decoding methods.
type themeFields Theme

// UnmarshalYAML decodes a theme on top of DefaultTheme, so a file only
// needs the keys it changes.
func (t *Theme) UnmarshalYAML(n *yaml.Node) error {
	p := themeFields(*DefaultTheme())
	if err := n.Decode(&p); err != nil {
		return err
	}
	*t = Theme(p)
	return t.validate()
}

// UnmarshalTOML decodes a theme table on top of DefaultTheme.
func (t *Theme) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("theme: want table, got %T", data)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(table); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	p := themeFields(*DefaultTheme())
	if _, err := toml.Decode(buf.String(), &p); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	*t = Theme(p)
	return t.validate()
}

// validate rejects sizes the list divides by.
func (t *Theme) validate() error {
	if !(t.Element.Height > 0) {
		return fmt.Errorf("theme %q: element height must be positive, got %v", t.Name, t.Element.Height)
	}
	return nil
}

// DecodeThemes reads a theme database from r.
func DecodeThemes(r io.Reader, format Format) (*ThemeDatabase, error) {
	var f themeFile
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("decode toml themes: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml themes: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	db := NewThemeDatabase()
	for _, t := range f.Themes {
		if t != nil {
			db.Add(t)
		}
	}
	return db, nil
}

// LoadThemeDatabase reads a theme database from a .toml, .yaml or .yml file.
func LoadThemeDatabase(path string) (*ThemeDatabase, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open theme file: %w", err)
	}
	defer f.Close()

	db, err := DecodeThemes(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.WithField("path", path).WithField("count", db.Len()).Debug("loaded themes")
	return db, nil
}

// EncodeThemes writes themes to w.
func EncodeThemes(w io.Writer, format Format, themes []*Theme) error {
	f := themeFile{Themes: themes}
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("encode toml themes: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode yaml themes: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml themes: %w", err)
		}
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return nil
}
