package theme

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tinge/pkg/errors"
	"github.com/matzehuels/tinge/pkg/style"
)

// Theme is a named collection of styles loaded from a theme file.
type Theme struct {
	styles map[string]style.Style
}

// themeFile is the TOML schema of a theme file.
type themeFile struct {
	Styles map[string]styleDef `toml:"styles"`
}

type styleDef struct {
	FG             string   `toml:"fg"`
	BG             string   `toml:"bg"`
	UnderlineColor string   `toml:"underline-color"`
	Underline      string   `toml:"underline"`
	Effects        []string `toml:"effects"`
}

// Load reads and parses a theme file from disk.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeThemeNotFound, err, "cannot read theme %s", path)
	}
	return Parse(data)
}

// Parse parses TOML theme data. Every style definition is validated; the
// first invalid color, effect, or underline name fails the whole theme.
func Parse(data []byte) (*Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "malformed theme file")
	}

	styles := make(map[string]style.Style, len(file.Styles))
	for name, def := range file.Styles {
		s, err := def.style()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "style %q", name)
		}
		styles[name] = s
	}
	return &Theme{styles: styles}, nil
}

// style builds the Style a definition describes.
func (d styleDef) style() (style.Style, error) {
	s := style.New()

	colors := []struct {
		value  string
		target style.Target
	}{
		{d.FG, style.TargetForeground},
		{d.BG, style.TargetBackground},
		{d.UnderlineColor, style.TargetUnderline},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		color, err := ParseColor(c.value)
		if err != nil {
			return style.Style{}, err
		}
		s = s.SetColor(c.target, color)
	}

	for _, name := range d.Effects {
		e, err := ParseEffect(name)
		if err != nil {
			return style.Style{}, err
		}
		s = s.SetEffect(e, true)
	}

	if d.Underline != "" {
		u, err := ParseUnderline(d.Underline)
		if err != nil {
			return style.Style{}, err
		}
		s = s.SetUnderlineStyle(u)
	}

	return s, nil
}

// Get returns the style with the given name.
func (t *Theme) Get(name string) (style.Style, error) {
	s, ok := t.styles[name]
	if !ok {
		return style.Style{}, errors.New(errors.ErrCodeStyleNotFound, "no style named %q in theme", name)
	}
	return s, nil
}

// Names returns the defined style names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of styles in the theme.
func (t *Theme) Len() int { return len(t.styles) }
