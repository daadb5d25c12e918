package theme

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/tinge/pkg/errors"
	"github.com/matzehuels/tinge/pkg/style"
)

const brightPrefix = "bright-"

var basicColors = map[string]style.BasicColor{
	"black":   style.Black,
	"red":     style.Red,
	"green":   style.Green,
	"yellow":  style.Yellow,
	"blue":    style.Blue,
	"magenta": style.Magenta,
	"cyan":    style.Cyan,
	"white":   style.White,
}

// ParseColor parses a color in theme syntax: a basic color name ("red"), a
// bright variant ("bright-red"), a 256-color palette index ("27"), a hex
// true color ("#5fafff"), or an "rgb(r,g,b)" triple.
func ParseColor(s string) (style.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidColor, "empty color")
	}

	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
		}
		r, g, b := c.RGB255()
		return style.RGB(r, g, b), nil

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBTriple(s)

	case strings.HasPrefix(s, brightPrefix):
		basic, ok := basicColors[strings.TrimPrefix(s, brightPrefix)]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidColor, "unknown color name %q", s)
		}
		return basic.Bright(), nil
	}

	if basic, ok := basicColors[s]; ok {
		return basic, nil
	}

	if index, err := strconv.ParseUint(s, 10, 8); err == nil {
		return style.Indexed(uint8(index)), nil
	}

	return nil, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", s)
}

func parseRGBTriple(s string) (style.Color, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return nil, errors.New(errors.ErrCodeInvalidColor, "rgb color %q needs 3 components", s)
	}
	var comps [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid rgb component in %q", s)
		}
		comps[i] = uint8(v)
	}
	return style.RGB(comps[0], comps[1], comps[2]), nil
}

// ParseEffect parses an effect name as reported by style.Effect.String,
// e.g. "bold" or "curly-underline".
func ParseEffect(s string) (style.Effect, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, e := range style.AllEffects() {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidEffect, "unknown effect %q", s)
}

// ParseUnderline parses an underline stroke-style name, e.g. "curly".
// "none" is accepted and clears the underline.
func ParseUnderline(s string) (style.UnderlineStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "none" {
		return style.UnderlineNone, nil
	}
	for _, u := range style.AllUnderlineStyles() {
		if u.String() == name {
			return u, nil
		}
	}
	return style.UnderlineNone, errors.New(errors.ErrCodeInvalidUnderline, "unknown underline style %q", s)
}
