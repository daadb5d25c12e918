package theme

import (
	"testing"

	"github.com/matzehuels/tinge/pkg/errors"
	"github.com/matzehuels/tinge/pkg/style"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  style.Color
	}{
		{"red", style.Red},
		{"BLUE", style.Blue},
		{" white ", style.White},
		{"bright-red", style.Red.Bright()},
		{"bright-black", style.Black.Bright()},
		{"27", style.Indexed(27)},
		{"0", style.Indexed(0)},
		{"255", style.Indexed(255)},
		{"#5fafff", style.RGB(0x5f, 0xaf, 0xff)},
		{"#000000", style.RGB(0, 0, 0)},
		{"rgb(0, 128, 255)", style.RGB(0, 128, 255)},
		{"rgb(1,2,3)", style.RGB(1, 2, 3)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	inputs := []string{
		"",
		"salmon",
		"bright-salmon",
		"256",
		"-1",
		"#xyz",
		"#12345",
		"rgb(1,2)",
		"rgb(1,2,3,4)",
		"rgb(1,2,999)",
	}
	for _, input := range inputs {
		_, err := ParseColor(input)
		if err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", input)
			continue
		}
		if got := errors.GetCode(err); got != errors.ErrCodeInvalidColor {
			t.Errorf("ParseColor(%q) code = %v, want %v", input, got, errors.ErrCodeInvalidColor)
		}
	}
}

func TestParseEffect(t *testing.T) {
	for _, e := range style.AllEffects() {
		got, err := ParseEffect(e.String())
		if err != nil {
			t.Fatalf("ParseEffect(%q) error: %v", e.String(), err)
		}
		if got != e {
			t.Errorf("ParseEffect(%q) = %v, want %v", e.String(), got, e)
		}
	}

	if got, err := ParseEffect(" Bold "); err != nil || got != style.EffectBold {
		t.Errorf("ParseEffect(\" Bold \") = %v, %v", got, err)
	}

	if _, err := ParseEffect("sparkle"); !errors.Is(err, errors.ErrCodeInvalidEffect) {
		t.Errorf("ParseEffect(\"sparkle\") error = %v, want %v", err, errors.ErrCodeInvalidEffect)
	}
}

func TestParseUnderline(t *testing.T) {
	for _, u := range style.AllUnderlineStyles() {
		got, err := ParseUnderline(u.String())
		if err != nil {
			t.Fatalf("ParseUnderline(%q) error: %v", u.String(), err)
		}
		if got != u {
			t.Errorf("ParseUnderline(%q) = %v, want %v", u.String(), got, u)
		}
	}

	if got, err := ParseUnderline("none"); err != nil || got != style.UnderlineNone {
		t.Errorf("ParseUnderline(\"none\") = %v, %v", got, err)
	}

	if _, err := ParseUnderline("wobbly"); !errors.Is(err, errors.ErrCodeInvalidUnderline) {
		t.Errorf("ParseUnderline(\"wobbly\") error = %v, want %v", err, errors.ErrCodeInvalidUnderline)
	}
}
