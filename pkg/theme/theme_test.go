package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/tinge/pkg/errors"
	"github.com/matzehuels/tinge/pkg/style"
)

const sampleTheme = `
[styles.error]
fg = "bright-red"
effects = ["bold"]

[styles.link]
fg = "#5fafff"
underline = "curly"
underline-color = "27"

[styles.muted]
fg = "8"
effects = ["faint", "italic"]

[styles.alert]
fg = "white"
bg = "red"
effects = ["bold", "blink"]
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	tests := []struct {
		name string
		want style.Style
	}{
		{"error", style.New().Foreground(style.Red.Bright()).Bold()},
		{"link", style.New().
			Foreground(style.RGB(0x5f, 0xaf, 0xff)).
			CurlyUnderline().
			UnderlineColor(style.Indexed(27))},
		{"muted", style.New().Foreground(style.Indexed(8)).Faint().Italic()},
		{"alert", style.New().
			Foreground(style.White).
			Background(style.Red).
			Bold().
			Blink()},
	}
	for _, tt := range tests {
		got, err := th.Get(tt.name)
		if err != nil {
			t.Errorf("Get(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	th, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if th.Len() != 0 {
		t.Errorf("Len = %d, want 0", th.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed toml", `[styles.error`},
		{"bad color", "[styles.x]\nfg = \"salmon\"\n"},
		{"bad effect", "[styles.x]\neffects = [\"sparkle\"]\n"},
		{"bad underline", "[styles.x]\nunderline = \"wobbly\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("Parse error = %v, want code %v", err, errors.ErrCodeInvalidTheme)
			}
		})
	}
}

func TestGetUnknown(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	_, err = th.Get("nonexistent")
	if !errors.Is(err, errors.ErrCodeStyleNotFound) {
		t.Errorf("Get error = %v, want code %v", err, errors.ErrCodeStyleNotFound)
	}
}

func TestNames(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []string{"alert", "error", "link", "muted"}
	if got := th.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(sampleTheme), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if th.Len() != 4 {
		t.Errorf("Len = %d, want 4", th.Len())
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeThemeNotFound) {
		t.Errorf("Load error = %v, want code %v", err, errors.ErrCodeThemeNotFound)
	}
}
