package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tinge/pkg/style"
)

// previewCommand creates the preview command for interactively composing a style.
func (c *CLI) previewCommand() *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively compose a style",
		Long: `Interactively compose a style.

Toggle effects and cycle through colors while watching a live sample. On
exit, the escape sequence of the final style is printed so it can be copied
into scripts or theme files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newPreviewModel(sample)
			p := tea.NewProgram(model)

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}

			m, ok := final.(previewModel)
			if !ok {
				return nil
			}
			if m.style.IsZero() {
				printInfo("No style composed")
				return nil
			}
			printSuccess("Composed style: %s", style.Apply(m.style, sample))
			printDetail("sequence: %q", m.style.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "The quick brown fox", "sample text to render")

	return cmd
}

// previewColors are the color choices the arrow keys cycle through.
// The leading nil means "no color".
var previewColors = []style.Color{
	nil,
	style.Red.Simple(), style.Green.Simple(), style.Yellow.Simple(),
	style.Blue.Simple(), style.Magenta.Simple(), style.Cyan.Simple(),
	style.White.Simple(), style.Black.Simple(),
	style.Red.Bright(), style.Green.Bright(), style.Yellow.Bright(),
	style.Blue.Bright(), style.Magenta.Bright(), style.Cyan.Bright(),
	style.White.Bright(), style.Black.Bright(),
}

// effectKeys maps single-key toggles to effects.
var effectKeys = map[string]style.Effect{
	"b": style.EffectBold,
	"f": style.EffectFaint,
	"i": style.EffectItalic,
	"k": style.EffectBlink,
	"r": style.EffectReverse,
	"x": style.EffectConceal,
	"s": style.EffectStrikethrough,
	"o": style.EffectOverline,
}

// underlineCycle is the order the tab key steps through.
var underlineCycle = []style.UnderlineStyle{
	style.UnderlineNone,
	style.UnderlineSolid,
	style.UnderlineCurly,
	style.UnderlineDotted,
	style.UnderlineDashed,
	style.UnderlineDouble,
}

// previewModel is the bubbletea model for the interactive style composer.
type previewModel struct {
	sample string
	style  style.Style
	fg     int // index into previewColors
	bg     int // index into previewColors
	ul     int // index into underlineCycle
}

// newPreviewModel creates a preview model with an empty style.
func newPreviewModel(sample string) previewModel {
	return previewModel{sample: sample, style: style.New()}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right":
		m.fg = (m.fg + 1) % len(previewColors)
		m.style = m.style.SetColor(style.TargetForeground, previewColors[m.fg])
	case "left":
		m.fg = (m.fg + len(previewColors) - 1) % len(previewColors)
		m.style = m.style.SetColor(style.TargetForeground, previewColors[m.fg])
	case "up":
		m.bg = (m.bg + 1) % len(previewColors)
		m.style = m.style.SetColor(style.TargetBackground, previewColors[m.bg])
	case "down":
		m.bg = (m.bg + len(previewColors) - 1) % len(previewColors)
		m.style = m.style.SetColor(style.TargetBackground, previewColors[m.bg])
	case "tab":
		m.ul = (m.ul + 1) % len(underlineCycle)
		m.style = m.style.SetUnderlineStyle(underlineCycle[m.ul])
	default:
		if e, ok := effectKeys[key]; ok {
			m.style = m.style.SetEffect(e, !m.style.GetEffect(e))
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(style.Apply(styleTitle, "Compose Style").String())
	b.WriteString("\n")
	b.WriteString(style.Apply(styleDim, "←/→ fg  ↑/↓ bg  ⇥ underline  b/f/i/k/r/x/s/o effects  q quit").String())
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(style.Apply(m.style, m.sample).String())
	b.WriteString("\n\n")

	b.WriteString(style.Apply(styleDim, "sequence: ").String())
	b.WriteString(style.Apply(styleValue, fmt.Sprintf("%q", m.style.String())).String())
	b.WriteString("\n")

	b.WriteString(style.Apply(styleDim, "effects:  ").String())
	b.WriteString(style.Apply(styleValue, effectSummary(m.style)).String())
	b.WriteString("\n")

	return b.String()
}

// effectSummary lists the active effect names, or "none".
func effectSummary(s style.Style) string {
	effects := s.Effects()
	if len(effects) == 0 {
		return "none"
	}
	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = e.String()
	}
	return strings.Join(names, ", ")
}
