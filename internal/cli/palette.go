package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tinge/pkg/style"
)

const (
	swatch        = "   " // background swatch width
	indexedPerRow = 16    // indexed palette cells per row
)

// paletteCommand creates the palette command for browsing terminal colors.
func (c *CLI) paletteCommand() *cobra.Command {
	var indexedOnly, basicOnly bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the terminal color palette",
		Long: `Print the terminal color palette.

Shows the 16 basic colors (8 hues in normal and bright variants) followed by
the 256-color indexed palette. The labels printed next to each basic color
are accepted anywhere tinge takes a color value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !indexedOnly {
				printBasicPalette(out)
			}
			if !basicOnly {
				if !indexedOnly {
					fmt.Fprintln(out)
				}
				printIndexedPalette(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&basicOnly, "basic", false, "show only the 16 basic colors")
	cmd.Flags().BoolVar(&indexedOnly, "indexed", false, "show only the 256-color indexed palette")
	cmd.MarkFlagsMutuallyExclusive("basic", "indexed")

	return cmd
}

// printBasicPalette writes one line per hue: the name, a normal swatch, the
// bright name, and a bright swatch.
func printBasicPalette(w io.Writer) {
	fmt.Fprintln(w, "Basic colors")
	for _, hue := range style.AllBasicColors() {
		normal := style.Apply(style.New().Background(hue.Simple()), swatch)
		bright := style.Apply(style.New().Background(hue.Bright()), swatch)
		fmt.Fprintf(w, "  %-8s %s   %-15s %s\n",
			hue, normal, "bright-"+hue.String(), bright)
	}
}

// printIndexedPalette writes the 256-color palette as rows of numbered
// background swatches. Cell text switches to black on the brighter half of
// each color cube row so the index stays readable.
func printIndexedPalette(w io.Writer) {
	fmt.Fprintln(w, "Indexed colors")
	var row strings.Builder
	for i := 0; i < 256; i++ {
		color := style.Indexed(uint8(i))
		s := style.New().Background(color).Foreground(indexLabelColor(uint8(i)))
		row.WriteString(style.Apply(s, fmt.Sprintf(" %3d ", i)).String())
		if (i+1)%indexedPerRow == 0 {
			fmt.Fprintf(w, "  %s\n", row.String())
			row.Reset()
		}
	}
}

// indexLabelColor picks a readable label color for an indexed background.
func indexLabelColor(index uint8) style.Color {
	if isDarkIndex(index) {
		return style.White.Bright()
	}
	return style.Black.Simple()
}

// isDarkIndex reports whether palette entry index is dark enough to need a
// light label. The 6x6x6 color cube starts at 16; the grayscale ramp at 232.
func isDarkIndex(index uint8) bool {
	switch {
	case index < 16:
		return index == 0 || index == 8 || (index >= 1 && index <= 6)
	case index >= 232:
		return index < 244
	default:
		// Approximate cube luminance from the green component.
		green := ((index - 16) / 6) % 6
		return green < 3
	}
}
