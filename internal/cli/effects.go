package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tinge/pkg/style"
)

// effectsCommand creates the effects command for demonstrating text effects.
func (c *CLI) effectsCommand() *cobra.Command {
	var escaped bool

	cmd := &cobra.Command{
		Use:   "effects",
		Short: "Demonstrate every supported text effect",
		Long: `Demonstrate every supported text effect.

Each line shows an effect name rendered with that effect applied, so you can
see which effects your terminal supports. Underline stroke styles (curly,
dotted, dashed, double) are a modern extension and not universally rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printEffects(cmd.OutOrStdout(), escaped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&escaped, "escaped", false, "also print the Go-quoted escape sequence")

	return cmd
}

// printEffects writes one demo line per effect, then one per underline
// stroke style with an underline color applied.
func printEffects(w io.Writer, escaped bool) {
	fmt.Fprintln(w, "Effects")
	for _, e := range style.AllEffects() {
		printSample(w, e.String(), e.Style(), escaped)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Underline styles with color")
	for _, u := range style.AllUnderlineStyles() {
		s := u.Style().UnderlineColor(style.Cyan.Bright())
		printSample(w, u.String(), s, escaped)
	}
}

// printSample writes a single labeled demo line.
func printSample(w io.Writer, name string, s style.Style, escaped bool) {
	sample := style.Apply(s, name)
	if escaped {
		fmt.Fprintf(w, "  %s  %q\n", sample, sample.String())
		return
	}
	fmt.Fprintf(w, "  %s\n", sample)
}
