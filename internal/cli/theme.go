package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tinge/pkg/style"
	"github.com/matzehuels/tinge/pkg/theme"
)

// themeCommand creates the theme command group for working with theme files.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect TOML theme files",
		Long: `Inspect TOML theme files.

A theme file defines named styles under [styles.<name>] tables:

  [styles.error]
  fg = "bright-red"
  effects = ["bold"]

  [styles.link]
  fg = "#5fafff"
  underline = "curly"
  underline-color = "27"`,
	}

	cmd.AddCommand(c.themeListCommand())
	cmd.AddCommand(c.themeShowCommand())

	return cmd
}

// themeListCommand creates the theme list command.
func (c *CLI) themeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "List the style names defined in a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := theme.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range th.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

// themeShowCommand creates the theme show command.
func (c *CLI) themeShowCommand() *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Render a sample of every style in a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(c.Logger)
			th, err := theme.Load(args[0])
			if err != nil {
				return err
			}
			if th.Len() == 0 {
				printWarning("theme %s defines no styles", args[0])
				return nil
			}
			showTheme(cmd.OutOrStdout(), th, sample)
			p.done(fmt.Sprintf("Rendered %d styles", th.Len()))
			return nil
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "The quick brown fox", "sample text to render")

	return cmd
}

// showTheme writes one line per style: the name, the styled sample, and the
// Go-quoted escape sequence prefix.
func showTheme(w io.Writer, th *theme.Theme, sample string) {
	for _, name := range th.Names() {
		s, err := th.Get(name)
		if err != nil {
			continue // Names only returns defined styles
		}
		fmt.Fprintf(w, "%-16s %s  %q\n", name, style.Apply(s, sample), s.String())
	}
}
