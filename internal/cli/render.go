package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tinge/pkg/style"
	"github.com/matzehuels/tinge/pkg/theme"
)

// renderOpts holds the command-line flags for the render command.
// Colors and effects use the same syntax as theme files, so "bright-red",
// "27", "#5fafff", and "rgb(0,128,255)" are all valid color values.
type renderOpts struct {
	fg             string   // foreground color
	bg             string   // background color
	underlineColor string   // underline color
	underline      string   // underline stroke style: solid, curly, dotted, dashed, double
	effects        []string // effect names: bold, italic, blink, ...
	themePath      string   // path to a TOML theme file
	styleName      string   // style name within the theme
	forceColor     bool     // emit escape sequences even when stdout is not a TTY
	escaped        bool     // print the Go-quoted output instead of raw bytes
	noNewline      bool     // suppress the trailing newline
}

// renderCommand creates the render command for styling text.
//
// Text is taken from the argument, or from stdin when the argument is
// omitted. The style is built from a theme style (--theme/--style) and the
// individual flags; flags override what the theme sets.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Style text with colors and effects",
		Long: `Style text with colors and effects.

Text is read from the argument, or from stdin when no argument is given.
The style is assembled from the flags, optionally layered on top of a named
style from a TOML theme file.

Colors accept basic names ("red", "bright-cyan"), 256-color palette indices
("27"), hex values ("#5fafff"), and "rgb(r,g,b)" triples.

Escape sequences are only emitted when stdout is a terminal; use
--force-color to override (useful when piping into a pager).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.OutOrStdout(), text, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.fg, "fg", "f", "", "foreground color")
	cmd.Flags().StringVarP(&opts.bg, "bg", "b", "", "background color")
	cmd.Flags().StringVar(&opts.underlineColor, "underline-color", "", "underline color")
	cmd.Flags().StringVarP(&opts.underline, "underline", "u", "", "underline style: solid, curly, dotted, dashed, double")
	cmd.Flags().StringSliceVarP(&opts.effects, "effects", "e", nil, "effect names (comma-separated): bold, italic, blink, ...")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "path to a TOML theme file")
	cmd.Flags().StringVar(&opts.styleName, "style", "", "style name from the theme file")
	cmd.Flags().BoolVar(&opts.forceColor, "force-color", false, "emit escape sequences even when stdout is not a terminal")
	cmd.Flags().BoolVar(&opts.escaped, "escaped", false, "print the Go-quoted output instead of raw bytes")
	cmd.Flags().BoolVarP(&opts.noNewline, "no-newline", "n", false, "do not print a trailing newline")

	return cmd
}

// runRender builds the style and writes the styled text to w.
func (c *CLI) runRender(w io.Writer, text string, opts *renderOpts) error {
	s, err := buildStyle(opts)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Built style %q", s)

	out := text
	if opts.forceColor || opts.escaped || colorEnabled(w) {
		out = style.Apply(s, text).String()
	}
	if opts.escaped {
		out = fmt.Sprintf("%q", out)
	}

	if opts.noNewline {
		_, err = fmt.Fprint(w, out)
	} else {
		_, err = fmt.Fprintln(w, out)
	}
	return err
}

// inputText returns the text to style: the single argument if present,
// otherwise everything read from stdin with the trailing newline removed.
func inputText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// buildStyle assembles a style from the render flags. When a theme file is
// given, the named theme style is the base and the flags layer on top.
func buildStyle(opts *renderOpts) (style.Style, error) {
	s := style.New()

	if opts.themePath != "" || opts.styleName != "" {
		if opts.themePath == "" || opts.styleName == "" {
			return s, fmt.Errorf("--theme and --style must be used together")
		}
		th, err := theme.Load(opts.themePath)
		if err != nil {
			return s, err
		}
		s, err = th.Get(opts.styleName)
		if err != nil {
			return s, err
		}
	}

	colorFlags := []struct {
		value  string
		target style.Target
	}{
		{opts.fg, style.TargetForeground},
		{opts.bg, style.TargetBackground},
		{opts.underlineColor, style.TargetUnderline},
	}
	for _, f := range colorFlags {
		if f.value == "" {
			continue
		}
		color, err := theme.ParseColor(f.value)
		if err != nil {
			return s, err
		}
		s = s.SetColor(f.target, color)
	}

	for _, name := range opts.effects {
		e, err := theme.ParseEffect(name)
		if err != nil {
			return s, err
		}
		s = s.SetEffect(e, true)
	}

	if opts.underline != "" {
		u, err := theme.ParseUnderline(opts.underline)
		if err != nil {
			return s, err
		}
		s = s.SetUnderlineStyle(u)
	}

	return s, nil
}

// colorEnabled reports whether escape sequences should be written to w.
// It honors the NO_COLOR convention and requires w to be a terminal.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
