// Package pkg provides the core libraries for Tinge terminal text styling.
//
// # Overview
//
// Tinge builds ANSI SGR escape sequences from composable style values. The
// pkg directory is organized into four areas:
//
//  1. [style] - The styling core: colors, effects, styles, and rendering
//  2. [theme] - TOML theme files defining named, reusable styles
//  3. [errors] - Structured errors with machine-readable codes
//  4. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Compose a style and apply it to text:
//
//	import "github.com/matzehuels/tinge/pkg/style"
//
//	s := style.New().Bold().Foreground(style.Red)
//	fmt.Println(style.Apply(s, "error:"), "disk full")
//
// Load named styles from a theme file:
//
//	th, _ := theme.Load("theme.toml")
//	errStyle, _ := th.Get("error")
//	fmt.Println(style.Apply(errStyle, "error:"), "disk full")
//
// # Main Packages
//
// [style] - Immutable Style values aggregating text effects (bold, italic,
// blink, ...), foreground, background, and underline colors across the
// 16-color, 256-color, and truecolor palettes, plus underline stroke styles
// (solid, curly, dotted, dashed, double). Styles render to ANSI SGR escape
// sequences with a fixed parameter order.
//
// [theme] - TOML theme files mapping names to styles, with parsers for the
// color, effect, and underline syntax shared by theme files and CLI flags.
//
// [errors] - Structured error type carrying a machine-readable code, used
// across theme parsing and the CLI.
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/style/...    # Specific package
//	go test -run Example       # Examples only
//
// [style]: https://pkg.go.dev/github.com/matzehuels/tinge/pkg/style
// [theme]: https://pkg.go.dev/github.com/matzehuels/tinge/pkg/theme
// [errors]: https://pkg.go.dev/github.com/matzehuels/tinge/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tinge/pkg/buildinfo
package pkg
