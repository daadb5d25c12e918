// Package theme loads named styles from TOML theme files.
//
// A theme file maps style names to color and effect definitions:
//
//	[styles.error]
//	fg = "bright-red"
//	effects = ["bold"]
//
//	[styles.link]
//	fg = "#5fafff"
//	underline = "curly"
//	underline-color = "27"
//
// Colors accept four syntaxes: the 8 basic color names (optionally with a
// "bright-" prefix), a 256-color palette index ("27"), a hex true color
// ("#5fafff" or "#fa0"), and an "rgb(r,g,b)" triple. Effect and underline
// names match the names reported by the style package ("bold",
// "strikethrough", "curly", ...).
//
// All validation failures carry structured codes from pkg/errors, so the
// CLI can distinguish an unknown color from an unreadable file.
package theme
