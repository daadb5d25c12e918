package cli

import (
	"fmt"

	"github.com/matzehuels/tinge/pkg/style"
)

// =============================================================================
// Shared Styles
// =============================================================================

var (
	// styleTitle for main headings.
	styleTitle = style.New().Bold().Foreground(style.Indexed(36))

	// styleDim for secondary/muted text.
	styleDim = style.New().Foreground(style.Indexed(240))

	// styleValue for data values.
	styleValue = style.New().Foreground(style.Indexed(255))

	// styleWarning for warning messages.
	styleWarning = style.New().Foreground(style.Indexed(220))
)

var (
	styleIconSuccess = style.New().Foreground(style.Indexed(35))
	styleIconWarning = style.New().Foreground(style.Indexed(220))
	styleIconInfo    = style.New().Foreground(style.Indexed(245))
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(style.Apply(styleIconSuccess, iconSuccess).String() + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(style.Apply(styleIconWarning, iconWarning).String() + " " + style.Apply(styleWarning, msg).String())
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(style.Apply(styleIconInfo, iconInfo).String() + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + style.Apply(styleDim, msg).String())
}
