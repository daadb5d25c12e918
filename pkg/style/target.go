package style

// Target is the rendering channel a color applies to.
type Target uint8

const (
	// TargetForeground paints the text itself.
	TargetForeground Target = iota
	// TargetBackground paints the cell behind the text.
	TargetBackground
	// TargetUnderline paints the underline stroke.
	TargetUnderline
)

func (t Target) isAttribute() {}

// extendedCode returns the SGR parameter that introduces an extended
// (256-color or true-color) color for this target.
func (t Target) extendedCode() uint8 {
	switch t {
	case TargetBackground:
		return 48
	case TargetUnderline:
		return 58
	default:
		return 38
	}
}

// String returns the lowercase target name, e.g. "foreground".
func (t Target) String() string {
	switch t {
	case TargetForeground:
		return "foreground"
	case TargetBackground:
		return "background"
	case TargetUnderline:
		return "underline"
	}
	return "unknown"
}

// TargetedColor pairs a color with the target channel it paints. It is an
// [Element]: adding it to a Style sets its color on its target and leaves
// every other field untouched.
type TargetedColor struct {
	color  Color
	target Target
}

// NewTargetedColor pairs the given color with the given target. The color is
// stored in canonical form.
func NewTargetedColor(c Color, t Target) TargetedColor {
	if c != nil {
		c = c.ToColor()
	}
	return TargetedColor{color: c, target: t}
}

// Color returns the paired color.
func (tc TargetedColor) Color() Color { return tc.color }

// Target returns the paired target.
func (tc TargetedColor) Target() Target { return tc.target }

// Style returns a Style with only this color set on this target.
func (tc TargetedColor) Style() Style {
	return New().SetColor(tc.target, tc.color)
}

func (tc TargetedColor) addTo(s Style) Style {
	return s.SetColor(tc.target, tc.color)
}

// String renders the single-color style as an SGR escape sequence.
func (tc TargetedColor) String() string { return tc.Style().String() }
