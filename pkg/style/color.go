package style

// Color is a terminal color in one of three canonical representations:
// [SimpleColor] (16-color palette), [IndexedColor] (256-color palette), or
// [RGBColor] (24-bit true color). [BasicColor] values satisfy Color as well
// and canonicalize to their non-bright SimpleColor form.
//
// The interface is sealed; only types in this package implement it. A nil
// Color means "no color set".
type Color interface {
	// ToColor returns the canonical representation of this color. Style
	// stores canonical colors, so a style built from a BasicColor compares
	// equal to one built from the equivalent SimpleColor.
	ToColor() Color

	// ForTarget pairs the color with the given target.
	ForTarget(t Target) TargetedColor

	// writeSGR appends the color's SGR parameters for the given target.
	writeSGR(w *sgrWriter, target Target)
}

// BasicColor is one of the 8 basic terminal hues.
//
// See Wikipedia's article on 3-bit and 4-bit ANSI escape codes:
// https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
type BasicColor uint8

// The 8 basic colors. Their numeric values are the hue offsets added to the
// SGR base codes (30 foreground, 40 background, and so on).
const (
	Black BasicColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Simple returns the non-bright SimpleColor for this hue.
func (b BasicColor) Simple() SimpleColor {
	return SimpleColor{basic: b}
}

// Bright returns the bright SimpleColor for this hue.
func (b BasicColor) Bright() SimpleColor {
	return SimpleColor{basic: b, bright: true}
}

// ToColor canonicalizes the hue to its non-bright SimpleColor form.
func (b BasicColor) ToColor() Color { return b.Simple() }

func (b BasicColor) writeSGR(w *sgrWriter, target Target) {
	b.Simple().writeSGR(w, target)
}

// ForFG pairs the color with the foreground target.
func (b BasicColor) ForFG() TargetedColor { return NewTargetedColor(b, TargetForeground) }

// ForBG pairs the color with the background target.
func (b BasicColor) ForBG() TargetedColor { return NewTargetedColor(b, TargetBackground) }

// ForUnderline pairs the color with the underline target.
func (b BasicColor) ForUnderline() TargetedColor { return NewTargetedColor(b, TargetUnderline) }

// ForTarget pairs the color with the given target.
func (b BasicColor) ForTarget(t Target) TargetedColor { return NewTargetedColor(b, t) }

func (b BasicColor) addTo(s Style) Style { return s.SetColor(TargetForeground, b) }

// String returns the lowercase color name, e.g. "red".
func (b BasicColor) String() string {
	if int(b) < len(basicNames) {
		return basicNames[b]
	}
	return "unknown"
}

var basicNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// AllBasicColors returns the 8 basic hues in palette order.
func AllBasicColors() []BasicColor {
	return []BasicColor{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
}

// SimpleColor is a color from the 16-color palette: one of the 8 basic hues,
// optionally bright.
type SimpleColor struct {
	basic  BasicColor
	bright bool
}

// NewSimpleColor returns the non-bright 16-color palette entry for the hue.
func NewSimpleColor(b BasicColor) SimpleColor {
	return SimpleColor{basic: b}
}

// Bright returns a bright variant of this color.
func (c SimpleColor) Bright() SimpleColor {
	c.bright = true
	return c
}

// BasicColor returns the underlying hue.
func (c SimpleColor) BasicColor() BasicColor { return c.basic }

// IsBright reports whether the color is the bright variant.
func (c SimpleColor) IsBright() bool { return c.bright }

// ToColor returns the color itself; SimpleColor is already canonical.
func (c SimpleColor) ToColor() Color { return c }

func (c SimpleColor) writeSGR(w *sgrWriter, target Target) {
	offset := uint8(c.basic)
	switch {
	case target == TargetUnderline:
		// There is no direct SGR code for simple underline colors; encode
		// the color's position in the 16-color palette via the 256-color
		// path instead.
		idx := offset
		if c.bright {
			idx += 8
		}
		IndexedColor(idx).writeSGR(w, target)
	case c.bright && target == TargetForeground:
		w.code(90 + offset)
	case c.bright && target == TargetBackground:
		w.code(100 + offset)
	case target == TargetForeground:
		w.code(30 + offset)
	default:
		w.code(40 + offset)
	}
}

// ForFG pairs the color with the foreground target.
func (c SimpleColor) ForFG() TargetedColor { return NewTargetedColor(c, TargetForeground) }

// ForBG pairs the color with the background target.
func (c SimpleColor) ForBG() TargetedColor { return NewTargetedColor(c, TargetBackground) }

// ForUnderline pairs the color with the underline target.
func (c SimpleColor) ForUnderline() TargetedColor { return NewTargetedColor(c, TargetUnderline) }

// ForTarget pairs the color with the given target.
func (c SimpleColor) ForTarget(t Target) TargetedColor { return NewTargetedColor(c, t) }

func (c SimpleColor) addTo(s Style) Style { return s.SetColor(TargetForeground, c) }

// String returns the color name, e.g. "red" or "bright-red".
func (c SimpleColor) String() string {
	if c.bright {
		return "bright-" + c.basic.String()
	}
	return c.basic.String()
}

// IndexedColor is an 8-bit color from the 256-color ANSI palette.
//
// See Wikipedia's article on 8-bit ANSI escape codes:
// https://en.wikipedia.org/wiki/ANSI_escape_code#8-bit
type IndexedColor uint8

// Indexed returns the 256-color palette entry with the given index.
func Indexed(index uint8) IndexedColor { return IndexedColor(index) }

// Index returns the palette index of this color.
func (c IndexedColor) Index() uint8 { return uint8(c) }

// ToColor returns the color itself; IndexedColor is already canonical.
func (c IndexedColor) ToColor() Color { return c }

func (c IndexedColor) writeSGR(w *sgrWriter, target Target) {
	w.code(target.extendedCode())
	w.code(5)
	w.code(uint8(c))
}

// ForFG pairs the color with the foreground target.
func (c IndexedColor) ForFG() TargetedColor { return NewTargetedColor(c, TargetForeground) }

// ForBG pairs the color with the background target.
func (c IndexedColor) ForBG() TargetedColor { return NewTargetedColor(c, TargetBackground) }

// ForUnderline pairs the color with the underline target.
func (c IndexedColor) ForUnderline() TargetedColor { return NewTargetedColor(c, TargetUnderline) }

// ForTarget pairs the color with the given target.
func (c IndexedColor) ForTarget(t Target) TargetedColor { return NewTargetedColor(c, t) }

func (c IndexedColor) addTo(s Style) Style { return s.SetColor(TargetForeground, c) }

// RGBColor is a 24-bit true color.
//
// See Wikipedia's article on 24-bit ANSI escape codes:
// https://en.wikipedia.org/wiki/ANSI_escape_code#24-bit
type RGBColor struct {
	R, G, B uint8
}

// RGB returns the true color with the given red, green, and blue components.
func RGB(r, g, b uint8) RGBColor { return RGBColor{R: r, G: g, B: b} }

// ToColor returns the color itself; RGBColor is already canonical.
func (c RGBColor) ToColor() Color { return c }

func (c RGBColor) writeSGR(w *sgrWriter, target Target) {
	w.code(target.extendedCode())
	w.code(2)
	w.code(c.R)
	w.code(c.G)
	w.code(c.B)
}

// ForFG pairs the color with the foreground target.
func (c RGBColor) ForFG() TargetedColor { return NewTargetedColor(c, TargetForeground) }

// ForBG pairs the color with the background target.
func (c RGBColor) ForBG() TargetedColor { return NewTargetedColor(c, TargetBackground) }

// ForUnderline pairs the color with the underline target.
func (c RGBColor) ForUnderline() TargetedColor { return NewTargetedColor(c, TargetUnderline) }

// ForTarget pairs the color with the given target.
func (c RGBColor) ForTarget(t Target) TargetedColor { return NewTargetedColor(c, t) }

func (c RGBColor) addTo(s Style) Style { return s.SetColor(TargetForeground, c) }
