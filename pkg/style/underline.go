package style

// UnderlineStyle selects the stroke style of the underline, or
// UnderlineNone for no underline at all. The five stroke styles map 1:1
// onto the underline sub-family of [Effect] and are mutually exclusive:
// setting one clears whichever other one was active.
type UnderlineStyle uint8

const (
	// UnderlineNone means no underline is active.
	UnderlineNone UnderlineStyle = iota
	// UnderlineSolid is a single solid underline.
	UnderlineSolid
	// UnderlineCurly is a curly underline.
	UnderlineCurly
	// UnderlineDotted is a dotted underline.
	UnderlineDotted
	// UnderlineDashed is a dashed underline.
	UnderlineDashed
	// UnderlineDouble is a double underline.
	UnderlineDouble
)

// AllUnderlineStyles returns the five stroke styles in declaration order.
// UnderlineNone is not included.
func AllUnderlineStyles() []UnderlineStyle {
	return []UnderlineStyle{
		UnderlineSolid, UnderlineCurly, UnderlineDotted,
		UnderlineDashed, UnderlineDouble,
	}
}

// Effect returns the effect encoding this stroke style. ok is false for
// UnderlineNone, which has no effect representation.
func (u UnderlineStyle) Effect() (e Effect, ok bool) {
	switch u {
	case UnderlineSolid:
		return EffectUnderline, true
	case UnderlineCurly:
		return EffectCurlyUnderline, true
	case UnderlineDotted:
		return EffectDottedUnderline, true
	case UnderlineDashed:
		return EffectDashedUnderline, true
	case UnderlineDouble:
		return EffectDoubleUnderline, true
	}
	return 0, false
}

// underlineStyleForEffect is the inverse of [UnderlineStyle.Effect]; ok is
// false for effects outside the underline sub-family.
func underlineStyleForEffect(e Effect) (u UnderlineStyle, ok bool) {
	switch e {
	case EffectUnderline:
		return UnderlineSolid, true
	case EffectCurlyUnderline:
		return UnderlineCurly, true
	case EffectDottedUnderline:
		return UnderlineDotted, true
	case EffectDashedUnderline:
		return UnderlineDashed, true
	case EffectDoubleUnderline:
		return UnderlineDouble, true
	}
	return 0, false
}

func (u UnderlineStyle) isAttribute() {}

func (u UnderlineStyle) addTo(s Style) Style { return s.SetUnderlineStyle(u) }

// Style returns a Style with only this underline style set.
func (u UnderlineStyle) Style() Style { return New().SetUnderlineStyle(u) }

// String returns the lowercase stroke-style name, e.g. "solid" or "curly".
func (u UnderlineStyle) String() string {
	switch u {
	case UnderlineNone:
		return "none"
	case UnderlineSolid:
		return "solid"
	case UnderlineCurly:
		return "curly"
	case UnderlineDotted:
		return "dotted"
	case UnderlineDashed:
		return "dashed"
	case UnderlineDouble:
		return "double"
	}
	return "unknown"
}
