package style

// Effect is a text styling effect independent of color. The declaration
// order fixes both the bit layout of the internal effect set and the order
// in which effect codes are emitted when a Style renders.
type Effect uint8

const (
	// EffectBold renders bold or increased-intensity text (SGR 1).
	EffectBold Effect = iota
	// EffectFaint renders faint or decreased-intensity text (SGR 2).
	EffectFaint
	// EffectItalic renders italic text (SGR 3).
	EffectItalic
	// EffectUnderline renders a solid underline (SGR 4).
	EffectUnderline
	// EffectCurlyUnderline renders a curly underline (SGR 4:3).
	EffectCurlyUnderline
	// EffectDottedUnderline renders a dotted underline (SGR 4:4).
	EffectDottedUnderline
	// EffectDashedUnderline renders a dashed underline (SGR 4:5).
	EffectDashedUnderline
	// EffectBlink renders blinking text (SGR 5).
	EffectBlink
	// EffectReverse swaps foreground and background (SGR 7).
	EffectReverse
	// EffectConceal hides the text (SGR 8).
	EffectConceal
	// EffectStrikethrough renders crossed-out text (SGR 9).
	EffectStrikethrough
	// EffectDoubleUnderline renders a double underline (SGR 21).
	EffectDoubleUnderline
	// EffectOverline renders an overline (SGR 53).
	EffectOverline

	numEffects
)

// AllEffects returns every effect in declaration order.
func AllEffects() []Effect {
	all := make([]Effect, 0, numEffects)
	for e := Effect(0); e < numEffects; e++ {
		all = append(all, e)
	}
	return all
}

// code returns the SGR parameter for the effect. The three colon-qualified
// underline variants use sub-parameter notation and are emitted verbatim.
func (e Effect) code() string {
	switch e {
	case EffectBold:
		return "1"
	case EffectFaint:
		return "2"
	case EffectItalic:
		return "3"
	case EffectUnderline:
		return "4"
	case EffectCurlyUnderline:
		return "4:3"
	case EffectDottedUnderline:
		return "4:4"
	case EffectDashedUnderline:
		return "4:5"
	case EffectBlink:
		return "5"
	case EffectReverse:
		return "7"
	case EffectConceal:
		return "8"
	case EffectStrikethrough:
		return "9"
	case EffectDoubleUnderline:
		return "21"
	case EffectOverline:
		return "53"
	}
	return ""
}

func (e Effect) mask() effectSet { return 1 << e }

func (e Effect) isAttribute() {}

func (e Effect) addTo(s Style) Style { return s.SetEffect(e, true) }

// Style returns a Style with only this effect set.
func (e Effect) Style() Style { return New().SetEffect(e, true) }

// String returns the lowercase effect name, e.g. "bold" or
// "curly-underline".
func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "unknown"
}

var effectNames = [...]string{
	"bold", "faint", "italic", "underline", "curly-underline",
	"dotted-underline", "dashed-underline", "blink", "reverse", "conceal",
	"strikethrough", "double-underline", "overline",
}
