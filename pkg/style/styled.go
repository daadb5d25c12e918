package style

import "fmt"

// Styled pairs displayable content with a [Style]. It mirrors the full
// Style API by delegation: every style-changing method returns a new Styled
// with the same content and an updated inner style.
//
// Rendering wraps the content in the style's start sequence and the full
// reset sequence. When the style is empty the content renders verbatim,
// without any escape codes.
type Styled[C any] struct {
	content C
	style   Style
}

// NewStyled wraps content with the empty style.
func NewStyled[C any](content C) Styled[C] {
	return Styled[C]{content: content}
}

// Apply wraps content with the given style.
func Apply[C any](s Style, content C) Styled[C] {
	return Styled[C]{content: content, style: s}
}

// Content returns the enclosed content.
func (s Styled[C]) Content() C { return s.content }

// WithContent returns a Styled with the same style and the given content.
// Use [Apply] with [Styled.Style] to switch to content of a different type.
func (s Styled[C]) WithContent(content C) Styled[C] {
	s.content = content
	return s
}

// Style returns the current style.
func (s Styled[C]) Style() Style { return s.style }

// WithStyle returns a Styled with the same content and the given style.
func (s Styled[C]) WithStyle(style Style) Styled[C] {
	s.style = style
	return s
}

// String renders the styled content. Content is formatted as fmt.Sprint
// would format it.
func (s Styled[C]) String() string {
	if s.style.IsZero() {
		return fmt.Sprint(s.content)
	}
	return s.style.String() + fmt.Sprint(s.content) + resetSeq
}

// SetEffect returns a Styled with the given effect turned on or off.
func (s Styled[C]) SetEffect(e Effect, on bool) Styled[C] {
	s.style = s.style.SetEffect(e, on)
	return s
}

// GetEffect reports whether the given effect is active.
func (s Styled[C]) GetEffect(e Effect) bool { return s.style.GetEffect(e) }

// Effects returns the active effects in declaration order.
func (s Styled[C]) Effects() []Effect { return s.style.Effects() }

// SetUnderlineStyle returns a Styled with the underline stroke set to u.
func (s Styled[C]) SetUnderlineStyle(u UnderlineStyle) Styled[C] {
	s.style = s.style.SetUnderlineStyle(u)
	return s
}

// GetUnderlineStyle returns the active underline stroke style.
func (s Styled[C]) GetUnderlineStyle() UnderlineStyle { return s.style.GetUnderlineStyle() }

// SetColor returns a Styled with the given target's color replaced.
func (s Styled[C]) SetColor(target Target, c Color) Styled[C] {
	s.style = s.style.SetColor(target, c)
	return s
}

// GetColor returns the color set for the given target, or nil.
func (s Styled[C]) GetColor(target Target) Color { return s.style.GetColor(target) }

// Set returns a Styled with the given attribute set to value.
func (s Styled[C]) Set(attr Attribute, value any) Styled[C] {
	s.style = s.style.Set(attr, value)
	return s
}

// Get returns the current value of the given attribute.
func (s Styled[C]) Get(attr Attribute) any { return s.style.Get(attr) }

// Unset returns a Styled with the given attribute reset to its default.
func (s Styled[C]) Unset(attr Attribute) Styled[C] {
	s.style = s.style.Unset(attr)
	return s
}

// Add folds the given element into the inner style.
func (s Styled[C]) Add(el Element) Styled[C] {
	s.style = s.style.Add(el)
	return s
}

// Bold sets the bold effect.
func (s Styled[C]) Bold() Styled[C] { return s.SetEffect(EffectBold, true) }

// Faint sets the faint effect.
func (s Styled[C]) Faint() Styled[C] { return s.SetEffect(EffectFaint, true) }

// Italic sets the italic effect.
func (s Styled[C]) Italic() Styled[C] { return s.SetEffect(EffectItalic, true) }

// Underline sets the solid underline effect.
func (s Styled[C]) Underline() Styled[C] { return s.SetEffect(EffectUnderline, true) }

// CurlyUnderline sets the curly underline effect.
func (s Styled[C]) CurlyUnderline() Styled[C] { return s.SetEffect(EffectCurlyUnderline, true) }

// DottedUnderline sets the dotted underline effect.
func (s Styled[C]) DottedUnderline() Styled[C] { return s.SetEffect(EffectDottedUnderline, true) }

// DashedUnderline sets the dashed underline effect.
func (s Styled[C]) DashedUnderline() Styled[C] { return s.SetEffect(EffectDashedUnderline, true) }

// Blink sets the blink effect.
func (s Styled[C]) Blink() Styled[C] { return s.SetEffect(EffectBlink, true) }

// Reverse sets the reverse-video effect.
func (s Styled[C]) Reverse() Styled[C] { return s.SetEffect(EffectReverse, true) }

// Conceal sets the conceal effect.
func (s Styled[C]) Conceal() Styled[C] { return s.SetEffect(EffectConceal, true) }

// Strikethrough sets the strikethrough effect.
func (s Styled[C]) Strikethrough() Styled[C] { return s.SetEffect(EffectStrikethrough, true) }

// DoubleUnderline sets the double underline effect.
func (s Styled[C]) DoubleUnderline() Styled[C] { return s.SetEffect(EffectDoubleUnderline, true) }

// Overline sets the overline effect.
func (s Styled[C]) Overline() Styled[C] { return s.SetEffect(EffectOverline, true) }

// WithEffect sets the given effect.
func (s Styled[C]) WithEffect(e Effect) Styled[C] { return s.SetEffect(e, true) }

// Foreground sets the foreground color.
func (s Styled[C]) Foreground(c Color) Styled[C] { return s.SetColor(TargetForeground, c) }

// Background sets the background color.
func (s Styled[C]) Background(c Color) Styled[C] { return s.SetColor(TargetBackground, c) }

// UnderlineColor sets the underline color.
func (s Styled[C]) UnderlineColor(c Color) Styled[C] { return s.SetColor(TargetUnderline, c) }

// WithColor sets the targeted color on its target.
func (s Styled[C]) WithColor(tc TargetedColor) Styled[C] { return s.Add(tc) }
