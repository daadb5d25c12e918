package style

// Fluent shorthands. Each returns a new Style with one more piece set, so
// styles compose as chains: New().Bold().Foreground(Red).

// Bold sets the bold effect.
func (s Style) Bold() Style { return s.SetEffect(EffectBold, true) }

// Faint sets the faint effect.
func (s Style) Faint() Style { return s.SetEffect(EffectFaint, true) }

// Italic sets the italic effect.
func (s Style) Italic() Style { return s.SetEffect(EffectItalic, true) }

// Underline sets the solid underline effect.
func (s Style) Underline() Style { return s.SetEffect(EffectUnderline, true) }

// CurlyUnderline sets the curly underline effect.
func (s Style) CurlyUnderline() Style { return s.SetEffect(EffectCurlyUnderline, true) }

// DottedUnderline sets the dotted underline effect.
func (s Style) DottedUnderline() Style { return s.SetEffect(EffectDottedUnderline, true) }

// DashedUnderline sets the dashed underline effect.
func (s Style) DashedUnderline() Style { return s.SetEffect(EffectDashedUnderline, true) }

// Blink sets the blink effect.
func (s Style) Blink() Style { return s.SetEffect(EffectBlink, true) }

// Reverse sets the reverse-video effect.
func (s Style) Reverse() Style { return s.SetEffect(EffectReverse, true) }

// Conceal sets the conceal effect.
func (s Style) Conceal() Style { return s.SetEffect(EffectConceal, true) }

// Strikethrough sets the strikethrough effect.
func (s Style) Strikethrough() Style { return s.SetEffect(EffectStrikethrough, true) }

// DoubleUnderline sets the double underline effect.
func (s Style) DoubleUnderline() Style { return s.SetEffect(EffectDoubleUnderline, true) }

// Overline sets the overline effect.
func (s Style) Overline() Style { return s.SetEffect(EffectOverline, true) }

// WithEffect sets the given effect.
func (s Style) WithEffect(e Effect) Style { return s.SetEffect(e, true) }

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style { return s.SetColor(TargetForeground, c) }

// Background sets the background color.
func (s Style) Background(c Color) Style { return s.SetColor(TargetBackground, c) }

// UnderlineColor sets the underline color.
func (s Style) UnderlineColor(c Color) Style { return s.SetColor(TargetUnderline, c) }

// WithColor sets the targeted color on its target.
func (s Style) WithColor(tc TargetedColor) Style { return tc.addTo(s) }
