package style

// Style is the aggregate styling value: a set of active effects plus up to
// three optional targeted colors. Styles are plain comparable values; every
// operation returns a new Style and the receiver is never modified.
//
// The zero value is the empty style, identical to New(), and renders the
// full reset sequence.
type Style struct {
	effects   effectSet
	fg        Color
	bg        Color
	underline Color
}

// New returns the empty style: no effects, no colors.
func New() Style { return Style{} }

// SetEffect returns a style with the given effect turned on or off. Turning
// on an underline-family effect clears any other active underline style.
func (s Style) SetEffect(e Effect, on bool) Style {
	s.effects = s.effects.set(e, on)
	return s
}

// GetEffect reports whether the given effect is active.
func (s Style) GetEffect(e Effect) bool {
	return s.effects.get(e)
}

// Effects returns the active effects in declaration order. The returned
// slice is freshly allocated on every call.
func (s Style) Effects() []Effect {
	return s.effects.effects()
}

// SetUnderlineStyle returns a style whose underline stroke is u. All other
// underline styles are cleared first; UnderlineNone clears the underline
// entirely. Non-underline effects are unaffected.
func (s Style) SetUnderlineStyle(u UnderlineStyle) Style {
	s.effects = s.effects.setUnderline(u)
	return s
}

// GetUnderlineStyle returns the active underline stroke style, or
// UnderlineNone. At most one underline effect can be active, so the answer
// is unambiguous.
func (s Style) GetUnderlineStyle() UnderlineStyle {
	for _, u := range AllUnderlineStyles() {
		e, _ := u.Effect()
		if s.effects.get(e) {
			return u
		}
	}
	return UnderlineNone
}

// SetColor returns a style with the given target's color replaced. The color
// is stored in canonical form; nil clears the target. No other field is
// touched.
func (s Style) SetColor(target Target, c Color) Style {
	if c != nil {
		c = c.ToColor()
	}
	switch target {
	case TargetForeground:
		s.fg = c
	case TargetBackground:
		s.bg = c
	case TargetUnderline:
		s.underline = c
	}
	return s
}

// GetColor returns the color set for the given target, or nil.
func (s Style) GetColor(target Target) Color {
	switch target {
	case TargetForeground:
		return s.fg
	case TargetBackground:
		return s.bg
	case TargetUnderline:
		return s.underline
	}
	return nil
}

// Add folds the given element into the style.
func (s Style) Add(el Element) Style {
	return el.addTo(s)
}

// IsZero reports whether the style is the empty style.
func (s Style) IsZero() bool { return s == Style{} }

// AppendSequence appends the style's SGR escape sequence to dst and returns
// the extended slice. The empty style appends "\x1b[0m"; otherwise the
// parameters are the active effect codes in declaration order, followed by
// the foreground, background, and underline colors, joined by semicolons.
func (s Style) AppendSequence(dst []byte) []byte {
	dst = append(dst, csi...)
	if s.IsZero() {
		dst = append(dst, '0')
		return append(dst, 'm')
	}
	w := &sgrWriter{buf: dst}
	for e := Effect(0); e < numEffects; e++ {
		if s.effects.get(e) {
			w.raw(e.code())
		}
	}
	if s.fg != nil {
		s.fg.writeSGR(w, TargetForeground)
	}
	if s.bg != nil {
		s.bg.writeSGR(w, TargetBackground)
	}
	if s.underline != nil {
		s.underline.writeSGR(w, TargetUnderline)
	}
	return append(w.buf, 'm')
}

// String renders the style as an SGR escape sequence.
func (s Style) String() string {
	return string(s.AppendSequence(nil))
}
