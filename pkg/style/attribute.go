package style

// Attribute identifies a single styling attribute that can be read, set, or
// cleared through the generic [Style.Set], [Style.Get], and [Style.Unset]
// methods. The set of attribute kinds is closed:
//
//   - [Effect]: value type bool (the effect's on/off state)
//   - [UnderlineStyle]: value type bool (that particular stroke's state)
//   - [Underline]: value type UnderlineStyle (the active stroke as a whole)
//   - [Target]: value type Color (the target's color; nil when unset)
type Attribute interface {
	isAttribute()
}

// Underline is the attribute addressing the underline stroke style as a
// whole. Its value is an [UnderlineStyle]; UnderlineNone means no underline.
var Underline Attribute = underlineAttribute{}

type underlineAttribute struct{}

func (underlineAttribute) isAttribute() {}

// Set returns a style with the given attribute set to value. The expected
// value type depends on the attribute kind (see [Attribute]); a value of the
// wrong type behaves like the kind's zero value.
func (s Style) Set(attr Attribute, value any) Style {
	switch a := attr.(type) {
	case Effect:
		on, _ := value.(bool)
		return s.SetEffect(a, on)
	case UnderlineStyle:
		on, _ := value.(bool)
		e, ok := a.Effect()
		if !ok {
			return s
		}
		return s.SetEffect(e, on)
	case underlineAttribute:
		u, _ := value.(UnderlineStyle)
		return s.SetUnderlineStyle(u)
	case Target:
		c, _ := value.(Color)
		return s.SetColor(a, c)
	}
	return s
}

// Get returns the current value of the given attribute. The dynamic type of
// the result follows the attribute kind (see [Attribute]).
func (s Style) Get(attr Attribute) any {
	switch a := attr.(type) {
	case Effect:
		return s.GetEffect(a)
	case UnderlineStyle:
		e, ok := a.Effect()
		if !ok {
			return false
		}
		return s.GetEffect(e)
	case underlineAttribute:
		return s.GetUnderlineStyle()
	case Target:
		return s.GetColor(a)
	}
	return nil
}

// Unset returns a style with the given attribute reset to its default:
// effects off, no underline, no color.
func (s Style) Unset(attr Attribute) Style {
	switch a := attr.(type) {
	case Effect:
		return s.SetEffect(a, false)
	case UnderlineStyle:
		e, ok := a.Effect()
		if !ok {
			return s
		}
		return s.SetEffect(e, false)
	case underlineAttribute:
		return s.SetUnderlineStyle(UnderlineNone)
	case Target:
		return s.SetColor(a, nil)
	}
	return s
}
