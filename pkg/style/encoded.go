package style

// effectSet is the packed representation of the active effects: one bit per
// [Effect], indexed by declaration order. 16 bits cover all 13 effects.
//
// The underline invariant lives here: adding any underline-family effect
// goes through setUnderline, which clears the whole family before setting
// the new bit. Clear-then-set, rather than toggling, is what keeps at most
// one underline bit alive regardless of call order.
type effectSet uint16

func (s effectSet) set(e Effect, on bool) effectSet {
	if !on {
		return s &^ e.mask()
	}
	if u, ok := underlineStyleForEffect(e); ok {
		return s.setUnderline(u)
	}
	return s | e.mask()
}

func (s effectSet) get(e Effect) bool {
	return s&e.mask() != 0
}

// setUnderline clears all five underline bits, then sets the one encoding u.
// UnderlineNone leaves the family empty.
func (s effectSet) setUnderline(u UnderlineStyle) effectSet {
	s = s.clearUnderline()
	if e, ok := u.Effect(); ok {
		s |= e.mask()
	}
	return s
}

func (s effectSet) clearUnderline() effectSet {
	for _, u := range AllUnderlineStyles() {
		e, _ := u.Effect()
		s &^= e.mask()
	}
	return s
}

// effects returns the active effects in declaration order.
func (s effectSet) effects() []Effect {
	var active []Effect
	for e := Effect(0); e < numEffects; e++ {
		if s.get(e) {
			active = append(active, e)
		}
	}
	return active
}
