package style

import "testing"

func TestUnderlineStyleEffectRoundTrip(t *testing.T) {
	tests := []struct {
		u UnderlineStyle
		e Effect
	}{
		{UnderlineSolid, EffectUnderline},
		{UnderlineCurly, EffectCurlyUnderline},
		{UnderlineDotted, EffectDottedUnderline},
		{UnderlineDashed, EffectDashedUnderline},
		{UnderlineDouble, EffectDoubleUnderline},
	}
	for _, tt := range tests {
		e, ok := tt.u.Effect()
		if !ok || e != tt.e {
			t.Errorf("%v.Effect() = %v, %v; want %v, true", tt.u, e, ok, tt.e)
		}
		u, ok := underlineStyleForEffect(tt.e)
		if !ok || u != tt.u {
			t.Errorf("underlineStyleForEffect(%v) = %v, %v; want %v, true", tt.e, u, ok, tt.u)
		}
	}

	if _, ok := UnderlineNone.Effect(); ok {
		t.Error("UnderlineNone must have no effect representation")
	}
	if _, ok := underlineStyleForEffect(EffectBold); ok {
		t.Error("bold is not an underline effect")
	}
}

func TestAllUnderlineStylesOrder(t *testing.T) {
	want := []UnderlineStyle{
		UnderlineSolid, UnderlineCurly, UnderlineDotted,
		UnderlineDashed, UnderlineDouble,
	}
	got := AllUnderlineStyles()
	if len(got) != len(want) {
		t.Fatalf("AllUnderlineStyles() has %d members, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllUnderlineStyles()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnderlineStyleEquivalentToEffect(t *testing.T) {
	// Adding an underline style and adding its effect produce the same style.
	for _, u := range AllUnderlineStyles() {
		e, _ := u.Effect()
		if New().Add(u) != New().Add(e) {
			t.Errorf("Add(%v) and Add(%v) disagree", u, e)
		}
	}
}

func TestUnderlineStyleStyle(t *testing.T) {
	tests := []struct {
		u    UnderlineStyle
		want string
	}{
		{UnderlineSolid, "\x1b[4m"},
		{UnderlineCurly, "\x1b[4:3m"},
		{UnderlineDotted, "\x1b[4:4m"},
		{UnderlineDashed, "\x1b[4:5m"},
		{UnderlineDouble, "\x1b[21m"},
		{UnderlineNone, "\x1b[0m"},
	}
	for _, tt := range tests {
		if got := tt.u.Style().String(); got != tt.want {
			t.Errorf("%v.Style() renders %q, want %q", tt.u, got, tt.want)
		}
	}
}
