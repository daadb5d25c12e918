package style

import "testing"

func TestTargetedColorAccessors(t *testing.T) {
	tc := NewTargetedColor(Red, TargetForeground)
	if tc.Color() != Red.ToColor() {
		t.Errorf("Color() = %v, want canonical red", tc.Color())
	}
	if tc.Target() != TargetForeground {
		t.Errorf("Target() = %v, want foreground", tc.Target())
	}
}

func TestTargetedColorStyle(t *testing.T) {
	tests := []struct {
		name string
		tc   TargetedColor
		want Style
	}{
		{"fg", Red.ForFG(), New().Foreground(Red)},
		{"bg", Green.ForBG(), New().Background(Green)},
		{"underline", Blue.ForUnderline(), New().UnderlineColor(Blue)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tc.Style(); got != tt.want {
				t.Errorf("Style() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTargetedColorFoldPreservesFields(t *testing.T) {
	base := New().Bold().Foreground(Red)
	s := base.Add(Green.ForBG())
	if s.GetColor(TargetForeground) != Red.ToColor() {
		t.Error("folding a background color must not touch the foreground")
	}
	if !s.GetEffect(EffectBold) {
		t.Error("folding a color must not touch effects")
	}
	if s.GetColor(TargetBackground) != Green.ToColor() {
		t.Error("folded color missing")
	}
}

func TestTargetedColorString(t *testing.T) {
	if got := Indexed(42).ForUnderline().String(); got != "\x1b[58;5;42m" {
		t.Errorf("String() = %q, want %q", got, "\x1b[58;5;42m")
	}
}

func TestTargetExtendedCodes(t *testing.T) {
	tests := []struct {
		tgt  Target
		want uint8
	}{
		{TargetForeground, 38},
		{TargetBackground, 48},
		{TargetUnderline, 58},
	}
	for _, tt := range tests {
		if got := tt.tgt.extendedCode(); got != tt.want {
			t.Errorf("%v.extendedCode() = %d, want %d", tt.tgt, got, tt.want)
		}
	}
}
