package style

import "testing"

func TestStyledUnstyledRendersVerbatim(t *testing.T) {
	if got := NewStyled("hi").String(); got != "hi" {
		t.Errorf("unstyled render = %q, want %q", got, "hi")
	}
	// No redundant reset around unstyled content.
	if got := Apply(New(), "x").String(); got != "x" {
		t.Errorf("empty-style render = %q, want %q", got, "x")
	}
}

func TestStyledRendering(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"bold", NewStyled("hi").Bold().String(), "\x1b[1mhi\x1b[0m"},
		{"apply", Apply(New().Bold().Foreground(Red), "err").String(), "\x1b[1;31merr\x1b[0m"},
		{"int content", NewStyled(42).Foreground(Green).String(), "\x1b[32m42\x1b[0m"},
		{"full reset regardless of fields", Apply(New().Background(Blue), "x").String(), "\x1b[44mx\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("rendered %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestStyledContentAndStyle(t *testing.T) {
	s := NewStyled("hello").Bold()
	if s.Content() != "hello" {
		t.Errorf("Content() = %q", s.Content())
	}
	if s.Style() != New().Bold() {
		t.Errorf("Style() = %q, want bold", s.Style())
	}

	swapped := s.WithContent("bye")
	if swapped.Content() != "bye" || swapped.Style() != New().Bold() {
		t.Error("WithContent must swap content and keep the style")
	}
	if s.Content() != "hello" {
		t.Error("WithContent mutated its receiver")
	}

	restyled := s.WithStyle(New().Italic())
	if restyled.Content() != "hello" || restyled.Style() != New().Italic() {
		t.Error("WithStyle must swap the style and keep the content")
	}
}

func TestStyledDelegation(t *testing.T) {
	s := NewStyled("x").
		SetEffect(EffectBold, true).
		SetUnderlineStyle(UnderlineCurly).
		SetColor(TargetForeground, Red)

	if !s.GetEffect(EffectBold) {
		t.Error("bold should be set")
	}
	if got := s.GetUnderlineStyle(); got != UnderlineCurly {
		t.Errorf("GetUnderlineStyle() = %v, want curly", got)
	}
	if got := s.GetColor(TargetForeground); got != Red.ToColor() {
		t.Errorf("GetColor = %v, want red", got)
	}

	want := New().Bold().CurlyUnderline().Foreground(Red)
	if s.Style() != want {
		t.Errorf("delegated style = %q, want %q", s.Style(), want)
	}

	// The styled value mirrors the underline exclusivity too.
	if got := s.DottedUnderline().GetUnderlineStyle(); got != UnderlineDotted {
		t.Errorf("after DottedUnderline: %v, want dotted", got)
	}
}

func TestStyledGenericSetGetUnset(t *testing.T) {
	s := NewStyled("x").Set(EffectItalic, true).Set(TargetBackground, Color(Green))
	if got := s.Get(EffectItalic); got != true {
		t.Errorf("Get(EffectItalic) = %v, want true", got)
	}
	if got := s.Get(TargetBackground); got != Green.ToColor() {
		t.Errorf("Get(TargetBackground) = %v, want green", got)
	}
	cleared := s.Unset(EffectItalic).Unset(TargetBackground)
	if cleared.Style() != New() {
		t.Error("unset should restore the empty style")
	}
	if cleared.String() != "x" {
		t.Error("fully cleared styled value should render verbatim")
	}
}

func TestStyledAddAndFluent(t *testing.T) {
	byAdd := NewStyled("x").Add(EffectBold).Add(Red.ForFG())
	byFluent := NewStyled("x").Bold().Foreground(Red)
	if byAdd != byFluent {
		t.Errorf("Add-built %q differs from fluent-built %q", byAdd, byFluent)
	}
	if byAdd.WithColor(Green.ForBG()).Style() != New().Bold().Foreground(Red).Background(Green) {
		t.Error("WithColor should set the targeted color")
	}
}
