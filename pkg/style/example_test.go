package style_test

import (
	"fmt"

	"github.com/matzehuels/tinge/pkg/style"
)

func ExampleStyle() {
	// Styles compose as value chains; nothing is mutated in place.
	warning := style.New().Bold().Foreground(style.Red)

	fmt.Printf("%q\n", warning.String())
	// Output:
	// "\x1b[1;31m"
}

func ExampleStyle_ordering() {
	// Rendering order is fixed (effects, then fg, bg, underline color)
	// no matter the order the pieces were added in.
	s := style.New().
		Background(style.Green).
		Underline().
		Foreground(style.Red)

	fmt.Printf("%q\n", s.String())
	// Output:
	// "\x1b[4;31;42m"
}

func ExampleApply() {
	// Wrap content in a style; the reset sequence is appended for you.
	fmt.Printf("%q\n", style.Apply(style.New().Bold(), "hi").String())

	// Unstyled content renders verbatim, with no escape codes at all.
	fmt.Printf("%q\n", style.NewStyled("hi").String())
	// Output:
	// "\x1b[1mhi\x1b[0m"
	// "hi"
}

func ExampleStyle_SetUnderlineStyle() {
	// Underline stroke styles are mutually exclusive: the last one wins.
	s := style.New().
		SetUnderlineStyle(style.UnderlineCurly).
		SetUnderlineStyle(style.UnderlineDotted)

	fmt.Println(s.GetUnderlineStyle())
	fmt.Println(s.GetEffect(style.EffectCurlyUnderline))
	// Output:
	// dotted
	// false
}
