// Package style builds ANSI SGR escape sequences from immutable,
// composable value objects.
//
// # Overview
//
// Every type in this package is a plain value: all operations return a new
// value and never mutate the receiver, so styles can be shared freely
// between goroutines and reused as building blocks.
//
// The building blocks are:
//
//   - Colors in three canonical representations: [SimpleColor] (the 16-color
//     palette, built from a [BasicColor] hue), [IndexedColor] (256-color
//     palette), and [RGBColor] (24-bit true color). All satisfy the sealed
//     [Color] interface.
//   - [Effect] values such as [EffectBold] or [EffectItalic], with the five
//     underline stroke variants forming the mutually exclusive
//     [UnderlineStyle] sub-family.
//   - [TargetedColor], a color paired with the [Target] channel it paints
//     (foreground, background, or underline).
//   - [Style], the aggregate of active effects plus up to three targeted
//     colors. Its zero value is the empty style and renders the full reset
//     sequence "\x1b[0m" (also available as [Reset]).
//   - [Styled], which pairs arbitrary content with a Style and renders the
//     start sequence, the content, and the reset sequence.
//
// # Quick start
//
//	warning := style.New().Bold().Foreground(style.Red)
//	fmt.Println(style.Apply(warning, "disk almost full"))
//
//	link := style.New().
//		Foreground(style.RGB(95, 175, 255)).
//		SetUnderlineStyle(style.UnderlineCurly).
//		UnderlineColor(style.Indexed(27))
//	fmt.Printf("%s%s%s\n", link, "https://example.com", style.Reset)
//
// # Rendering contract
//
// A Style renders as "\x1b[<params>m". Parameters are emitted in a fixed
// order: active effects in declaration order, then the foreground,
// background, and underline colors. The empty style renders "\x1b[0m".
// Setting any underline stroke style atomically clears the previously
// active one; at most one is ever encoded.
//
// The package only produces text. It never inspects terminal capabilities
// and never reads or writes a terminal device.
package style
