package style

// Element is a style fragment that can be folded into a [Style] with
// [Style.Add] (or [Styled.Add]): an [Effect], an [UnderlineStyle], a
// [TargetedColor], or any [Color] kind. Bare colors fold in as the
// foreground color.
//
// The interface is sealed; only types in this package implement it.
type Element interface {
	// addTo folds the element into s, returning the updated style.
	addTo(s Style) Style
}
