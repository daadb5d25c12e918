package style

// Reset is the style that clears all styling. It is the empty style, so it
// compares equal to New() and to the Style zero value, and renders exactly
// "\x1b[0m".
var Reset = New()
