package models

// ThemeGradient is an ordered sequence of background color stops,
// top of the screen first.
type ThemeGradient []string
