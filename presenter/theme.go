package presenter

import "weatherly/models"

// Background gradient palettes, top of the screen first.
var (
	nightGradient      = models.ThemeGradient{"#0F2027", "#203A43", "#2C5364"}
	severeHeatGradient = models.ThemeGradient{"#FF6B35", "#FF3B30", "#C62828"}
	hotGradient        = models.ThemeGradient{"#FF9500", "#FF5E3A", "#FF2D55"}
	warmGradient       = models.ThemeGradient{"#4CD964", "#5AC8FA", "#007AFF"}
	coolGradient       = models.ThemeGradient{"#5AC8FA", "#007AFF", "#5856D6"}
	freezingGradient   = models.ThemeGradient{"#667DB6", "#0082C8", "#00B4DB"}
)

// SelectGradient picks the background gradient for the given
// temperature and time of day. Night always wins regardless of
// temperature. The brackets use strict comparisons: a reading of
// exactly 35 is not severe heat, exactly 30 is not hot, and so on
// down the chain.
func SelectGradient(tempCelsius float64, isDay bool) models.ThemeGradient {
	if !isDay {
		return nightGradient
	}
	switch {
	case tempCelsius > 35:
		return severeHeatGradient
	case tempCelsius > 30:
		return hotGradient
	case tempCelsius > 20:
		return warmGradient
	case tempCelsius > 10:
		return coolGradient
	default:
		return freezingGradient
	}
}
