package presenter

import (
	"math"

	"weatherly/models"
)

// DisplayTemp converts a canonical Celsius value to the user's display
// unit. Rounding is half away from zero.
func DisplayTemp(celsius float64, unit models.Unit) int {
	if unit == models.UnitFahrenheit {
		return int(math.Round(celsius*9/5 + 32))
	}
	return int(math.Round(celsius))
}

// UnitSymbol returns the display symbol for a temperature unit
func UnitSymbol(unit models.Unit) string {
	if unit == models.UnitFahrenheit {
		return "°F"
	}
	return "°C"
}
