// Package settings owns the user preferences that parameterize the
// display layer and persists them between runs.
package settings

import "weatherly/models"

// ThemeMode selects the UI theme.
type ThemeMode string

const (
	ThemeDark   ThemeMode = "dark"
	ThemeLight  ThemeMode = "light"
	ThemeSystem ThemeMode = "system"
)

// Preferences are the user settings persisted between runs
type Preferences struct {
	ThemeMode       ThemeMode   `json:"themeMode"`
	TemperatureUnit models.Unit `json:"temperatureUnit"`
	DefaultCity     string      `json:"defaultCity"`
	Notifications   bool        `json:"notifications"`
	WeatherAlerts   bool        `json:"weatherAlerts"`
	AutoRefresh     bool        `json:"autoRefresh"`
}

// DefaultPreferences returns the out-of-the-box settings
func DefaultPreferences() Preferences {
	return Preferences{
		ThemeMode:       ThemeDark,
		TemperatureUnit: models.UnitCelsius,
		DefaultCity:     "Meerut",
		Notifications:   true,
		WeatherAlerts:   true,
		AutoRefresh:     true,
	}
}

// DarkMode reports whether the dark theme is active. The system mode
// currently resolves to dark.
func (p Preferences) DarkMode() bool {
	return p.ThemeMode == ThemeDark || p.ThemeMode == ThemeSystem
}
