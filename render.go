package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weatherly/models"
	"weatherly/presenter"
	"weatherly/settings"
)

var titleCaser = cases.Title(language.English)

// renderCurrent writes the main weather view: hero section, stats,
// hourly strip, and the 3-day forecast
func renderCurrent(w io.Writer, current models.CurrentConditions, hourly []models.HourlySlot, forecast []models.ForecastDay, theme models.ThemeGradient, prefs settings.Preferences) {
	unit := prefs.TemperatureUnit
	symbol := presenter.UnitSymbol(unit)

	writeGradientBar(w, theme)

	header := fmt.Sprintf("%s, %s", current.Location, current.Country)
	fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("-", len(header)))

	glyph := presenter.IconGlyph(current.Icon)
	fmt.Fprintf(w, "[%s] %d%s  %s\n", glyph.Name, presenter.DisplayTemp(float64(current.Temperature), unit), symbol, titleCaser.String(current.Description))
	fmt.Fprintf(w, "Feels like %d%s\n", presenter.DisplayTemp(float64(current.FeelsLike), unit), symbol)
	if len(forecast) > 0 {
		fmt.Fprintf(w, "High %d%s / Low %d%s\n",
			presenter.DisplayTemp(float64(forecast[0].MaxTemp), unit), symbol,
			presenter.DisplayTemp(float64(forecast[0].MinTemp), unit), symbol)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Weather Details")
	fmt.Fprintf(w, "  Humidity:    %d%%\n", current.Humidity)
	fmt.Fprintf(w, "  Pressure:    %.0f hPa\n", current.Pressure)
	fmt.Fprintf(w, "  Wind:        %.1f m/s %s\n", current.WindSpeed, current.WindDir)
	fmt.Fprintf(w, "  Visibility:  %.1f km\n", current.Visibility)
	fmt.Fprintf(w, "  UV Index:    %.1f\n", current.UV)
	fmt.Fprintf(w, "  Cloud Cover: %d%%\n", current.CloudCover)
	fmt.Fprintf(w, "  Sunrise:     %s   Sunset: %s\n", current.Sunrise, current.Sunset)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Hourly Forecast")
	for _, slot := range hourly {
		line := fmt.Sprintf("  %-5s %3d%s  %-13s", slot.Time, presenter.DisplayTemp(float64(slot.Temp), unit), symbol, presenter.IconGlyph(slot.Icon).Name)
		if slot.Precip > 0 {
			line += fmt.Sprintf(" rain %d%%", slot.Precip)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%d-Day Forecast\n", len(forecast))
	for i, day := range forecast {
		name := shortWeekday(day.Weekday)
		if i == 0 {
			name = "Today"
		}
		line := fmt.Sprintf("  %-6s %-25s %3d%s / %3d%s", name,
			titleCaser.String(day.Description),
			presenter.DisplayTemp(float64(day.MaxTemp), unit), symbol,
			presenter.DisplayTemp(float64(day.MinTemp), unit), symbol)
		// The pop badge only shows when rain is actually likely
		if day.Precip > 20 {
			line += fmt.Sprintf("  rain %d%%", day.Precip)
		}
		fmt.Fprintln(w, line)
	}
}

// renderForecast writes the detailed per-day view
func renderForecast(w io.Writer, days []dayDetail, prefs settings.Preferences) {
	unit := prefs.TemperatureUnit
	symbol := presenter.UnitSymbol(unit)

	for i, day := range days {
		name := day.Weekday
		if i == 0 {
			name = "Today"
		}
		header := fmt.Sprintf("%s, %s", name, day.Date)
		fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("-", len(header)))
		fmt.Fprintf(w, "%s. High %d%s / Low %d%s.\n",
			titleCaser.String(day.Description),
			presenter.DisplayTemp(float64(day.MaxTemp), unit), symbol,
			presenter.DisplayTemp(float64(day.MinTemp), unit), symbol)
		fmt.Fprintf(w, "Rain chance %d%%. Humidity %d%%. Wind %.1f m/s. UV %.1f.\n", day.Precip, day.Humidity, day.WindSpeed, day.UV)
		fmt.Fprintf(w, "Sunrise %s. Sunset %s.\n", day.Sunrise, day.Sunset)
		for _, slot := range day.Hours {
			fmt.Fprintf(w, "  %-5s %3d%s  %s\n", slot.Time, presenter.DisplayTemp(float64(slot.Temp), unit), symbol, presenter.IconGlyph(slot.Icon).Name)
		}
		fmt.Fprintln(w)
	}
}

// renderPreferences writes the settings view
func renderPreferences(w io.Writer, prefs settings.Preferences) {
	fmt.Fprintf(w, "Temperature unit: %s (%s)\n", prefs.TemperatureUnit, presenter.UnitSymbol(prefs.TemperatureUnit))
	fmt.Fprintf(w, "Default city:     %s\n", prefs.DefaultCity)
	fmt.Fprintf(w, "Theme mode:       %s\n", prefs.ThemeMode)
	fmt.Fprintf(w, "Notifications:    %t\n", prefs.Notifications)
	fmt.Fprintf(w, "Weather alerts:   %t\n", prefs.WeatherAlerts)
	fmt.Fprintf(w, "Auto refresh:     %t\n", prefs.AutoRefresh)
}

// writeGradientBar paints the selected background gradient as a strip
// of truecolor blocks
func writeGradientBar(w io.Writer, theme models.ThemeGradient) {
	var b strings.Builder
	for _, stop := range theme {
		r, g, bl, ok := hexRGB(stop)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm        ", r, g, bl)
	}
	if b.Len() == 0 {
		return
	}
	b.WriteString("\x1b[0m")
	fmt.Fprintln(w, b.String())
	fmt.Fprintln(w)
}

func hexRGB(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

func shortWeekday(weekday string) string {
	if len(weekday) < 3 {
		return weekday
	}
	return weekday[:3]
}
