package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"weatherly/datasource"
	"weatherly/models"
	"weatherly/presenter"
	"weatherly/settings"
)

var (
	jsonOutput bool
	verbose    bool
)

// Execute builds the command tree and runs it
func Execute() {
	// Root command: current conditions, the hourly window, and the
	// 3-day strip for the default or given city
	rootCmd := &cobra.Command{
		Use:   "weatherly [city]",
		Short: "Weather in your terminal",
		Long:  `Weatherly fetches current conditions, the next 24 hours, and a 3-day forecast for a city from WeatherAPI.com.`,
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE:          runCurrent,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of text")

	// Forecast command: the detailed per-day view
	forecastCmd := &cobra.Command{
		Use:   "forecast [city]",
		Short: "Detailed multi-day forecast",
		Long:  `Show the per-day forecast with sunrise, sunset, UV index, and a three-hourly breakdown.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runForecast,
	}
	rootCmd.AddCommand(forecastCmd)

	// Settings commands
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage user preferences",
		Long:  `Show or change the persisted preferences: temperature unit, default city, and theme mode.`,
	}
	rootCmd.AddCommand(settingsCmd)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		RunE:  runSettingsShow,
	}
	settingsCmd.AddCommand(showCmd)

	var unitFlag, cityFlag, themeFlag string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsSet(cmd, unitFlag, cityFlag, themeFlag)
		},
	}
	setCmd.Flags().StringVar(&unitFlag, "unit", "", "temperature unit (celsius or fahrenheit)")
	setCmd.Flags().StringVar(&cityFlag, "city", "", "default city")
	setCmd.Flags().StringVar(&themeFlag, "theme", "", "theme mode (dark, light, or system)")
	settingsCmd.AddCommand(setCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore opens the per-user settings database
func openStore() (settings.Store, error) {
	path, err := settings.DefaultPath()
	if err != nil {
		return nil, err
	}
	return settings.NewSQLite(path)
}

// loadPreferences returns the persisted preferences, falling back to
// the defaults when the store is unavailable
func loadPreferences() settings.Preferences {
	store, err := openStore()
	if err != nil {
		logrus.WithError(err).Warn("settings store unavailable, using defaults")
		return settings.DefaultPreferences()
	}
	defer store.Close()

	prefs, err := store.Load()
	if err != nil {
		logrus.WithError(err).Warn("failed to load settings, using defaults")
	}
	return prefs
}

// newSource creates the forecast source from the environment
func newSource() (datasource.ForecastSource, error) {
	apiKey := os.Getenv("WEATHER_API_KEY")
	if apiKey == "" {
		return nil, errors.New("WEATHER_API_KEY is not set")
	}

	client := datasource.NewWeatherAPIClient(apiKey)
	// WeatherAPI free tier allows roughly 23 calls/minute
	return datasource.NewRateLimitedForecastSource(client, 0.4, 3), nil
}

// fetch performs a single forecast fetch for a city
func fetch(city string) (*datasource.ForecastResponse, error) {
	source, err := newSource()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := source.FetchForecast(ctx, city, 3)
	if err != nil {
		return nil, userFacingError(err)
	}
	return resp, nil
}

// userFacingError maps the error taxonomy to what the user should
// see: provider messages verbatim, everything else as a generic
// failure with a manual re-run as the retry affordance.
func userFacingError(err error) error {
	var provErr *datasource.ProviderError
	if errors.As(err, &provErr) {
		return errors.New(provErr.Message)
	}
	var malformed *datasource.MalformedResponseError
	if errors.As(err, &malformed) {
		logrus.WithError(err).Debug("malformed provider response")
		return errors.New("failed to load weather data, try again")
	}
	var netErr *datasource.NetworkError
	if errors.As(err, &netErr) {
		logrus.WithError(err).Debug("transport failure")
		return errors.New("could not reach the weather service, try again")
	}
	return err
}

func cityArg(args []string, prefs settings.Preferences) string {
	if len(args) > 0 {
		return args[0]
	}
	return prefs.DefaultCity
}

// currentPayload is the JSON shape of the main view
type currentPayload struct {
	Current  models.CurrentConditions `json:"current"`
	Hourly   []models.HourlySlot      `json:"hourly"`
	Forecast []models.ForecastDay     `json:"forecast"`
	Theme    models.ThemeGradient     `json:"theme"`
}

func runCurrent(cmd *cobra.Command, args []string) error {
	prefs := loadPreferences()
	city := cityArg(args, prefs)

	resp, err := fetch(city)
	if err != nil {
		return err
	}

	current, err := presenter.CurrentFrom(resp)
	if err != nil {
		return userFacingError(err)
	}

	days := resp.Forecast.ForecastDay
	var tomorrow []datasource.Hour
	if len(days) > 1 {
		tomorrow = days[1].Hour
	}
	window, err := presenter.SelectWindow(days[0].Hour, tomorrow, time.Now().Hour())
	if err != nil {
		return userFacingError(err)
	}

	forecast := make([]models.ForecastDay, 0, len(days))
	for _, d := range days {
		day, err := presenter.NormalizeDay(d)
		if err != nil {
			return userFacingError(err)
		}
		forecast = append(forecast, day)
	}

	theme := presenter.SelectGradient(float64(current.Temperature), current.IsDay)

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), currentPayload{
			Current:  current,
			Hourly:   window,
			Forecast: forecast,
			Theme:    theme,
		})
	}
	renderCurrent(cmd.OutOrStdout(), current, window, forecast, theme, prefs)
	return nil
}

// dayDetail pairs a normalized day with its three-hourly breakdown
type dayDetail struct {
	models.ForecastDay
	Hours []models.HourlySlot `json:"hours"`
}

func runForecast(cmd *cobra.Command, args []string) error {
	prefs := loadPreferences()
	city := cityArg(args, prefs)

	resp, err := fetch(city)
	if err != nil {
		return err
	}

	details := make([]dayDetail, 0, len(resp.Forecast.ForecastDay))
	for _, d := range resp.Forecast.ForecastDay {
		day, err := presenter.NormalizeDay(d)
		if err != nil {
			return userFacingError(err)
		}
		hours, err := presenter.ThreeHourly(d.Hour)
		if err != nil {
			return userFacingError(err)
		}
		details = append(details, dayDetail{ForecastDay: day, Hours: hours})
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), details)
	}
	renderForecast(cmd.OutOrStdout(), details, prefs)
	return nil
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	prefs := loadPreferences()
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), prefs)
	}
	renderPreferences(cmd.OutOrStdout(), prefs)
	return nil
}

func runSettingsSet(cmd *cobra.Command, unitFlag, cityFlag, themeFlag string) error {
	if unitFlag == "" && cityFlag == "" && themeFlag == "" {
		return errors.New("nothing to change: pass --unit, --city, or --theme")
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("settings store unavailable: %w", err)
	}
	defer store.Close()

	prefs, err := store.Load()
	if err != nil {
		logrus.WithError(err).Warn("failed to load settings, starting from defaults")
	}

	if unitFlag != "" {
		unit, err := parseUnit(unitFlag)
		if err != nil {
			return err
		}
		prefs.TemperatureUnit = unit
	}
	if cityFlag != "" {
		prefs.DefaultCity = cityFlag
	}
	if themeFlag != "" {
		theme, err := parseTheme(themeFlag)
		if err != nil {
			return err
		}
		prefs.ThemeMode = theme
	}

	if err := store.Save(prefs); err != nil {
		return err
	}
	renderPreferences(cmd.OutOrStdout(), prefs)
	return nil
}

func parseUnit(s string) (models.Unit, error) {
	switch strings.ToLower(s) {
	case "c", "celsius":
		return models.UnitCelsius, nil
	case "f", "fahrenheit":
		return models.UnitFahrenheit, nil
	}
	return "", fmt.Errorf("unknown unit %q (use celsius or fahrenheit)", s)
}

func parseTheme(s string) (settings.ThemeMode, error) {
	switch strings.ToLower(s) {
	case "dark":
		return settings.ThemeDark, nil
	case "light":
		return settings.ThemeLight, nil
	case "system":
		return settings.ThemeSystem, nil
	}
	return "", fmt.Errorf("unknown theme %q (use dark, light, or system)", s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
