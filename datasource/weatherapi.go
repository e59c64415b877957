package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Condition is the provider's condition sub-object. It is a pointer
// field everywhere it appears so its absence can be detected.
type Condition struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

// Location identifies the resolved place for a forecast
type Location struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Current holds the provider's current-conditions block
type Current struct {
	TempC      float64    `json:"temp_c"`
	FeelsLikeC float64    `json:"feelslike_c"`
	Humidity   int        `json:"humidity"`
	PressureMb float64    `json:"pressure_mb"`
	WindKph    float64    `json:"wind_kph"`
	WindDir    string     `json:"wind_dir"`
	Condition  *Condition `json:"condition"`
	IsDay      int        `json:"is_day"`
	UV         float64    `json:"uv"`
	VisKm      float64    `json:"vis_km"`
	Cloud      int        `json:"cloud"`
}

// Astro holds a day's sunrise and sunset as local time strings
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Day holds the provider's daily summary block. Temperature extremes
// are pointers so a missing field is distinguishable from zero.
type Day struct {
	MaxTempC          *float64   `json:"maxtemp_c"`
	MinTempC          *float64   `json:"mintemp_c"`
	AvgHumidity       float64    `json:"avghumidity"`
	MaxWindKph        float64    `json:"maxwind_kph"`
	DailyChanceOfRain int        `json:"daily_chance_of_rain"`
	UV                float64    `json:"uv"`
	Condition         *Condition `json:"condition"`
}

// Hour is a single hourly forecast record
type Hour struct {
	Time         string     `json:"time"` // local, "2006-01-02 15:04"
	TempC        float64    `json:"temp_c"`
	Condition    *Condition `json:"condition"`
	IsDay        int        `json:"is_day"`
	ChanceOfRain int        `json:"chance_of_rain"`
}

// ForecastDay is one provider day record with its hourly breakdown
type ForecastDay struct {
	Date  string `json:"date"`
	Day   *Day   `json:"day"`
	Astro *Astro `json:"astro"`
	Hour  []Hour `json:"hour"`
}

// ForecastResponse represents the API response structure
type ForecastResponse struct {
	Location *Location `json:"location"`
	Current  *Current  `json:"current"`
	Forecast struct {
		ForecastDay []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
	Error *apiError `json:"error"`
}

// apiError is the provider's in-body error envelope
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WeatherAPIClient fetches forecasts from WeatherAPI.com
type WeatherAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Ensure WeatherAPIClient implements ForecastSource
var _ ForecastSource = (*WeatherAPIClient)(nil)

// NewWeatherAPIClient creates a new WeatherAPI.com client
func NewWeatherAPIClient(apiKey string) *WeatherAPIClient {
	return &WeatherAPIClient{
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the provider name
func (c *WeatherAPIClient) Name() string {
	return "WeatherAPI"
}

// FetchForecast gets forecast data (current conditions included) for a
// location for the specified number of days
func (c *WeatherAPIClient) FetchForecast(ctx context.Context, location string, days int) (*ForecastResponse, error) {
	// The free tier is limited to 3 days
	if days > 3 {
		days = 3
	}

	// Build the URL
	endpoint := fmt.Sprintf("%s/forecast.json", c.baseURL)
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("q", location)
	params.Add("days", strconv.Itoa(days))
	params.Add("aqi", "no")
	params.Add("alerts", "no")

	// Create request
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"provider": c.Name(),
		"location": location,
		"days":     days,
	}).Debug("fetching forecast")

	// Execute request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	// The provider signals failures inside the body, so decode before
	// checking the status code to let its own message win.
	var decoded ForecastResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if decoded.Error != nil {
		return nil, &ProviderError{Code: decoded.Error.Code, Message: decoded.Error.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return &decoded, nil
}
