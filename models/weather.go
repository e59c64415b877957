package models

// IconKey identifies a weather visual state, decoupled from the
// provider's numeric condition codes.
type IconKey string

// Unit is the user's temperature display unit.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// CurrentConditions represents the display-ready current weather for a location
type CurrentConditions struct {
	Location      string  `json:"location"`
	Country       string  `json:"country"`
	Temperature   int     `json:"temperature"` // in Celsius, rounded
	FeelsLike     int     `json:"feels_like"`  // in Celsius, rounded
	Humidity      int     `json:"humidity"`    // percentage
	Pressure      float64 `json:"pressure"`    // in hPa
	WindSpeed     float64 `json:"wind_speed"`  // in m/s
	WindDir       string  `json:"wind_dir"`    // compass label
	Description   string  `json:"description"` // short text description
	Icon          IconKey `json:"icon"`
	ConditionCode int     `json:"condition_code"`
	IsDay         bool    `json:"is_day"`
	Sunrise       string  `json:"sunrise"` // local time, e.g. "06:47 AM"
	Sunset        string  `json:"sunset"`
	UV            float64 `json:"uv"`
	Visibility    float64 `json:"vis_km"` // in km
	CloudCover    int     `json:"cloud"`  // percentage
}
