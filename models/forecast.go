package models

// HourlySlot represents a single entry in the hourly forecast strip
type HourlySlot struct {
	Time   string  `json:"time"` // "Now" for the first slot, else hour-of-day
	Temp   int     `json:"temp"` // in Celsius, rounded
	Icon   IconKey `json:"icon"`
	Precip int     `json:"pop"` // chance of rain, percentage
}

// ForecastDay represents the display-ready summary of one forecast day
type ForecastDay struct {
	Date        string  `json:"date"` // calendar date, "2006-01-02"
	Weekday     string  `json:"day"`  // e.g. "Wednesday"
	MaxTemp     int     `json:"max_temp"` // in Celsius, rounded
	MinTemp     int     `json:"min_temp"` // in Celsius, rounded
	Description string  `json:"description"`
	Icon        IconKey `json:"icon"`
	Precip      int     `json:"pop"`      // chance of rain, percentage
	Humidity    int     `json:"humidity"` // average, percentage
	WindSpeed   float64 `json:"wind_speed"` // in m/s
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
	UV          float64 `json:"uv"`
}
