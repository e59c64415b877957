package presenter

import (
	"math"
	"time"

	"weatherly/datasource"
	"weatherly/models"
)

// CurrentFrom builds the current-conditions view model from a forecast
// response. The first forecast day supplies sunrise and sunset.
// Presence of the required sub-objects is checked up front so callers
// never see a partially populated record.
func CurrentFrom(resp *datasource.ForecastResponse) (models.CurrentConditions, error) {
	if resp.Location == nil {
		return models.CurrentConditions{}, &datasource.MalformedResponseError{Field: "location"}
	}
	cur := resp.Current
	if cur == nil {
		return models.CurrentConditions{}, &datasource.MalformedResponseError{Field: "current"}
	}
	if cur.Condition == nil || cur.Condition.Text == "" {
		return models.CurrentConditions{}, &datasource.MalformedResponseError{Field: "current.condition"}
	}
	if len(resp.Forecast.ForecastDay) == 0 {
		return models.CurrentConditions{}, &datasource.MalformedResponseError{Field: "forecast.forecastday"}
	}
	astro := resp.Forecast.ForecastDay[0].Astro
	if astro == nil || astro.Sunrise == "" || astro.Sunset == "" {
		return models.CurrentConditions{}, &datasource.MalformedResponseError{Field: "astro"}
	}

	isDay := cur.IsDay == 1
	return models.CurrentConditions{
		Location:      resp.Location.Name,
		Country:       resp.Location.Country,
		Temperature:   int(math.Round(cur.TempC)),
		FeelsLike:     int(math.Round(cur.FeelsLikeC)),
		Humidity:      cur.Humidity,
		Pressure:      cur.PressureMb,
		WindSpeed:     cur.WindKph / 3.6, // provider reports km/h
		WindDir:       cur.WindDir,
		Description:   cur.Condition.Text,
		Icon:          MapConditionIcon(cur.Condition.Code, isDay),
		ConditionCode: cur.Condition.Code,
		IsDay:         isDay,
		Sunrise:       astro.Sunrise,
		Sunset:        astro.Sunset,
		UV:            cur.UV,
		Visibility:    cur.VisKm,
		CloudCover:    cur.Cloud,
	}, nil
}

// NormalizeDay converts one provider day record into a display-ready
// summary
func NormalizeDay(raw datasource.ForecastDay) (models.ForecastDay, error) {
	day := raw.Day
	if day == nil {
		return models.ForecastDay{}, &datasource.MalformedResponseError{Field: "day"}
	}
	if day.Condition == nil || day.Condition.Text == "" {
		return models.ForecastDay{}, &datasource.MalformedResponseError{Field: "day.condition"}
	}
	if day.MaxTempC == nil {
		return models.ForecastDay{}, &datasource.MalformedResponseError{Field: "day.maxtemp_c"}
	}
	if day.MinTempC == nil {
		return models.ForecastDay{}, &datasource.MalformedResponseError{Field: "day.mintemp_c"}
	}
	if raw.Astro == nil || raw.Astro.Sunrise == "" {
		return models.ForecastDay{}, &datasource.MalformedResponseError{Field: "astro.sunrise"}
	}
	if raw.Astro.Sunset == "" {
		return models.ForecastDay{}, &datasource.MalformedResponseError{Field: "astro.sunset"}
	}

	// The date is a date-only string. Parsing it without a zone keeps
	// the weekday label from shifting across a day boundary.
	date, err := time.Parse("2006-01-02", raw.Date)
	if err != nil {
		return models.ForecastDay{}, &datasource.MalformedResponseError{Field: "date"}
	}

	return models.ForecastDay{
		Date:        raw.Date,
		Weekday:     date.Format("Monday"),
		MaxTemp:     int(math.Round(*day.MaxTempC)),
		MinTemp:     int(math.Round(*day.MinTempC)),
		Description: day.Condition.Text,
		// Daily summaries always use the day variant of the icon
		Icon:      MapConditionIcon(day.Condition.Code, true),
		Precip:    day.DailyChanceOfRain,
		Humidity:  int(math.Round(day.AvgHumidity)),
		WindSpeed: day.MaxWindKph / 3.6,
		Sunrise:   raw.Astro.Sunrise,
		Sunset:    raw.Astro.Sunset,
		UV:        day.UV,
	}, nil
}

// NormalizeHour converts one provider hour record into an hourly slot
func NormalizeHour(raw datasource.Hour) (models.HourlySlot, error) {
	if raw.Condition == nil {
		return models.HourlySlot{}, &datasource.MalformedResponseError{Field: "hour.condition"}
	}
	label, err := hourLabel(raw.Time)
	if err != nil {
		return models.HourlySlot{}, &datasource.MalformedResponseError{Field: "hour.time"}
	}
	return models.HourlySlot{
		Time:   label,
		Temp:   int(math.Round(raw.TempC)),
		Icon:   MapConditionIcon(raw.Condition.Code, raw.IsDay == 1),
		Precip: raw.ChanceOfRain,
	}, nil
}

// hourLabel formats the provider's local time string as an hour-of-day
// label such as "5 PM".
func hourLabel(s string) (string, error) {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		return "", err
	}
	return t.Format("3 PM"), nil
}
