package presenter

import (
	"errors"
	"reflect"
	"testing"

	"weatherly/datasource"
	"weatherly/models"
)

func float64p(v float64) *float64 { return &v }

// sampleDay builds a complete provider day record
func sampleDay() datasource.ForecastDay {
	return datasource.ForecastDay{
		Date: "2025-01-15",
		Day: &datasource.Day{
			MaxTempC:          float64p(21.6),
			MinTempC:          float64p(11.4),
			AvgHumidity:       64.5,
			MaxWindKph:        18,
			DailyChanceOfRain: 40,
			UV:                5,
			Condition:         &datasource.Condition{Text: "Patchy rain possible", Code: 1063},
		},
		Astro: &datasource.Astro{Sunrise: "07:12 AM", Sunset: "05:43 PM"},
	}
}

func TestNormalizeDay(t *testing.T) {
	day, err := NormalizeDay(sampleDay())
	if err != nil {
		t.Fatalf("NormalizeDay failed: %v", err)
	}

	want := models.ForecastDay{
		Date:        "2025-01-15",
		Weekday:     "Wednesday",
		MaxTemp:     22,
		MinTemp:     11,
		Description: "Patchy rain possible",
		Icon:        IconLightRain,
		Precip:      40,
		Humidity:    65,
		WindSpeed:   18 / 3.6,
		Sunrise:     "07:12 AM",
		Sunset:      "05:43 PM",
		UV:          5,
	}
	if !reflect.DeepEqual(day, want) {
		t.Errorf("NormalizeDay = %+v, want %+v", day, want)
	}
}

func TestNormalizeDayIsIdempotent(t *testing.T) {
	raw := sampleDay()
	first, err := NormalizeDay(raw)
	if err != nil {
		t.Fatalf("first NormalizeDay failed: %v", err)
	}
	second, err := NormalizeDay(raw)
	if err != nil {
		t.Fatalf("second NormalizeDay failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated normalization differs: %+v vs %+v", first, second)
	}
}

func TestNormalizeDayMissingFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*datasource.ForecastDay)
	}{
		{"no day block", func(d *datasource.ForecastDay) { d.Day = nil }},
		{"no condition", func(d *datasource.ForecastDay) { d.Day.Condition = nil }},
		{"empty condition text", func(d *datasource.ForecastDay) { d.Day.Condition.Text = "" }},
		{"no max temperature", func(d *datasource.ForecastDay) { d.Day.MaxTempC = nil }},
		{"no min temperature", func(d *datasource.ForecastDay) { d.Day.MinTempC = nil }},
		{"no astro block", func(d *datasource.ForecastDay) { d.Astro = nil }},
		{"empty sunrise", func(d *datasource.ForecastDay) { d.Astro.Sunrise = "" }},
		{"empty sunset", func(d *datasource.ForecastDay) { d.Astro.Sunset = "" }},
		{"garbage date", func(d *datasource.ForecastDay) { d.Date = "mid-january" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := sampleDay()
			tc.mutate(&raw)

			_, err := NormalizeDay(raw)
			var malformed *datasource.MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedResponseError, got %v", err)
			}
		})
	}
}

func TestNormalizeHour(t *testing.T) {
	raw := datasource.Hour{
		Time:         "2025-01-15 17:00",
		TempC:        18.5,
		Condition:    &datasource.Condition{Text: "Clear", Code: 1000},
		IsDay:        0,
		ChanceOfRain: 10,
	}

	slot, err := NormalizeHour(raw)
	if err != nil {
		t.Fatalf("NormalizeHour failed: %v", err)
	}

	if slot.Time != "5 PM" {
		t.Errorf("label = %q, want 5 PM", slot.Time)
	}
	if slot.Temp != 19 {
		t.Errorf("temp = %d, want 19", slot.Temp)
	}
	if slot.Icon != IconClearNight {
		t.Errorf("icon = %q, want %q (is_day=0)", slot.Icon, IconClearNight)
	}
	if slot.Precip != 10 {
		t.Errorf("precip = %d, want 10", slot.Precip)
	}
}

func TestNormalizeHourMissingCondition(t *testing.T) {
	raw := datasource.Hour{Time: "2025-01-15 17:00", TempC: 18.5}

	_, err := NormalizeHour(raw)
	var malformed *datasource.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func sampleResponse() *datasource.ForecastResponse {
	resp := &datasource.ForecastResponse{
		Location: &datasource.Location{Name: "Meerut", Country: "India"},
		Current: &datasource.Current{
			TempC:      28.4,
			FeelsLikeC: 30.2,
			Humidity:   58,
			PressureMb: 1012,
			WindKph:    14.4,
			WindDir:    "NW",
			Condition:  &datasource.Condition{Text: "Partly cloudy", Code: 1003},
			IsDay:      1,
			UV:         6,
			VisKm:      10,
			Cloud:      25,
		},
	}
	resp.Forecast.ForecastDay = []datasource.ForecastDay{sampleDay()}
	return resp
}

func TestCurrentFrom(t *testing.T) {
	current, err := CurrentFrom(sampleResponse())
	if err != nil {
		t.Fatalf("CurrentFrom failed: %v", err)
	}

	if current.Location != "Meerut" || current.Country != "India" {
		t.Errorf("location = %s, %s", current.Location, current.Country)
	}
	if current.Temperature != 28 {
		t.Errorf("temperature = %d, want 28", current.Temperature)
	}
	if current.FeelsLike != 30 {
		t.Errorf("feels like = %d, want 30", current.FeelsLike)
	}
	if current.WindSpeed != 14.4/3.6 {
		t.Errorf("wind speed = %v m/s, want 4 (14.4 km/h)", current.WindSpeed)
	}
	if current.Icon != IconPartlyCloudyDay {
		t.Errorf("icon = %q, want %q", current.Icon, IconPartlyCloudyDay)
	}
	if current.ConditionCode != 1003 {
		t.Errorf("condition code = %d, want 1003", current.ConditionCode)
	}
	if !current.IsDay {
		t.Error("expected IsDay true")
	}
	if current.Sunrise != "07:12 AM" || current.Sunset != "05:43 PM" {
		t.Errorf("sun times = %s / %s", current.Sunrise, current.Sunset)
	}
}

func TestCurrentFromMissingFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*datasource.ForecastResponse)
	}{
		{"no location", func(r *datasource.ForecastResponse) { r.Location = nil }},
		{"no current block", func(r *datasource.ForecastResponse) { r.Current = nil }},
		{"no condition", func(r *datasource.ForecastResponse) { r.Current.Condition = nil }},
		{"no forecast days", func(r *datasource.ForecastResponse) { r.Forecast.ForecastDay = nil }},
		{"no astro", func(r *datasource.ForecastResponse) { r.Forecast.ForecastDay[0].Astro = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := sampleResponse()
			tc.mutate(resp)

			_, err := CurrentFrom(resp)
			var malformed *datasource.MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedResponseError, got %v", err)
			}
		})
	}
}
