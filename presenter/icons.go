// Package presenter transforms raw WeatherAPI responses into the
// view models the display layer renders. Everything here is a pure
// function of its inputs - no state is held between calls.
package presenter

import "weatherly/models"

// Icon keys for every weather visual state the app can render.
const (
	IconClearDay          models.IconKey = "clear-day"
	IconClearNight        models.IconKey = "clear-night"
	IconPartlyCloudyDay   models.IconKey = "partly-cloudy-day"
	IconPartlyCloudyNight models.IconKey = "partly-cloudy-night"
	IconCloudy            models.IconKey = "cloudy"
	IconOvercast          models.IconKey = "overcast"
	IconFog               models.IconKey = "fog"
	IconLightRain         models.IconKey = "light-rain"
	IconHeavyRain         models.IconKey = "heavy-rain"
	IconThunderstorm      models.IconKey = "thunderstorm"
	IconSnow              models.IconKey = "snow"
)

type dayNightIcon struct {
	day   models.IconKey
	night models.IconKey
}

// conditionIcons maps WeatherAPI condition codes to icon keys. Codes
// the provider distinguishes by time of day carry separate entries.
var conditionIcons = map[int]dayNightIcon{
	1000: {IconClearDay, IconClearNight},
	1003: {IconPartlyCloudyDay, IconPartlyCloudyNight},
	1006: {IconCloudy, IconCloudy},
	1009: {IconOvercast, IconOvercast},
	1030: {IconFog, IconFog},
	1063: {IconLightRain, IconLightRain},
	1066: {IconSnow, IconSnow},
	1087: {IconThunderstorm, IconThunderstorm},
	1114: {IconSnow, IconSnow},
	1117: {IconSnow, IconSnow},
	1135: {IconFog, IconFog},
	1150: {IconLightRain, IconLightRain},
	1153: {IconLightRain, IconLightRain},
	1180: {IconLightRain, IconLightRain},
	1183: {IconLightRain, IconLightRain},
	1186: {IconHeavyRain, IconHeavyRain},
	1189: {IconHeavyRain, IconHeavyRain},
	1192: {IconHeavyRain, IconHeavyRain},
	1195: {IconHeavyRain, IconHeavyRain},
	1240: {IconLightRain, IconLightRain},
	1243: {IconHeavyRain, IconHeavyRain},
	1273: {IconThunderstorm, IconThunderstorm},
	1276: {IconThunderstorm, IconThunderstorm},
}

// MapConditionIcon resolves a provider condition code to an icon key.
// Unknown codes are expected (the provider adds codes over time) and
// fall back to the clear-day icon rather than failing.
func MapConditionIcon(code int, isDay bool) models.IconKey {
	entry, ok := conditionIcons[code]
	if !ok {
		return IconClearDay
	}
	if isDay {
		return entry.day
	}
	return entry.night
}

// Glyph carries the renderable symbol name and accent color for an
// icon key.
type Glyph struct {
	Name  string
	Color string
}

var iconGlyphs = map[models.IconKey]Glyph{
	IconClearDay:          {Name: "sunny", Color: "#FFD60A"},
	IconClearNight:        {Name: "moon", Color: "#A78BFA"},
	IconPartlyCloudyDay:   {Name: "partly-sunny", Color: "#60A5FA"},
	IconPartlyCloudyNight: {Name: "cloudy-night", Color: "#60A5FA"},
	IconCloudy:            {Name: "cloud", Color: "#94A3B8"},
	IconOvercast:          {Name: "cloudy", Color: "#94A3B8"},
	IconFog:               {Name: "water", Color: "#94A3B8"},
	IconLightRain:         {Name: "rainy", Color: "#38BDF8"},
	IconHeavyRain:         {Name: "rainy", Color: "#38BDF8"},
	IconThunderstorm:      {Name: "thunderstorm", Color: "#FBBF24"},
	IconSnow:              {Name: "snow", Color: "#E0E7FF"},
}

var defaultGlyph = Glyph{Name: "partly-sunny", Color: "#94A3B8"}

// IconGlyph resolves an icon key to its glyph name and accent color,
// with a partly-sunny fallback for keys outside the table.
func IconGlyph(icon models.IconKey) Glyph {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return defaultGlyph
}
