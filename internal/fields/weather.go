package fields

import "strings"

// Condition keywords and their emoji, checked in order so "partly cloudy"
// wins over "cloudy".
var weatherEmoji = []struct {
	keywords []string
	emoji    string
}{
	{[]string{"sunny", "clear"}, "☀️"},
	{[]string{"partly cloudy"}, "⛅"},
	{[]string{"cloudy", "overcast"}, "☁️"},
	{[]string{"rain", "drizzle", "shower"}, "🌧️"},
	{[]string{"thunder"}, "⛈️"},
	{[]string{"snow", "sleet"}, "❄️"},
}

const otherWeatherEmoji = "🌈"

// DecorateWeather appends the emoji for the condition described in value,
// or a rainbow when no condition is recognized. Values that already carry
// one of the emoji, and Unknown, are returned unchanged.
func DecorateWeather(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == Unknown {
		return value
	}
	for _, w := range weatherEmoji {
		if strings.Contains(value, w.emoji) {
			return value
		}
	}
	if strings.Contains(value, otherWeatherEmoji) {
		return value
	}

	lower := strings.ToLower(value)
	for _, w := range weatherEmoji {
		for _, kw := range w.keywords {
			if strings.Contains(lower, kw) {
				return value + " " + w.emoji
			}
		}
	}
	return value + " " + otherWeatherEmoji
}
