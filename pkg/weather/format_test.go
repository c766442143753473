// pkg/weather/format_test.go

package weather

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAlerts_Empty(t *testing.T) {
	assert.Equal(t, "No active alerts found.", FormatAlerts(nil))
	assert.Equal(t, "No active alerts found.", FormatAlerts([]Feature{}))
}

func TestFormatAlerts_Blocks(t *testing.T) {
	features := []Feature{
		{Properties: FeatureProps{
			Event:    "Tornado Warning",
			AreaDesc: "Dallas, TX",
			Severity: "Extreme",
			Status:   "Actual",
			Headline: "Tornado Warning issued for Dallas",
		}},
		{Properties: FeatureProps{
			Event:    "Flood Watch",
			AreaDesc: "Travis, TX",
			Severity: "Moderate",
			Status:   "Actual",
			Headline: "Flood Watch until Sunday",
		}},
	}

	got := FormatAlerts(features)

	want := "Event: Tornado Warning\n" +
		"Area: Dallas, TX\n" +
		"Severity: Extreme\n" +
		"Status: Actual\n" +
		"Headline: Tornado Warning issued for Dallas\n" +
		"---\n" +
		"Event: Flood Watch\n" +
		"Area: Travis, TX\n" +
		"Severity: Moderate\n" +
		"Status: Actual\n" +
		"Headline: Flood Watch until Sunday\n" +
		"---\n"
	assert.Equal(t, want, got)

	// satu blok per alert, masing-masing ditutup baris "---"
	assert.Equal(t, len(features), strings.Count(got, "\n---\n"))
}

func TestFormatForecast_Empty(t *testing.T) {
	assert.Equal(t, "No forecast data available.", FormatForecast(nil))
}

func TestFormatForecast_Blocks(t *testing.T) {
	periods := []Period{
		{
			Name:            "Tonight",
			Temperature:     40,
			TemperatureUnit: "F",
			WindSpeed:       "5 mph",
			WindDirection:   "NW",
			ShortForecast:   "Clear",
		},
		{
			Name:            "Tomorrow",
			Temperature:     55,
			TemperatureUnit: "F",
			WindSpeed:       "10 mph",
			WindDirection:   "SE",
			ShortForecast:   "Partly Sunny",
		},
	}

	got := FormatForecast(periods)

	want := "Name: Tonight\n" +
		"Temperature: 40°F\n" +
		"Wind: 5 mph NW\n" +
		"Forecast: Clear\n" +
		"---\n" +
		"Name: Tomorrow\n" +
		"Temperature: 55°F\n" +
		"Wind: 10 mph SE\n" +
		"Forecast: Partly Sunny\n" +
		"---\n"
	assert.Equal(t, want, got)

	// derajat menempel langsung ke unit, tanpa spasi
	assert.Contains(t, got, "Temperature: 40°F\n")
	assert.NotContains(t, got, "° F")
}
