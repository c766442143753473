// pkg/weather/format.go
// Render hasil NWS ke teks ringkas untuk balasan tool.

package weather

import (
	"fmt"
	"strings"
)

const (
	// NoActiveAlerts dikembalikan jika daftar alert kosong.
	NoActiveAlerts = "No active alerts found."
	// NoForecastData dikembalikan jika daftar periode kosong.
	NoForecastData = "No forecast data available."
)

// FormatAlerts menyusun satu blok per alert, urut sesuai input.
func FormatAlerts(features []Feature) string {
	if len(features) == 0 {
		return NoActiveAlerts
	}

	var b strings.Builder
	b.Grow(len(features) * 200)

	for _, f := range features {
		p := f.Properties
		fmt.Fprintf(&b, "Event: %s\nArea: %s\nSeverity: %s\nStatus: %s\nHeadline: %s\n---\n",
			p.Event, p.AreaDesc, p.Severity, p.Status, p.Headline)
	}
	return b.String()
}

// FormatForecast menyusun satu blok per periode, urut sesuai input.
// Tanda derajat menempel langsung ke unit (contoh: 40°F).
func FormatForecast(periods []Period) string {
	if len(periods) == 0 {
		return NoForecastData
	}

	var b strings.Builder
	b.Grow(len(periods) * 150)

	for _, p := range periods {
		fmt.Fprintf(&b, "Name: %s\nTemperature: %d°%s\nWind: %s %s\nForecast: %s\n---\n",
			p.Name, p.Temperature, p.TemperatureUnit, p.WindSpeed, p.WindDirection, p.ShortForecast)
	}
	return b.String()
}
