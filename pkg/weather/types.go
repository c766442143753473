// pkg/weather/types.go
// Bentuk respons NWS API (api.weather.gov) yang dipakai tool MCP.

package weather

// AlertsResponse: balasan /alerts/active?area=<state>.
type AlertsResponse struct {
	Features []Feature `json:"features"`
}

// Feature: satu alert aktif (GeoJSON feature).
type Feature struct {
	Properties FeatureProps `json:"properties"`
}

type FeatureProps struct {
	Event    string `json:"event"`
	AreaDesc string `json:"areaDesc"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Headline string `json:"headline"`
}

// PointsResponse: balasan /points/<lat>,<lon>.
// Properti forecast berisi URL endpoint grid forecast.
type PointsResponse struct {
	Properties PointsProps `json:"properties"`
}

type PointsProps struct {
	Forecast string `json:"forecast"`
}

// ForecastResponse: balasan endpoint grid forecast.
type ForecastResponse struct {
	Properties ForecastProps `json:"properties"`
}

type ForecastProps struct {
	Periods []Period `json:"periods"`
}

// Period: satu jendela waktu forecast (mis. "Tonight").
type Period struct {
	Name            string `json:"name"`
	Temperature     int    `json:"temperature"`
	TemperatureUnit string `json:"temperatureUnit"`
	WindSpeed       string `json:"windSpeed"`
	WindDirection   string `json:"windDirection"`
	ShortForecast   string `json:"shortForecast"`
}
