// pkg/weather/client.go
// Client NWS API (api.weather.gov) untuk tool get_alerts & get_forecast.

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL   = "https://api.weather.gov"
	DefaultUserAgent = "weather-app/2.0"
	DefaultTimeout   = 10 * time.Second
)

// StatusError: upstream membalas status non-2xx.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather: request %s failed with status %d", e.URL, e.StatusCode)
}

// Client membungkus resty.Client dengan User-Agent tetap.
// Aman dipakai concurrent; tidak menyimpan state antar request.
type Client struct {
	baseURL string
	http    *resty.Client
}

// New membuat client NWS. Argumen kosong/zero memakai default.
func New(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rc := resty.New()
	rc.SetTimeout(timeout)
	rc.SetHeader("User-Agent", userAgent)
	rc.SetHeader("Accept", "application/geo+json")

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

// BaseURL mengembalikan base URL aktif (untuk debug/status).
func (c *Client) BaseURL() string { return c.baseURL }

// getJSON: GET url lalu decode body ke out. Tanpa retry.
// Gagal transport -> error dengan cause; non-2xx -> *StatusError.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("weather: request %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		return &StatusError{URL: url, StatusCode: resp.StatusCode()}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("weather: decode %s: %w", url, err)
	}
	return nil
}

// ActiveAlerts mengambil alert aktif untuk satu negara bagian US.
// State masuk ke URL apa adanya (perilaku upstream yang menentukan valid/tidak).
func (c *Client) ActiveAlerts(ctx context.Context, state string) (AlertsResponse, error) {
	var out AlertsResponse
	url := fmt.Sprintf("%s/alerts/active?area=%s", c.baseURL, state)
	if err := c.getJSON(ctx, url, &out); err != nil {
		return AlertsResponse{}, err
	}
	return out, nil
}

// PointMetadata: lookup /points/<lat>,<lon> untuk dapat URL grid forecast.
func (c *Client) PointMetadata(ctx context.Context, latitude, longitude string) (PointsResponse, error) {
	var out PointsResponse
	url := fmt.Sprintf("%s/points/%s,%s", c.baseURL, latitude, longitude)
	if err := c.getJSON(ctx, url, &out); err != nil {
		return PointsResponse{}, err
	}
	return out, nil
}

// Forecast mengambil periode forecast dari URL hasil PointMetadata.
func (c *Client) Forecast(ctx context.Context, forecastURL string) (ForecastResponse, error) {
	var out ForecastResponse
	if err := c.getJSON(ctx, forecastURL, &out); err != nil {
		return ForecastResponse{}, err
	}
	return out, nil
}
