// Package weather looks up current conditions for campground positions.
package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"campground/internal/domain/entity"
	"campground/internal/errors"

	"github.com/paulmach/orb"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout = 5 * time.Second
	timeLayout     = "2006-01-02T15:04"
)

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature   float64 `json:"temperature"`
		WindSpeed     float64 `json:"windspeed"`
		WindDirection float64 `json:"winddirection"`
		WeatherCode   int     `json:"weathercode"`
		Time          string  `json:"time"`
	} `json:"current_weather"`
}

// openMeteoClient fetches current conditions from the Open-Meteo forecast API
type openMeteoClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func newOpenMeteoClient(baseURL string, timeout time.Duration) *openMeteoClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &openMeteoClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Forecast fetches the current conditions at point
func (c *openMeteoClient) Forecast(ctx context.Context, point orb.Point) (*entity.Weather, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(point.Lat(), 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(point.Lon(), 'f', 4, 64))
	params.Set("current_weather", "true")
	params.Set("timezone", "UTC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "weather request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode weather response")
	}

	current := body.CurrentWeather
	observedAt, err := time.Parse(timeLayout, current.Time)
	if err != nil {
		observedAt = time.Now().UTC()
	}

	return &entity.Weather{
		Temperature:   current.Temperature,
		WindSpeed:     current.WindSpeed,
		WindDirection: current.WindDirection,
		WeatherCode:   current.WeatherCode,
		Summary:       describe(current.WeatherCode),
		ObservedAt:    observedAt,
	}, nil
}

// describe maps WMO weather interpretation codes to a short summary
func describe(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code <= 3:
		return "Partly cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67, code >= 80 && code <= 82:
		return "Rain"
	case code >= 71 && code <= 77, code == 85 || code == 86:
		return "Snow"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
