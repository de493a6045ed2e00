// Package geocode resolves free-text locations through an external geocoding provider.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campground/config"
	"campground/internal/domain/constants"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/service"
	"campground/internal/errors"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimeout = 5 * time.Second
)

// Google Geocoding API status values.
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusInvalidRequest = "INVALID_REQUEST"
	statusRequestDenied  = "REQUEST_DENIED"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
	statusOverDailyLimit = "OVER_DAILY_LIMIT"
)

type googleResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Results      []googleResult `json:"results"`
}

type googleResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// googleGeocoder implements service.Geocoder against the Google Geocoding HTTP API
type googleGeocoder struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGoogleGeocoder creates a geocoder for the Google Geocoding API
func NewGoogleGeocoder(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) service.Geocoder {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &googleGeocoder{
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// NewGeocoder creates the configured geocoder
func NewGeocoder(cfg *config.Config, logger *slog.Logger) (service.Geocoder, error) {
	geoCfg := cfg.Geocoder
	if geoCfg == nil {
		geoCfg = &config.GeocoderConfig{Provider: constants.GeocoderProviderGoogle}
	}

	switch geoCfg.Provider {
	case "", constants.GeocoderProviderGoogle:
		return NewGoogleGeocoder(geoCfg.BaseURL, geoCfg.APIKey, geoCfg.Timeout, logger), nil
	default:
		return nil, errors.Errorf("unknown geocoder provider: %s", geoCfg.Provider)
	}
}

// Geocode resolves query to the provider's first match
func (g *googleGeocoder) Geocode(ctx context.Context, query string) (*service.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrGeocodeInvalidAddress.WithDetails("empty location")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("address", query)
	if g.apiKey != "" {
		params.Set("key", g.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocode request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("[Geocoder] Request failed", slog.String("query", query), slog.Any("error", err))

		return nil, domainerrors.ErrGeocodeUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("[Geocoder] Unexpected HTTP status", slog.String("query", query), slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrGeocodeUnavailable.WithDetails(http.StatusText(resp.StatusCode))
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domainerrors.ErrGeocodeUnavailable.WithDetails("malformed geocode response")
	}

	return toResult(query, &body)
}

func toResult(query string, body *googleResponse) (*service.GeocodeResult, error) {
	switch body.Status {
	case statusOK:
	case statusZeroResults, statusInvalidRequest:
		return nil, domainerrors.ErrGeocodeInvalidAddress.WithDetails(query)
	case statusRequestDenied:
		return nil, domainerrors.ErrGeocodeRequestDenied.WithDetails(body.ErrorMessage)
	case statusOverQueryLimit, statusOverDailyLimit:
		return nil, domainerrors.ErrGeocodeQuotaExceeded.WithDetails(body.ErrorMessage)
	default:
		return nil, domainerrors.ErrGeocodeUnavailable.WithDetails(body.Status)
	}

	if len(body.Results) == 0 {
		return nil, domainerrors.ErrGeocodeInvalidAddress.WithDetails(query)
	}

	first := body.Results[0]

	return &service.GeocodeResult{
		Address:   first.FormattedAddress,
		Latitude:  first.Geometry.Location.Lat,
		Longitude: first.Geometry.Location.Lng,
	}, nil
}
