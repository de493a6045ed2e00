package service

import (
	"context"
)

// GeocodeResult is the first match the provider returned for a query.
type GeocodeResult struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// Geocoder resolves free-text location queries to coordinates.
// Failures are reported as one of ErrGeocodeInvalidAddress, ErrGeocodeRequestDenied,
// ErrGeocodeQuotaExceeded or ErrGeocodeUnavailable from the domain errors package.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*GeocodeResult, error)
}
