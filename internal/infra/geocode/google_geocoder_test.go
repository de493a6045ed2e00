package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campground/config"
	domainerrors "campground/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGoogleGeocoder_Geocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Yosemite", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = io.WriteString(w, `{"status":"OK","results":[{"formatted_address":"Yosemite Valley, CA, USA","geometry":{"location":{"lat":37.7456,"lng":-119.5936}}}]}`)
	}))
	defer srv.Close()

	geocoder := NewGoogleGeocoder(srv.URL, "test-key", time.Second, testLogger())

	result, err := geocoder.Geocode(context.Background(), "Yosemite")
	require.NoError(t, err)
	assert.Equal(t, "Yosemite Valley, CA, USA", result.Address)
	assert.InDelta(t, 37.7456, result.Latitude, 1e-9)
	assert.InDelta(t, -119.5936, result.Longitude, 1e-9)
}

func TestGoogleGeocoder_Geocode_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"zero results", `{"status":"ZERO_RESULTS","results":[]}`, domainerrors.ErrGeocodeInvalidAddress},
		{"ok but empty", `{"status":"OK","results":[]}`, domainerrors.ErrGeocodeInvalidAddress},
		{"denied", `{"status":"REQUEST_DENIED","error_message":"bad key"}`, domainerrors.ErrGeocodeRequestDenied},
		{"over query limit", `{"status":"OVER_QUERY_LIMIT"}`, domainerrors.ErrGeocodeQuotaExceeded},
		{"over daily limit", `{"status":"OVER_DAILY_LIMIT"}`, domainerrors.ErrGeocodeQuotaExceeded},
		{"unknown error", `{"status":"UNKNOWN_ERROR"}`, domainerrors.ErrGeocodeUnavailable},
		{"malformed", `not json`, domainerrors.ErrGeocodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			geocoder := NewGoogleGeocoder(srv.URL, "", time.Second, testLogger())

			result, err := geocoder.Geocode(context.Background(), "somewhere")
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGoogleGeocoder_Geocode_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	geocoder := NewGoogleGeocoder(srv.URL, "", 50*time.Millisecond, testLogger())

	_, err := geocoder.Geocode(context.Background(), "slow place")
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeUnavailable)
}

func TestGoogleGeocoder_Geocode_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	geocoder := NewGoogleGeocoder(srv.URL, "", time.Second, testLogger())

	_, err := geocoder.Geocode(context.Background(), "anywhere")
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeUnavailable)
}

func TestGoogleGeocoder_Geocode_EmptyQuery(t *testing.T) {
	geocoder := NewGoogleGeocoder("http://127.0.0.1:0", "", time.Second, testLogger())

	_, err := geocoder.Geocode(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeInvalidAddress)
}

func TestNewGeocoder_UnknownProvider(t *testing.T) {
	cfg := &config.Config{Geocoder: &config.GeocoderConfig{Provider: "bing"}}

	_, err := NewGeocoder(cfg, testLogger())
	assert.Error(t, err)
}
