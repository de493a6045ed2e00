package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"campground/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimits(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.MaxUploadBodySize = "4KB"

	e := echo.New()
	e.Use(bodyLimits(cfg)...)
	e.POST("/api/v1/campgrounds", func(c echo.Context) error {
		if _, err := io.ReadAll(c.Request().Body); err != nil {
			return err
		}

		return c.NoContent(http.StatusCreated)
	})

	tests := []struct {
		name        string
		contentType string
		size        int
		want        int
	}{
		{name: "small json", contentType: echo.MIMEApplicationJSON, size: 512, want: http.StatusCreated},
		{name: "json over request limit", contentType: echo.MIMEApplicationJSON, size: 2048, want: http.StatusRequestEntityTooLarge},
		{name: "image upload over request limit", contentType: echo.MIMEMultipartForm + "; boundary=x", size: 2048, want: http.StatusCreated},
		{name: "image upload over upload limit", contentType: echo.MIMEMultipartForm + "; boundary=x", size: 8192, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/campgrounds", bytes.NewReader(make([]byte, tt.size)))
			req.Header.Set(echo.HeaderContentType, tt.contentType)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
