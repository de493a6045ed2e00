package context

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		keep bool
	}{
		{name: "uuid", raw: "0190f7a4-5b3c-7d2e-8f00-123456789abc", keep: true},
		{name: "dotted token", raw: "edge.req_42", keep: true},
		{name: "empty", raw: ""},
		{name: "header injection", raw: "abc\r\nX-Evil: 1"},
		{name: "spaces", raw: "req 42"},
		{name: "too long", raw: strings.Repeat("a", 65)},
		{name: "non ascii", raw: "réq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRequestID(tt.raw)
			if tt.keep {
				assert.Equal(t, tt.raw, got)
				return
			}

			assert.NotEqual(t, tt.raw, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx, reqLogger := WithRequestScope(context.Background(), "req-7", base)
	reqLogger.Info("hello")

	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
	assert.Same(t, reqLogger, GetLogger(ctx))
	assert.Contains(t, buf.String(), "request_id=req-7")
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
