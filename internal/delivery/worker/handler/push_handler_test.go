package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campground/config"
	deliverycontext "campground/internal/delivery/context"
	"campground/internal/domain/constants"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/service"
	"campground/internal/infra/pubsub"
	mockUsecase "campground/internal/mocks/usecase"
	"campground/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func testEvent() *service.CampgroundCreatedEvent {
	return &service.CampgroundCreatedEvent{
		RequestID:      "req-123",
		CampgroundID:   uuid.New().String(),
		CampgroundName: "Pine Ridge",
		AuthorID:       uuid.New().String(),
		AuthorUsername: "alice",
	}
}

func pushBody(t *testing.T, event *service.CampgroundCreatedEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/test/subscriptions/campground-created")
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func createTestPushHandler(t *testing.T, cfg *config.Config, validate TokenValidator) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notifier := mockUsecase.NewMockNotificationUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier:       notifier,
		TokenValidator: validate,
	}), notifier
}

func servePush(h *PushHandler, body []byte, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := testEvent()

	tests := []struct {
		name       string
		result     *usecase.FanOutResult
		err        error
		wantStatus int
	}{
		{
			name:       "all followers notified",
			result:     &usecase.FanOutResult{Followers: 3, Created: 2, Duplicates: 1},
			wantStatus: http.StatusOK,
		},
		{
			name:       "partial failure is redelivered",
			result:     &usecase.FanOutResult{Followers: 3, Created: 2, Failed: 1},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "follower lookup failure is redelivered",
			err:        assert.AnError,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "invalid event is acknowledged",
			err:        domainerrors.ErrValidationFailed.WithDetails("invalid author_id"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifier := createTestPushHandler(t, nil, nil)

			notifier.EXPECT().
				FanOut(mock.Anything, mock.MatchedBy(func(got *service.CampgroundCreatedEvent) bool {
					return got.CampgroundID == event.CampgroundID && got.AuthorID == event.AuthorID
				})).
				Return(tt.result, tt.err)

			rec := servePush(h, pushBody(t, event), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_CarriesRequestID(t *testing.T) {
	event := testEvent()
	h, notifier := createTestPushHandler(t, nil, nil)

	notifier.EXPECT().
		FanOut(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-123"
		}), mock.Anything).
		Return(&usecase.FanOutResult{}, nil)

	rec := servePush(h, pushBody(t, event), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_ReplacesMalformedRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = "bad id\r\nX-Injected: 1"
	h, notifier := createTestPushHandler(t, nil, nil)

	notifier.EXPECT().
		FanOut(mock.MatchedBy(func(ctx context.Context) bool {
			requestID := deliverycontext.GetRequestIDFromContext(ctx)
			_, err := uuid.Parse(requestID)
			return err == nil
		}), mock.Anything).
		Return(&usecase.FanOutResult{}, nil)

	rec := servePush(h, pushBody(t, event), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedMessage(t *testing.T) {
	h, _ := createTestPushHandler(t, nil, nil)

	tests := map[string][]byte{
		"not json":          []byte("{"),
		"not base64":        []byte(`{"message":{"data":"%%%"}}`),
		"missing event ids": []byte(`{"message":{"data":"e30="}}`),
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := servePush(h, body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub = &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/push",
	}

	var gotAudience string
	validate := func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "signed" {
			return nil, assert.AnError
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	t.Run("missing token", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg, validate)

		rec := servePush(h, pushBody(t, testEvent()), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg, validate)

		rec := servePush(h, pushBody(t, testEvent()), "Bearer forged")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "https://notifier.example.com/push", gotAudience)
	})

	t.Run("valid token", func(t *testing.T) {
		h, notifier := createTestPushHandler(t, cfg, validate)
		notifier.EXPECT().FanOut(mock.Anything, mock.Anything).Return(&usecase.FanOutResult{}, nil)

		rec := servePush(h, pushBody(t, testEvent()), "Bearer signed")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_SkipsTokenCheckInDevelop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}

	h, notifier := createTestPushHandler(t, cfg, func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, assert.AnError
	})
	notifier.EXPECT().FanOut(mock.Anything, mock.Anything).Return(&usecase.FanOutResult{}, nil)

	rec := servePush(h, pushBody(t, testEvent()), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
