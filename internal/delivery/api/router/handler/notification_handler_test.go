package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	mockUsecase "campground/internal/mocks/usecase"
	"campground/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationHandler(t *testing.T) (*NotificationHandler, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	return NewNotificationHandler(NotificationHandlerParams{
		NotificationUC: notificationUC,
		Logger:         testLogger(),
	}), notificationUC
}

func TestNotificationHandler_GetNotifications(t *testing.T) {
	h, notificationUC := createTestNotificationHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}

	notificationUC.EXPECT().GetUserNotifications(mock.Anything, actor.ID, 5, 10).
		Return([]*entity.Notification{{ID: uuid.New(), UserID: actor.ID, ActorUsername: "bob"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/?limit=5&offset=10", nil)
	c, rec := newTestContext(e, req, actor)

	require.NoError(t, h.GetNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bob")
}

func TestNotificationHandler_GetNotifications_DefaultsPassedAsZero(t *testing.T) {
	h, notificationUC := createTestNotificationHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}

	notificationUC.EXPECT().GetUserNotifications(mock.Anything, actor.ID, 0, 0).
		Return([]*entity.Notification{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/?limit=lots", nil)
	c, rec := newTestContext(e, req, actor)

	require.NoError(t, h.GetNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_OpenNotification(t *testing.T) {
	h, notificationUC := createTestNotificationHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}
	notificationID := uuid.New()

	notificationUC.EXPECT().OpenNotification(mock.Anything, actor.ID, notificationID).
		Return(&usecase.NotificationView{
			Notification: &entity.Notification{ID: notificationID, IsRead: true},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c, rec := newTestContext(e, req, actor)
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())

	require.NoError(t, h.OpenNotification(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_OpenNotification_OtherUsers(t *testing.T) {
	h, notificationUC := createTestNotificationHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}
	notificationID := uuid.New()

	notificationUC.EXPECT().OpenNotification(mock.Anything, actor.ID, notificationID).
		Return(nil, domainerrors.ErrNotificationOwnershipViolation)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c, rec := newTestContext(e, req, actor)
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())

	require.NoError(t, h.OpenNotification(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNotificationHandler_DeleteNotification(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, notificationUC := createTestNotificationHandler(t)
		e := newTestEcho()
		actor := &entity.Actor{ID: uuid.New()}
		notificationID := uuid.New()

		notificationUC.EXPECT().DeleteNotification(mock.Anything, actor.ID, notificationID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		c, rec := newTestContext(e, req, actor)
		c.SetParamNames("id")
		c.SetParamValues(notificationID.String())

		require.NoError(t, h.DeleteNotification(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := createTestNotificationHandler(t)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		c, rec := newTestContext(e, req, &entity.Actor{ID: uuid.New()})
		c.SetParamNames("id")
		c.SetParamValues("x")

		require.NoError(t, h.DeleteNotification(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOTIFICATION_NOT_FOUND", errorCode(t, rec))
	})
}
