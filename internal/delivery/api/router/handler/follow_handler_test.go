package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	mockUsecase "campground/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFollowHandler(t *testing.T) (*FollowHandler, *mockUsecase.MockFollowUsecase) {
	followUC := mockUsecase.NewMockFollowUsecase(t)

	return NewFollowHandler(FollowHandlerParams{
		FollowUC: followUC,
		Logger:   testLogger(),
	}), followUC
}

func TestFollowHandler_Follow(t *testing.T) {
	h, followUC := createTestFollowHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}
	followeeID := uuid.New()

	followUC.EXPECT().Follow(mock.Anything, actor.ID, followeeID).
		Return(&entity.Follow{FollowerID: actor.ID, FolloweeID: followeeID}, nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c, rec := newTestContext(e, req, actor)
	c.SetParamNames("id")
	c.SetParamValues(followeeID.String())

	require.NoError(t, h.Follow(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), followeeID.String())
}

func TestFollowHandler_Follow_Self(t *testing.T) {
	h, followUC := createTestFollowHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}

	followUC.EXPECT().Follow(mock.Anything, actor.ID, actor.ID).Return(nil, domainerrors.ErrFollowSelf)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c, rec := newTestContext(e, req, actor)
	c.SetParamNames("id")
	c.SetParamValues(actor.ID.String())

	require.NoError(t, h.Follow(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "FOLLOW_SELF", errorCode(t, rec))
}

func TestFollowHandler_Follow_InvalidID(t *testing.T) {
	h, _ := createTestFollowHandler(t)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c, rec := newTestContext(e, req, &entity.Actor{ID: uuid.New()})
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.Follow(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, rec))
}

func TestFollowHandler_Unfollow_NotFollowing(t *testing.T) {
	h, followUC := createTestFollowHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}
	followeeID := uuid.New()

	followUC.EXPECT().Unfollow(mock.Anything, actor.ID, followeeID).Return(domainerrors.ErrFollowNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	c, rec := newTestContext(e, req, actor)
	c.SetParamNames("id")
	c.SetParamValues(followeeID.String())

	require.NoError(t, h.Unfollow(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFollowHandler_GetFollowers(t *testing.T) {
	h, followUC := createTestFollowHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	followUC.EXPECT().GetFollowers(mock.Anything, userID).Return([]*entity.Follow{
		{FollowerID: uuid.New(), FolloweeID: userID},
		{FollowerID: uuid.New(), FolloweeID: userID},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req, nil)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	require.NoError(t, h.GetFollowers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"], 2)
}

func TestFollowHandler_GenerateFollowQR(t *testing.T) {
	h, followUC := createTestFollowHandler(t)
	e := newTestEcho()
	userID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")

	followUC.EXPECT().GenerateFollowQR(mock.Anything, userID).Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req, nil)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	require.NoError(t, h.GenerateFollowQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestFollowHandler_FollowByQR(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		h, followUC := createTestFollowHandler(t)
		e := newTestEcho()
		actor := &entity.Actor{ID: uuid.New()}
		followeeID := uuid.New()

		followUC.EXPECT().FollowByQR(mock.Anything, actor.ID, "follow:"+followeeID.String()).
			Return(&entity.Follow{FollowerID: actor.ID, FolloweeID: followeeID}, nil)

		body := `{"qr_data":"follow:` + followeeID.String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, rec := newTestContext(e, req, actor)

		require.NoError(t, h.FollowByQR(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing code", func(t *testing.T) {
		h, _ := createTestFollowHandler(t)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, rec := newTestContext(e, req, &entity.Actor{ID: uuid.New()})

		require.NoError(t, h.FollowByQR(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("unreadable code", func(t *testing.T) {
		h, followUC := createTestFollowHandler(t)
		e := newTestEcho()
		actor := &entity.Actor{ID: uuid.New()}

		followUC.EXPECT().FollowByQR(mock.Anything, actor.ID, "garbage").Return(nil, domainerrors.ErrInvalidFollowCode)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"qr_data":"garbage"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, rec := newTestContext(e, req, actor)

		require.NoError(t, h.FollowByQR(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_FOLLOW_CODE", errorCode(t, rec))
	})
}
