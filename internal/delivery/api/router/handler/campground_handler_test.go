package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"campground/internal/delivery/api/middleware"
	"campground/internal/delivery/api/validator"
	"campground/internal/domain/constants"
	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	mockUsecase "campground/internal/mocks/usecase"
	"campground/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const placeholderImageURL = "/images/temp.png"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newTestContext builds a context for req. A non-nil actor is stored as the signed-in user.
func newTestContext(e *echo.Echo, req *http.Request, actor *entity.Actor) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		middleware.SetActor(c, actor)
	}

	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, rec)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %s", rec.Body.String())

	return errInfo["code"].(string)
}

func multipartForm(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile(imageFormField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func createTestCampgroundHandler(t *testing.T) (*CampgroundHandler, *mockUsecase.MockCampgroundUsecase) {
	campgroundUC := mockUsecase.NewMockCampgroundUsecase(t)

	return NewCampgroundHandler(CampgroundHandlerParams{
		CampgroundUC: campgroundUC,
		Logger:       testLogger(),
	}), campgroundUC
}

func TestCampgroundHandler_ListCampgrounds(t *testing.T) {
	h, campgroundUC := createTestCampgroundHandler(t)
	e := newTestEcho()

	campgroundUC.EXPECT().
		ListCampgrounds(mock.Anything, usecase.SearchQuery{Pattern: "lake", Page: 2}).
		Return(&usecase.CampgroundPage{
			Campgrounds: []*entity.Campground{},
			CurrentPage: 2,
			TotalPages:  3,
			Search:      "lake",
			Searched:    true,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campgrounds?search=lake&page=2", nil)
	c, rec := newTestContext(e, req, nil)

	require.NoError(t, h.ListCampgrounds(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.InDelta(t, 2, data["current_page"], 0)
	assert.InDelta(t, 3, data["total_pages"], 0)
}

func TestCampgroundHandler_ListCampgrounds_InvalidPageFallsBackToFirst(t *testing.T) {
	h, campgroundUC := createTestCampgroundHandler(t)
	e := newTestEcho()

	campgroundUC.EXPECT().
		ListCampgrounds(mock.Anything, usecase.SearchQuery{Page: 1}).
		Return(&usecase.CampgroundPage{CurrentPage: 1, TotalPages: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campgrounds?page=abc", nil)
	c, rec := newTestContext(e, req, nil)

	require.NoError(t, h.ListCampgrounds(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCampgroundHandler_GetCampground(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, campgroundUC := createTestCampgroundHandler(t)
		e := newTestEcho()
		id := uuid.New()

		campgroundUC.EXPECT().GetCampground(mock.Anything, id).Return(&usecase.CampgroundDetail{
			Campground: &entity.Campground{ID: id, Name: "Pine Ridge"},
			Comments:   []*entity.Comment{},
			Reviews:    []*entity.Review{},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c, rec := newTestContext(e, req, nil)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.GetCampground(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pine Ridge")
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		h, _ := createTestCampgroundHandler(t)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c, rec := newTestContext(e, req, nil)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, h.GetCampground(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CAMPGROUND_NOT_FOUND", errorCode(t, rec))
	})
}

func TestCampgroundHandler_CreateCampground_WithImage(t *testing.T) {
	h, campgroundUC := createTestCampgroundHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New(), Username: "alice"}

	campgroundUC.EXPECT().
		CreateCampground(mock.Anything, actor, mock.MatchedBy(func(input *usecase.CampgroundInput) bool {
			return input.Name == "Pine Ridge" &&
				input.Price == 12.5 &&
				input.Image != nil &&
				input.Image.Filename == "site.png"
		})).
		Return(&entity.Campground{ID: uuid.New(), Name: "Pine Ridge"}, nil)

	body, contentType := multipartForm(t, map[string]string{
		"name":        "Pine Ridge",
		"description": "Quiet sites under tall pines",
		"price":       "12.5",
		"location":    "Yosemite, CA",
	}, "site.png", []byte("\x89PNG\r\n\x1a\n"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campgrounds", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newTestContext(e, req, actor)

	require.NoError(t, h.CreateCampground(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCampgroundHandler_CreateCampground_WithoutImage(t *testing.T) {
	h, campgroundUC := createTestCampgroundHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New(), Username: "alice"}

	campgroundUC.EXPECT().
		CreateCampground(mock.Anything, actor, mock.MatchedBy(func(input *usecase.CampgroundInput) bool {
			return input.Image == nil
		})).
		Return(&entity.Campground{ID: uuid.New(), ImageURL: placeholderImageURL}, nil)

	form := url.Values{
		"name":        {"Pine Ridge"},
		"description": {"Quiet sites under tall pines"},
		"price":       {"0"},
		"location":    {"Yosemite, CA"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campgrounds", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := newTestContext(e, req, actor)

	require.NoError(t, h.CreateCampground(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), placeholderImageURL)
}

func TestCampgroundHandler_CreateCampground_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"description":"d","price":1,"location":"x"}`},
		{name: "negative price", body: `{"name":"n","description":"d","price":-1,"location":"x"}`},
		{name: "missing location", body: `{"name":"n","description":"d","price":1}`},
		{name: "missing price", body: `{"name":"n","description":"d","location":"x"}`},
		{name: "price beyond column range", body: `{"name":"n","description":"d","price":1e9,"location":"x"}`},
		{name: "price not numeric", body: `{"name":"n","description":"d","price":"free","location":"x"}`},
		{name: "malformed json", body: `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestCampgroundHandler(t)
			e := newTestEcho()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/campgrounds", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			c, rec := newTestContext(e, req, &entity.Actor{ID: uuid.New()})

			require.NoError(t, h.CreateCampground(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
		})
	}
}

func TestCampgroundHandler_CreateCampground_RequiresActor(t *testing.T) {
	h, _ := createTestCampgroundHandler(t)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campgrounds", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(e, req, nil)

	require.NoError(t, h.CreateCampground(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCampgroundHandler_UpdateCampground_NotOwner(t *testing.T) {
	h, campgroundUC := createTestCampgroundHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}
	id := uuid.New()

	campgroundUC.EXPECT().
		UpdateCampground(mock.Anything, actor, id, mock.Anything).
		Return(nil, domainerrors.ErrCampgroundOwnershipViolation)

	body := `{"name":"n","description":"d","price":1,"location":"x"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(e, req, actor)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.UpdateCampground(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "CAMPGROUND_OWNERSHIP_VIOLATION", errorCode(t, rec))
}

func TestCampgroundHandler_DeleteCampground(t *testing.T) {
	h, campgroundUC := createTestCampgroundHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New(), Roles: []string{constants.RoleAdmin}}
	id := uuid.New()

	campgroundUC.EXPECT().DeleteCampground(mock.Anything, actor, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	c, rec := newTestContext(e, req, actor)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.DeleteCampground(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestCampgroundHandler_DeleteCampground_UnexpectedErrorIsReturned(t *testing.T) {
	h, campgroundUC := createTestCampgroundHandler(t)
	e := newTestEcho()
	actor := &entity.Actor{ID: uuid.New()}
	id := uuid.New()

	campgroundUC.EXPECT().DeleteCampground(mock.Anything, actor, id).Return(assert.AnError)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	c, _ := newTestContext(e, req, actor)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := h.DeleteCampground(c)

	assert.ErrorIs(t, err, assert.AnError)
}
