package handler

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"campground/internal/delivery/api/middleware"
	"campground/internal/delivery/api/response"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/service"
	"campground/internal/errors"
	"campground/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imageFormField = "image"

// CampgroundHandlerParams holds dependencies for CampgroundHandler, injected by Fx.
type CampgroundHandlerParams struct {
	fx.In

	CampgroundUC usecase.CampgroundUsecase
	Logger       *slog.Logger
}

// CampgroundHandler serves the campground resource.
type CampgroundHandler struct {
	campgroundUC usecase.CampgroundUsecase
	logger       *slog.Logger
}

// NewCampgroundHandler is the constructor for CampgroundHandler
func NewCampgroundHandler(params CampgroundHandlerParams) *CampgroundHandler {
	return &CampgroundHandler{
		campgroundUC: params.CampgroundUC,
		logger:       params.Logger,
	}
}

// CampgroundRequest is the multipart form for create and update. The image is
// read separately from the "image" file field. Price is kept textual so a
// missing value is rejected instead of defaulting to zero.
type CampgroundRequest struct {
	Name        string      `json:"name" form:"name" validate:"required,max=200"`
	Description string      `json:"description" form:"description" validate:"required,max=5000"`
	Price       json.Number `json:"price" form:"price" validate:"required"`
	Location    string      `json:"location" form:"location" validate:"required,max=500"`
}

// ListCampgrounds handles GET /campgrounds?page=&search=
func (h *CampgroundHandler) ListCampgrounds(c echo.Context) error {
	query := usecase.SearchQuery{
		Pattern: c.QueryParam("search"),
		Page:    usecase.ParsePage(c.QueryParam("page")),
	}

	page, err := h.campgroundUC.ListCampgrounds(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetCampground handles GET /campgrounds/:id
func (h *CampgroundHandler) GetCampground(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCampgroundNotFound)
	}

	detail, err := h.campgroundUC.GetCampground(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// CreateCampground handles POST /campgrounds
func (h *CampgroundHandler) CreateCampground(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	input, cleanup, err := h.bindInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer cleanup()

	campground, err := h.campgroundUC.CreateCampground(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, campground)
}

// UpdateCampground handles PUT /campgrounds/:id
func (h *CampgroundHandler) UpdateCampground(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCampgroundNotFound)
	}

	input, cleanup, err := h.bindInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer cleanup()

	campground, err := h.campgroundUC.UpdateCampground(c.Request().Context(), actor, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campground)
}

// DeleteCampground handles DELETE /campgrounds/:id
func (h *CampgroundHandler) DeleteCampground(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCampgroundNotFound)
	}

	if err := h.campgroundUC.DeleteCampground(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()})
}

// bindInput reads the form fields and the optional image. The returned cleanup
// closes the uploaded file and must always be called when err is nil.
func (h *CampgroundHandler) bindInput(c echo.Context) (*usecase.CampgroundInput, func(), error) {
	var req CampgroundRequest
	if err := c.Bind(&req); err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("invalid campground form")
	}

	if err := c.Validate(&req); err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(req.Price.String()), 64)
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("price must be a number")
	}

	input := &usecase.CampgroundInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Location:    req.Location,
	}
	if err := c.Validate(input); err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fileHeader, err := c.FormFile(imageFormField)
	if errors.IsAny(err, http.ErrMissingFile, http.ErrNotMultipart) {
		return input, func() {}, nil
	}
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("invalid image upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, domainerrors.ErrImageUploadFailed
	}

	input.Image = &service.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     file,
	}

	return input, func() { closeUpload(h.logger, file) }, nil
}

func closeUpload(logger *slog.Logger, file multipart.File) {
	if err := file.Close(); err != nil {
		logger.Warn("Failed to close uploaded image", slog.Any("error", err))
	}
}
