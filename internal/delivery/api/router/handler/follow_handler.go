package handler

import (
	"log/slog"
	"net/http"

	"campground/internal/delivery/api/middleware"
	"campground/internal/delivery/api/response"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FollowHandlerParams holds dependencies for FollowHandler, injected by Fx.
type FollowHandlerParams struct {
	fx.In

	FollowUC usecase.FollowUsecase
	Logger   *slog.Logger
}

// FollowHandler holds dependencies for follow-related handlers
type FollowHandler struct {
	followUC usecase.FollowUsecase
	logger   *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler
func NewFollowHandler(params FollowHandlerParams) *FollowHandler {
	return &FollowHandler{
		followUC: params.FollowUC,
		logger:   params.Logger,
	}
}

// FollowQRRequest represents the request body for following through a scanned QR code
type FollowQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// Follow handles POST /users/:id/follow
func (h *FollowHandler) Follow(c echo.Context) error {
	followerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	follow, err := h.followUC.Follow(c.Request().Context(), followerID, followeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, follow)
}

// Unfollow handles DELETE /users/:id/follow
func (h *FollowHandler) Unfollow(c echo.Context) error {
	followerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.followUC.Unfollow(c.Request().Context(), followerID, followeeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"followee_id": followeeID.String()})
}

// GetFollowers handles GET /users/:id/followers
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	follows, err := h.followUC.GetFollowers(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, follows)
}

// GenerateFollowQR handles GET /users/:id/follow-qr
func (h *FollowHandler) GenerateFollowQR(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	qrCode, err := h.followUC.GenerateFollowQR(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename=follow-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// FollowByQR handles POST /follows/qr
func (h *FollowHandler) FollowByQR(c echo.Context) error {
	followerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req FollowQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid QR follow input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	follow, err := h.followUC.FollowByQR(c.Request().Context(), followerID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, follow)
}
