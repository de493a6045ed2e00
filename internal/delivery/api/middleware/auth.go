package middleware

import (
	"strings"

	"campground/internal/delivery/api/response"
	"campground/internal/domain/entity"
	"campground/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyActor  = "actor"
	keyUserID = "userID"
	keyRoles  = "roles"
)

// AuthMiddleware trusts access tokens issued by the account service and turns
// them into the acting user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "You need to be logged in to do that")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetActor(c, &entity.Actor{
			ID:       claims.UserID,
			Username: claims.Username,
			Roles:    claims.Roles,
		})

		return next(c)
	}
}

// RequireRole checks the authenticated actor carries role. Use it after Authenticate.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok || !actor.HasRole(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role+"' role")
			}

			return next(c)
		}
	}
}

// SetActor stores actor on the request.
func SetActor(c echo.Context, actor *entity.Actor) {
	c.Set(keyActor, actor)
	c.Set(keyUserID, actor.ID)
	c.Set(keyRoles, actor.Roles)
}

// GetActor returns the authenticated user set by Authenticate.
func GetActor(c echo.Context) (*entity.Actor, bool) {
	actor, ok := c.Get(keyActor).(*entity.Actor)

	return actor, ok && actor != nil
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(keyRoles).([]string)

	return roles, ok
}
