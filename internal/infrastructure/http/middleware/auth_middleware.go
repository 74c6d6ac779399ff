package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storykeep/storykeep/errors"
	"github.com/storykeep/storykeep/internal/adapter/dto/common"
)

// BearerAuth returns an echo middleware that checks requests carry the
// expected bearer token. The development backend only knows a single static
// token; real deployments sit behind the archive's own auth service.
func BearerAuth(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return next(c)
			}
			if extractToken(c) != token {
				appErr := errors.ErrTokenRejected()
				return c.JSON(appErr.HTTPCode, common.ErrorBody{
					Code:    int(appErr.Code),
					Message: appErr.Message,
				})
			}
			return next(c)
		}
	}
}

// extractToken reads the bearer token from the Authorization header
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
