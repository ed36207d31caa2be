package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-passport/internal/rbac"
)

// RequireOperation returns middleware that rejects requests whose
// authenticated role is not allowed to perform op. It assumes JWTAuth has
// already stored the role in the context; a request that never carried a
// valid token does not reach this check.
func RequireOperation(op rbac.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rbac.Allowed(Role(c), op) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Forbidden"})
			}
			return next(c)
		}
	}
}
