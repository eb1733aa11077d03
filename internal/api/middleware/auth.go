package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ContextUserID is the echo.Context key under which Auth stores the
// authenticated user id.
const ContextUserID = "user_id"

// TokenVerifier validates a bearer token and returns the user id it encodes.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Auth validates the Authorization header and injects the user id into the
// request context. All failures are 401s; they never fall through to the
// generic 500 path.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := verifier.VerifyToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
