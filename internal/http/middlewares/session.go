package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"repairdesk.com/repairdesk/internal/sessions"
)

// Context keys under which the resolved session is stored.
const (
	SessionUserKey  = "sessionUser"
	SessionTokenKey = "sessionToken"
)

// Session resolves a bearer token against the session store and rejects the
// request when no live session matches.
func Session(store sessions.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			user, err := store.Get(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session not found or expired")
			}

			c.Set(SessionUserKey, user)
			c.Set(SessionTokenKey, token)

			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
