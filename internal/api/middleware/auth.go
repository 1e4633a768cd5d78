package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roamly/booking-api/internal/core/token"
	"github.com/roamly/booking-api/internal/session"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth verifies the session token and injects the identity claims into the
// request context. The cookie is the primary transport; a bearer header is
// accepted as a secondary path for non-browser clients. A missing token and
// a failed verification both produce 401 so probing cannot distinguish them.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tokens == nil {
				// Signing secret unset: fail hard, never pass through.
				return echo.NewHTTPError(http.StatusInternalServerError, "server misconfigured")
			}

			raw := session.Read(c.Request())
			if raw == "" {
				raw = bearerToken(c.Request())
			}
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}

// OptionalAuth populates identity claims when a valid token is present but
// never rejects the request. Used by logout, which must stay a no-op
// success for callers that are already anonymous.
func OptionalAuth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tokens == nil {
				return next(c)
			}
			raw := session.Read(c.Request())
			if raw == "" {
				raw = bearerToken(c.Request())
			}
			if raw == "" {
				return next(c)
			}
			if claims, err := tokens.Verify(raw); err == nil {
				c.Set(CtxUserID, claims.UserID)
				c.Set(CtxEmail, claims.Email)
				c.Set(CtxRole, claims.Role)
			}
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
