package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nine-chairs/myflix-api/internal/api/metrics"
	"github.com/nine-chairs/myflix-api/internal/core/domain"
	"github.com/nine-chairs/myflix-api/internal/core/ports"
)

// PrincipalKey is the context key under which the authenticated user is
// stored for the duration of one request.
const PrincipalKey = "principal"

// Auth is the access gate: it extracts the bearer token, verifies it through
// the auth service (signature, expiry, and a store lookup proving the subject
// still exists), and attaches the resolved principal to the request context.
// Any failure rejects the request with a generic 401 before resource logic
// runs; the concrete reason only reaches logs and metrics.
func Auth(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Verify(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return err
			}

			c.Set(PrincipalKey, user)
			c.Set("username", user.Username)

			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedToken):
		return "malformed"
	case errors.Is(err, domain.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrPrincipalNotFound):
		return "principal_not_found"
	default:
		return "error"
	}
}
