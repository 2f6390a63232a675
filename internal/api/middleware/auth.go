package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/faojul/account-service/internal/api/metrics"
	"github.com/faojul/account-service/internal/core/domain"
	"github.com/faojul/account-service/internal/core/ports"
)

// AccountContextKey is the echo context key under which the acting account is
// stored by the Auth middleware.
const AccountContextKey = "acting_account"

// AccountLookup resolves a verified token subject to the acting account.
type AccountLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// Auth validates the bearer token and injects the acting account into the
// request context. A missing header, a bad token, and an unknown subject all
// produce the same 401 so the caller cannot tell which check failed.
func Auth(tokens ports.TokenService, accounts AccountLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			account, err := accounts.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					// A valid signature over a deleted account is still a dead token.
					metrics.TokenRejectionsTotal.Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				// Store outages are not the caller's fault; let the central
				// error handler report an internal error.
				return err
			}

			c.Set(AccountContextKey, account)
			return next(c)
		}
	}
}
