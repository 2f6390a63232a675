package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/faojul/account-service/internal/api/middleware"
	"github.com/faojul/account-service/internal/core/domain"
)

// actingAccount extracts the account injected by the Auth middleware. Its
// presence proves the middleware ran; a gated handler reached without it is a
// routing mistake and is rejected with 401.
func actingAccount(c echo.Context) (*domain.Account, error) {
	account, ok := c.Get(apimiddleware.AccountContextKey).(*domain.Account)
	if !ok || account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return account, nil
}
