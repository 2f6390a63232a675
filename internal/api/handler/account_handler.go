package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/faojul/account-service/internal/api/metrics"
	"github.com/faojul/account-service/internal/core/domain"
	"github.com/faojul/account-service/internal/core/ports"
)

// AccountHandler handles HTTP requests for account operations. Domain errors
// are returned as-is and mapped to status codes by the central error handler.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account registration details"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.Register(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(account.Role)).Inc()
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login with email and password
// @Tags         accounts
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  tokenResponse
// @Failure      400       {object}  errorResponse
// @Router       /users/token [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// List returns a page of accounts ordered by id.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Number of accounts to skip"
// @Param        limit  query     int  false  "Maximum accounts to return (capped at 100)"
// @Success      200    {array}   accountResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users [get]
func (h *AccountHandler) List(c echo.Context) error {
	acting, err := actingAccount(c)
	if err != nil {
		return err
	}

	skip := intQueryParam(c, "skip", 0)
	limit := intQueryParam(c, "limit", ports.MaxListLimit)

	accounts, err := h.service.ListAccounts(c.Request().Context(), skip, limit, acting)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AuthDenialsTotal.WithLabelValues(string(domain.OpListAccounts)).Inc()
		}
		return err
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return c.JSON(http.StatusOK, out)
}

// Update applies a partial update to an account.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	acting, err := actingAccount(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.UpdateAccount(c.Request().Context(), id, ports.UpdateAccountInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, acting)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AuthDenialsTotal.WithLabelValues(string(domain.OpUpdateAccount)).Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Delete permanently removes an account.
//
// @Summary      Delete an account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Account id"
// @Success      200  {object}  deleteAccountResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	acting, err := actingAccount(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	if err := h.service.DeleteAccount(c.Request().Context(), id, acting); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AuthDenialsTotal.WithLabelValues(string(domain.OpDeleteAccount)).Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, deleteAccountResponse{Detail: "account deleted"})
}

// intQueryParam parses a non-negative integer query parameter, falling back
// to def when absent or malformed.
func intQueryParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
