package handler

import "github.com/faojul/account-service/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Email    string      `json:"email"    validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     domain.Role `json:"role"     validate:"omitempty,oneof=admin management user"`
}

// loginRequest is bound from form data, matching the OAuth2 password flow
// field names: username carries the account email.
type loginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type updateAccountRequest struct {
	Email    *string      `json:"email"    validate:"omitempty,email"`
	Password *string      `json:"password" validate:"omitempty,min=1"`
	Role     *domain.Role `json:"role"     validate:"omitempty,oneof=admin management user"`
}

// --- Response types ---

// accountResponse is the outward account representation. The password hash is
// never serialized.
type accountResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:    a.ID,
		Email: a.Email,
		Role:  string(a.Role),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type deleteAccountResponse struct {
	Detail string `json:"detail"`
}
