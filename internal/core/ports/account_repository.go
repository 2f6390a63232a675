package ports

import (
	"context"

	"github.com/faojul/account-service/internal/core/domain"
)

// UpdateAccountFields carries a partial update. Nil fields are left untouched.
// PasswordHash must already be hashed by the caller; the repository never sees
// a plaintext password.
type UpdateAccountFields struct {
	Email        *string
	PasswordHash *string
	Role         *domain.Role
}

// AccountRepository defines persistence operations for accounts.
//
// The implementation guarantees email uniqueness (Create and Update return
// domain.ErrEmailTaken on a duplicate) and atomic read-modify-write per call.
// List returns accounts ordered by id ascending.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, id int64, fields UpdateAccountFields) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.Account, error)
}
