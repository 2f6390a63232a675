package ports

import (
	"context"

	"github.com/faojul/account-service/internal/core/domain"
)

// MaxListLimit is the largest page size ListAccounts will serve. It doubles
// as the default when the caller supplies no limit.
const MaxListLimit = 100

// UpdateAccountInput carries a partial account update. Nil fields are left
// untouched; a supplied password is re-hashed before storage.
type UpdateAccountInput struct {
	Email    *string
	Password *string
	Role     *domain.Role
}

// AccountService defines the use-case operations of the account system.
//
// Register and Authenticate are ungated. The remaining operations take the
// acting account and check the role policy before anything else, so a caller
// lacking permission receives domain.ErrForbidden even when the target id
// does not exist.
type AccountService interface {
	Register(ctx context.Context, email, password string, role domain.Role) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ListAccounts(ctx context.Context, offset, limit int, acting *domain.Account) ([]*domain.Account, error)
	UpdateAccount(ctx context.Context, id int64, input UpdateAccountInput, acting *domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id int64, acting *domain.Account) error
}
