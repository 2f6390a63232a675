package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/faojul/account-service/internal/core/domain"
	"github.com/faojul/account-service/internal/core/ports"
)

// AccountService implements registration, authentication, and role-gated
// account administration. It holds no state of its own; every operation maps
// to at most one mutating repository call.
type AccountService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account. The role defaults to user when empty; an
// already-registered email yields domain.ErrEmailTaken. No authentication is
// required to call this.
func (s *AccountService) Register(ctx context.Context, email, password string, role domain.Role) (*domain.Account, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("account_id", created.ID).Str("role", string(created.Role)).Msg("account registered")
	return created, nil
}

// Authenticate verifies the credentials and issues a token bound to the
// account email. An unknown email and a wrong password both return
// domain.ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (string, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info().Int64("account_id", account.ID).Msg("login succeeded")
	return token, nil
}

// ListAccounts returns a page of accounts ordered by id. Only admin and
// management roles may call it.
func (s *AccountService) ListAccounts(ctx context.Context, offset, limit int, acting *domain.Account) ([]*domain.Account, error) {
	if acting == nil || !acting.Role.CanListAccounts() {
		return nil, domain.ErrForbidden
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > ports.MaxListLimit {
		limit = ports.MaxListLimit
	}

	return s.repo.List(ctx, offset, limit)
}

// UpdateAccount applies a partial update to the target account. The policy
// check comes first: a non-admin caller receives domain.ErrForbidden before
// the target's existence is revealed. A supplied password is re-hashed before
// it reaches the repository.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, input ports.UpdateAccountInput, acting *domain.Account) (*domain.Account, error) {
	if acting == nil || !acting.Role.CanUpdateAccount() {
		return nil, domain.ErrForbidden
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	fields := ports.UpdateAccountFields{
		Email: input.Email,
		Role:  input.Role,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		fields.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("account_id", id).Int64("actor_id", acting.ID).Msg("account updated")
	return updated, nil
}

// DeleteAccount permanently removes the target account. Same ordering
// discipline as UpdateAccount: authorization first, existence second.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64, acting *domain.Account) error {
	if acting == nil || !acting.Role.CanDeleteAccount() {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("account_id", id).Int64("actor_id", acting.ID).Msg("account deleted")
	return nil
}
