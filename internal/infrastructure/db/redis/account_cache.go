package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/faojul/account-service/internal/core/domain"
	"github.com/faojul/account-service/internal/core/ports"
)

const cacheTTL = time.Minute

// AccountCache is a read-through cache for acting-account lookups on the
// authenticated request path. Entries expire after cacheTTL, which bounds how
// long a role change or deletion can go unnoticed by an already-issued token.
// The password hash is never written to Redis.
type AccountCache struct {
	client *redis.Client
	repo   ports.AccountRepository
	log    zerolog.Logger
}

func NewAccountCache(client *redis.Client, repo ports.AccountRepository, log zerolog.Logger) *AccountCache {
	return &AccountCache{client: client, repo: repo, log: log}
}

type cachedAccount struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// FindByEmail returns the account for email, serving from Redis when
// possible. Cache failures degrade to a repository lookup.
func (c *AccountCache) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	key := c.key(email)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var ca cachedAccount
		if err := json.Unmarshal([]byte(raw), &ca); err == nil {
			return &domain.Account{ID: ca.ID, Email: ca.Email, Role: domain.Role(ca.Role)}, nil
		}
		c.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	} else if err != redis.Nil {
		c.log.Warn().Err(err).Msg("account cache read failed, falling back to store")
	}

	account, err := c.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedAccount{ID: account.ID, Email: account.Email, Role: string(account.Role)})
	if err == nil {
		if err := c.client.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
			c.log.Warn().Err(err).Msg("account cache write failed")
		}
	}
	return account, nil
}

func (c *AccountCache) key(email string) string {
	return fmt.Sprintf("account:email:%s", email)
}
