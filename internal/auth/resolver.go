package auth

import (
	"context"
	"fmt"
	"time"

	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/logger"
	"nexodus-admin-backend/internal/models"
	"nexodus-admin-backend/internal/upstream"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// IdentityFetcher returns the identity behind the token carried by ctx
type IdentityFetcher interface {
	GetCurrentUser(ctx context.Context) (*models.Identity, error)
}

// Resolver resolves bearer tokens to identities. The nexodus API is the authority
// on tokens; the resolver only rejects tokens that are malformed or already expired
// and caches what the API returned.
type Resolver struct {
	fetcher IdentityFetcher
	cache   *expirable.LRU[string, *models.Identity]
	parser  *jwt.Parser
	now     func() time.Time
}

// NewResolver creates a resolver caching up to size identities for ttl
func NewResolver(fetcher IdentityFetcher, size int, ttl time.Duration) *Resolver {
	if size <= 0 {
		size = 1
	}
	return &Resolver{
		fetcher: fetcher,
		cache:   expirable.NewLRU[string, *models.Identity](size, nil, ttl),
		parser:  jwt.NewParser(),
		now:     time.Now,
	}
}

// Resolve returns the identity for token
func (r *Resolver) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	if token == "" {
		return nil, apperrors.ErrIdentityRequired
	}

	if err := r.checkExpiry(token); err != nil {
		return nil, err
	}

	if identity, ok := r.cache.Get(token); ok {
		return identity, nil
	}

	identity, err := r.fetcher.GetCurrentUser(upstream.ContextWithToken(ctx, token))
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to resolve identity")
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	r.cache.Add(token, identity)
	return identity, nil
}

// Forget drops the cached identity for token
func (r *Resolver) Forget(token string) {
	r.cache.Remove(token)
}

func (r *Resolver) checkExpiry(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := r.parser.ParseUnverified(token, claims); err != nil {
		return apperrors.ErrTokenMalformed
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return apperrors.ErrTokenMalformed
	}
	if exp != nil && !r.now().Before(exp.Time) {
		return apperrors.ErrTokenExpired
	}
	return nil
}
