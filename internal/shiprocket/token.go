package shiprocket

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/CalvinKoushik/ecom-backend/internal/domain"
	"github.com/CalvinKoushik/ecom-backend/pkg/errors"
)

// DefaultTokenTTL is how long a token is reused after login
const DefaultTokenTTL = 8 * time.Hour

const refreshKey = "login"

// Authenticator performs a provider login
type Authenticator interface {
	Login(ctx context.Context) (string, error)
}

// TokenCache holds the provider bearer token. A token is reused while
// now < ExpiresAt; concurrent refreshes share a single login call.
type TokenCache struct {
	auth   Authenticator
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	token *domain.ShippingToken

	group singleflight.Group
}

// NewTokenCache creates an empty cache. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenCache(auth Authenticator, ttl time.Duration, logger *zap.Logger) *TokenCache {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCache{
		auth:   auth,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Token returns a valid bearer token, logging in when the cache is empty or expired.
// Login failures are returned as *errors.AuthError.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if value, ok := c.cached(); ok {
		return value, nil
	}

	// The login outlives a cancelled first caller so the other waiters still get a result.
	ch := c.group.DoChan(refreshKey, func() (interface{}, error) {
		if value, ok := c.cached(); ok {
			return value, nil
		}
		return c.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Current returns a copy of the cached token, if any
func (c *TokenCache) Current() (domain.ShippingToken, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == nil {
		return domain.ShippingToken{}, false
	}
	return *c.token, true
}

// Invalidate drops the cached token so the next Token call logs in again
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

func (c *TokenCache) cached() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.ValidAt(c.now()) {
		return c.token.Value, true
	}
	return "", false
}

func (c *TokenCache) refresh(ctx context.Context) (string, error) {
	value, err := c.auth.Login(ctx)
	if err != nil {
		c.mu.Lock()
		c.token = nil
		c.mu.Unlock()

		c.logger.Error("Shiprocket login failed", zap.Error(err))
		return "", &errors.AuthError{Err: err}
	}

	expiresAt := c.now().Add(c.ttl)
	if exp, ok := tokenExpiry(value); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}

	c.mu.Lock()
	c.token = &domain.ShippingToken{Value: value, ExpiresAt: expiresAt}
	c.mu.Unlock()

	c.logger.Info("Shiprocket token refreshed", zap.Time("expires_at", expiresAt))
	return value, nil
}

// tokenExpiry reads the exp claim when the token is a JWT. The signature is not checked.
func tokenExpiry(value string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(value, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
