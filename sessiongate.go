package sessiongate

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/sessiongate/sessiongate-go/internal/keycache"
	"github.com/sessiongate/sessiongate-go/internal/session"
	"github.com/sessiongate/sessiongate-go/pkg/logger"
)

// Client is the public entry point. All methods are safe for concurrent
// use; the signing-key cache is the only shared mutable state.
type Client struct {
	svc *session.Service
}

// Option customises Client construction.
type Option func(*options)

type options struct {
	keys keycache.Cache
}

// WithKeyCache overrides the signing-key cache, e.g. with a cache shared
// between tests or a custom implementation.
func WithKeyCache(c KeyCache) Option {
	return func(o *options) { o.keys = c }
}

// New wires a Client from configuration and a host-supplied authority
// implementation. When cfg.Redis.Host is set the signing key is shared
// through Redis; otherwise each process keeps its own in-memory copy,
// starting expired so the first verification fetches a fresh key.
func New(cfg *Config, auth Authority, opts ...Option) *Client {
	logger.Init(cfg.Log.Level)

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	keys := o.keys
	if keys == nil {
		if cfg.Redis.Host != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			keys = keycache.NewRedisCache(rdb, "")
			logger.Infof("signing-key cache backed by redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			keys = keycache.NewMemoryCache()
		}
	}

	return &Client{svc: session.NewService(auth, keys, cfg.Session)}
}

// GetSession verifies an access token, locally when the cached signing
// key allows it, escalating to the authority otherwise. Failure kinds:
// TryRefreshTokenError, UnauthorisedError, GeneralError.
func (c *Client) GetSession(ctx context.Context, accessToken, antiCsrfToken string, doAntiCsrfCheck bool) (*SessionView, error) {
	return c.svc.GetSession(ctx, accessToken, antiCsrfToken, doAntiCsrfCheck)
}

// RefreshSession rotates the refresh token through the authority.
// Failure kinds: UnauthorisedError, TokenTheftDetectedError, GeneralError.
func (c *Client) RefreshSession(ctx context.Context, refreshToken, antiCsrfToken string) (*SessionView, error) {
	return c.svc.RefreshSession(ctx, refreshToken, antiCsrfToken)
}

// CreateSession mints a new session for the user on the authority.
// jwtPayload and sessionData must be non-nil.
func (c *Client) CreateSession(ctx context.Context, userID string, jwtPayload, sessionData map[string]interface{}) (*SessionView, error) {
	return c.svc.CreateSession(ctx, userID, jwtPayload, sessionData)
}

// RevokeSessions terminates the given sessions.
func (c *Client) RevokeSessions(ctx context.Context, sessionHandles []string) ([]string, error) {
	return c.svc.RevokeSessions(ctx, sessionHandles)
}

// ListSessionHandles lists live session handles for a user.
func (c *Client) ListSessionHandles(ctx context.Context, userID string) ([]string, error) {
	return c.svc.ListSessionHandles(ctx, userID)
}

func (c *Client) GetSessionData(ctx context.Context, sessionHandle string) (map[string]interface{}, error) {
	return c.svc.GetSessionData(ctx, sessionHandle)
}

func (c *Client) SetSessionData(ctx context.Context, sessionHandle string, data map[string]interface{}) error {
	return c.svc.SetSessionData(ctx, sessionHandle, data)
}

func (c *Client) GetJWTPayload(ctx context.Context, sessionHandle string) (map[string]interface{}, error) {
	return c.svc.GetJWTPayload(ctx, sessionHandle)
}

func (c *Client) SetJWTPayload(ctx context.Context, sessionHandle string, payload map[string]interface{}) error {
	return c.svc.SetJWTPayload(ctx, sessionHandle, payload)
}
