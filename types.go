package sessiongate

import (
	"github.com/sessiongate/sessiongate-go/internal/authority"
	"github.com/sessiongate/sessiongate-go/internal/config"
	"github.com/sessiongate/sessiongate-go/internal/keycache"
	"github.com/sessiongate/sessiongate-go/internal/session"
)

// Authority is the remote session authority collaborator. Hosts provide
// an implementation over whatever transport reaches their authority.
type Authority = authority.Client

// Status classifies an authority response.
type Status = authority.Status

const (
	StatusOK                 = authority.StatusOK
	StatusUnauthorised       = authority.StatusUnauthorised
	StatusTryRefreshToken    = authority.StatusTryRefreshToken
	StatusTokenTheftDetected = authority.StatusTokenTheftDetected
)

// TokenInfo is a token object attached to escalated or refreshed results.
type TokenInfo = authority.TokenInfo

// SessionInfo identifies a session in authority responses.
type SessionInfo = authority.SessionInfo

// AuthorityKeyInfo is signing-key material piggybacked on responses.
type AuthorityKeyInfo = authority.KeyInfo

// CreateResponse, VerifyResponse and RefreshResponse are the logical
// response shapes Authority implementations must produce.
type (
	CreateResponse  = authority.CreateResponse
	VerifyResponse  = authority.VerifyResponse
	RefreshResponse = authority.RefreshResponse
)

// NormalizeTokenPayload applies the domain-normalization rule to a raw
// token object decoded from wire JSON; Authority implementations call it
// (or NormalizeResponsePayload) at every response boundary.
func NormalizeTokenPayload(obj map[string]interface{}) map[string]interface{} {
	return authority.NormalizeTokenPayload(obj)
}

// NormalizeResponsePayload normalizes every token object in a raw
// authority response.
func NormalizeResponsePayload(resp map[string]interface{}) map[string]interface{} {
	return authority.NormalizeResponsePayload(resp)
}

// SessionView is the result of a verification or refresh call.
type SessionView = session.SessionView

// Config holds the session-core configuration.
type Config = config.Config

// SessionConfig holds the deployment flags driving the verification
// state machine.
type SessionConfig = config.SessionConfig

// KeyCache holds the current signing key; MemoryCache is the default,
// RedisCache shares the key across host processes.
type KeyCache = keycache.Cache

// NewMemoryKeyCache returns an in-process signing-key cache that starts
// in an expired state.
func NewMemoryKeyCache() KeyCache { return keycache.NewMemoryCache() }

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig() (*Config, error) { return config.LoadConfig() }
