package authority

import "context"

// Status classifies a session-authority response. The verification and
// refresh flows dispatch on this tag rather than comparing raw strings
// at call sites.
type Status string

const (
	StatusOK                 Status = "OK"
	StatusUnauthorised       Status = "UNAUTHORISED"
	StatusTryRefreshToken    Status = "TRY_REFRESH_TOKEN"
	StatusTokenTheftDetected Status = "TOKEN_THEFT_DETECTED"
)

// TokenInfo is a token object returned by the authority. Domain carries
// no omitempty so a marshalled token always shows an explicit
// "domain":null when the authority omitted it; callers never need to
// distinguish absent from null.
type TokenInfo struct {
	Token        string  `json:"token"`
	Expiry       int64   `json:"expiry"`      // unix milliseconds
	CreatedTime  int64   `json:"createdTime"` // unix milliseconds
	CookiePath   string  `json:"cookiePath"`
	CookieSecure bool    `json:"cookieSecure"`
	Domain       *string `json:"domain"`
}

// SessionInfo identifies the verified session.
type SessionInfo struct {
	Handle        string                 `json:"handle"`
	UserID        string                 `json:"userId"`
	UserDataInJWT map[string]interface{} `json:"userDataInJWT"`
}

// KeyInfo is the signing key material piggybacked on authority responses.
type KeyInfo struct {
	PublicKey string `json:"jwtSigningPublicKey"`
	ExpiresAt int64  `json:"jwtSigningPublicKeyExpiryTime"` // unix milliseconds
}

// CreateResponse is returned by CreateSession.
type CreateResponse struct {
	Status         Status      `json:"status"`
	Session        SessionInfo `json:"session"`
	AccessToken    *TokenInfo  `json:"accessToken"`
	RefreshToken   *TokenInfo  `json:"refreshToken"`
	IDRefreshToken *TokenInfo  `json:"idRefreshToken"`
	AntiCsrfToken  string      `json:"antiCsrfToken"`
	Key            *KeyInfo    `json:"keyInfo"`
	Message        string      `json:"message"`
}

// VerifyResponse is returned by VerifySession.
type VerifyResponse struct {
	Status      Status      `json:"status"`
	Session     SessionInfo `json:"session"`
	AccessToken *TokenInfo  `json:"accessToken"` // present when the authority rotated the token
	Key         *KeyInfo    `json:"keyInfo"`
	Message     string      `json:"message"`
}

// RefreshResponse is returned by RefreshSession. On theft detection the
// authority reports which user and session the superseded token belonged
// to; the session-terminating reaction is the caller's.
type RefreshResponse struct {
	Status         Status      `json:"status"`
	Session        SessionInfo `json:"session"`
	AccessToken    *TokenInfo  `json:"accessToken"`
	RefreshToken   *TokenInfo  `json:"refreshToken"`
	IDRefreshToken *TokenInfo  `json:"idRefreshToken"`
	AntiCsrfToken  string      `json:"antiCsrfToken"`
	Message        string      `json:"message"`

	UserID        string `json:"userId"`
	SessionHandle string `json:"sessionHandle"`
}

// Client is the remote session authority, the sole source of truth for
// session lifecycle, key rotation, and refresh rotation outcomes. The
// transport behind it (and its timeout/cancellation policy) is supplied
// by the host.
type Client interface {
	CreateSession(ctx context.Context, userID string, jwtPayload, sessionData map[string]interface{}) (*CreateResponse, error)
	VerifySession(ctx context.Context, accessToken, antiCsrfToken string, doAntiCsrfCheck bool) (*VerifyResponse, error)
	RefreshSession(ctx context.Context, refreshToken, antiCsrfToken string) (*RefreshResponse, error)

	RevokeSessions(ctx context.Context, sessionHandles []string) ([]string, error)
	ListSessionHandles(ctx context.Context, userID string) ([]string, error)
	GetSessionData(ctx context.Context, sessionHandle string) (map[string]interface{}, error)
	SetSessionData(ctx context.Context, sessionHandle string, data map[string]interface{}) error
	GetJWTPayload(ctx context.Context, sessionHandle string) (map[string]interface{}, error)
	SetJWTPayload(ctx context.Context, sessionHandle string, payload map[string]interface{}) error
}
