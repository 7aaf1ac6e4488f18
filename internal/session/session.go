package session

import (
	"github.com/sessiongate/sessiongate-go/internal/authority"
	"github.com/sessiongate/sessiongate-go/internal/config"
	"github.com/sessiongate/sessiongate-go/internal/keycache"
)

// SessionView is the per-call result of verification or refresh. On the
// local fast path only handle, user and payload are set; on the escalated
// and refresh paths the authority may attach rotated tokens. Never cached.
type SessionView struct {
	Handle        string                 `json:"handle"`
	UserID        string                 `json:"userId"`
	UserDataInJWT map[string]interface{} `json:"userDataInJWT"`

	AccessToken    *authority.TokenInfo `json:"accessToken,omitempty"`
	RefreshToken   *authority.TokenInfo `json:"refreshToken,omitempty"`
	IDRefreshToken *authority.TokenInfo `json:"idRefreshToken,omitempty"`
	AntiCsrfToken  string               `json:"antiCsrfToken,omitempty"`
}

// Service is the session-verification core: local verification with
// escalation to the remote authority, refresh-token rotation, and the
// forwarding surface for session management calls.
type Service struct {
	authority authority.Client
	keys      keycache.Cache
	cfg       config.SessionConfig
}

func NewService(client authority.Client, keys keycache.Cache, cfg config.SessionConfig) *Service {
	return &Service{authority: client, keys: keys, cfg: cfg}
}

func viewFromSession(s authority.SessionInfo) *SessionView {
	authority.NormalizeSession(&s)
	return &SessionView{
		Handle:        s.Handle,
		UserID:        s.UserID,
		UserDataInJWT: s.UserDataInJWT,
	}
}
