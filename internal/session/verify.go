package session

import (
	"context"
	"time"

	"github.com/sessiongate/sessiongate-go/internal/authority"
	"github.com/sessiongate/sessiongate-go/internal/keycache"
	"github.com/sessiongate/sessiongate-go/internal/tokens"
	"github.com/sessiongate/sessiongate-go/pkg/logger"
	"github.com/sessiongate/sessiongate-go/pkg/metrics"
)

// GetSession verifies an access token, locally when possible. The call is
// answered without contacting the authority only when the signing key is
// fresh, the token decodes and verifies, anti-CSRF passes, the token is
// unexpired, carries no refresh lineage, and blacklisting is disabled.
// Everything inconclusive escalates to the authority; anti-CSRF failures
// are decisive local rejections.
func (s *Service) GetSession(ctx context.Context, accessToken, antiCsrfToken string, doAntiCsrfCheck bool) (*SessionView, error) {
	antiCsrfActive := doAntiCsrfCheck && s.cfg.AntiCSRFEnabled

	var claims *tokens.AccessTokenClaims
	escalateReason := ""

	key, keyOK := s.keys.Current(ctx)
	if !keyOK {
		// a stale local key can never back an authoritative accept
		escalateReason = "stale_key"
	} else {
		c, err := tokens.VerifyAccessToken(accessToken, key.PublicKey, antiCsrfActive)
		if err != nil {
			// the key might have rotated since the token was issued;
			// the authority is the final arbiter
			logger.Debugf("local token verification failed, escalating: %v", err)
			escalateReason = "decode_failed"
		} else {
			claims = c
		}
	}

	if claims != nil {
		if antiCsrfActive {
			if antiCsrfToken == "" {
				metrics.VerifyRejected.WithLabelValues("try_refresh").Inc()
				return nil, &TryRefreshTokenError{Msg: "anti-csrf token missing, or the anti-csrf check should be disabled for this call"}
			}
			if antiCsrfToken != claims.AntiCsrfToken {
				metrics.VerifyRejected.WithLabelValues("try_refresh").Inc()
				return nil, &TryRefreshTokenError{Msg: "anti-csrf check failed"}
			}
		}

		switch {
		case time.Now().UnixMilli() >= claims.ExpiresAt:
			escalateReason = "expired"
		case claims.ParentRefreshTokenHash1 != "":
			// tokens born from a refresh must be confirmed against the
			// authority's revocation state
			escalateReason = "refresh_lineage"
		case s.cfg.AccessTokenBlacklisting:
			escalateReason = "blacklisting"
		default:
			metrics.VerifyLocalAccepted.Inc()
			return &SessionView{
				Handle:        claims.SessionHandle,
				UserID:        claims.UserID,
				UserDataInJWT: claims.UserData,
			}, nil
		}
	}

	metrics.VerifyEscalated.WithLabelValues(escalateReason).Inc()
	resp, err := s.authority.VerifySession(ctx, accessToken, antiCsrfToken, doAntiCsrfCheck)
	if err != nil {
		return nil, &GeneralError{Msg: "session authority verify call failed", Err: err}
	}

	switch resp.Status {
	case authority.StatusOK:
		s.updateSigningKey(ctx, resp.Key)
		view := viewFromSession(resp.Session)
		view.AccessToken = resp.AccessToken
		return view, nil
	case authority.StatusUnauthorised:
		metrics.VerifyRejected.WithLabelValues("unauthorised").Inc()
		return nil, &UnauthorisedError{Msg: resp.Message}
	default:
		metrics.VerifyRejected.WithLabelValues("try_refresh").Inc()
		return nil, &TryRefreshTokenError{Msg: resp.Message}
	}
}

// updateSigningKey stores key material piggybacked on an authority
// response. Last write wins; any authority-issued key is valid.
func (s *Service) updateSigningKey(ctx context.Context, key *authority.KeyInfo) {
	if key == nil || key.PublicKey == "" {
		return
	}
	info := keycache.KeyInfo{PublicKey: key.PublicKey, ExpiresAt: key.ExpiresAt}
	if err := s.keys.Update(ctx, info); err != nil {
		logger.Warnf("signing key cache update failed: %v", err)
		return
	}
	metrics.SigningKeyUpdated.Inc()
}
