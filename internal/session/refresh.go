package session

import (
	"context"

	"github.com/sessiongate/sessiongate-go/internal/authority"
	"github.com/sessiongate/sessiongate-go/pkg/logger"
	"github.com/sessiongate/sessiongate-go/pkg/metrics"
)

// RefreshSession executes the rotation protocol against the authority.
// Always a remote call: rotation outcomes exist only on the authority side.
//
// Any response that is neither OK nor UNAUTHORISED means the authority saw
// a refresh token whose lineage has already advanced, i.e. a stolen or
// replayed token. That is surfaced as TokenTheftDetectedError; revoking
// the user's sessions is up to the caller.
func (s *Service) RefreshSession(ctx context.Context, refreshToken, antiCsrfToken string) (*SessionView, error) {
	resp, err := s.authority.RefreshSession(ctx, refreshToken, antiCsrfToken)
	if err != nil {
		return nil, &GeneralError{Msg: "session authority refresh call failed", Err: err}
	}

	metrics.RefreshOutcome.WithLabelValues(string(resp.Status)).Inc()

	switch resp.Status {
	case authority.StatusOK:
		view := viewFromSession(resp.Session)
		view.AccessToken = resp.AccessToken
		view.RefreshToken = resp.RefreshToken
		view.IDRefreshToken = resp.IDRefreshToken
		view.AntiCsrfToken = resp.AntiCsrfToken
		return view, nil
	case authority.StatusUnauthorised:
		return nil, &UnauthorisedError{Msg: resp.Message}
	default:
		metrics.TokenTheftDetected.Inc()
		logger.Warnf("token theft detected: user=%s session=%s", resp.UserID, resp.SessionHandle)
		return nil, &TokenTheftDetectedError{
			UserID:        resp.UserID,
			SessionHandle: resp.SessionHandle,
		}
	}
}
