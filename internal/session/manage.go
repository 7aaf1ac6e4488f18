package session

import (
	"context"

	"github.com/sessiongate/sessiongate-go/internal/authority"
)

// Session management calls. These are pure forwarding to the authority;
// the only local work is argument validation and boundary normalization.

// CreateSession asks the authority to mint a new session for the user.
// jwtPayload and sessionData must be non-nil; pass an empty map when
// there is nothing to store.
func (s *Service) CreateSession(ctx context.Context, userID string, jwtPayload, sessionData map[string]interface{}) (*SessionView, error) {
	if jwtPayload == nil {
		return nil, &GeneralError{Msg: "jwtPayload must not be nil; pass an empty map instead"}
	}
	if sessionData == nil {
		return nil, &GeneralError{Msg: "sessionData must not be nil; pass an empty map instead"}
	}

	resp, err := s.authority.CreateSession(ctx, userID, jwtPayload, sessionData)
	if err != nil {
		return nil, &GeneralError{Msg: "session authority create call failed", Err: err}
	}
	if resp.Status != authority.StatusOK {
		return nil, &GeneralError{Msg: "session creation failed: " + resp.Message}
	}

	s.updateSigningKey(ctx, resp.Key)

	view := viewFromSession(resp.Session)
	view.AccessToken = resp.AccessToken
	view.RefreshToken = resp.RefreshToken
	view.IDRefreshToken = resp.IDRefreshToken
	view.AntiCsrfToken = resp.AntiCsrfToken
	return view, nil
}

// RevokeSessions terminates the given sessions and returns the handles
// the authority actually revoked.
func (s *Service) RevokeSessions(ctx context.Context, sessionHandles []string) ([]string, error) {
	revoked, err := s.authority.RevokeSessions(ctx, sessionHandles)
	if err != nil {
		return nil, &GeneralError{Msg: "session authority revoke call failed", Err: err}
	}
	if revoked == nil {
		revoked = []string{}
	}
	return revoked, nil
}

// ListSessionHandles returns all live session handles for the user.
func (s *Service) ListSessionHandles(ctx context.Context, userID string) ([]string, error) {
	handles, err := s.authority.ListSessionHandles(ctx, userID)
	if err != nil {
		return nil, &GeneralError{Msg: "session authority list call failed", Err: err}
	}
	if handles == nil {
		handles = []string{}
	}
	return handles, nil
}

func (s *Service) GetSessionData(ctx context.Context, sessionHandle string) (map[string]interface{}, error) {
	data, err := s.authority.GetSessionData(ctx, sessionHandle)
	if err != nil {
		return nil, &GeneralError{Msg: "session authority get-data call failed", Err: err}
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return data, nil
}

func (s *Service) SetSessionData(ctx context.Context, sessionHandle string, data map[string]interface{}) error {
	if data == nil {
		return &GeneralError{Msg: "data must not be nil; pass an empty map instead"}
	}
	if err := s.authority.SetSessionData(ctx, sessionHandle, data); err != nil {
		return &GeneralError{Msg: "session authority set-data call failed", Err: err}
	}
	return nil
}

func (s *Service) GetJWTPayload(ctx context.Context, sessionHandle string) (map[string]interface{}, error) {
	payload, err := s.authority.GetJWTPayload(ctx, sessionHandle)
	if err != nil {
		return nil, &GeneralError{Msg: "session authority get-payload call failed", Err: err}
	}
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return payload, nil
}

func (s *Service) SetJWTPayload(ctx context.Context, sessionHandle string, payload map[string]interface{}) error {
	if payload == nil {
		return &GeneralError{Msg: "payload must not be nil; pass an empty map instead"}
	}
	if err := s.authority.SetJWTPayload(ctx, sessionHandle, payload); err != nil {
		return &GeneralError{Msg: "session authority set-payload call failed", Err: err}
	}
	return nil
}
