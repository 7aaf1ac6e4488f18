package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sessiongate/sessiongate-go/internal/authority"
)

// fake authority client for testing
type fakeAuthority struct {
	mu sync.Mutex

	verifyResp  *authority.VerifyResponse
	verifyErr   error
	verifyCalls int
	// verifyFn, when set, overrides verifyResp per call
	verifyFn func(call int) *authority.VerifyResponse

	refreshResp  *authority.RefreshResponse
	refreshErr   error
	refreshCalls int

	createResp *authority.CreateResponse
	createErr  error

	revoked []string
	handles []string
	data    map[string]interface{}
	payload map[string]interface{}
}

func (f *fakeAuthority) CreateSession(ctx context.Context, userID string, jwtPayload, sessionData map[string]interface{}) (*authority.CreateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResp != nil {
		return f.createResp, nil
	}
	return &authority.CreateResponse{
		Status:  authority.StatusOK,
		Session: authority.SessionInfo{Handle: uuid.NewString(), UserID: userID, UserDataInJWT: jwtPayload},
	}, nil
}

func (f *fakeAuthority) VerifySession(ctx context.Context, accessToken, antiCsrfToken string, doAntiCsrfCheck bool) (*authority.VerifyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	if f.verifyFn != nil {
		return f.verifyFn(f.verifyCalls), nil
	}
	return f.verifyResp, nil
}

func (f *fakeAuthority) RefreshSession(ctx context.Context, refreshToken, antiCsrfToken string) (*authority.RefreshResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshCalls++
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.refreshResp, nil
}

func (f *fakeAuthority) RevokeSessions(ctx context.Context, sessionHandles []string) ([]string, error) {
	return f.revoked, nil
}

func (f *fakeAuthority) ListSessionHandles(ctx context.Context, userID string) ([]string, error) {
	return f.handles, nil
}

func (f *fakeAuthority) GetSessionData(ctx context.Context, sessionHandle string) (map[string]interface{}, error) {
	return f.data, nil
}

func (f *fakeAuthority) SetSessionData(ctx context.Context, sessionHandle string, data map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = data
	return nil
}

func (f *fakeAuthority) GetJWTPayload(ctx context.Context, sessionHandle string) (map[string]interface{}, error) {
	return f.payload, nil
}

func (f *fakeAuthority) SetJWTPayload(ctx context.Context, sessionHandle string, payload map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payload = payload
	return nil
}

func (f *fakeAuthority) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.verifyCalls
}
