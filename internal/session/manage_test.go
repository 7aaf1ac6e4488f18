package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sessiongate/sessiongate-go/internal/authority"
	"github.com/sessiongate/sessiongate-go/internal/config"
	"github.com/sessiongate/sessiongate-go/internal/keycache"
)

func TestCreateSession_NilPayloadRejected(t *testing.T) {
	svc := NewService(&fakeAuthority{}, keycache.NewMemoryCache(), config.SessionConfig{})
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, "u1", nil, map[string]interface{}{})
	var ge *GeneralError
	require.ErrorAs(t, err, &ge)

	_, err = svc.CreateSession(ctx, "u1", map[string]interface{}{}, nil)
	require.ErrorAs(t, err, &ge)
}

func TestCreateSession_UpdatesSigningKey(t *testing.T) {
	auth := &fakeAuthority{createResp: &authority.CreateResponse{
		Status:        authority.StatusOK,
		Session:       authority.SessionInfo{Handle: "h1", UserID: "u1"},
		AccessToken:   &authority.TokenInfo{Token: "a1"},
		RefreshToken:  &authority.TokenInfo{Token: "r1"},
		AntiCsrfToken: "csrf-1",
		Key: &authority.KeyInfo{
			PublicKey: "pem-1",
			ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
		},
	}}
	cache := keycache.NewMemoryCache()
	svc := NewService(auth, cache, config.SessionConfig{})

	view, err := svc.CreateSession(context.Background(), "u1", map[string]interface{}{}, map[string]interface{}{})
	require.NoError(t, err)
	require.Equal(t, "h1", view.Handle)
	require.Equal(t, "a1", view.AccessToken.Token)
	require.Equal(t, "r1", view.RefreshToken.Token)
	require.Equal(t, "csrf-1", view.AntiCsrfToken)
	require.NotNil(t, view.UserDataInJWT)

	got, ok := cache.Current(context.Background())
	require.True(t, ok)
	require.Equal(t, "pem-1", got.PublicKey)
}

func TestRevokeAndList_NilNormalizedToEmpty(t *testing.T) {
	svc := NewService(&fakeAuthority{}, keycache.NewMemoryCache(), config.SessionConfig{})
	ctx := context.Background()

	revoked, err := svc.RevokeSessions(ctx, []string{"h1"})
	require.NoError(t, err)
	require.NotNil(t, revoked)
	require.Empty(t, revoked)

	handles, err := svc.ListSessionHandles(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, handles)
	require.Empty(t, handles)
}

func TestSessionDataAndPayload_Forwarding(t *testing.T) {
	auth := &fakeAuthority{}
	svc := NewService(auth, keycache.NewMemoryCache(), config.SessionConfig{})
	ctx := context.Background()

	require.NoError(t, svc.SetSessionData(ctx, "h1", map[string]interface{}{"k": "v"}))
	data, err := svc.GetSessionData(ctx, "h1")
	require.NoError(t, err)
	require.Equal(t, "v", data["k"])

	require.NoError(t, svc.SetJWTPayload(ctx, "h1", map[string]interface{}{"p": 1}))
	payload, err := svc.GetJWTPayload(ctx, "h1")
	require.NoError(t, err)
	require.Equal(t, 1, payload["p"])

	var ge *GeneralError
	require.ErrorAs(t, svc.SetSessionData(ctx, "h1", nil), &ge)
	require.ErrorAs(t, svc.SetJWTPayload(ctx, "h1", nil), &ge)
}

func TestGetSessionData_NilNormalizedToEmpty(t *testing.T) {
	svc := NewService(&fakeAuthority{}, keycache.NewMemoryCache(), config.SessionConfig{})
	data, err := svc.GetSessionData(context.Background(), "h1")
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Empty(t, data)
}
