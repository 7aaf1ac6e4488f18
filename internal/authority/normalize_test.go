package authority

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTokenPayload_MissingDomain(t *testing.T) {
	obj := map[string]interface{}{"token": "t1", "expiry": float64(123)}
	got := NormalizeTokenPayload(obj)

	v, ok := got["domain"]
	require.True(t, ok, "domain key must be present after normalization")
	require.Nil(t, v)
}

func TestNormalizeTokenPayload_ExistingDomainUntouched(t *testing.T) {
	obj := map[string]interface{}{"token": "t1", "domain": "example.com"}
	got := NormalizeTokenPayload(obj)
	require.Equal(t, "example.com", got["domain"])
}

// Applying normalization twice must equal applying it once.
func TestNormalizeResponsePayload_Idempotent(t *testing.T) {
	resp := map[string]interface{}{
		"status":       "OK",
		"accessToken":  map[string]interface{}{"token": "a"},
		"refreshToken": map[string]interface{}{"token": "r", "domain": "example.com"},
	}
	once := NormalizeResponsePayload(resp)
	onceJSON, err := json.Marshal(once)
	require.NoError(t, err)

	twice := NormalizeResponsePayload(once)
	twiceJSON, err := json.Marshal(twice)
	require.NoError(t, err)

	require.JSONEq(t, string(onceJSON), string(twiceJSON))

	at := twice["accessToken"].(map[string]interface{})
	require.Contains(t, at, "domain")
	require.Nil(t, at["domain"])
	rt := twice["refreshToken"].(map[string]interface{})
	require.Equal(t, "example.com", rt["domain"])
}

func TestNormalizeResponsePayload_NoTokens(t *testing.T) {
	resp := map[string]interface{}{"status": "UNAUTHORISED", "message": "session expired"}
	got := NormalizeResponsePayload(resp)
	require.NotContains(t, got, "accessToken")
}

// A marshalled TokenInfo always carries an explicit domain, null when unset.
func TestTokenInfo_MarshalExplicitNullDomain(t *testing.T) {
	b, err := json.Marshal(TokenInfo{Token: "t1"})
	require.NoError(t, err)
	require.Contains(t, string(b), `"domain":null`)
}

func TestNormalizeSession_NilUserData(t *testing.T) {
	s := SessionInfo{Handle: "h1", UserID: "u1"}
	NormalizeSession(&s)
	require.NotNil(t, s.UserDataInJWT)
	require.Empty(t, s.UserDataInJWT)

	// idempotent, does not clobber existing data
	s.UserDataInJWT["k"] = "v"
	NormalizeSession(&s)
	require.Equal(t, "v", s.UserDataInJWT["k"])
}
