package tokens

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed is returned when a token cannot be parsed or lacks
	// required claims.
	ErrMalformed = errors.New("malformed access token")

	// ErrInvalidSignature is returned when the cryptographic signature
	// check fails against the provided key.
	ErrInvalidSignature = errors.New("invalid access token signature")
)

// AccessTokenClaims is the signature-verified payload of an access token.
// Immutable once decoded; produced only by VerifyAccessToken.
type AccessTokenClaims struct {
	SessionHandle           string
	UserID                  string
	UserData                map[string]interface{}
	AntiCsrfToken           string
	ParentRefreshTokenHash1 string
	ExpiresAt               int64 // unix milliseconds
}

// VerifyAccessToken parses the token, verifies its RS256 signature against
// the PEM-encoded public key, and checks structural validity. When
// requireAntiCsrf is set, a missing antiCsrfToken claim is a decode failure.
//
// Expiry is deliberately not checked here: a cryptographically valid token
// from an old key epoch must be distinguishable from a genuinely expired
// one, so expiry/staleness policy belongs to the verifier.
func VerifyAccessToken(token, publicKeyPEM string, requireAntiCsrf bool) (*AccessTokenClaims, error) {
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("%w: bad verification key: %v", ErrMalformed, err)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	claims := jwt.MapClaims{}
	_, err = parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return pub, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := &AccessTokenClaims{}
	if out.SessionHandle, err = requiredString(claims, "sessionHandle"); err != nil {
		return nil, err
	}
	if out.UserID, err = requiredString(claims, "userId"); err != nil {
		return nil, err
	}
	if out.ExpiresAt, err = requiredMillis(claims, "expiryTime"); err != nil {
		return nil, err
	}
	out.UserData = optionalMap(claims, "userDataInJWT")
	out.AntiCsrfToken = optionalString(claims, "antiCsrfToken")
	out.ParentRefreshTokenHash1 = optionalString(claims, "parentRefreshTokenHash1")

	if requireAntiCsrf && out.AntiCsrfToken == "" {
		return nil, fmt.Errorf("%w: antiCsrfToken claim missing", ErrMalformed)
	}

	return out, nil
}

func requiredString(claims jwt.MapClaims, name string) (string, error) {
	v, ok := claims[name]
	if !ok {
		return "", fmt.Errorf("%w: %s claim missing", ErrMalformed, name)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s claim is not a string", ErrMalformed, name)
	}
	return s, nil
}

func requiredMillis(claims jwt.MapClaims, name string) (int64, error) {
	v, ok := claims[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s claim missing", ErrMalformed, name)
	}
	// JSON numbers decode as float64
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return 0, fmt.Errorf("%w: %s claim is not a valid timestamp", ErrMalformed, name)
	}
	return int64(f), nil
}

func optionalString(claims jwt.MapClaims, name string) string {
	if s, ok := claims[name].(string); ok {
		return s
	}
	return ""
}

func optionalMap(claims jwt.MapClaims, name string) map[string]interface{} {
	if m, ok := claims[name].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}
