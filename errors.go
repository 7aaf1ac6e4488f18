package sessiongate

import "github.com/sessiongate/sessiongate-go/internal/session"

// TryRefreshTokenError: the caller must run the refresh flow and retry.
type TryRefreshTokenError = session.TryRefreshTokenError

// UnauthorisedError: the session is invalid, expired or revoked; treat
// the user as logged out.
type UnauthorisedError = session.UnauthorisedError

// TokenTheftDetectedError: the authority saw reuse of a superseded
// refresh token. Callers are expected to revoke all sessions for the
// reported user.
type TokenTheftDetectedError = session.TokenTheftDetectedError

// GeneralError: configuration, usage or transport-level failure.
type GeneralError = session.GeneralError
