package session

import "fmt"

// TryRefreshTokenError is decisive but non-fatal: the caller must run the
// refresh flow and retry. Raised for anti-CSRF failures and for
// inconclusive authority responses.
type TryRefreshTokenError struct {
	Msg string
}

func (e *TryRefreshTokenError) Error() string {
	return "try refresh token: " + e.Msg
}

// UnauthorisedError means the session is genuinely invalid, expired or
// revoked; the caller must treat the user as logged out.
type UnauthorisedError struct {
	Msg string
}

func (e *UnauthorisedError) Error() string {
	return "unauthorised: " + e.Msg
}

// TokenTheftDetectedError is raised only from the refresh flow when the
// authority reports reuse of a superseded refresh token. It is a security
// event, not a routine auth failure; the caller is expected to revoke all
// sessions for the user.
type TokenTheftDetectedError struct {
	UserID        string
	SessionHandle string
}

func (e *TokenTheftDetectedError) Error() string {
	return fmt.Sprintf("token theft detected for user %s (session %s)", e.UserID, e.SessionHandle)
}

// GeneralError covers configuration, usage and transport-level problems;
// these are programming errors, not session-state outcomes.
type GeneralError struct {
	Msg string
	Err error
}

func (e *GeneralError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *GeneralError) Unwrap() error { return e.Err }
