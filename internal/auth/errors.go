package auth

import "errors"

var ErrInvalidToken = errors.New("invalid token")

type ErrorType string

const (
	// TypeCredentialsSignin marks failures the user can correct:
	// unknown email or wrong password.
	TypeCredentialsSignin ErrorType = "CredentialsSignin"
	// TypeCallbackRoute marks classified failures inside the sign-in
	// flow itself, such as session token minting.
	TypeCallbackRoute ErrorType = "CallbackRouteError"
)

// Error is the classified authentication failure family. Anything not
// wrapped in it is treated as an infrastructure failure by callers.
type Error struct {
	Type ErrorType
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Type) + ": " + e.Err.Error()
	}
	return string(e.Type)
}

func (e *Error) Unwrap() error { return e.Err }
