package azauth

import "errors"

// ErrAuthentication is joined into every AuthenticationError so callers can
// classify failures with errors.Is without depending on the concrete type.
var ErrAuthentication = errors.New("azauth: authentication failed")

// AuthenticationError indicates a failure the user can recover from by
// re-authenticating. It always carries a Recommendation string intended for
// terminal display; the caller owns printing and exit-code policy.
type AuthenticationError struct {
	Message        string
	Recommendation string
}

func (e *AuthenticationError) Error() string { return e.Message }

func (e *AuthenticationError) Unwrap() error { return ErrAuthentication }

// AADError converts an error payload returned by the AAD endpoint into an
// AuthenticationError. The message is the server's error_description; the
// recommendation is composed by LoginMessage with the forwarded options.
//
// Error codes can be looked up at https://login.microsoftonline.com/error.
func AADError(result *Result, opts ...LoginOption) *AuthenticationError {
	return &AuthenticationError{
		Message:        result.ErrorDescription,
		Recommendation: LoginMessage(opts...),
	}
}
