package azauth

import (
	"errors"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/public"
)

// Result is the token response shape produced by an MSAL acquire-token call.
// Exactly one of the error fields or the token fields is populated; user
// flows additionally carry ID token claims.
type Result struct {
	AccessToken      string         `json:"access_token,omitempty"`
	Error            string         `json:"error,omitempty"`
	ErrorDescription string         `json:"error_description,omitempty"`
	IDTokenClaims    *IDTokenClaims `json:"id_token_claims,omitempty"`
}

// IDTokenClaims is the subset of ID token claims this package reads. AAD
// issues "preferred_username"; ADFS issues "upn".
type IDTokenClaims struct {
	PreferredUsername string `json:"preferred_username,omitempty"`
	UPN               string `json:"upn,omitempty"`
	TenantID          string `json:"tid,omitempty"`
}

// UserIdentity is the normalized identity extracted from a user flow Result.
type UserIdentity struct {
	Username string `json:"username"`
	TenantID string `json:"tenantId"`
}

// CheckResult classifies a token acquisition result.
//
// A nil or zero result means no token was found and yields an
// *AuthenticationError. A result carrying a server error is converted via
// AADError, with the options forwarded into the remediation message. A user
// flow result yields the normalized identity, preferring preferred_username
// over upn. A result with a token but no ID token claims (client credential
// flows) yields (nil, nil): there is no user identity to report.
//
// Missing claims that should be present (neither username claim, or no tid)
// surface as plain errors, not AuthenticationError.
func CheckResult(result *Result, opts ...LoginOption) (*UserIdentity, error) {
	if result == nil || *result == (Result{}) {
		return nil, &AuthenticationError{
			Message:        "Can't find token from MSAL cache.",
			Recommendation: "To re-authenticate, please run:\naz login",
		}
	}

	if result.Error != "" {
		return nil, AADError(result, opts...)
	}

	if idt := result.IDTokenClaims; idt != nil {
		username := idt.PreferredUsername
		if username == "" {
			username = idt.UPN
		}
		if username == "" {
			return nil, errors.New(`id_token_claims has neither "preferred_username" nor "upn"`)
		}
		if idt.TenantID == "" {
			return nil, errors.New(`id_token_claims has no "tid"`)
		}
		return &UserIdentity{Username: username, TenantID: idt.TenantID}, nil
	}

	return nil, nil
}

// ResultFromAuthResult adapts an MSAL for Go AuthResult to a Result. MSAL for
// Go surfaces server errors as call errors rather than in-band, so only the
// token and claims fields are populated.
func ResultFromAuthResult(ar public.AuthResult) *Result {
	result := &Result{AccessToken: ar.AccessToken}
	if !ar.IDToken.IsZero() {
		result.IDTokenClaims = &IDTokenClaims{
			PreferredUsername: ar.IDToken.PreferredUsername,
			UPN:               ar.IDToken.UPN,
			TenantID:          ar.IDToken.TenantID,
		}
	}
	return result
}
