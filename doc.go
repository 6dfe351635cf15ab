// Package azauth bridges two generations of Azure identity tooling for
// az-style CLIs: the legacy ADAL resource-based authorization model and the
// modern MSAL scope-based model. It converts between the two token formats,
// decodes token claims, and composes the human-readable remediation messages
// a CLI prints when authentication fails.
//
// Every function here is a stateless, leaf-level transformation. Token
// acquisition and caching, the HTTP transport, and the CLI's error
// presentation all live elsewhere; this package only translates between
// their shapes. All functions are safe for concurrent use.
//
// # Resources and scopes
//
// ADAL identified an authorization target by a resource ID (a URL-like
// string); MSAL uses scopes derived from the resource plus a fixed suffix.
// ResourceToScopes and ScopesToResource convert between the two. Trailing
// slashes are semantically significant and are preserved exactly, so the
// conversion round-trips:
//
//	ScopesToResource(ResourceToScopes("https://management.azure.com/"))
//	// == "https://management.azure.com/"
//
// # Classifying acquisition results
//
// CheckResult inspects a token acquisition Result and either returns the
// normalized user identity, returns nil for flows with no user (client
// credentials), or returns an *AuthenticationError carrying a remediation
// recommendation built by LoginMessage:
//
//	identity, err := azauth.CheckResult(result, azauth.WithScopes(scopes...))
//	if errors.Is(err, azauth.ErrAuthentication) { /* print recommendation, exit */ }
//
// # Continuous Access Evaluation
//
// When a resource server revokes a token mid-session it returns 401 with a
// claims challenge in the WWW-Authenticate header. ExtractClaimsChallenge
// recovers the challenge and Handle401Response turns it into a message
// telling the user to log in again with those claims.
package azauth
