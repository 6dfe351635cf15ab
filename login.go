package azauth

import (
	"strings"

	"github.com/ggoodman/azauth-go/internal/cloudshell"
)

// LoginOption configures how login commands and remediation messages are
// composed.
type LoginOption func(*loginParams)

type loginParams struct {
	scopes         []string
	claims         string
	inCloudConsole func() bool
}

// WithScopes records the scopes the failed request was for, so the composed
// command re-requests exactly those.
func WithScopes(scopes ...string) LoginOption {
	return func(p *loginParams) {
		p.scopes = append([]string(nil), scopes...)
	}
}

// WithClaims records a claims challenge to satisfy on re-authentication.
// Claims take priority over scopes when both are set.
func WithClaims(claims string) LoginOption {
	return func(p *loginParams) { p.claims = claims }
}

// WithCloudConsoleCheck overrides the predicate deciding whether the process
// runs inside Azure Cloud Shell, where no command can be run and the portal
// session must be refreshed instead. The default probes the environment.
func WithCloudConsoleCheck(fn func() bool) LoginOption {
	return func(p *loginParams) { p.inCloudConsole = fn }
}

func applyLoginOptions(opts []LoginOption) *loginParams {
	p := &loginParams{inCloudConsole: cloudshell.InConsole}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoginCommand builds the az command a user should run to re-authenticate.
func LoginCommand(opts ...LoginOption) string {
	return applyLoginOptions(opts).loginCommand()
}

func (p *loginParams) loginCommand() string {
	// Rejected by Continuous Access Evaluation, then by Conditional Access.
	if p.claims != "" {
		return "az logout\naz login --claims " + EncodeClaims(p.claims)
	}
	// Rejected by a Conditional Access policy, like MFA.
	if len(p.scopes) > 0 {
		return "az login --scope " + strings.Join(p.scopes, " ")
	}
	return "az login"
}

// LoginMessage wraps LoginCommand in the two-paragraph remediation message
// printed when authentication fails.
func LoginMessage(opts ...LoginOption) string {
	return applyLoginOptions(opts).loginMessage()
}

func (p *loginParams) loginMessage() string {
	action := "run:\n" + p.loginCommand()
	if p.inCloudConsole() {
		action = "refresh Azure Portal."
	}
	return "To re-authenticate, please " + action +
		"\n\nIf the problem persists, please contact your tenant administrator."
}
