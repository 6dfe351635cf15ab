package azauth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ggoodman/azauth-go/internal/challenge"
)

// ExtractClaimsChallenge pulls the claims directive out of a WWW-Authenticate
// header. It returns "" when the header carries zero or multiple challenges,
// or when the single challenge has no claims parameter. Challenge encoding
// strips base64 padding, so the value is re-padded to a multiple of four
// characters before it is returned.
func ExtractClaimsChallenge(header string) string {
	challenges := challenge.Parse(header)
	if len(challenges) != 1 {
		return ""
	}
	claims, ok := challenges[0].Parameters["claims"]
	if !ok {
		return ""
	}
	if rem := len(claims) % 4; rem != 0 {
		claims += strings.Repeat("=", 4-rem)
	}
	return claims
}

// Handle401Response builds the recommendation to surface when a resource
// server rejects a request with 401 under Continuous Access Evaluation. Any
// claims challenge found in the response takes priority over caller-supplied
// options; without one the message degrades to a bare az login.
func Handle401Response(resp *http.Response, opts ...LoginOption) string {
	claims := ExtractClaimsChallenge(resp.Header.Get("WWW-Authenticate"))
	slog.Debug("azauth: handling 401 challenge", "has_claims", claims != "")

	if claims != "" {
		opts = append(append([]LoginOption(nil), opts...), WithClaims(claims))
	}
	return "The access token has expired or been revoked by Continuous Access Evaluation. " +
		"Silent re-authentication will be attempted in the future.\n" +
		LoginMessage(opts...)
}
