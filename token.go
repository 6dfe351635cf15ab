package azauth

import (
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// legacyExpiresOnLayout is the timestamp format ADAL-era token caches use for
// expiresOn: microsecond precision, local time, no zone designator.
const legacyExpiresOnLayout = "2006-01-02 15:04:05.000000"

// TokenEntry is the legacy (ADAL-era) access token cache entry shape still
// consumed by tooling that predates the MSAL cache format.
type TokenEntry struct {
	AccessToken string `json:"accessToken"`
	ExpiresOn   string `json:"expiresOn"`
}

// TokenEntryFromToken builds a legacy TokenEntry from a raw access token and
// its expiry as Unix seconds. The expiry is rendered in local time, matching
// what legacy consumers expect to find on disk.
func TokenEntryFromToken(accessToken string, expiresOn int64) TokenEntry {
	return TokenEntry{
		AccessToken: accessToken,
		ExpiresOn:   time.Unix(expiresOn, 0).Format(legacyExpiresOnLayout),
	}
}

// TokenEntryFromAccessToken adapts a modern SDK token to the legacy entry
// shape.
func TokenEntryFromAccessToken(tok azcore.AccessToken) TokenEntry {
	return TokenEntryFromToken(tok.Token, tok.ExpiresOn.Unix())
}
