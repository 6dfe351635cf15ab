package azauth

import "strings"

// scopeSuffixes are the fixed suffixes MSAL appends to an ADAL resource ID.
// Order matters: ".default" is the modern form, "user_impersonation" the
// ADAL-era delegated permission name.
var scopeSuffixes = []string{"/.default", "/user_impersonation"}

// ResourceToScopes converts an ADAL resource ID to MSAL scopes by appending
// the /.default suffix. For example:
//
//	"https://management.core.windows.net/" -> ["https://management.core.windows.net//.default"]
//	"https://managedhsm.azure.com" -> ["https://managedhsm.azure.com/.default"]
//
// A trailing slash on the resource is significant and must not be trimmed:
// the scope for https://management.azure.com/ is
// https://management.azure.com//.default, double slash included.
func ResourceToScopes(resource string) []string {
	return []string{resource + "/.default"}
}

// ScopesToResource converts MSAL scopes back to an ADAL resource ID by
// stripping a trailing /.default or /user_impersonation suffix from the
// first scope. A scope with neither suffix is returned unchanged.
//
// Only the first element is inspected; callers must pass a non-empty,
// single-purpose scope list.
func ScopesToResource(scopes []string) string {
	scope := scopes[0]
	for _, suffix := range scopeSuffixes {
		if strings.HasSuffix(scope, suffix) {
			return scope[:len(scope)-len(suffix)]
		}
	}
	return scope
}
