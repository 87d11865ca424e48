package query

import (
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeDomain reduces a domain-like string to a bare lowercase host:
// scheme, www. prefix, trailing slash, port, and path are stripped.
//
//	HTTPS://WWW.Api.Example.com:8443/v1 -> api.example.com
//
// Internationalized hostnames are converted to their ASCII (punycode)
// form so they compare equal to what crawlers and browsers store. Values
// that are not valid hostnames (wildcards, bare keywords) pass through
// unchanged apart from the string normalization above.
func NormalizeDomain(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSuffix(s, "/")

	// Truncate at the first path or port separator.
	if i := strings.IndexAny(s, "/:"); i >= 0 {
		s = s[:i]
	}

	if ascii, err := idna.Lookup.ToASCII(s); err == nil {
		return ascii
	}
	return s
}
