package query_test

import (
	"testing"

	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already bare", "example.com", "example.com"},
		{"uppercase", "EXAMPLE.COM", "example.com"},
		{"scheme stripped", "https://example.com", "example.com"},
		{"http scheme stripped", "http://example.com", "example.com"},
		{"www stripped", "www.example.com", "example.com"},
		{"trailing slash stripped", "example.com/", "example.com"},
		{"path dropped", "example.com/login/reset", "example.com"},
		{"port dropped", "example.com:8443", "example.com"},
		{"everything at once", "HTTPS://WWW.Api.Example.com/v1", "api.example.com"},
		{"scheme www port path", "https://www.shop.example.com:443/cart", "shop.example.com"},
		{"subdomain kept", "app.example.com", "app.example.com"},
		{"www only in middle kept", "login.www-portal.com", "login.www-portal.com"},
		{"idn converted to punycode", "münchen.de", "xn--mnchen-3ya.de"},
		{"wildcard value passes through", "*.example.com", "*.example.com"},
		{"whitespace trimmed", "  example.com  ", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.NormalizeDomain(tt.in))
		})
	}
}

func TestNormalizeDomainStripsOneTrailingSlashBeforeCut(t *testing.T) {
	// The slash strip happens before the path cut, so a bare host with a
	// trailing slash does not lose its last label.
	assert.Equal(t, "example.com", query.NormalizeDomain("https://example.com/"))
}
