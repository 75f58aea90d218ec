package domainkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare domain", "example.com", "example.com"},
		{"scheme and path", "https://example.com/a/b", "example.com"},
		{"subdomain stripped", "https://blog.example.com/x", "example.com"},
		{"www stripped", "https://www.example.com", "example.com"},
		{"multi-part suffix", "https://www.example.co.uk/a/b", "example.co.uk"},
		{"deep subdomain multi-part suffix", "https://a.b.example.co.uk", "example.co.uk"},
		{"trailing slash", "http://example.com/", "example.com"},
		{"port ignored", "https://example.com:8443/x", "example.com"},
		{"uppercase host", "HTTPS://EXAMPLE.COM/PATH", "example.com"},
		{"trailing dot", "example.com.", "example.com"},
		{"query string", "https://shop.example.com/p?id=1&ref=2", "example.com"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"free text", "hello world", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"https://www.example.co.uk/a/b",
		"https://sub.shop.example.com/page",
		"example.com",
		"not a url at all",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", in)
	}
}

func TestNormalize_UnifiesURLForms(t *testing.T) {
	want := Normalize("https://shop.example.com")
	assert.Equal(t, want, Normalize("https://sub.shop.example.com/page"))
	assert.Equal(t, want, Normalize("example.com"))
	assert.Equal(t, "example.com", want)
}
