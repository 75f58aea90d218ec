// Package domainkey canonicalizes arbitrary URL strings into registrable
// domains (eTLD+1) for use as comment grouping keys. Normalization is
// public-suffix aware so multi-part suffixes like .co.uk resolve correctly,
// and it never touches the network.
package domainkey

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Normalize returns the registrable domain for raw, e.g.
// "https://blog.example.co.uk/x" -> "example.co.uk". It is idempotent:
// feeding its own output back returns the same string. Unclassifiable input
// yields "" rather than an error; callers treat an empty key as "no domain".
func Normalize(raw string) string {
	host := hostOf(raw)
	if host == "" {
		return ""
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return etld1
}

// hostOf extracts a bare lowercase hostname from a URL-ish string, tolerating
// missing schemes, paths, ports and trailing dots.
func hostOf(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	host := strings.TrimSuffix(u.Hostname(), ".")
	if strings.ContainsAny(host, " \t") {
		return ""
	}
	return host
}
