package factcheck

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// urlPattern is a deliberately strict anchored test: http(s) scheme, optional
// www., a host with at least one dot, then optional path/query characters.
// It is a gate for prompt selection, not a general-purpose URL parser.
var urlPattern = regexp.MustCompile(`(?i)^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

// IsURL reports whether content looks like an http(s) URL. The scheme match
// is case-insensitive.
func IsURL(content string) bool {
	return urlPattern.MatchString(content)
}

// ValidateContent accepts content that is either a well-formed http(s) URL or
// non-empty trimmed text. Anything else is a validation failure.
func ValidateContent(content string) error {
	if IsURL(content) {
		return nil
	}
	if strings.TrimSpace(content) != "" {
		return nil
	}
	return eris.Wrap(ErrValidation, "content must be either a valid URL or non-empty text")
}
