// internal/platform/validator/validator.go
package validator

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"safelink/internal/core/domain"
)

// Strict URL shape accepted by the engine: scheme://host[:port][/path...]
// with scheme http/https and host a domain name, localhost or a dotted-quad
// IPv4 address. The dotted-quad alternative only fixes the shape; the octet
// ranges are checked after parsing.
var urlShapeRegex = regexp.MustCompile(
	`^(?i)(https?)://` +
		`([a-z0-9]([a-z0-9\-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9\-]*[a-z0-9])?)*|localhost|\d{1,3}(\.\d{1,3}){3})` +
		`(:\d{1,5})?` +
		`(/[^\s]*)?$`,
)

var dottedQuadRegex = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)

const (
	minInputLength = 4
	maxRepeatedRun = 5 // a 6th identical consecutive character rejects
)

// Validation failure reasons. These are shown verbatim to end users, so
// they stay actionable rather than technical.
const (
	reasonEmpty         = "URL cannot be empty"
	reasonTooShort      = "URL is too short (minimum 4 characters)"
	reasonRepeatedRun   = "URL contains a long run of repeated characters"
	reasonMissingScheme = "URL must start with http:// or https:// (e.g. https://example.com)"
	reasonBadShape      = "URL format is invalid (expected something like https://example.com/path)"
	reasonEmptyHost     = "URL has no host"
	reasonBadHost       = "URL host must be a domain name, localhost or an IPv4 address"
)

// ValidationError carries the user-facing rejection reason and wraps the
// matching domain sentinel, so callers can branch with errors.Is while the
// message stays presentable.
type ValidationError struct {
	Reason   string
	sentinel error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap exposes the domain sentinel behind the user-facing reason.
func (e *ValidationError) Unwrap() error {
	return e.sentinel
}

func reject(reason string, sentinel error) (string, error) {
	return "", &ValidationError{Reason: reason, sentinel: sentinel}
}

// Validate normalizes and validates a raw URL string.
//
// On success it returns the canonical URL (scheme-prefixed when the input
// had none), which is the form all downstream feature extraction operates
// on. On failure it returns a human-readable reason wrapping one of the
// domain validation sentinels.
func Validate(raw string) (string, error) {
	input := strings.TrimSpace(raw)

	if input == "" {
		return reject(reasonEmpty, domain.ErrEmptyInput)
	}
	if len(input) < minInputLength {
		return reject(reasonTooShort, domain.ErrInputTooShort)
	}
	// Heuristic against random keyboard input ("aaaaaaaa", "......").
	if hasRepeatedRun(input, maxRepeatedRun+1) {
		return reject(reasonRepeatedRun, domain.ErrRepeatedInput)
	}

	canonical := input
	if !strings.Contains(input, "://") {
		// Scheme-less input is salvageable only when it plausibly is a
		// bare domain: contains a dot, no whitespace.
		if strings.Contains(input, ".") && !strings.ContainsAny(input, " \t") {
			canonical = "https://" + input
		} else {
			return reject(reasonMissingScheme, domain.ErrMissingScheme)
		}
	}

	if !urlShapeRegex.MatchString(canonical) {
		return reject(reasonBadShape, domain.ErrMalformedURL)
	}

	parsed, err := url.Parse(canonical)
	if err != nil {
		return reject(reasonBadShape, domain.ErrMalformedURL)
	}

	host := parsed.Hostname()
	if host == "" {
		return reject(reasonEmptyHost, domain.ErrEmptyHost)
	}
	if host != "localhost" && !strings.Contains(host, ".") {
		return reject(reasonBadHost, domain.ErrInvalidHost)
	}
	// A dotted-quad host must be a real IPv4 address, not 999.999.999.999.
	if dottedQuadRegex.MatchString(host) && net.ParseIP(host) == nil {
		return reject(reasonBadHost, domain.ErrInvalidHost)
	}

	return canonical, nil
}

// hasRepeatedRun reports whether s contains n or more identical
// consecutive characters. Go's regexp has no backreferences, so the
// classic (.)\1{n-1} pattern is expressed as a scan.
func hasRepeatedRun(s string, n int) bool {
	if n <= 1 {
		return len(s) > 0
	}
	run := 1
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}
