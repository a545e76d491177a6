// Package tokenx normalizes and inspects bearer tokens.
//
// Tokens arrive from the auth endpoint as raw response text and may be
// wrapped in quotes or padded with whitespace. Every token that is stored
// or placed in an Authorization header must first pass through Sanitize
// and the structural checks below; a token failing them is treated as
// absent, never partially used.
//
// Claim decoding here deliberately skips signature verification: the user
// id from the payload is routing/display data only, and the GraphQL server
// re-validates the token on every call.
package tokenx

import (
	"strings"
	"unicode"
)

// MinTokenLength is the shortest response body accepted as a token by the
// credential exchange.
const MinTokenLength = 20

// Sanitize normalizes a raw token string: surrounding whitespace is
// trimmed, matching leading/trailing quote pairs (single or double) are
// stripped, and any remaining whitespace is removed entirely, embedded
// whitespace included.
//
// Sanitize is pure and idempotent: Sanitize(Sanitize(s)) == Sanitize(s)
// for every input, quoted, nested-quoted or already clean.
func Sanitize(value string) string {
	cleaned := strings.TrimSpace(value)

	// Re-trim after every peel: a quote layer may pad its inner layer
	// with whitespace, and leaving that padding in place would let the
	// whitespace removal below expose a fresh strippable pair.
	for len(cleaned) > 1 {
		double := strings.HasPrefix(cleaned, `"`) && strings.HasSuffix(cleaned, `"`)
		single := strings.HasPrefix(cleaned, `'`) && strings.HasSuffix(cleaned, `'`)
		if !double && !single {
			break
		}
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)
}

// IsWellFormed reports whether s has the three-segment dot-delimited shape
// (header.payload.signature) required of every token used for authorization.
func IsWellFormed(s string) bool {
	return s != "" && strings.Count(s, ".") == 2
}

// LooksLikeToken applies the stricter credential-exchange validation:
// well-formed and at least MinTokenLength characters long.
func LooksLikeToken(s string) bool {
	return len(s) >= MinTokenLength && IsWellFormed(s)
}
