package rules

import "strings"

// Wildcard is the pattern that matches any learned address.
const Wildcard = "*"

const (
	ouiLength     = 6
	addressLength = 12
)

var delimiterReplacer = strings.NewReplacer(":", "", ".", "", "-", "")

// Normalize canonicalizes a hardware address or pattern: the delimiters
// ":", "." and "-" are removed, surrounding whitespace is trimmed and the
// result is lowercased. No validation is performed; malformed input passes
// through unchanged and simply never matches anything.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(delimiterReplacer.Replace(addr)))
}

// OUI returns the vendor prefix (first 6 hex digits) of a normalized address.
// Addresses shorter than the prefix length are returned as-is.
func OUI(normalized string) string {
	if len(normalized) < ouiLength {
		return normalized
	}
	return normalized[:ouiLength]
}
