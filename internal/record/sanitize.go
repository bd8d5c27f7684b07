package record

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SanitizeName prepares a team name for embedding in the overlay filter
// language: NFC-normalized, apostrophes stripped, colons escaped. Idempotent,
// so already-sanitized input passes through unchanged.
func SanitizeName(name string) string {
	s := norm.NFC.String(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "'", "")
	// Unescape first so a second pass does not double the backslashes.
	s = strings.ReplaceAll(s, `\:`, ":")
	s = strings.ReplaceAll(s, ":", `\:`)
	return s
}
