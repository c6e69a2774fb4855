package staff

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

const canonicalIDLen = 8

var (
	parenPattern     = regexp.MustCompile(`[（(\[].*?[）)\]]`)
	digitSpacePatten = regexp.MustCompile(`[\d\s\x{3000}]+`)
	symbolPattern    = regexp.MustCompile(`[^\p{L}\p{N}]`)
)

// NormalizeName reduces a display name to a comparable key. The homepage
// decorates names with counters and half-width katakana while the roster
// stores plain hiragana, so both sides must be folded before matching:
// width folding, parenthetical suffixes and digits stripped, symbols removed,
// katakana converted to hiragana ("ミカ（12）" -> "みか").
func NormalizeName(raw string) string {
	if raw == "" {
		return ""
	}
	s := width.Fold.String(raw)
	s = parenPattern.ReplaceAllString(s, "")
	s = digitSpacePatten.ReplaceAllString(s, "")
	s = symbolPattern.ReplaceAllString(s, "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CanonicalID zero-pads a staff identifier to the fixed 8-character form
// ("600037" -> "00600037"). Already-canonical values pass through.
func CanonicalID(raw string) string {
	id := strings.TrimSpace(raw)
	for len(id) < canonicalIDLen {
		id = "0" + id
	}
	return id
}

// IsCanonical reports whether raw is already an 8-digit numeric identifier.
func IsCanonical(raw string) bool {
	if len(raw) != canonicalIDLen {
		return false
	}
	return IsNumeric(raw)
}

func IsNumeric(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
