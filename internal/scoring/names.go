package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNameLength is the longest label a player or side may carry, in runes.
const MaxNameLength = 12

// NormalizeName trims whitespace and truncates to MaxNameLength runes.
// A blank name yields fallback instead.
func NormalizeName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(fallback)
	}
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	return string([]rune(name)[:MaxNameLength])
}

// Placeholder renders a numbered default name from a format such as
// "PLAYER %d". Formats without a verb get the number appended.
func Placeholder(format string, n int) string {
	if format == "" {
		format = "PLAYER %d"
	}
	if !strings.Contains(format, "%d") {
		return NormalizeName(fmt.Sprintf("%s %d", format, n), "")
	}
	return NormalizeName(fmt.Sprintf(format, n), "")
}

// NewID returns a fresh player identifier. IDs are never reused.
func NewID() string {
	return uuid.NewString()
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
