package reports

import (
	"fmt"
	"strings"
)

const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 15
)

// Normalize strips every non-digit character, producing the canonical key.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid reports whether raw carries between 10 and 15 digits.
func IsValid(raw string) bool {
	n := len(Normalize(raw))
	return n >= MinPhoneDigits && n <= MaxPhoneDigits
}

// Format groups the digits of raw for display. It never affects storage keys.
func Format(raw string) string {
	d := Normalize(raw)
	n := len(d)

	switch {
	case n == 0:
		return ""
	case n <= 3:
		return d
	case n <= 6:
		return fmt.Sprintf("(%s) %s", d[:3], d[3:])
	case n <= 10:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	case n == 11 && d[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", d[1:4], d[4:7], d[7:])
	default:
		national := d[n-10:]
		return fmt.Sprintf("+%s (%s) %s-%s", d[:n-10], national[:3], national[3:6], national[6:])
	}
}
