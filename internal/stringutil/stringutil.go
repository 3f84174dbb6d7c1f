package stringutil

import (
	"strings"
	"unicode"
)

func PascalToSnake(s string) string {
	var b strings.Builder

	r := []rune(s)

	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(c))
		} else {
			b.WriteRune(c)
		}
	}

	return b.String()
}

func LooksTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "on", "enabled", "enable":
		return true
	default:
		return false
	}
}

func LooksFalse(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "no", "0", "off", "disabled", "disable":
		return true
	default:
		return false
	}
}
