package level

import "strings"

// ValidChar reports whether the pixel font can draw r.
func ValidChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(" _?!*:-+/()[].,'", r)
}

// SanitizeName uppercases s, drops characters the font cannot draw and
// truncates the result to NameLen.
func SanitizeName(s string) string {
	out := make([]rune, 0, NameLen)
	for _, r := range strings.ToUpper(s) {
		if len(out) == NameLen {
			break
		}
		if ValidChar(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
