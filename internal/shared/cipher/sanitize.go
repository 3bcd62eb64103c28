package cipher

import "strings"

// Sanitize оставляет в строке только латинские буквы, переводя их в верхний регистр.
// При foldJ буква J заменяется на I (нужно для Playfair).
func Sanitize(s string, foldJ bool) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		if foldJ && c == 'J' {
			c = 'I'
		}
		b.WriteByte(c)
	}
	return b.String()
}
