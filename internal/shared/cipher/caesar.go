package cipher

import (
	"strconv"
	"strings"
)

// Caesar сдвигает каждую латинскую букву на shift позиций по алфавиту с сохранением регистра.
// Остальные символы (цифры, пунктуация, пробелы) не меняются.
// Допустим любой целый сдвиг, включая отрицательный и больше 26.
func Caesar(text string, shift int, dir Direction) string {
	s := rune(((shift % 26) + 26) % 26)
	if dir == Decrypt {
		s = (26 - s) % 26
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+s)%26
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+s)%26
		}
		return r
	}, text)
}

// CaesarKey — вариант Caesar со строковым ключом.
// Если ключ не целое число, возвращает ErrInvalidKey.
func CaesarKey(text, key string, dir Direction) (string, error) {
	shift, err := parseIntKey(key)
	if err != nil {
		return "", err
	}
	return Caesar(text, shift, dir), nil
}

// parseIntKey разбирает числовой ключ (пробелы по краям игнорируются).
func parseIntKey(key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, ErrInvalidKey
	}
	return n, nil
}
