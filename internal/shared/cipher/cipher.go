// Package cipher содержит движок классических шифров:
// Цезарь, Rail Fence, столбцовая перестановка (по ключевому слову) и Playfair.
//
// Все функции пакета чистые: не имеют общего состояния, не пишут логи
// и безопасны для конкурентного вызова. Ошибки возвращаются как sentinel-значения
// (ErrInvalidKey, ErrCharacterNotFound и т.д.), их можно различать через errors.Is.
//
// Пакет не претендует на криптостойкость: все алгоритмы исторические и тривиально взламываются.
package cipher

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Ключ не подходит выбранному шифру (не число, rails < 2, пустой ключ после очистки,
	// нечётная длина входа при расшифровке Playfair)
	ErrInvalidKey = errors.New("invalid key")
	// Буква не найдена в матрице Playfair, при корректной матрице недостижимо
	ErrCharacterNotFound = errors.New("character not found in playfair matrix")
	// Неизвестный тип шифра
	ErrUnknownCipher = errors.New("unknown cipher")
	// Неизвестное направление
	ErrUnknownDirection = errors.New("unknown direction")
)

// Kind — тип шифра. Определяет формат ключа и алгоритм.
type Kind string

const (
	KindCaesar        Kind = "caesar"
	KindRailFence     Kind = "railfence"
	KindTransposition Kind = "transposition"
	KindPlayfair      Kind = "playfair"
)

// Kinds возвращает все поддерживаемые шифры в фиксированном порядке.
func Kinds() []Kind {
	return []Kind{KindCaesar, KindRailFence, KindTransposition, KindPlayfair}
}

// NumericKey сообщает, ожидает ли шифр целочисленный ключ.
func (k Kind) NumericKey() bool {
	return k == KindCaesar || k == KindRailFence
}

// ParseKind разбирает название шифра без учёта регистра.
// Допускаются синонимы: rail-fence, rail_fence, columnar.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "caesar":
		return KindCaesar, nil
	case "railfence", "rail-fence", "rail_fence":
		return KindRailFence, nil
	case "transposition", "columnar":
		return KindTransposition, nil
	case "playfair":
		return KindPlayfair, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCipher, s)
}

// Direction — направление преобразования.
type Direction string

const (
	Encrypt Direction = "encrypt"
	Decrypt Direction = "decrypt"
)

// ParseDirection разбирает направление без учёта регистра (encrypt/decrypt, enc/dec).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc", "e":
		return Encrypt, nil
	case "decrypt", "dec", "d":
		return Decrypt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
