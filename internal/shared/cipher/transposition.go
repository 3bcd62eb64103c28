package cipher

import (
	"sort"
	"strings"
)

// columnOrder возвращает порядок чтения столбцов: буквы ключа по возрастанию,
// при равных буквах — по исходной позиции слева направо.
func columnOrder(key string) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return key[order[i]] < key[order[j]]
	})
	return order
}

// transpositionKey очищает ключ перестановки (без замены J) и проверяет, что он не пуст.
func transpositionKey(key string) (string, error) {
	k := Sanitize(key, false)
	if k == "" {
		return "", ErrInvalidKey
	}
	return k, nil
}

// TranspositionEncrypt раскладывает текст по строкам в таблицу из len(key) столбцов
// и читает её по столбцам в порядке букв ключа. Неполная последняя строка не дополняется.
func TranspositionEncrypt(text, key string) (string, error) {
	k, err := transpositionKey(key)
	if err != nil {
		return "", err
	}

	src := []rune(text)
	n, cols := len(src), len(k)
	rows := (n + cols - 1) / cols

	var b strings.Builder
	b.Grow(len(text))
	for _, col := range columnOrder(k) {
		for row := 0; row < rows; row++ {
			if i := row*cols + col; i < n {
				b.WriteRune(src[i])
			}
		}
	}
	return b.String(), nil
}

// TranspositionDecrypt обращает TranspositionEncrypt.
//
// Первые len%cols столбцов (по исходной позиции) полные, остальные короче на одну ячейку.
// Если len%cols == 0, полные все столбцы.
func TranspositionDecrypt(cipherText, key string) (string, error) {
	k, err := transpositionKey(key)
	if err != nil {
		return "", err
	}

	src := []rune(cipherText)
	n, cols := len(src), len(k)
	if n == 0 {
		return "", nil
	}
	rows := (n + cols - 1) / cols
	fullCols := n % cols

	g := newGrid(rows, cols)
	next := 0
	for _, col := range columnOrder(k) {
		height := rows
		if fullCols != 0 && col >= fullCols {
			height = rows - 1
		}
		for row := 0; row < height; row++ {
			g.set(row, col, src[next])
			next++
		}
	}

	out := make([]rune, 0, n)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if r, ok := g.get(row, col); ok {
				out = append(out, r)
			}
		}
	}
	return string(out), nil
}
