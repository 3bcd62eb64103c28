package cipher

import (
	"fmt"
	"strings"
)

// playfairAlphabet — 25 букв без J (J сливается с I).
const playfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// filler вставляется между одинаковыми буквами пары и дополняет нечётный текст.
const filler = 'X'

const matrixSize = 5

type cell struct {
	row, col int
	ok       bool
}

// Matrix — таблица Playfair 5×5 и обратный индекс буква → позиция.
type Matrix struct {
	cells [matrixSize][matrixSize]byte
	index [26]cell
}

// BuildPlayfairMatrix строит матрицу: очищенный ключ (J→I) + алфавит,
// дубли убираются с сохранением первого вхождения, 25 букв раскладываются по строкам.
func BuildPlayfairMatrix(key string) (*Matrix, error) {
	letters := Sanitize(key, true) + playfairAlphabet
	if letters == "" {
		return nil, ErrInvalidKey
	}

	m := &Matrix{}
	n := 0
	for i := 0; i < len(letters) && n < matrixSize*matrixSize; i++ {
		c := letters[i]
		if m.index[c-'A'].ok {
			continue
		}
		row, col := n/matrixSize, n%matrixSize
		m.cells[row][col] = c
		m.index[c-'A'] = cell{row: row, col: col, ok: true}
		n++
	}
	return m, nil
}

// At возвращает букву в ячейке (row, col).
func (m *Matrix) At(row, col int) byte {
	return m.cells[row][col]
}

// Rows возвращает матрицу как 5 строк по 5 букв.
func (m *Matrix) Rows() []string {
	rows := make([]string, matrixSize)
	for i := range m.cells {
		rows[i] = string(m.cells[i][:])
	}
	return rows
}

// String печатает матрицу построчно, буквы разделены пробелами.
func (m *Matrix) String() string {
	var b strings.Builder
	for i, row := range m.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// locate ищет позицию буквы в матрице.
func (m *Matrix) locate(c byte) (int, int, error) {
	if c >= 'A' && c <= 'Z' {
		if p := m.index[c-'A']; p.ok {
			return p.row, p.col, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrCharacterNotFound, c)
}

// PrepareDigraphs очищает текст (J→I) и разбивает его на пары:
// если вторая буква пары совпадает с первой, после первой вставляется X,
// а повторная буква начинает следующую пару. Нечётный результат дополняется X.
func PrepareDigraphs(text string) string {
	s := Sanitize(text, true)
	b := make([]byte, 0, len(s)+len(s)/2+1)

	for i := 0; i < len(s); {
		first := s[i]
		b = append(b, first)
		switch {
		case i+1 >= len(s):
			i++
		case s[i+1] == first:
			b = append(b, filler)
			i++
		default:
			b = append(b, s[i+1])
			i += 2
		}
	}
	if len(b)%2 != 0 {
		b = append(b, filler)
	}
	return string(b)
}

// Playfair шифрует или расшифровывает текст по парам букв.
//
// При шифровании текст проходит PrepareDigraphs. При расшифровке текст только очищается,
// нечётная длина — ErrInvalidKey. Вставленные X расшифровка не убирает.
func Playfair(text, key string, dir Direction) (string, error) {
	m, err := BuildPlayfairMatrix(key)
	if err != nil {
		return "", err
	}

	var src string
	shift := 1
	if dir == Decrypt {
		src = Sanitize(text, true)
		if len(src)%2 != 0 {
			return "", fmt.Errorf("%w: playfair ciphertext must have even length", ErrInvalidKey)
		}
		shift = matrixSize - 1
	} else {
		src = PrepareDigraphs(text)
	}

	out := make([]byte, len(src))
	for i := 0; i < len(src); i += 2 {
		r1, c1, err := m.locate(src[i])
		if err != nil {
			return "", err
		}
		r2, c2, err := m.locate(src[i+1])
		if err != nil {
			return "", err
		}

		switch {
		case r1 == r2:
			out[i] = m.cells[r1][(c1+shift)%matrixSize]
			out[i+1] = m.cells[r2][(c2+shift)%matrixSize]
		case c1 == c2:
			out[i] = m.cells[(r1+shift)%matrixSize][c1]
			out[i+1] = m.cells[(r2+shift)%matrixSize][c2]
		default:
			// прямоугольник: каждая буква берёт столбец партнёра, одинаково в обе стороны
			out[i] = m.cells[r1][c2]
			out[i+1] = m.cells[r2][c1]
		}
	}
	return string(out), nil
}
