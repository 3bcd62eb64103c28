package cipher

import "strings"

// zigzag обходит позиции 0..n-1 по зигзагу из rails рядов и вызывает visit(row, col).
// Обход начинается с ряда 0 вниз, направление меняется на рядах 0 и rails-1.
func zigzag(n, rails int, visit func(row, col int)) {
	row, step := 0, 1
	for col := 0; col < n; col++ {
		visit(row, col)
		switch row {
		case 0:
			step = 1
		case rails - 1:
			step = -1
		}
		row += step
	}
}

// RailFenceEncrypt записывает текст зигзагом по rails рядам и склеивает ряды сверху вниз.
// rails < 2 — ErrInvalidKey.
func RailFenceEncrypt(text string, rails int) (string, error) {
	if rails < 2 {
		return "", ErrInvalidKey
	}

	src := []rune(text)
	rows := make([][]rune, rails)
	zigzag(len(src), rails, func(row, col int) {
		rows[row] = append(rows[row], src[col])
	})

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range rows {
		b.WriteString(string(r))
	}
	return b.String(), nil
}

// RailFenceDecrypt восстанавливает исходный текст за три прохода по сетке rails × len:
//  1. отмечаем ячейки, которые занимает зигзаг;
//  2. заполняем отмеченные ячейки символами шифртекста ряд за рядом;
//  3. читаем ячейки повторным обходом зигзагом.
//
// Пустой шифртекст возвращается как есть без проверки ключа, иначе rails < 2 — ErrInvalidKey.
func RailFenceDecrypt(cipherText string, rails int) (string, error) {
	if cipherText == "" {
		return "", nil
	}
	if rails < 2 {
		return "", ErrInvalidKey
	}

	src := []rune(cipherText)
	n := len(src)
	g := newGrid(rails, n)

	zigzag(n, rails, g.mark)

	next := 0
	for row := 0; row < rails; row++ {
		for col := 0; col < n; col++ {
			if _, ok := g.get(row, col); ok && next < n {
				g.set(row, col, src[next])
				next++
			}
		}
	}

	out := make([]rune, 0, n)
	zigzag(n, rails, func(row, col int) {
		r, _ := g.get(row, col)
		out = append(out, r)
	})
	return string(out), nil
}
