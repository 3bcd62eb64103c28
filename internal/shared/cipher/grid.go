package cipher

// grid — прямоугольная таблица символов фиксированного размера с адресацией (row, col).
// Создаётся на один вызов и выбрасывается после него.
type grid struct {
	rows, cols int
	cells      []rune
	used       []bool
}

func newGrid(rows, cols int) *grid {
	return &grid{
		rows:  rows,
		cols:  cols,
		cells: make([]rune, rows*cols),
		used:  make([]bool, rows*cols),
	}
}

func (g *grid) set(row, col int, r rune) {
	g.cells[row*g.cols+col] = r
	g.used[row*g.cols+col] = true
}

// mark помечает ячейку как занятую, не записывая символ.
func (g *grid) mark(row, col int) {
	g.used[row*g.cols+col] = true
}

func (g *grid) get(row, col int) (rune, bool) {
	i := row*g.cols + col
	return g.cells[i], g.used[i]
}
