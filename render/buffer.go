package render

import "strings"

// Cell is one composited position
type Cell struct {
	Rune  rune
	Color int
	Attr  Attr
}

// Buffer is an in-memory Surface with silent clipping
// Backs tests and the preview mode, the terminal owns the live frame
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
	puts    int
}

// NewBuffer creates a cleared buffer of rows x cols
func NewBuffer(rows, cols int) *Buffer {
	rows, cols = max(rows, 0), max(cols, 0)
	b := &Buffer{
		cells:   make([]Cell, rows*cols),
		touched: make([]bool, rows*cols),
		width:   cols,
		height:  rows,
	}
	b.Clear()
	return b
}

// Size returns rows, cols
func (b *Buffer) Size() (int, int) {
	return b.height, b.width
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	b.puts = 0
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Color: 0, Attr: AttrNormal}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *Buffer) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// Put implements Surface
func (b *Buffer) Put(row, col int, ch rune, color int, attr Attr) {
	if !b.inBounds(row, col) {
		return
	}
	idx := row*b.width + col
	b.cells[idx] = Cell{Rune: ch, Color: color, Attr: attr}
	b.touched[idx] = true
	b.puts++
}

// Cell returns the cell at (row, col) and whether it was written since Clear
func (b *Buffer) Cell(row, col int) (Cell, bool) {
	if !b.inBounds(row, col) {
		return Cell{}, false
	}
	idx := row*b.width + col
	return b.cells[idx], b.touched[idx]
}

// Puts returns accepted writes since Clear
func (b *Buffer) Puts() int {
	return b.puts
}

// String renders the buffer with trailing blanks trimmed per row
func (b *Buffer) String() string {
	var sb strings.Builder
	line := make([]rune, b.width)
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			line[c] = b.cells[r*b.width+c].Rune
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		if r < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
