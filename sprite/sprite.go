// Package sprite holds the immutable character grids composited by the renderer:
// sprites parsed from art text with an optional parallel color map, and plume
// sprites synthesized per frame.
package sprite

import (
	"errors"
	"fmt"
)

const (
	// Transparent cells are never drawn
	Transparent = ' '

	// DefaultColor is reported for every cell of a sprite without a color map
	DefaultColor = 1
)

var (
	ErrOutOfBounds      = errors.New("cell out of bounds")
	ErrMalformedInput   = errors.New("malformed sprite input")
	ErrColorMapTooShort = errors.New("color map shorter than art")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// Sprite is a rectangular grid of characters with optional per-cell color indices
// Copies share backing rows; nothing mutates them after construction
type Sprite struct {
	width  int
	height int
	cells  [][]rune
	colors [][]uint8 // nil without a color map
}

// Width returns the column count
func (s Sprite) Width() int {
	return s.width
}

// Height returns the row count
func (s Sprite) Height() int {
	return s.height
}

// HasColors reports whether a color map was supplied at construction
func (s Sprite) HasColors() bool {
	return s.colors != nil
}

func (s Sprite) inBounds(row, col int) bool {
	return row >= 0 && row < s.height && col >= 0 && col < s.width
}

// CharAt returns the character at (row, col)
func (s Sprite) CharAt(row, col int) (rune, error) {
	if !s.inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d sprite", ErrOutOfBounds, row, col, s.height, s.width)
	}
	return s.cells[row][col], nil
}

// ColorAt returns the color index at (row, col), DefaultColor without a color map
func (s Sprite) ColorAt(row, col int) (int, error) {
	if !s.inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d sprite", ErrOutOfBounds, row, col, s.height, s.width)
	}
	if s.colors == nil {
		return DefaultColor, nil
	}
	return int(s.colors[row][col]), nil
}

// Each visits every cell in row-major order
func (s Sprite) Each(fn func(row, col int, ch rune, color int)) {
	for r := 0; r < s.height; r++ {
		for c := 0; c < s.width; c++ {
			color := DefaultColor
			if s.colors != nil {
				color = int(s.colors[r][c])
			}
			fn(r, c, s.cells[r][c], color)
		}
	}
}

// String renders the character grid, one line per row
func (s Sprite) String() string {
	buf := make([]rune, 0, s.height*(s.width+1))
	for r, row := range s.cells {
		if r > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, row...)
	}
	return string(buf)
}

// newBlank allocates a fully transparent grid
func newBlank(width, height int) [][]rune {
	cells := make([][]rune, height)
	for r := range cells {
		row := make([]rune, width)
		for c := range row {
			row[c] = Transparent
		}
		cells[r] = row
	}
	return cells
}
