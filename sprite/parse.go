package sprite

import "fmt"

// Parse builds a sprite from newline-delimited art
// Rows shorter than the widest are right-padded with Transparent
// A trailing newline yields a trailing blank row
func Parse(art string) (Sprite, error) {
	rows, width := splitRows([]rune(art))
	if art == "" || width == 0 {
		return Sprite{}, fmt.Errorf("%w: art has no columns", ErrMalformedInput)
	}

	cells := newBlank(width, len(rows))
	for r, row := range rows {
		copy(cells[r], row)
	}

	return Sprite{
		width:  width,
		height: len(rows),
		cells:  cells,
	}, nil
}

// ParseColored builds a sprite and walks colorMap position for position with art
// A newline in either text starts the next row; a digit sets that cell's index,
// any other character sets DefaultColor
// Line breaks are expected to match, a mismatch desyncs the rest of the row
func ParseColored(art, colorMap string) (Sprite, error) {
	s, err := Parse(art)
	if err != nil {
		return Sprite{}, err
	}

	colors := make([][]uint8, s.height)
	for r := range colors {
		row := make([]uint8, s.width)
		for c := range row {
			row[c] = DefaultColor
		}
		colors[r] = row
	}

	artRunes := []rune(art)
	mapRunes := []rune(colorMap)
	if len(mapRunes) < len(artRunes) {
		return Sprite{}, fmt.Errorf("%w: %d of %d positions", ErrColorMapTooShort, len(mapRunes), len(artRunes))
	}

	row, col := 0, 0
	for i, a := range artRunes {
		m := mapRunes[i]
		if a == '\n' || m == '\n' {
			row++
			col = 0
			continue
		}
		// Desynced positions past the grid are dropped
		if row < s.height && col < s.width {
			if m >= '0' && m <= '9' {
				colors[row][col] = uint8(m - '0')
			} else {
				colors[row][col] = DefaultColor
			}
		}
		col++
	}

	s.colors = colors
	return s, nil
}

// splitRows splits at newlines and reports the widest row
func splitRows(text []rune) ([][]rune, int) {
	rows := [][]rune{{}}
	width := 0
	for _, ch := range text {
		if ch == '\n' {
			rows = append(rows, []rune{})
			continue
		}
		last := len(rows) - 1
		rows[last] = append(rows[last], ch)
		width = max(width, len(rows[last]))
	}
	return rows, width
}
