package sprite

import (
	"fmt"

	"github.com/jdeans289/sls/random"
)

// PlumePalette fills plume interiors; repeats bias the draw, spaces leave gaps
const PlumePalette = "*~#$%&     /8b`'"

const (
	plumeLeft  = '('
	plumeRight = ')'
	plumeTip   = '*'
)

// GeneratePlume synthesizes an exhaust plume of the given width
// Height is size/2+1: each row but the last narrows by one column on each side
// between bracket characters, the last row holds a single centered tip
func GeneratePlume(rng random.Source, size int) (Sprite, error) {
	if size < 1 {
		return Sprite{}, fmt.Errorf("%w: plume size %d", ErrInvalidArgument, size)
	}

	palette := []rune(PlumePalette)
	width := size
	height := size/2 + 1
	cells := newBlank(width, height)

	for r := 0; r < height-1; r++ {
		cells[r][r] = plumeLeft
		for c := r + 1; c < width-r-1; c++ {
			cells[r][c] = palette[rng.Intn(len(palette))]
		}
		cells[r][width-1-r] = plumeRight
	}
	cells[height-1][width/2] = plumeTip

	return Sprite{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}
