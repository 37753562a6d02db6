package render

import (
	"fmt"

	"github.com/jdeans289/sls/sprite"
)

// Layer places a sprite on the surface for one frame
type Layer struct {
	Sprite  sprite.Sprite
	Row     int
	Col     int
	Sparkle bool
}

// Compositor draws sprites onto a surface, skipping transparent cells
type Compositor struct {
	sampler *Sampler
	modulus int
}

// NewCompositor creates a compositor whose sparkle mode samples attributes over modulus
func NewCompositor(sampler *Sampler, modulus int) (*Compositor, error) {
	if sampler == nil {
		return nil, fmt.Errorf("%w: nil sampler", ErrInvalidArgument)
	}
	if modulus < 1 {
		return nil, fmt.Errorf("%w: sparkle modulus %d", ErrInvalidArgument, modulus)
	}
	return &Compositor{sampler: sampler, modulus: modulus}, nil
}

// Draw composites s with its top-left cell at (row, col)
// Transparent cells make no call into dst, so earlier layers show through
// With sparkle each opaque cell gets an independently sampled attribute
func (c *Compositor) Draw(s sprite.Sprite, row, col int, dst Surface, sparkle bool) {
	s.Each(func(r, cc int, ch rune, color int) {
		if ch == sprite.Transparent {
			return
		}
		attr := AttrNormal
		if sparkle {
			// Modulus is validated at construction
			attr, _ = c.sampler.Sample(c.modulus)
		}
		dst.Put(row+r, col+cc, ch, color, attr)
	})
}

// DrawLayers composites layers in order, later layers on top
func (c *Compositor) DrawLayers(layers []Layer, dst Surface) {
	for _, l := range layers {
		c.Draw(l.Sprite, l.Row, l.Col, dst, l.Sparkle)
	}
}
