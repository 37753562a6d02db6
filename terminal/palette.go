package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jdeans289/sls/render"
)

// Color pair indices emitted by the art color maps
const (
	PairDefault = 1
	PairWhite   = 4
	PairOrange  = 5
	PairBlue    = 6
	PairRed     = 7
)

// Palette maps color pair indices to tcell styles
type Palette struct {
	pairs    map[int]tcell.Style
	fallback tcell.Style
}

// perMille converts a 0..1000 channel triple to a tcell RGB color
func perMille(r, g, b int32) tcell.Color {
	return tcell.NewRGBColor(r*255/1000, g*255/1000, b*255/1000)
}

// NewPalette builds the launch color table, all pairs on black
func NewPalette() *Palette {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	white := base.Foreground(tcell.ColorWhite)

	return &Palette{
		pairs: map[int]tcell.Style{
			PairDefault: white,
			2:           base.Foreground(tcell.ColorGreen),
			3:           base.Foreground(tcell.ColorYellow),
			PairWhite:   white,
			PairOrange:  base.Foreground(perMille(756, 325, 137)),
			PairBlue:    base.Foreground(tcell.ColorBlue),
			PairRed:     base.Foreground(perMille(756, 0, 0)),
		},
		fallback: white,
	}
}

// Style resolves a pair and attribute, unknown pairs use the default pair
func (p *Palette) Style(pair int, attr render.Attr) tcell.Style {
	style, ok := p.pairs[pair]
	if !ok {
		style = p.fallback
	}
	switch attr {
	case render.AttrBold:
		style = style.Bold(true)
	case render.AttrDim:
		style = style.Dim(true)
	}
	return style
}

// Background is the style used to clear the screen
func (p *Palette) Background() tcell.Style {
	return tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
}
