package render

// Surface receives composited cells
// Implementations ignore destinations outside their allocated area without error
type Surface interface {
	Put(row, col int, ch rune, color int, attr Attr)
}

// SurfaceFunc adapts a function to Surface
type SurfaceFunc func(row, col int, ch rune, color int, attr Attr)

// Put implements Surface
func (f SurfaceFunc) Put(row, col int, ch rune, color int, attr Attr) {
	f(row, col, ch, color, attr)
}
