// Package terminal is the character-cell display the launch is drawn on.
// It wraps a tcell screen as a render.Surface and owns the color pair table.
package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/jdeans289/sls/render"
)

// Screen is a tcell-backed render.Surface
type Screen struct {
	screen  tcell.Screen
	palette *Palette
	rows    int
	cols    int
	active  bool
}

// New creates a screen on the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing tcell screen, e.g. a simulation screen
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen:  s,
		palette: NewPalette(),
	}
}

// Init allocates the screen and hides the cursor
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.active = true
	s.screen.SetStyle(s.palette.Background())
	s.screen.HideCursor()
	s.screen.Clear()
	s.cols, s.rows = s.screen.Size()
	return nil
}

// Fini restores the terminal, safe to call more than once
func (s *Screen) Fini() {
	if !s.active {
		return
	}
	s.active = false
	s.screen.Fini()
}

// Size returns rows, cols as allocated at Init
func (s *Screen) Size() (int, int) {
	return s.rows, s.cols
}

// Clear erases the back buffer
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show presents the back buffer
func (s *Screen) Show() {
	s.screen.Show()
}

// Put implements render.Surface, destinations outside the screen are dropped
func (s *Screen) Put(row, col int, ch rune, color int, attr render.Attr) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.screen.SetContent(col, row, ch, nil, s.palette.Style(color, attr))
}

// WatchInterrupt cancels on Ctrl-C, which raw mode no longer turns into SIGINT
// Other events are discarded; returns when ctx is done or the screen is finalized
func (s *Screen) WatchInterrupt(ctx context.Context, cancel context.CancelFunc) {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
				cancel()
				return
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}
