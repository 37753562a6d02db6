package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jdeans289/sls/render"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(s.Fini)
	return s, sim
}

func TestScreenSize(t *testing.T) {
	s, sim := newSimScreen(t)
	w, h := sim.Size()
	rows, cols := s.Size()
	if rows != h || cols != w {
		t.Errorf("Expected %dx%d, got %dx%d", h, w, rows, cols)
	}
	if rows == 0 || cols == 0 {
		t.Error("Expected a non-empty simulation screen")
	}
}

func TestScreenPut(t *testing.T) {
	s, sim := newSimScreen(t)

	s.Put(2, 5, 'A', PairOrange, render.AttrBold)

	r, _, style, _ := sim.GetContent(5, 2)
	if r != 'A' {
		t.Errorf("Expected 'A' at row 2 col 5, got %q", r)
	}
	if style != s.palette.Style(PairOrange, render.AttrBold) {
		t.Error("Expected bold orange style")
	}
	if style == s.palette.Style(PairOrange, render.AttrNormal) {
		t.Error("Expected bold to differ from normal")
	}
}

func TestScreenPutClipped(t *testing.T) {
	s, sim := newSimScreen(t)
	rows, cols := s.Size()

	// Must not panic or wrap onto visible cells
	s.Put(-1, 0, 'X', PairDefault, render.AttrNormal)
	s.Put(0, -1, 'X', PairDefault, render.AttrNormal)
	s.Put(rows, 0, 'X', PairDefault, render.AttrNormal)
	s.Put(0, cols, 'X', PairDefault, render.AttrNormal)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if r, _, _, _ := sim.GetContent(x, y); r == 'X' {
				t.Fatalf("Unexpected clipped write visible at (%d,%d)", y, x)
			}
		}
	}
}

func TestScreenClear(t *testing.T) {
	s, sim := newSimScreen(t)
	s.Put(0, 0, 'Z', PairDefault, render.AttrNormal)
	s.Clear()
	if r, _, _, _ := sim.GetContent(0, 0); r == 'Z' {
		t.Error("Expected Clear to erase content")
	}
}

func TestScreenFiniIdempotent(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.Fini()
	s.Fini()
}

func TestPaletteFallback(t *testing.T) {
	p := NewPalette()
	if p.Style(42, render.AttrNormal) != p.Style(PairDefault, render.AttrNormal) {
		t.Error("Expected unknown pair to fall back to the default pair")
	}
	if p.Style(PairBlue, render.AttrDim) == p.Style(PairBlue, render.AttrNormal) {
		t.Error("Expected dim to change the style")
	}
}

func TestPerMille(t *testing.T) {
	tests := []struct {
		r, g, b int32
		want    tcell.Color
	}{
		{1000, 0, 0, tcell.NewRGBColor(255, 0, 0)},
		{756, 325, 137, tcell.NewRGBColor(192, 82, 34)},
		{0, 0, 0, tcell.NewRGBColor(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := perMille(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("perMille(%d,%d,%d): expected %v, got %v", tt.r, tt.g, tt.b, tt.want, got)
		}
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0} {
		if !bytes.Contains([]byte(out), seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
