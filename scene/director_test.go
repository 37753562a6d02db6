package scene

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jdeans289/sls/asset"
	"github.com/jdeans289/sls/config"
	"github.com/jdeans289/sls/random"
	"github.com/jdeans289/sls/render"
)

const (
	testRows = 40
	testCols = 80
	// anchor = (rows-33, cols/2-15) with the default layout
	anchorRow = testRows - 33
	anchorCol = testCols/2 - 15
	// frames before liftoff: 8 retract + 3 countdown + 30 ignition + 10 jiggle
	preLaunchFrames = 51
)

type cueRecorder struct {
	ticks  []int
	events []string
}

func (c *cueRecorder) Tick(n int)   { c.ticks = append(c.ticks, n) }
func (c *cueRecorder) StartRumble() { c.events = append(c.events, "start") }
func (c *cueRecorder) StopRumble()  { c.events = append(c.events, "stop") }

type harness struct {
	display *BufferDisplay
	cue     *cueRecorder
	holds   []time.Duration
	// onFrame runs after each shown frame, index counts from zero
	onFrame func(index int)
}

func (h *harness) sleep(ctx context.Context, d time.Duration) error {
	idx := len(h.holds)
	h.holds = append(h.holds, d)
	if h.onFrame != nil {
		h.onFrame(idx)
	}
	return ctx.Err()
}

func newHarness(t *testing.T) (*harness, *Director) {
	t.Helper()
	lib, err := asset.Load()
	if err != nil {
		t.Fatalf("asset.Load failed: %v", err)
	}
	h := &harness{
		display: NewBufferDisplay(testRows, testCols),
		cue:     &cueRecorder{},
	}
	d, err := NewDirector(h.display, lib, config.Default(), random.NewFastRand(31337),
		WithCue(h.cue), WithSleeper(h.sleep))
	if err != nil {
		t.Fatalf("NewDirector failed: %v", err)
	}
	return h, d
}

func TestRunFrameCounts(t *testing.T) {
	h, d := newHarness(t)

	report, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := map[Phase]int{
		PhaseRetract:   8,
		PhaseCountdown: 3,
		PhaseIgnition:  30,
		PhaseJiggle:    10,
		PhaseLaunch:    testRows + 300,
		PhaseFinale:    100,
	}
	total := 0
	for phase, n := range want {
		if report.Frames[phase] != n {
			t.Errorf("%s: expected %d frames, got %d", phase, n, report.Frames[phase])
		}
		total += n
	}
	if report.Total() != total {
		t.Errorf("Expected %d total frames, got %d", total, report.Total())
	}
	if len(h.holds) != total {
		t.Errorf("Expected one hold per frame, got %d holds", len(h.holds))
	}
}

func TestRunPacing(t *testing.T) {
	h, d := newHarness(t)
	if _, err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	checks := []struct {
		name  string
		index int
		want  time.Duration
	}{
		{"arm step", 0, 500 * time.Millisecond},
		{"last arm step", 7, 500 * time.Millisecond},
		{"countdown", 8, time.Second},
		{"ignition", 11, 100 * time.Millisecond},
		{"jiggle", 41, 100 * time.Millisecond},
		{"launch start", preLaunchFrames, 150 * time.Millisecond},
		{"launch second", preLaunchFrames + 1, 142500 * time.Microsecond},
		{"finale", len(h.holds) - 1, 20 * time.Millisecond},
	}
	for _, c := range checks {
		if h.holds[c.index] != c.want {
			t.Errorf("%s: expected hold %v at frame %d, got %v", c.name, c.want, c.index, h.holds[c.index])
		}
	}

	// Ascent accelerates but never stalls at zero
	launchEnd := preLaunchFrames + testRows + 300
	for i := preLaunchFrames + 1; i < launchEnd; i++ {
		if h.holds[i] > h.holds[i-1] {
			t.Fatalf("Launch frame %d slowed down: %v > %v", i, h.holds[i], h.holds[i-1])
		}
		if h.holds[i] < minLaunchInterval {
			t.Fatalf("Launch frame %d below floor: %v", i, h.holds[i])
		}
	}
}

func TestRunCues(t *testing.T) {
	h, d := newHarness(t)
	if _, err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	if len(h.cue.ticks) != len(want) {
		t.Fatalf("Expected ticks %v, got %v", want, h.cue.ticks)
	}
	for i := range want {
		if h.cue.ticks[i] != want[i] {
			t.Errorf("Tick %d: expected %d, got %d", i, want[i], h.cue.ticks[i])
		}
	}
	if len(h.cue.events) != 2 || h.cue.events[0] != "start" || h.cue.events[1] != "stop" {
		t.Errorf("Expected rumble start then stop, got %v", h.cue.events)
	}
}

func TestRunCancelled(t *testing.T) {
	h, d := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.onFrame = func(index int) {
		if index == 4 {
			cancel()
		}
	}

	report, err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if report.Total() != 5 {
		t.Errorf("Expected 5 frames before stopping, got %d", report.Total())
	}
}

func TestPreview(t *testing.T) {
	h, d := newHarness(t)
	d.Preview()

	checks := []struct {
		name     string
		row, col int
		ch       rune
		color    int
	}{
		{"capsule tip", anchorRow, anchorCol + 9, 'A', 4},
		{"core stage", anchorRow + 6, anchorCol + 4, '|', 5},
		{"meatball", anchorRow + 11, anchorCol + 9, '*', 6},
		{"tower mast", anchorRow + 2, anchorCol + 25 + 3, '|', 1},
		{"extended arm", anchorRow + 4, anchorCol + 13, '_', 1},
		{"count ten", anchorRow + 5, anchorCol - 25 + 1, '#', 1},
	}
	for _, c := range checks {
		cell, touched := h.display.Cell(c.row, c.col)
		if !touched {
			t.Errorf("%s: expected (%d,%d) to be drawn", c.name, c.row, c.col)
			continue
		}
		if cell.Rune != c.ch || cell.Color != c.color {
			t.Errorf("%s: expected %q/%d, got %q/%d", c.name, c.ch, c.color, cell.Rune, cell.Color)
		}
		if cell.Attr != render.AttrNormal {
			t.Errorf("%s: expected no sparkle on the pad, got %v", c.name, cell.Attr)
		}
	}
	if len(h.holds) != 0 {
		t.Error("Expected preview to skip pacing")
	}
}

func TestPlumesBeneathRocket(t *testing.T) {
	h, d := newHarness(t)
	bottom := anchorRow + 29

	checked := false
	h.onFrame = func(index int) {
		// First jiggle frame: vehicle on the pad at full thrust
		if index != preLaunchFrames-10 {
			return
		}
		checked = true
		for _, p := range []struct{ col, size int }{{-1, 5}, {15, 5}, {6, 3}, {10, 3}} {
			left := anchorCol + p.col
			if cell, _ := h.display.Cell(bottom, left); cell.Rune != '(' {
				t.Errorf("Plume at col %d: expected '(' got %q", p.col, cell.Rune)
			}
			tipRow := bottom + p.size/2
			if cell, _ := h.display.Cell(tipRow, left+p.size/2); cell.Rune != '*' {
				t.Errorf("Plume at col %d: expected tip at row %d, got %q", p.col, tipRow, cell.Rune)
			}
		}
	}

	if _, err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !checked {
		t.Fatal("Expected to inspect a jiggle frame")
	}
}

func TestLaunchLiftsRocket(t *testing.T) {
	h, d := newHarness(t)
	tipCol := anchorCol + 9

	h.onFrame = func(index int) {
		lift := index - preLaunchFrames
		if lift < 0 || lift > anchorRow {
			return
		}
		cell, _ := h.display.Cell(anchorRow-lift, tipCol)
		if cell.Rune != 'A' {
			t.Errorf("Launch frame %d: expected capsule tip at row %d, got %q", lift, anchorRow-lift, cell.Rune)
		}
	}

	if _, err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Finale: vehicle gone, tower remains
	if cell, _ := h.display.Cell(anchorRow+2, anchorCol+28); cell.Rune != '|' {
		t.Errorf("Expected tower mast in the finale, got %q", cell.Rune)
	}
	for r := 0; r < testRows; r++ {
		if cell, _ := h.display.Cell(r, tipCol); cell.Rune == 'A' {
			t.Errorf("Expected rocket gone in the finale, found tip at row %d", r)
		}
	}
}

func TestNewDirectorValidation(t *testing.T) {
	lib, err := asset.Load()
	if err != nil {
		t.Fatalf("asset.Load failed: %v", err)
	}
	rng := random.NewFastRand(1)
	display := NewBufferDisplay(10, 10)

	if _, err := NewDirector(display, &asset.Library{}, config.Default(), rng); err == nil {
		t.Error("Expected error for empty library")
	}

	bad := config.Default()
	bad.SparkleModulus = 0
	if _, err := NewDirector(display, lib, bad, rng); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestSleep(t *testing.T) {
	ctx := context.Background()
	if err := Sleep(ctx, 0); err != nil {
		t.Errorf("Expected nil for zero sleep, got %v", err)
	}
	if err := Sleep(ctx, time.Millisecond); err != nil {
		t.Errorf("Expected nil for short sleep, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := Sleep(cancelled, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseLaunch.String() != "launch" {
		t.Errorf("Expected launch, got %s", PhaseLaunch)
	}
	if Phase(42).String() != "Phase(42)" {
		t.Errorf("Expected Phase(42), got %s", Phase(42))
	}
}
