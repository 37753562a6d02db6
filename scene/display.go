package scene

import (
	"context"
	"time"

	"github.com/jdeans289/sls/render"
)

// Display is the surface a frame is composed on
type Display interface {
	render.Surface
	Clear()
	Show()
	Size() (rows, cols int)
}

// Cue receives audio cues as the script advances
type Cue interface {
	Tick(count int)
	StartRumble()
	StopRumble()
}

// Sleeper paces frames, returning early with ctx.Err() on cancellation
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until ctx is done
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type silentCue struct{}

func (silentCue) Tick(int)     {}
func (silentCue) StartRumble() {}
func (silentCue) StopRumble()  {}

// BufferDisplay presents frames into an in-memory buffer
type BufferDisplay struct {
	*render.Buffer
}

// NewBufferDisplay creates a rows x cols in-memory display
func NewBufferDisplay(rows, cols int) *BufferDisplay {
	return &BufferDisplay{Buffer: render.NewBuffer(rows, cols)}
}

// Show is a no-op, the buffer is always current
func (*BufferDisplay) Show() {}
