// Package scene scripts the launch: arm retraction, countdown, ignition, liftoff and
// the finale, each a fixed run of frames composed from the static sprite library and
// freshly generated plumes.
package scene

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jdeans289/sls/asset"
	"github.com/jdeans289/sls/config"
	"github.com/jdeans289/sls/random"
	"github.com/jdeans289/sls/render"
	"github.com/jdeans289/sls/sprite"
)

// Phase identifies a section of the script
type Phase int

const (
	PhaseRetract Phase = iota
	PhaseCountdown
	PhaseIgnition
	PhaseJiggle
	PhaseLaunch
	PhaseFinale
	phaseCount
)

// minLaunchInterval keeps the accelerating ascent visible
const minLaunchInterval = time.Millisecond

// startCount is the first number shown
const startCount = 10

var phaseNames = [...]string{
	PhaseRetract:   "retract",
	PhaseCountdown: "countdown",
	PhaseIgnition:  "ignition",
	PhaseJiggle:    "jiggle",
	PhaseLaunch:    "launch",
	PhaseFinale:    "finale",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Report counts frames shown per phase
type Report struct {
	Frames [phaseCount]int
}

// Total returns all frames shown
func (r Report) Total() int {
	n := 0
	for _, f := range r.Frames {
		n += f
	}
	return n
}

// Option configures a Director
type Option func(*Director)

// WithCue routes audio cues to c
func WithCue(c Cue) Option {
	return func(d *Director) {
		if c != nil {
			d.cue = c
		}
	}
}

// WithSleeper replaces frame pacing
func WithSleeper(s Sleeper) Option {
	return func(d *Director) {
		if s != nil {
			d.sleep = s
		}
	}
}

// Director runs the launch script on a display
type Director struct {
	display Display
	lib     *asset.Library
	cfg     *config.Scene
	rng     random.Source
	comp    *render.Compositor
	cue     Cue
	sleep   Sleeper

	rows      int
	anchorRow int
	anchorCol int

	phase     Phase
	lastCount int
	report    Report
}

// NewDirector anchors the scene to the display size
func NewDirector(display Display, lib *asset.Library, cfg *config.Scene, rng random.Source, opts ...Option) (*Director, error) {
	if len(lib.Arm) == 0 || len(lib.Countdown) <= startCount {
		return nil, fmt.Errorf("%w: library needs arm stages and %d numerals", sprite.ErrInvalidArgument, startCount)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	comp, err := render.NewCompositor(render.NewSampler(rng), cfg.SparkleModulus)
	if err != nil {
		return nil, err
	}

	rows, cols := display.Size()
	d := &Director{
		display:   display,
		lib:       lib,
		cfg:       cfg,
		rng:       rng,
		comp:      comp,
		cue:       silentCue{},
		sleep:     Sleep,
		rows:      rows,
		anchorRow: rows - cfg.Layout.AnchorFromBottom,
		anchorCol: cols/2 - cfg.Layout.AnchorFromCenter,
		lastCount: -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Run plays the whole script, stopping between frames if ctx is cancelled
func (d *Director) Run(ctx context.Context) (Report, error) {
	d.report = Report{}
	d.lastCount = -1

	steps := []struct {
		phase Phase
		run   func(ctx context.Context, count int) (int, error)
	}{
		{PhaseRetract, d.retract},
		{PhaseCountdown, d.countdown},
		{PhaseIgnition, d.ignition},
		{PhaseJiggle, d.jiggle},
		{PhaseLaunch, d.launch},
		{PhaseFinale, d.finale},
	}

	count := startCount
	for _, step := range steps {
		d.phase = step.phase
		log.Printf("scene: %s from count %d", step.phase, count)

		var err error
		if count, err = step.run(ctx, count); err != nil {
			return d.report, fmt.Errorf("%s: %w", step.phase, err)
		}
	}
	return d.report, nil
}

// Preview composes the opening pad frame once without pacing
func (d *Director) Preview() {
	d.display.Clear()
	d.comp.DrawLayers(d.padLayers(0, startCount), d.display)
	d.display.Show()
}

// ===== LAYERS =====

func (d *Director) at(o config.Offset, row, col int) (int, int) {
	return d.anchorRow + o.Row + row, d.anchorCol + o.Col + col
}

func (d *Director) rocket(lift int) render.Layer {
	r, c := d.at(d.cfg.Layout.Rocket, -lift, 0)
	return render.Layer{Sprite: d.lib.Rocket, Row: r, Col: c}
}

// arm shifts right one column per stage as it swings clear
func (d *Director) arm(stage int) render.Layer {
	r, c := d.at(d.cfg.Layout.Arm, 0, stage)
	return render.Layer{Sprite: d.lib.Arm[stage], Row: r, Col: c}
}

func (d *Director) tower() render.Layer {
	r, c := d.at(d.cfg.Layout.Tower, 0, 0)
	return render.Layer{Sprite: d.lib.Tower, Row: r, Col: c}
}

func (d *Director) number(count int) render.Layer {
	r, c := d.at(d.cfg.Layout.Number, 0, 0)
	return render.Layer{Sprite: d.lib.Countdown[count], Row: r, Col: c}
}

func (d *Director) banner() render.Layer {
	r, c := d.at(d.cfg.Layout.Liftoff, 0, 0)
	return render.Layer{Sprite: d.lib.Countdown[0], Row: r, Col: c, Sparkle: true}
}

// plumes regenerates every exhaust directly under the rocket
func (d *Director) plumes(lift int) ([]render.Layer, error) {
	layers := make([]render.Layer, 0, len(d.cfg.Plumes))
	for _, p := range d.cfg.Plumes {
		s, err := sprite.GeneratePlume(d.rng, p.Size)
		if err != nil {
			return nil, err
		}
		r, c := d.at(d.cfg.Layout.Rocket, d.lib.Rocket.Height()-lift, p.Col)
		layers = append(layers, render.Layer{Sprite: s, Row: r, Col: c, Sparkle: true})
	}
	return layers, nil
}

// padLayers is the vehicle on the pad with the count showing
func (d *Director) padLayers(stage, count int) []render.Layer {
	return []render.Layer{d.rocket(0), d.arm(stage), d.tower(), d.number(count)}
}

// ===== FRAMES =====

func (d *Director) frame(ctx context.Context, layers []render.Layer, hold time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.display.Clear()
	d.comp.DrawLayers(layers, d.display)
	d.display.Show()
	d.report.Frames[d.phase]++
	return d.sleep(ctx, hold)
}

func (d *Director) showCount(count int) {
	if count != d.lastCount {
		d.cue.Tick(count)
		d.lastCount = count
	}
}

func (d *Director) plumeInterval() time.Duration {
	return d.cfg.Timing.CountdownStep / time.Duration(d.cfg.Timing.RefreshRate)
}

// retract swings the arm away, the count drops every second step but never past ignition
func (d *Director) retract(ctx context.Context, count int) (int, error) {
	decrement := false
	for stage := range d.lib.Arm {
		d.showCount(count)
		if err := d.frame(ctx, d.padLayers(stage, count), d.cfg.Timing.ArmStep); err != nil {
			return count, err
		}
		if decrement && count > d.cfg.Timing.IgnitionAt {
			count--
		}
		decrement = !decrement
	}
	return count, nil
}

func (d *Director) countdown(ctx context.Context, count int) (int, error) {
	final := d.lib.FinalArm()
	for ; count > d.cfg.Timing.IgnitionAt; count-- {
		d.showCount(count)
		if err := d.frame(ctx, d.padLayers(final, count), d.cfg.Timing.CountdownStep); err != nil {
			return count, err
		}
	}
	return count, nil
}

// ignition lights the engines for the final counts
func (d *Director) ignition(ctx context.Context, count int) (int, error) {
	d.cue.StartRumble()
	final := d.lib.FinalArm()
	for ; count >= 1; count-- {
		d.showCount(count)
		for j := 0; j < d.cfg.Timing.RefreshRate; j++ {
			plumes, err := d.plumes(0)
			if err != nil {
				return count, err
			}
			if err := d.frame(ctx, append(d.padLayers(final, count), plumes...), d.plumeInterval()); err != nil {
				return count, err
			}
		}
	}
	return 0, nil
}

// jiggle holds on the pad at full thrust with the banner sparkling
func (d *Director) jiggle(ctx context.Context, count int) (int, error) {
	final := d.lib.FinalArm()
	for i := 0; i < d.cfg.Timing.JiggleFrames; i++ {
		plumes, err := d.plumes(0)
		if err != nil {
			return count, err
		}
		layers := append([]render.Layer{d.rocket(0), d.arm(final), d.tower(), d.banner()}, plumes...)
		if err := d.frame(ctx, layers, d.plumeInterval()); err != nil {
			return count, err
		}
	}
	return count, nil
}

// launch lifts the rocket a row per frame, accelerating until it leaves the screen
func (d *Director) launch(ctx context.Context, count int) (int, error) {
	final := d.lib.FinalArm()
	interval := d.cfg.Timing.LaunchInterval
	frames := d.rows + d.cfg.Timing.LaunchExtraFrames
	for i := 0; i < frames; i++ {
		plumes, err := d.plumes(i)
		if err != nil {
			return count, err
		}
		layers := append([]render.Layer{d.rocket(i), d.arm(final), d.tower(), d.banner()}, plumes...)
		if err := d.frame(ctx, layers, interval); err != nil {
			return count, err
		}
		interval = max(time.Duration(float64(interval)*d.cfg.Timing.LaunchDecay), minLaunchInterval)
	}
	return count, nil
}

func (d *Director) finale(ctx context.Context, count int) (int, error) {
	d.cue.StopRumble()
	final := d.lib.FinalArm()
	for i := 0; i < d.cfg.Timing.FinaleFrames; i++ {
		layers := []render.Layer{d.banner(), d.arm(final), d.tower()}
		if err := d.frame(ctx, layers, d.cfg.Timing.FinaleInterval); err != nil {
			return count, err
		}
	}
	return count, nil
}
