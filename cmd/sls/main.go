package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/jdeans289/sls/asset"
	"github.com/jdeans289/sls/audio"
	"github.com/jdeans289/sls/config"
	"github.com/jdeans289/sls/random"
	"github.com/jdeans289/sls/scene"
	"github.com/jdeans289/sls/terminal"
)

const (
	previewRows = 40
	previewCols = 80
)

var (
	configFlag  = flag.String("config", "", "Scene YAML overlaying the built-in layout and timing")
	seedFlag    = flag.Uint64("seed", 0, "Random seed for plumes and sparkle, 0 derives one from the clock")
	soundFlag   = flag.Bool("sound", false, "Play countdown ticks and engine rumble")
	debugFlag   = flag.Bool("debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	speedFlag   = flag.Float64("speed", 1, "Playback speed factor")
	previewFlag = flag.Bool("preview", false, "Print the pad frame to stdout and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSLS CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sls: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	cfg = cfg.Scaled(*speedFlag)
	log.Printf("config: path=%q speed=%.2f", *configFlag, *speedFlag)

	// Assets are parsed before the screen opens so a bad sprite never leaves a half-drawn terminal
	lib, err := asset.Load()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	rng, seed := random.NewSeeded(*seedFlag)
	log.Printf("seed: %d", seed)

	if *previewFlag {
		display := scene.NewBufferDisplay(previewRows, previewCols)
		d, err := scene.NewDirector(display, lib, cfg, rng)
		if err != nil {
			return err
		}
		d.Preview()
		fmt.Println(display.String())
		return nil
	}

	if !terminal.IsInteractive(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal (use -preview for a text frame)")
	}
	if err := terminal.SaveState(int(os.Stdin.Fd())); err != nil {
		log.Printf("terminal state not saved: %v", err)
	}

	var opts []scene.Option
	if *soundFlag {
		sound := audio.NewLaunchSound(cfg.Audio.Volume, cfg.Audio.TickHz, seed)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the launch runs silent
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sound.Cleanup()
			opts = append(opts, scene.WithCue(sound))
		}
	}

	screen, err := terminal.New()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	rows, cols := screen.Size()
	log.Printf("screen: %dx%d", cols, rows)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	screen.WatchInterrupt(ctx, cancel)

	d, err := scene.NewDirector(screen, lib, cfg, rng, opts...)
	if err != nil {
		return err
	}

	report, err := d.Run(ctx)
	log.Printf("frames: %d %v", report.Total(), report.Frames)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
