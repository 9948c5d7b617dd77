package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/mikenye/torus-snake/game"
	"github.com/mikenye/torus-snake/screen"
	"github.com/mikenye/torus-snake/sound"
	"github.com/mikenye/torus-snake/term"
)

// play in a window until the player quits
func runWindow(cfg game.Config, listener game.Listener, debug bool) error {
	d, err := screen.New(cfg, nil)
	if err != nil {
		return err
	}
	d.Debug = debug
	d.Controller().SetListener(listener)
	return d.Run()
}

// play in the terminal until the player quits or the process is signalled
func runTerminal(cfg game.Config, listener game.Listener) error {
	t, err := term.Open(cfg)
	if err != nil {
		return err
	}
	defer t.Close()

	ctrl, err := game.New(cfg, t.Frontend(), nil)
	if err != nil {
		return err
	}
	ctrl.SetListener(listener)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = ctrl.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// main function
func main() {
	cfg := game.DefaultConfig()

	var (
		useTerm   = flag.Bool("term", false, "play in the terminal instead of a window")
		withSound = flag.Bool("sound", false, "play sound effects")
		debug     = flag.Bool("debug", false, "show tick rate and snake length (window only)")
	)
	flag.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels (window only)")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "game ticks per second")
	flag.Parse()
	defer glog.Flush()

	if err := cfg.Validate(); err != nil {
		glog.Exitf("snake: %v", err)
	}
	glog.Infof("starting: board %dx%d, cell %dpx, %d tps, terminal=%t sound=%t",
		cfg.Width, cfg.Height, cfg.CellSize, cfg.TPS, *useTerm, *withSound)

	var listener game.Listener
	if *withSound {
		p := sound.NewPlayer()
		if err := p.Init(); err != nil {
			// non-fatal, game can run without sound
			glog.Warningf("sound disabled: %v", err)
		} else {
			defer p.Close()
			listener = p
		}
	}

	var err error
	if *useTerm {
		err = runTerminal(cfg, listener)
	} else {
		err = runWindow(cfg, listener, *debug)
	}
	if err != nil {
		glog.Exitf("snake: %v", err)
	}
	glog.Info("bye")
}
