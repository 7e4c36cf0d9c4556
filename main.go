package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"elastic-snake/autopilot"
	"elastic-snake/game"
	"elastic-snake/sound"
	"elastic-snake/ui"
	"elastic-snake/ui/ebitenui"
	"elastic-snake/ui/termui"

	"github.com/golang/glog"
)

const title = "Elastic Snake"

type options struct {
	frontend      string
	squares       int
	seed          uint64
	speed         float64
	sound         bool
	demo          bool
	width, height int
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.frontend, "frontend", "raylib", "raylib, ebiten or terminal")
	flag.IntVar(&o.squares, "squares", 32, "grid side in cells (8-128)")
	flag.Uint64Var(&o.seed, "seed", 0, "fruit RNG seed, 0 seeds from the clock")
	flag.Float64Var(&o.speed, "speed", 0.15, "seconds per move when a round starts")
	flag.BoolVar(&o.sound, "sound", true, "play sound effects")
	flag.BoolVar(&o.demo, "demo", false, "let the autopilot play")
	flag.IntVar(&o.width, "width", 800, "window width")
	flag.IntVar(&o.height, "height", 600, "window height")
	flag.Parse()
	return o
}

func main() {
	os.Exit(run())
}

func run() int {
	o := parseFlags()
	defer glog.Flush()

	cfg := game.DefaultConfig()
	cfg.Squares = o.squares
	cfg.StartSpeed = o.speed
	if err := cfg.Validate(); err != nil {
		glog.Errorf("bad flags: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	g := game.New(cfg, game.NewSystemClock(), game.NewRNG(o.seed))
	glog.Infof("starting: frontend=%s squares=%d speed=%.3f seed=%d demo=%v",
		o.frontend, cfg.Squares, cfg.StartSpeed, o.seed, o.demo)

	if o.sound {
		sm := sound.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			glog.Warningf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			g.Subscribe(sm)
		}
	}

	var pilot game.Input
	if o.demo {
		pilot = autopilot.New(g, true)
	}

	var err error
	switch o.frontend {
	case "raylib":
		err = ui.Run(g, ui.Options{Width: o.width, Height: o.height, Title: title, Pilot: pilot})
	case "ebiten":
		err = ebitenui.Run(g, ebitenui.Options{Width: o.width, Height: o.height, Title: title, Pilot: pilot})
	case "terminal":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = termui.Run(ctx, g, pilot)
	default:
		err = fmt.Errorf("unknown frontend %q", o.frontend)
	}
	if err != nil {
		glog.Errorf("%s frontend: %v", o.frontend, err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	stats := g.GetStateManager()
	glog.Infof("session over: %d rounds, best %d, average %.1f, median %.1f, average length %.1fs",
		stats.GetGamesPlayed(), stats.GetHighScore(), stats.GetAverageScore(),
		stats.GetMedianScore(), stats.GetAverageDuration())
	return 0
}
