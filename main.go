package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/constellation/internal/ambience"
	"github.com/iburimskiy/constellation/internal/config"
	"github.com/iburimskiy/constellation/internal/constellation"
	"github.com/iburimskiy/constellation/internal/game"
)

type options struct {
	cfg       config.Config
	seed      int64
	pickColor bool
	debug     bool
	ambience  bool
	verbose   bool
}

func parseFlags(args []string) (options, error) {
	def := config.Default()
	o := options{cfg: def}

	fs := flag.NewFlagSet("constellation", flag.ContinueOnError)
	fs.IntVar(&o.cfg.PointCount, "points", def.PointCount, "number of points")
	fs.Float64Var(&o.cfg.MaxSpeed, "speed", def.MaxSpeed, "maximum speed per axis, pixels per frame")
	fs.Float64Var(&o.cfg.JoinDistance, "join", def.JoinDistance, "distance below which points are joined")
	fs.Float64Var(&o.cfg.PointRadius, "radius", def.PointRadius, "point radius")
	bg := fs.String("bg", "", "background colour, #rrggbb")
	fg := fs.String("color", "", "point colour, #rrggbb")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&o.pickColor, "pick-color", false, "choose the point colour in a dialog")
	fs.BoolVar(&o.debug, "debug", false, "show the debug overlay")
	fs.BoolVar(&o.ambience, "ambience", false, "play a drone that follows the links")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	var err error
	if *bg != "" {
		if o.cfg.BackgroundColor, err = config.ParseColor(*bg); err != nil {
			return o, errors.Wrap(err, "-bg")
		}
	}
	if *fg != "" {
		if o.cfg.PointColor, err = config.ParseColor(*fg); err != nil {
			return o, errors.Wrap(err, "-color")
		}
	}
	return o, o.cfg.Validate()
}

// pickPointColor asks for a colour. A cancelled dialog keeps the current one.
func pickPointColor(current config.Config) (config.Config, error) {
	c, err := zenity.SelectColor(
		zenity.Title("Point colour"),
		zenity.Color(current.PointColor),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return current, nil
		}
		return current, err
	}
	current.PointColor = config.Opaque(c)
	return current, nil
}

func run(o options, log *slog.Logger) error {
	if o.pickColor {
		cfg, err := pickPointColor(o.cfg)
		if err != nil {
			return errors.Wrap(err, "colour dialog")
		}
		o.cfg = cfg
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}

	host := game.NewHost(config.WindowWidth, config.WindowHeight)
	host.SetOverlay(o.debug)

	driver, err := constellation.New(host.Surface(), host,
		constellation.WithConfig(o.cfg),
		constellation.WithRand(rand.New(rand.NewSource(o.seed))),
		constellation.WithLogger(log),
	)
	if err != nil {
		return err
	}
	defer driver.Dispose()

	host.Status = func() string {
		s := driver.Stats()
		return fmt.Sprintf("points %d  links %d", s.Points, s.Links)
	}

	if o.ambience {
		player, err := ambience.Play(beep.SampleRate(config.AmbienceSampleRate))
		if err != nil {
			// The picture still works without sound.
			log.Warn("ambience disabled", "err", err)
		} else {
			defer player.Stop()
			host.AfterFrame = func() {
				s := driver.Stats()
				player.Drone.SetLevel(ambience.LevelFor(s.Links, s.Points))
			}
			host.HandleKey(ebiten.KeyM, player.ToggleMute)
		}
	}

	log.Info("starting", "points", o.cfg.PointCount, "join", o.cfg.JoinDistance, "seed", o.seed)
	host.Mount(driver.Init)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Constellation - D: overlay, M: mute, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(o, log); err != nil {
		log.Error("constellation stopped", "err", err)
		os.Exit(1)
	}
}
