package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/vi-pong.log")
	muteFlag  = flag.Bool("mute", false, "Start with sound muted")
	serveFlag = flag.Bool("serve", false, "Re-serve the ball from the centre after each point")
	seedFlag  = flag.Uint64("seed", 0, "Serve direction seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.WithError(err).Error("exit")
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	// Panic Recovery: restores the screen before the stack is printed
	defer core.Recover()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(constants.RgbBackground))

	cfg := engine.DefaultConfig()
	cfg.ServeAfterScore = *serveFlag
	cfg.Seed = *seedFlag
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.WithFields(log.Fields{
		"seed":  cfg.Seed,
		"serve": cfg.ServeAfterScore,
		"tick":  cfg.TickInterval,
	}).Info("starting")

	game := engine.NewGame(cfg)
	game.Subscribe(logScore)

	scheduler := engine.NewClockScheduler(game, render.NewTerminalRenderer(screen))

	// Audio is optional, a missing device leaves the game silent
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		defer sound.Cleanup()
	}
	if *muteFlag {
		sound.ToggleMute()
	}
	game.Subscribe(sound.HandleEvent)
	scheduler.OnMute = func() { sound.ToggleMute() }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 16)

	// Input pump, closes events once gctx is done
	g.Go(func() error {
		defer core.Recover()
		screen.ChannelEvents(events, gctx.Done())
		return nil
	})

	// Game loop, sole owner of the game state
	g.Go(func() error {
		defer core.Recover()
		return scheduler.Run(gctx, events)
	})

	err = g.Wait()
	log.WithFields(log.Fields{
		"ticks":  scheduler.TickCount(),
		"played": scheduler.PlayTime().Round(time.Second),
		"score":  game.Scoreboard(),
	}).Info("stopped")

	if errors.Is(err, engine.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func logScore(ev engine.Event) {
	if ev.Type != engine.EventScore {
		return
	}
	log.WithFields(log.Fields{
		"tick":     ev.Tick,
		"scorer":   ev.Side,
		"player":   ev.Score.Player,
		"computer": ev.Score.Computer,
	}).Info("point")
}
