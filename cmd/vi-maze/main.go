package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-maze/audio"
	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/constants"
	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/logging"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/render"
	"github.com/lixenwraith/vi-maze/terminal"
)

func main() {
	guard := terminal.NewGuard(os.Stdin)
	a := &app{stdin: os.Stdin, stdout: os.Stdout}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			a.finiScreen()
			guard.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-MAZE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	err := a.run(os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintf(os.Stderr, "vi-maze: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	stdin  *os.File
	stdout *os.File

	cfg    *config.Config
	screen tcell.Screen
}

func (a *app) run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, logFile, err := logging.Setup(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.WithFields(logrus.Fields{
		"mode":   cfg.Mode,
		"height": cfg.Height,
		"width":  cfg.Width,
		"config": cfg.ConfigPath,
	}).Info("starting")

	override, err := input.LoadKeyBindings(cfg.Keys, cfg.SpecialKeys)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), override)

	duration := cfg.Duration
	if cfg.Mode == config.ModeAuto && duration == 0 {
		duration, err = input.ReadDuration(a.stdin, a.stdout)
		switch {
		case errors.Is(err, io.EOF):
			duration = constants.DefaultAutoDuration
		case err != nil:
			return err
		}
	}

	sounds := audio.NewSoundManager(&audio.AudioConfig{
		Enabled:       cfg.Sound,
		SampleRate:    constants.AudioSampleRate,
		MasterVolume:  cfg.MasterVolume,
		EffectVolumes: audio.DefaultAudioConfig().EffectVolumes,
	})
	if err := sounds.Initialize(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sounds.Cleanup()

	session, err := game.NewSession(game.Options{
		Height:          cfg.Height,
		Width:           cfg.Width,
		Rand:            maze.NewRand(cfg.Seed),
		EnsureReachable: cfg.EnsureReachable,
		Logger:          logger,
		Sounds:          sounds,
	})
	if err != nil {
		return err
	}

	// Manual play keeps default signal handling so Ctrl-C still ends a blocked line read
	ctx := context.Background()
	if cfg.Mode == config.ModeAuto {
		var stop, cancel context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	interactive := terminal.IsInteractive(a.stdin, a.stdout)
	if cfg.Plain || !interactive {
		err = a.runPlain(ctx, session, keys, interactive)
	} else {
		err = a.runScreen(ctx, session, keys)
	}
	a.finiScreen()

	printSummary(a.stdout, session.Stats())
	session.Logger().WithField("stats", fmt.Sprintf("%+v", session.Stats())).Info("finished")
	return err
}

func (a *app) pace() game.Pace {
	return game.Pace{StepDelay: a.cfg.StepDelay, LevelPause: a.cfg.LevelPause}
}

func (a *app) runPlain(ctx context.Context, s *game.Session, keys *input.KeyTable, clear bool) error {
	out := render.NewText(a.stdout, clear)
	if a.cfg.Mode == config.ModeAuto {
		return game.RunAutonomous(ctx, s, out, a.pace())
	}
	return game.RunManual(ctx, s, input.NewLineReader(a.stdin, a.stdout, keys), out)
}

func (a *app) runScreen(ctx context.Context, s *game.Session, keys *input.KeyTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen = screen
	screen.HideCursor()
	screen.Clear()

	out := render.NewScreen(screen)
	reader := input.NewScreenReader(screen, keys)
	reader.OnResize = out.Redraw

	if a.cfg.Mode == config.ModeManual {
		return game.RunManual(ctx, s, reader, out)
	}

	// Autonomous: keys only stop the run
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			cmd, err := reader.ReadCommand()
			if err != nil || cmd == game.CommandQuit {
				cancel()
				return
			}
		}
	}()
	return game.RunAutonomous(ctx, s, out, a.pace())
}

func (a *app) finiScreen() {
	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}
}

func printSummary(w io.Writer, st game.Stats) {
	fmt.Fprintln(w, "\n=== SESSION SUMMARY ===")
	fmt.Fprintf(w, "Reached level:    %d\n", st.Level)
	fmt.Fprintf(w, "Levels completed: %d\n", st.Completed)
	fmt.Fprintf(w, "Moves:            %d (blocked %d)\n", st.Moves, st.Bumps)
	fmt.Fprintf(w, "Refreshes:        %d\n", st.Refreshes)
	if st.Completed > 0 {
		fmt.Fprintf(w, "Best level:       %.2fs\n", st.Best.Seconds())
		fmt.Fprintf(w, "Average level:    %.2fs\n", st.Average.Seconds())
		fmt.Fprintf(w, "Total time:       %s\n", st.Total.Round(time.Millisecond))
	}
}
