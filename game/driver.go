package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/vi-maze/navigation"
)

const (
	HintManual     = "WASD/arrows move, R refresh, Q quit"
	HintAutonomous = "autopilot, Esc stops"
)

// Pace controls autonomous animation timing
type Pace struct {
	StepDelay  time.Duration // Pause after each step along a path
	LevelPause time.Duration // Pause on level complete and on forced refresh
}

// RunManual drives the session from player commands until quit, reader EOF or ctx cancellation
func RunManual(ctx context.Context, s *Session, in CommandReader, out Renderer) error {
	frame := s.Frame()
	frame.Hint = HintManual
	out.Render(frame)

	for ctx.Err() == nil {
		cmd, err := in.ReadCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.Quit()
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		msg := ""
		switch s.Apply(cmd) {
		case StateQuitting:
			return nil

		case StateLevelComplete:
			done := s.Frame()
			done.Hint = HintManual
			done.Message = fmt.Sprintf("Level %d complete! Press any key to continue", s.Level())
			out.Render(done)
			if ack, ok := in.(Acknowledger); ok {
				if err := ack.Acknowledge(); err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("acknowledge: %w", err)
				}
			}
			if err := s.Advance(); err != nil {
				return err
			}

		case StateRefreshing:
			if err := s.Advance(); err != nil {
				return err
			}
			msg = "Maze refreshed"
		}

		frame := s.Frame()
		frame.Hint = HintManual
		frame.Message = msg
		out.Render(frame)
	}
	return nil
}

// RunAutonomous walks shortest paths level after level until ctx is done
// ctx expiry is the normal way out and is not reported as an error; the loop checks it
// between steps so the position is always the last cell actually reached
func RunAutonomous(ctx context.Context, s *Session, out Renderer, pace Pace) error {
	for ctx.Err() == nil {
		frame := s.Frame()
		frame.Hint = HintAutonomous
		out.Render(frame)

		path := navigation.FindPath(s.Grid(), s.Position(), s.Exit())
		if len(path) == 0 {
			s.RequestRefresh()
			frame := s.Frame()
			frame.Hint = HintAutonomous
			frame.Message = "No path found, refreshing maze..."
			out.Render(frame)
			s.Logger().WithField("level", s.Level()).Debug("no path, forcing refresh")
			if !wait(ctx, pace.LevelPause) {
				return nil
			}
			if err := s.Advance(); err != nil {
				return err
			}
			continue
		}

		total := path.Steps()
		for i, p := range path[1:] {
			if ctx.Err() != nil {
				return nil
			}
			s.MoveTo(p)

			frame := s.Frame()
			frame.Hint = HintAutonomous
			frame.Progress = Progress{Step: i + 1, Total: total}
			out.Render(frame)

			if !wait(ctx, pace.StepDelay) {
				return nil
			}
		}

		if s.State() == StateLevelComplete {
			times := s.LevelTimes()
			frame := s.Frame()
			frame.Hint = HintAutonomous
			frame.Message = fmt.Sprintf("Level %d complete in %.2f seconds!", s.Level(), times[len(times)-1].Seconds())
			out.Render(frame)
			if !wait(ctx, pace.LevelPause) {
				return nil
			}
			if err := s.Advance(); err != nil {
				return err
			}
		}
	}
	return nil
}

// wait sleeps for d unless ctx ends first; reports whether the loop may continue
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
