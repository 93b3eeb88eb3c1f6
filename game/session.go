package game

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/navigation"
)

// DefaultMaxAttempts bounds GenerateReachable when EnsureReachable is set
const DefaultMaxAttempts = 32

// Options configures a Session
type Options struct {
	Height, Width int
	Rand          maze.Rand

	// EnsureReachable regenerates until the exit is connected instead of relying on
	// refresh-on-failure
	EnsureReachable bool
	MaxAttempts     int

	Logger *logrus.Logger
	Sounds Sounds
	Clock  func() time.Time
}

// Session owns the maze, the player position and the level counter for one game
// It is not safe for concurrent use; the loop driving it is the only owner
type Session struct {
	id   uuid.UUID
	opts Options
	log  *logrus.Entry

	grid     *maze.Grid
	entrance maze.Point
	exit     maze.Point
	position maze.Point
	level    int
	state    State

	levelStart time.Time
	levelTimes []time.Duration
	refreshes  int
	moves      int
	bumps      int
}

// NewSession validates options and generates the level 1 maze
func NewSession(opts Options) (*Session, error) {
	if opts.Rand == nil {
		opts.Rand = maze.NewRand(0)
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}

	id := uuid.New()
	s := &Session{
		id:    id,
		opts:  opts,
		log:   opts.Logger.WithField("session", id.String()),
		level: 1,
	}
	if err := s.regenerate(); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"height": s.grid.Height,
		"width":  s.grid.Width,
	}).Info("session started")
	return s, nil
}

func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) Grid() *maze.Grid      { return s.grid }
func (s *Session) Entrance() maze.Point  { return s.entrance }
func (s *Session) Exit() maze.Point      { return s.exit }
func (s *Session) Position() maze.Point  { return s.position }
func (s *Session) Level() int            { return s.level }
func (s *Session) State() State          { return s.state }
func (s *Session) Logger() *logrus.Entry { return s.log }
func (s *Session) LevelStart() time.Time { return s.levelStart }
func (s *Session) Refreshes() int        { return s.refreshes }

// LevelTimes returns completion durations, one per finished level
func (s *Session) LevelTimes() []time.Duration {
	out := make([]time.Duration, len(s.levelTimes))
	copy(out, s.levelTimes)
	return out
}

// Frame snapshots the session for a renderer
func (s *Session) Frame() Frame {
	return Frame{
		Grid:     s.grid,
		Position: s.position,
		Exit:     s.exit,
		Level:    s.level,
		State:    s.state,
	}
}

// Apply handles one manual command and returns the resulting state
// Commands are ignored outside StatePlaying
func (s *Session) Apply(cmd Command) State {
	if s.state != StatePlaying {
		return s.state
	}
	if d, ok := cmd.Direction(); ok {
		s.Move(d)
		return s.state
	}
	switch cmd {
	case CommandRefresh:
		s.RequestRefresh()
	case CommandQuit:
		s.Quit()
	}
	return s.state
}

// Move commits a one-cell step if legal; illegal moves leave the position untouched
// Reports whether the player moved
func (s *Session) Move(d maze.Direction) bool {
	if s.state != StatePlaying {
		return false
	}
	next, ok := navigation.Step(s.grid, s.position, d)
	if !ok {
		s.bumps++
		s.opts.Sounds.PlayBump()
		return false
	}
	s.position = next
	s.moves++
	s.opts.Sounds.PlayStep()
	s.checkArrival()
	return true
}

// MoveTo places the player on p, used when walking a computed path
// p must be traversable; other cells are rejected and the position is kept
func (s *Session) MoveTo(p maze.Point) bool {
	if s.state != StatePlaying || !s.grid.At(p).Traversable() {
		return false
	}
	s.position = p
	s.moves++
	s.opts.Sounds.PlayStep()
	s.checkArrival()
	return true
}

// RequestRefresh moves Playing to Refreshing
func (s *Session) RequestRefresh() {
	if s.state != StatePlaying {
		return
	}
	s.state = StateRefreshing
	s.log.WithField("level", s.level).Debug("refresh requested")
}

// Quit moves Playing to the terminal Quitting state
func (s *Session) Quit() {
	if s.state != StatePlaying {
		return
	}
	s.state = StateQuitting
	s.log.WithFields(logrus.Fields{
		"level": s.level,
		"moves": s.moves,
	}).Info("session quit")
}

// Advance leaves LevelComplete or Refreshing by generating a fresh maze
// LevelComplete increments the level; Refreshing keeps it
func (s *Session) Advance() error {
	switch s.state {
	case StateLevelComplete:
		s.level++
	case StateRefreshing:
		s.refreshes++
		s.opts.Sounds.PlayRefresh()
	default:
		return nil
	}
	return s.regenerate()
}

func (s *Session) checkArrival() {
	if !navigation.IsGoal(s.position, s.exit) {
		return
	}
	elapsed := s.opts.Clock().Sub(s.levelStart)
	s.levelTimes = append(s.levelTimes, elapsed)
	s.state = StateLevelComplete
	s.opts.Sounds.PlayLevelComplete()
	s.log.WithFields(logrus.Fields{
		"level":   s.level,
		"elapsed": elapsed.String(),
	}).Info("level complete")
}

func (s *Session) regenerate() error {
	var (
		res       maze.Result
		reachable = true
		err       error
	)
	if s.opts.EnsureReachable {
		res, reachable, err = maze.GenerateReachable(s.opts.Height, s.opts.Width, s.opts.Rand, s.opts.MaxAttempts)
	} else {
		res, err = maze.Generate(s.opts.Height, s.opts.Width, s.opts.Rand)
	}
	if err != nil {
		return err
	}
	if !reachable {
		s.log.WithField("attempts", s.opts.MaxAttempts).Warn("no reachable maze within attempts, keeping last")
	}

	s.grid = res.Grid
	s.entrance = res.Entrance
	s.exit = res.Exit
	s.position = res.Entrance
	s.state = StatePlaying
	s.levelStart = s.opts.Clock()

	s.log.WithFields(logrus.Fields{
		"level":    s.level,
		"entrance": res.Entrance,
		"exit":     res.Exit,
	}).Debug("maze generated")
	return nil
}
