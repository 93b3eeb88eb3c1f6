package game

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/navigation"
)

// scriptedRand replays fixed Intn results and leaves shuffles in declaration order
//
// With ints {0, 2} a 5x5 maze is always:
//
//	# ###
//	# ###
//	#   #
//	### #
//	###*#
type scriptedRand struct {
	ints  []int
	calls int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.ints[s.calls%len(s.ints)]
	s.calls++
	return v % n
}

func (s *scriptedRand) Shuffle(n int, swap func(i, j int)) {}

type scriptedReader struct {
	cmds []Command
	acks int
}

func (r *scriptedReader) ReadCommand() (Command, error) {
	if len(r.cmds) == 0 {
		return CommandNone, io.EOF
	}
	cmd := r.cmds[0]
	r.cmds = r.cmds[1:]
	return cmd, nil
}

func (r *scriptedReader) Acknowledge() error {
	r.acks++
	return nil
}

type recordingRenderer struct {
	frames []Frame
	onShow func(f Frame)
}

func (r *recordingRenderer) Render(f Frame) {
	r.frames = append(r.frames, f)
	if r.onShow != nil {
		r.onShow(f)
	}
}

func (r *recordingRenderer) messages() []string {
	var out []string
	for _, f := range r.frames {
		if f.Message != "" {
			out = append(out, f.Message)
		}
	}
	return out
}

type countingSounds struct {
	steps, bumps, levels, refreshes int
}

func (c *countingSounds) PlayStep()          { c.steps++ }
func (c *countingSounds) PlayBump()          { c.bumps++ }
func (c *countingSounds) PlayLevelComplete() { c.levels++ }
func (c *countingSounds) PlayRefresh()       { c.refreshes++ }

// tickingClock advances one second per reading
func tickingClock() func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newScriptedSession(t *testing.T, ints ...int) (*Session, *countingSounds) {
	t.Helper()
	sounds := &countingSounds{}
	s, err := NewSession(Options{
		Height: 5,
		Width:  5,
		Rand:   &scriptedRand{ints: ints},
		Sounds: sounds,
		Clock:  tickingClock(),
	})
	require.NoError(t, err)
	return s, sounds
}

var solveScripted = []Command{CommandDown, CommandDown, CommandRight, CommandRight, CommandDown, CommandDown}

func TestNewSessionStartsAtEntrance(t *testing.T) {
	s, _ := newScriptedSession(t, 0, 2)
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, maze.Point{Row: 0, Col: 1}, s.Position())
	assert.Equal(t, maze.Point{Row: 4, Col: 3}, s.Exit())
	assert.NotEqual(t, uuid.Nil, s.ID())
}

func TestNewSessionRejectsBadDimensions(t *testing.T) {
	_, err := NewSession(Options{Height: 2, Width: 41})
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
}

func TestIllegalMoveKeepsPosition(t *testing.T) {
	s, sounds := newScriptedSession(t, 0, 2)

	assert.Equal(t, StatePlaying, s.Apply(CommandLeft))
	assert.Equal(t, maze.Point{Row: 0, Col: 1}, s.Position())

	assert.Equal(t, StatePlaying, s.Apply(CommandUp))
	assert.Equal(t, maze.Point{Row: 0, Col: 1}, s.Position())

	assert.Equal(t, 2, sounds.bumps)
	assert.Equal(t, 0, sounds.steps)
}

func TestApplyReachesGoal(t *testing.T) {
	s, sounds := newScriptedSession(t, 0, 2)
	for _, cmd := range solveScripted[:len(solveScripted)-1] {
		require.Equal(t, StatePlaying, s.Apply(cmd))
	}
	assert.Equal(t, StateLevelComplete, s.Apply(CommandDown))
	assert.Equal(t, s.Exit(), s.Position())
	assert.Equal(t, []time.Duration{time.Second}, s.LevelTimes())
	assert.Equal(t, 1, sounds.levels)

	// Commands are ignored until the level is advanced
	assert.Equal(t, StateLevelComplete, s.Apply(CommandUp))
	assert.Equal(t, s.Exit(), s.Position())

	require.NoError(t, s.Advance())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, s.Entrance(), s.Position())
}

func TestRefreshKeepsLevel(t *testing.T) {
	s, sounds := newScriptedSession(t, 0, 2)
	s.Apply(CommandDown)
	assert.Equal(t, StateRefreshing, s.Apply(CommandRefresh))
	require.NoError(t, s.Advance())

	assert.Equal(t, 1, s.Level())
	assert.Equal(t, s.Entrance(), s.Position())
	assert.Equal(t, 1, s.Refreshes())
	assert.Equal(t, 1, sounds.refreshes)
}

func TestQuitIsTerminal(t *testing.T) {
	s, _ := newScriptedSession(t, 0, 2)
	assert.Equal(t, StateQuitting, s.Apply(CommandQuit))
	assert.Equal(t, StateQuitting, s.Apply(CommandDown))
	require.NoError(t, s.Advance())
	assert.Equal(t, StateQuitting, s.State())
	assert.Equal(t, maze.Point{Row: 0, Col: 1}, s.Position())
}

func TestEnsureReachableSession(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		s, err := NewSession(Options{Height: 21, Width: 41, Rand: maze.NewRand(seed), EnsureReachable: true})
		require.NoError(t, err)
		assert.NotEmpty(t, navigation.FindPath(s.Grid(), s.Position(), s.Exit()), "seed %d", seed)
	}
}

func TestRunManualPlaysLevel(t *testing.T) {
	s, _ := newScriptedSession(t, 0, 2)
	cmds := append([]Command{CommandLeft}, solveScripted...)
	cmds = append(cmds, CommandRight, CommandQuit)
	reader := &scriptedReader{cmds: cmds}
	out := &recordingRenderer{}

	require.NoError(t, RunManual(context.Background(), s, reader, out))

	assert.Equal(t, StateQuitting, s.State())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 1, reader.acks)
	// Right from the level 2 entrance hits a wall
	assert.Equal(t, s.Entrance(), s.Position())
	require.NotEmpty(t, out.messages())
	assert.True(t, strings.HasPrefix(out.messages()[0], "Level 1 complete!"))

	st := s.Stats()
	assert.Equal(t, 1, st.Completed)
	assert.Equal(t, 6, st.Moves)
	assert.Equal(t, 2, st.Bumps)
	assert.Equal(t, time.Second, st.Best)
	assert.Equal(t, time.Second, st.Average)
}

func TestRunManualEOFQuits(t *testing.T) {
	s, _ := newScriptedSession(t, 0, 2)
	reader := &scriptedReader{cmds: []Command{CommandDown, CommandRefresh}}
	out := &recordingRenderer{}

	require.NoError(t, RunManual(context.Background(), s, reader, out))
	assert.Equal(t, StateQuitting, s.State())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 1, s.Refreshes())
	assert.Equal(t, s.Entrance(), s.Position())
	assert.Contains(t, out.messages(), "Maze refreshed")
}

func TestRunAutonomousStopsMidPath(t *testing.T) {
	s, err := NewSession(Options{Height: 21, Width: 41, Rand: maze.NewRand(11), EnsureReachable: true})
	require.NoError(t, err)
	path := navigation.FindPath(s.Grid(), s.Position(), s.Exit())
	require.Greater(t, len(path), 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &recordingRenderer{onShow: func(f Frame) {
		if f.Progress.Step == 3 {
			cancel()
		}
	}}

	require.NoError(t, RunAutonomous(ctx, s, out, Pace{}))
	assert.Equal(t, path[3], s.Position())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, StatePlaying, s.State())
}

func TestRunAutonomousAdvancesLevels(t *testing.T) {
	s, err := NewSession(Options{Height: 21, Width: 41, Rand: maze.NewRand(5)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &recordingRenderer{onShow: func(f Frame) {
		if f.Level == 3 {
			cancel()
		}
	}}

	require.NoError(t, RunAutonomous(ctx, s, out, Pace{}))
	assert.Equal(t, 3, s.Level())
	assert.Len(t, s.LevelTimes(), 2)

	sawProgress := false
	for _, f := range out.frames {
		if f.Progress.Active() {
			sawProgress = true
			assert.LessOrEqual(t, f.Progress.Step, f.Progress.Total)
		}
	}
	assert.True(t, sawProgress)
}

func TestRunAutonomousRefreshesUnreachableMaze(t *testing.T) {
	// Exit column 2 is never on the entrance lattice
	s, _ := newScriptedSession(t, 0, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	noPath := 0
	out := &recordingRenderer{onShow: func(f Frame) {
		if strings.HasPrefix(f.Message, "No path found") {
			noPath++
			if noPath == 2 {
				cancel()
			}
		}
	}}

	require.NoError(t, RunAutonomous(ctx, s, out, Pace{}))
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 1, s.Refreshes())
	assert.Equal(t, StateRefreshing, s.State())
}

func TestRunAutonomousHonorsDeadline(t *testing.T) {
	s, err := NewSession(Options{Height: 21, Width: 41, Rand: maze.NewRand(9)})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	require.NoError(t, RunAutonomous(ctx, s, &recordingRenderer{}, Pace{StepDelay: time.Millisecond, LevelPause: 5 * time.Millisecond}))
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, s.Grid().At(s.Position()).Traversable())
}
