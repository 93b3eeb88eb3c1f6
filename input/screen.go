package input

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/game"
)

// ScreenReader turns tcell key events into commands
// A single goroutine polls the screen and forwards events over a channel
type ScreenReader struct {
	screen tcell.Screen
	keys   *KeyTable
	events chan tcell.Event
	once   sync.Once

	// OnResize is called after the screen has been synced on resize
	OnResize func()
}

// NewScreenReader reads from an initialized screen; nil keys selects the default table
func NewScreenReader(screen tcell.Screen, keys *KeyTable) *ScreenReader {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &ScreenReader{
		screen: screen,
		keys:   keys,
		events: make(chan tcell.Event, 16),
	}
}

func (r *ScreenReader) start() {
	r.once.Do(func() {
		go func() {
			defer close(r.events)
			for {
				ev := r.screen.PollEvent()
				if ev == nil {
					// Screen finalized
					return
				}
				r.events <- ev
			}
		}()
	})
}

func (r *ScreenReader) next() (tcell.Event, error) {
	r.start()
	ev, ok := <-r.events
	if !ok {
		return nil, io.EOF
	}
	return ev, nil
}

// ReadCommand blocks until a bound key is pressed; unbound keys are ignored
// Returns io.EOF once the screen has been finalized
func (r *ScreenReader) ReadCommand() (game.Command, error) {
	for {
		ev, err := r.next()
		if err != nil {
			return game.CommandNone, err
		}
		if cmd, ok := r.handle(ev); ok {
			return cmd, nil
		}
	}
}

// Acknowledge waits for any keypress
func (r *ScreenReader) Acknowledge() error {
	for {
		ev, err := r.next()
		if err != nil {
			return err
		}
		if _, ok := ev.(*tcell.EventKey); ok {
			return nil
		}
		r.handle(ev)
	}
}

func (r *ScreenReader) handle(ev tcell.Event) (game.Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.keys.Lookup(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		r.screen.Sync()
		if r.OnResize != nil {
			r.OnResize()
		}
	}
	return game.CommandNone, false
}
