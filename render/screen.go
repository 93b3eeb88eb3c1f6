package render

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenSink presents buffers centred on a tcell screen
type ScreenSink struct {
	screen tcell.Screen
}

// NewScreenSink wraps an initialized screen
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen}
}

// NewScreen creates the full-screen renderer
func NewScreen(screen tcell.Screen) *Orchestrator {
	return NewDefault(NewScreenSink(screen))
}

// Origin returns the top-left screen cell the buffer is drawn at
func (s *ScreenSink) Origin(buf *Buffer) (int, int) {
	w, h := s.screen.Size()
	return max(0, (w-buf.Width())/2), max(0, (h-buf.Height())/2)
}

func (s *ScreenSink) Present(buf *Buffer) {
	s.screen.Clear()
	x, y := s.Origin(buf)
	buf.FlushToScreen(s.screen, x, y)
	s.screen.Show()
}
