// Package terminal holds the process-level terminal helpers the entry point needs around tcell:
// interactive detection for choosing screen or line mode, and crash recovery
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether both files are attached to a terminal
func IsInteractive(in, out *os.File) bool {
	return in != nil && out != nil &&
		term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// Guard remembers the terminal mode at startup so it can be put back after a crash
type Guard struct {
	fd    int
	state *term.State
}

// NewGuard captures the current mode of f; a non-terminal f yields a guard that only writes resets
func NewGuard(f *os.File) *Guard {
	g := &Guard{fd: -1}
	if f == nil {
		return g
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return g
	}
	if state, err := term.GetState(fd); err == nil {
		g.fd = fd
		g.state = state
	}
	return g
}

// Restore puts the captured mode back, best-effort
func (g *Guard) Restore() {
	if g == nil || g.state == nil {
		return
	}
	_ = term.Restore(g.fd, g.state)
}

// EmergencyReset writes reset sequences to w and restores the captured mode
// Used from panic recovery when tcell could not finalize the screen
func (g *Guard) EmergencyReset(w io.Writer) {
	EmergencyReset(w)
	g.Restore()
}

// EmergencyReset writes the sequences that leave the alternate screen and restore the cursor
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
