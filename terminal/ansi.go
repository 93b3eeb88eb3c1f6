package terminal

// ANSI sequences written during emergency reset
var (
	csiRIS           = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)
