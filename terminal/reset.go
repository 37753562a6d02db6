package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

var (
	savedState *term.State
	savedFd    = -1
)

// IsInteractive reports whether fd is a terminal
func IsInteractive(fd int) bool {
	return term.IsTerminal(fd)
}

// SaveState records the termios of fd so EmergencyReset can restore it
func SaveState(fd int) error {
	st, err := term.GetState(fd)
	if err != nil {
		return err
	}
	savedState = st
	savedFd = fd
	return nil
}

// EmergencyReset leaves the alternate screen and restores the saved terminal mode
// Best-effort, used from crash handlers where the screen may be half torn down
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	if savedState != nil {
		term.Restore(savedFd, savedState)
	}
}
