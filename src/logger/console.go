package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// -----------------------------------------------------------------------------
// TerminalConsole is the IConsoleSink implementation writing journal lines
// to the process terminal.
// -----------------------------------------------------------------------------

type TerminalConsole struct {
	out io.Writer
	mu  sync.Mutex
}

// -----------------------------------------------------------------------------

func NewTerminalConsole() *TerminalConsole {
	return &TerminalConsole{out: os.Stdout}
}

// NewTerminalConsoleTo writes to an arbitrary writer (used by tests).
func NewTerminalConsoleTo(w io.Writer) *TerminalConsole {
	return &TerminalConsole{out: w}
}

// -----------------------------------------------------------------------------

// WriteLine prints one formatted journal line.
func (c *TerminalConsole) WriteLine(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, line)
}
