package sinks

import (
	"sync"

	"github.com/JakeFAU/unwrapprint"
)

// Capture is an in-memory printer for tests. The zero value is ready to
// use; install it with unwrapprint.SetPrinterForce(c.Printer()) and read
// back what was dispatched with Lines.
type Capture struct {
	mu    sync.Mutex
	lines []string
}

// Printer returns the function to install.
func (c *Capture) Printer() unwrapprint.Printer {
	return func(text string) {
		c.mu.Lock()
		c.lines = append(c.lines, text)
		c.mu.Unlock()
	}
}

// Lines returns a copy of every line captured so far.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines captured so far.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Reset discards everything captured so far.
func (c *Capture) Reset() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}
