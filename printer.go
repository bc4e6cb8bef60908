package unwrapprint

import (
	"fmt"
	"os"
	"sync"
)

// Printer consumes one formatted diagnostic line. Implementations must be
// safe for concurrent use. Dispatch never holds internal locks while a
// Printer runs, so a printer may itself call back into this package.
type Printer func(text string)

// printerSlot holds the process-wide printer. The mutex guards the slot
// only, never the printer invocation.
var printerSlot struct {
	mu sync.Mutex
	fn Printer
}

// TrySetPrinter installs p as the global printer if none is installed yet.
// It returns true when p was installed, and false when the slot was already
// occupied or p is nil; in both failure cases the slot is left untouched.
// Under concurrent calls against an empty slot exactly one caller wins.
//
// Install the printer once, early in program startup.
func TrySetPrinter(p Printer) bool {
	if p == nil {
		return false
	}
	printerSlot.mu.Lock()
	defer printerSlot.mu.Unlock()
	if printerSlot.fn != nil {
		return false
	}
	printerSlot.fn = p
	return true
}

// SetPrinterForce unconditionally replaces the global printer, discarding
// whatever was installed before. Passing nil clears the slot so Dispatch
// falls back to standard output.
//
// This is an escape hatch for tests and controlled re-initialization;
// production code should prefer TrySetPrinter.
func SetPrinterForce(p Printer) {
	printerSlot.mu.Lock()
	printerSlot.fn = p
	printerSlot.mu.Unlock()
}

// Dispatch routes one diagnostic line to the installed printer, or writes
// it to standard output followed by a newline when no printer is installed.
//
// The slot lock is released before the printer runs. A printer that calls
// Dispatch, or any of the unwrap helpers, from inside its own execution
// does not deadlock.
func Dispatch(text string) {
	printerSlot.mu.Lock()
	p := printerSlot.fn
	printerSlot.mu.Unlock()

	if p != nil {
		p(text)
		return
	}
	fmt.Fprintln(os.Stdout, text)
}

// Dispatchf formats according to a fmt format specifier and forwards the
// result to Dispatch.
func Dispatchf(format string, args ...any) {
	Dispatch(fmt.Sprintf(format, args...))
}
