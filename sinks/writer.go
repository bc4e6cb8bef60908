package sinks

import (
	"fmt"
	"io"
	"sync"

	"github.com/JakeFAU/unwrapprint"
)

// Writer returns a printer that writes each diagnostic line to w followed
// by a newline. Concurrent dispatches are serialized so lines never
// interleave. A nil w discards.
func Writer(w io.Writer) unwrapprint.Printer {
	if w == nil {
		w = io.Discard
	}
	var mu sync.Mutex
	return func(text string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, text)
	}
}
