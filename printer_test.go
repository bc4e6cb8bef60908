package unwrapprint

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// resetPrinter clears the global slot before and after a test that touches
// it. Tests that call it must not run in parallel.
func resetPrinter(t *testing.T) {
	t.Helper()
	SetPrinterForce(nil)
	t.Cleanup(func() { SetPrinterForce(nil) })
}

// capturePrinter records dispatched lines for assertions.
type capturePrinter struct {
	mu    sync.Mutex
	lines []string
}

func (c *capturePrinter) print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, text)
}

func (c *capturePrinter) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// captureStdout runs fn with os.Stdout swapped for a pipe and returns
// everything fn wrote to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(out)
}

func TestTrySetPrinterInstallsFirst(t *testing.T) {
	resetPrinter(t)

	first := &capturePrinter{}
	second := &capturePrinter{}

	require.True(t, TrySetPrinter(first.print))
	require.False(t, TrySetPrinter(second.print))

	Dispatch("hello")

	require.Equal(t, []string{"hello"}, first.Lines())
	require.Empty(t, second.Lines())
}

func TestTrySetPrinterNil(t *testing.T) {
	resetPrinter(t)

	require.False(t, TrySetPrinter(nil))

	// The nil attempt must not occupy the slot.
	sink := &capturePrinter{}
	require.True(t, TrySetPrinter(sink.print))
}

func TestTrySetPrinterConcurrent(t *testing.T) {
	resetPrinter(t)

	const attempts = 32

	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if TrySetPrinter(func(string) {}) {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
}

func TestSetPrinterForceOverwrites(t *testing.T) {
	resetPrinter(t)

	first := &capturePrinter{}
	second := &capturePrinter{}

	SetPrinterForce(first.print)
	Dispatch("one")
	SetPrinterForce(second.print)
	Dispatch("two")

	require.Equal(t, []string{"one"}, first.Lines())
	require.Equal(t, []string{"two"}, second.Lines())
}

func TestSetPrinterForceNilRestoresDefault(t *testing.T) {
	resetPrinter(t)

	sink := &capturePrinter{}
	SetPrinterForce(sink.print)
	SetPrinterForce(nil)

	out := captureStdout(t, func() {
		Dispatch("back to stdout")
	})

	require.Equal(t, "back to stdout\n", out)
	require.Empty(t, sink.Lines())
}

func TestDispatchDefaultStdout(t *testing.T) {
	resetPrinter(t)

	out := captureStdout(t, func() {
		Dispatch("foobar")
	})

	require.Equal(t, "foobar\n", out)
}

func TestDispatchReentrantPrinter(t *testing.T) {
	resetPrinter(t)

	sink := &capturePrinter{}
	// Re-entry runs synchronously on the dispatching goroutine, so a
	// plain bool is enough to bound the nesting.
	nested := false
	SetPrinterForce(func(text string) {
		sink.print(text)
		if !nested {
			nested = true
			Dispatch("nested")
		}
	})

	done := make(chan struct{})
	go func() {
		Dispatch("outer")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("re-entrant dispatch deadlocked")
	}

	require.Equal(t, []string{"outer", "nested"}, sink.Lines())
}

func TestReentrantPrinterUnwraps(t *testing.T) {
	resetPrinter(t)

	sink := &capturePrinter{}
	nested := false
	SetPrinterForce(func(text string) {
		sink.print(text)
		if !nested {
			nested = true
			_, _ = UnwrapPrintOK(0, false)
		}
	})

	done := make(chan struct{})
	go func() {
		_, _ = UnwrapPrint(0, errors.New("outer"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("re-entrant unwrap deadlocked")
	}

	lines := sink.Lines()
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"outer"`)
	require.True(t, strings.HasSuffix(lines[1], ": Option::None"))
}

func TestDispatchf(t *testing.T) {
	resetPrinter(t)

	sink := &capturePrinter{}
	SetPrinterForce(sink.print)

	Dispatchf("attempt %d of %d", 2, 5)

	require.Equal(t, []string{"attempt 2 of 5"}, sink.Lines())
}
