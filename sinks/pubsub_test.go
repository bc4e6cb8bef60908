package sinks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakePublisher records published payloads, optionally failing every send.
type fakePublisher struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, string(data))
	return nil
}

func (f *fakePublisher) Sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	copy(out, f.sent)
	return out
}

func TestPubSubPublishes(t *testing.T) {
	t.Parallel()

	fake := &fakePublisher{}
	p := PubSub(fake, PubSubConfig{})

	p(`Error: "boom"`)
	p("Error: Option::None")

	require.Equal(t, []string{`Error: "boom"`, "Error: Option::None"}, fake.Sent())
}

func TestPubSubLogsPublishFailure(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	fake := &fakePublisher{err: errors.New("topic not found")}
	p := PubSub(fake, PubSubConfig{Logger: zap.New(core)})

	p("lost line")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "publish diagnostic failed", entries[0].Message)
}

func TestPubSubNilPublisher(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		PubSub(nil, PubSubConfig{})("dropped")
	})
}
