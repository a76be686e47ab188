package ffi

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWriter struct {
	mu    sync.Mutex
	calls int
	bytes strings.Builder
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls++
	return w.bytes.Write(p)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func captureProbe(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })
	return &buf
}

func TestPing(t *testing.T) {
	for _, in := range []bool{true, false} {
		var buf bytes.Buffer
		assert.Equal(t, !in, Ping(&buf, in))
		assert.Equal(t, Marker, buf.String())
	}
}

func TestPingIgnoresWriteErrors(t *testing.T) {
	assert.False(t, Ping(failingWriter{}, true))
	assert.True(t, Ping(failingWriter{}, false))
}

func TestCallPingCrossesBoundary(t *testing.T) {
	buf := captureProbe(t)

	assert.False(t, CallPing(true))
	assert.Equal(t, Marker, buf.String())

	assert.True(t, CallPing(false))
	assert.Equal(t, Marker+Marker, buf.String())
}

func TestCallPingWritesOncePerCall(t *testing.T) {
	buf := captureProbe(t)

	const calls = 25
	for i := 0; i < calls; i++ {
		CallPing(i%3 == 0)
	}
	assert.Equal(t, calls, strings.Count(buf.String(), Marker))
	assert.Len(t, buf.String(), calls*len(Marker))
}

func TestCallPingConcurrent(t *testing.T) {
	w := &countingWriter{}
	prev := SetOutput(w)
	defer SetOutput(prev)

	const workers, calls = 8, 200

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(in bool) {
			defer wg.Done()
			for j := 0; j < calls; j++ {
				if CallPing(in) == in {
					t.Errorf("CallPing(%v) returned its input", in)
					return
				}
			}
		}(i%2 == 0)
	}
	wg.Wait()

	assert.Equal(t, workers*calls, w.calls)
	assert.Equal(t, strings.Repeat(Marker, workers*calls), w.bytes.String())
}

func TestCallPingWithFailingOutput(t *testing.T) {
	prev := SetOutput(failingWriter{})
	defer SetOutput(prev)

	assert.False(t, CallPing(true))
}

func TestSetOutputNilRestoresStdout(t *testing.T) {
	prev := SetOutput(io.Discard)
	defer SetOutput(prev)

	require.Equal(t, io.Discard, SetOutput(nil))
	assert.Equal(t, os.Stdout, SetOutput(io.Discard))
}
