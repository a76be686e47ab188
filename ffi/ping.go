// Package ffi exposes a small probe across the C ABI. Linking this package into a
// c-shared or c-archive build exports the unmangled symbol
//
//	bool ping_go(bool ping);
//
// which writes a fixed marker to standard output and returns the negation of its
// argument.
package ffi

/*
#include <stdbool.h>
*/
import "C"
import (
	"io"
	"os"
	"sync/atomic"
)

// Marker is written once per call to the exported probe.
const Marker = "go"

type output struct {
	w io.Writer
}

// out is swapped atomically so concurrent probe calls never serialize on it.
// The writer itself must tolerate concurrent writes when callers do that.
var out atomic.Pointer[output]

func init() {
	out.Store(&output{w: os.Stdout})
}

// Ping writes Marker to w and returns !ping. Write errors are ignored.
func Ping(w io.Writer, ping bool) bool {
	_, _ = io.WriteString(w, Marker)
	return !ping
}

// SetOutput redirects the exported probe's output to w and returns the previous
// writer. A nil w restores standard output.
func SetOutput(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stdout
	}

	return out.Swap(&output{w: w}).w
}

//export ping_go
func ping_go(ping C.bool) C.bool {
	return C.bool(Ping(out.Load().w, bool(ping)))
}
