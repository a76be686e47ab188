// Command cdylib packages the ping_go probe as a native library:
//
//	go build -buildmode=c-shared -o libping.so ./cdylib
//	go build -buildmode=c-archive -o libping.a ./cdylib
//
// The probe is exported from package ffi, so the go tool writes no header for it.
// C callers include ping.h from this directory instead.
package main

import "C"
import (
	_ "github.com/analogrelay/go-ffi-examples/ffi"
)

// main is required by the c-shared and c-archive build modes but never runs.
func main() {}
