package ffi

import (
	"io"
	"testing"
)

var sink bool

func BenchmarkPingNative(b *testing.B) {
	var acc bool

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		acc = Ping(io.Discard, acc)
	}
	sink = acc
}

func BenchmarkPingCgo(b *testing.B) {
	prev := SetOutput(io.Discard)
	defer SetOutput(prev)

	var acc bool

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc = CallPing(acc)
	}
	sink = acc
}
