package ffi

/*
#include <stdbool.h>

bool call_ping_go(bool ping);
*/
import "C"

// CallPing invokes ping_go through its C entry point, the same way a foreign
// caller linked against the library would.
func CallPing(ping bool) bool {
	return bool(C.call_ping_go(C.bool(ping)))
}
