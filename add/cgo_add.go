//go:build cgo

package add

/*
#include <stddef.h>
#include <stdint.h>

static inline uint8_t add_c(uint8_t a, uint8_t b) {
    return (uint8_t)(a + b);
}

static inline uint8_t sum_c(const uint8_t *values, size_t n) {
    uint8_t total = 0;
    for (size_t i = 0; i < n; i++) {
        total = (uint8_t)(total + values[i]);
    }
    return total;
}
*/
// #cgo nocallback add_c
// #cgo noescape add_c
// #cgo nocallback sum_c
// #cgo noescape sum_c
import "C"

import "unsafe"

// AddCgo is Add implemented in C. It wraps on overflow exactly like Add.
func AddCgo(a, b uint8) uint8 {
	return uint8(C.add_c(C.uint8_t(a), C.uint8_t(b)))
}

// SumCgo is Sum implemented in C. The slice is passed to C without copying.
func SumCgo(values ...uint8) uint8 {
	if len(values) == 0 {
		return 0
	}
	return uint8(C.sum_c((*C.uint8_t)(unsafe.Pointer(&values[0])), C.size_t(len(values))))
}
