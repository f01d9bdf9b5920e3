// Command libac is the cgo-exported shared-library entry point, the direct
// descendant of the original libac.so (original_source/ac.cxx, ac.h): it
// exports ac_create/ac_match/ac_match2/ac_free across the C ABI, backed by
// the cabi.Handle / ahocorasick.Automaton this module implements natively.
//
// Build with:
//
//	go build -buildmode=c-shared -o libac.so ./cmd/libac
//
// which produces libac.so plus a generated libac.h whose ac_create/
// ac_match/ac_match2/ac_free signatures match original_source/ac.h.
package main

/*
#include <stdlib.h>

typedef struct {
    int match_begin;
    int match_end;
} ac_result_t;
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/coregx/ahocorasick/cabi"
)

// ac_create builds an automaton from an array of NUL-terminated C strings
// and returns an opaque handle, or NULL on any build error (spec.md §7:
// build is all-or-nothing, so there is nothing partial to hand back).
//
//export ac_create
func ac_create(strv **C.char, vectLen C.uint) unsafe.Pointer {
	n := int(vectLen)
	patterns := make([][]byte, n)
	base := unsafe.Slice(strv, n)
	for i := 0; i < n; i++ {
		patterns[i] = []byte(C.GoString(base[i]))
	}

	h, err := cabi.Create(patterns)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(cgo.NewHandle(h))
}

func handleFromPointer(p unsafe.Pointer) *cabi.Handle {
	return cgo.Handle(p).Value().(*cabi.Handle)
}

// ac_match is spec.md §6's match(automaton, input), by-value struct return.
//
//export ac_match
func ac_match(ac unsafe.Pointer, str *C.char, length C.uint) C.ac_result_t {
	h := handleFromPointer(ac)
	input := C.GoBytes(unsafe.Pointer(str), C.int(length))
	begin, end := h.Match(input)
	return C.ac_result_t{match_begin: C.int(begin), match_end: C.int(end)}
}

// ac_match2 returns match_begin only, for callers (the original's comment
// names luajit specifically) whose calling convention handles a scalar
// return more cheaply than a struct return.
//
//export ac_match2
func ac_match2(ac unsafe.Pointer, str *C.char, length C.uint) C.int {
	h := handleFromPointer(ac)
	input := C.GoBytes(unsafe.Pointer(str), C.int(length))
	return C.int(h.Match2(input))
}

// ac_free releases the automaton and invalidates the cgo.Handle, so a
// repeated free of the same pointer panics in the cgo.Handle lookup
// instead of reaching the released automaton.
//
//export ac_free
func ac_free(ac unsafe.Pointer) {
	handle := cgo.Handle(ac)
	handle.Value().(*cabi.Handle).Free()
	handle.Delete()
}

func main() {}
