// Package cabi is the handle skin spec.md §4.4 fixes as the ABI boundary:
// a magic-byte-validated opaque handle wrapping a built *ahocorasick.Automaton,
// the Go-native shape of original_source/ac.cxx's ac_t/ac_create/ac_match/
// ac_match2/ac_free.
//
// It is not part of the hard core (spec.md §1's "out of scope: external
// collaborators"); cmd/libac builds on top of it to export the same four
// operations across a cgo boundary.
package cabi

import "github.com/coregx/ahocorasick"

// magicByte matches the original library's AC_MAGIC_NUM so any tooling
// built against the C ABI keeps working unchanged.
const magicByte byte = 0x5A

// Handle is an opaque, magic-byte-guarded wrapper around a built Automaton.
// All foreign callers receive one of these; Match and Free both validate
// the magic byte on entry, per spec.md §6's "runtime assertions verify it
// on entry to match and free."
type Handle struct {
	magic byte
	auto  *ahocorasick.Automaton
}

// Create builds an Automaton from patterns and wraps it in a Handle.
func Create(patterns [][]byte) (*Handle, error) {
	a, err := ahocorasick.Build(patterns)
	if err != nil {
		return nil, err
	}
	return &Handle{magic: magicByte, auto: a}, nil
}

// checkMagic aborts like the original's ASSERT(ac->magic_num == AC_MAGIC_NUM):
// a failing magic byte means a foreign caller passed something that isn't
// one of our handles, or reused one after Free. That's a programming error,
// not a recoverable one (spec.md §7).
func (h *Handle) checkMagic() {
	if h == nil || h.magic != magicByte {
		panic("ahocorasick/cabi: invalid handle (bad magic byte)")
	}
}

// Match is spec.md §6's match(automaton, input): the (begin, end) pair, or
// (-1, -1) if no dictionary pattern occurs in input.
func (h *Handle) Match(input []byte) (begin, end int) {
	h.checkMagic()
	m := h.auto.Find(input, 0)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// Match2 is the original's ac_match2: match_begin only, for foreign
// callers whose calling convention handles a scalar return more cheaply
// than a struct return (spec.md §6).
func (h *Handle) Match2(input []byte) int {
	h.checkMagic()
	return h.auto.MatchBeginOnly(input)
}

// Free releases the wrapped Automaton and invalidates the handle's magic
// byte, so a subsequent Match/Free on the same Handle is caught by
// checkMagic instead of operating on a half-released automaton.
func (h *Handle) Free() {
	h.checkMagic()
	h.auto.Free()
	h.magic = 0
}
