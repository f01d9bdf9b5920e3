package ahocorasick

// Automaton is a built, immutable multi-pattern matcher: a single
// contiguous byte buffer holding one packed record per reference state
// (spec.md §3's PackedAC), plus the auxiliary id-to-offset table retained
// from conversion.
//
// An Automaton owns exactly one []byte allocation and never reallocates
// during matching. It is safe for concurrent Find/IsMatch/MatchBeginOnly
// calls from multiple goroutines.
type Automaton struct {
	buf        []byte
	rootOffset uint32
	width      int      // 2 or 4; the offset width chosen for this buffer
	idOffsets  []uint32 // auxiliary, reference-state-id -> byte offset; conversion-time only

	patternCount int
}

// BufferLen returns the size in bytes of the automaton's packed buffer.
func (a *Automaton) BufferLen() int { return len(a.buf) }

// OffsetWidth returns 2 or 4, the byte width used for every offset stored
// inside the packed buffer (spec.md §4.2's "choice of offset width").
func (a *Automaton) OffsetWidth() int { return a.width }

// StateCount returns the number of states the reference automaton had
// before conversion (root included), i.e. the number of packed records.
func (a *Automaton) StateCount() int { return len(a.idOffsets) - 1 }

// PatternCount returns the number of patterns the automaton was built
// from, duplicates included (spec.md §3: duplicates collapse to one state
// but are still counted as supplied).
func (a *Automaton) PatternCount() int { return a.patternCount }

// Free releases the automaton's buffer. Go's garbage collector reclaims
// the memory regardless; Free exists so cabi's handle skin has something
// concrete to call when a foreign caller's ac_free is invoked (spec.md
// §4.4), and so a caller that wants deterministic release timing has a
// way to drop the reference early. Calling Find on an Automaton after
// Free is a programming error; nothing guards against it beyond whatever
// the cabi magic-byte check catches at the handle boundary.
func (a *Automaton) Free() {
	a.buf = nil
	a.idOffsets = nil
}
