package ahocorasick

// Match is the result of a successful Find: a pair of zero-based inclusive
// byte indices into the input. end >= begin >= 0 always holds for a
// returned match; "no match" is represented as a nil *Match rather than
// spec.md §3's (-1,-1) sentinel pair, which is the more idiomatic Go
// rendering of the same contract.
type Match struct {
	Start int
	End   int
}

// Find runs spec.md §4.3's matcher starting the scan at byte index at,
// returning the earliest-ending occurrence of any dictionary pattern at or
// after at, or nil if none exists.
//
// Find performs no I/O and never blocks; concurrent calls against the same
// Automaton are safe because the packed buffer is immutable after Build.
func (a *Automaton) Find(haystack []byte, at int) *Match {
	s := a.rootOffset
	start := at
	for i := at; i < len(haystack); i++ {
		b := haystack[i]
		for {
			rec := readRecord(a.buf, int(s), a.width)
			child := rec.lookup(b)
			if child != 0 {
				if s == a.rootOffset {
					start = i
				}
				s = child
				if readRecord(a.buf, int(s), a.width).isTerm {
					return &Match{Start: start, End: i}
				}
				break
			}
			if s == a.rootOffset {
				break
			}
			s = rec.failOffset()
		}
	}
	return nil
}

// IsMatch reports whether any dictionary pattern occurs in haystack. It
// runs the same scan as Find but never allocates a *Match.
func (a *Automaton) IsMatch(haystack []byte) bool {
	s := a.rootOffset
	for i := 0; i < len(haystack); i++ {
		b := haystack[i]
		for {
			rec := readRecord(a.buf, int(s), a.width)
			child := rec.lookup(b)
			if child != 0 {
				s = child
				if readRecord(a.buf, int(s), a.width).isTerm {
					return true
				}
				break
			}
			if s == a.rootOffset {
				break
			}
			s = rec.failOffset()
		}
	}
	return false
}

// MatchBeginOnly is spec.md §6's match_begin_only: a convenience for
// foreign callers whose calling convention handles a scalar return more
// cheaply than an aggregate one (see SPEC_FULL.md §6 on ac_match2). It
// always equals Find(haystack, 0).Start, or -1 when Find returns nil.
func (a *Automaton) MatchBeginOnly(haystack []byte) int {
	m := a.Find(haystack, 0)
	if m == nil {
		return -1
	}
	return m.Start
}
