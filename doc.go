// Package ahocorasick implements multi-pattern exact byte-string matching.
//
// Given a fixed dictionary of patterns, Build constructs a classical
// Aho-Corasick automaton and converts it into a single contiguous,
// pointer-free byte buffer. Find then reports the earliest-ending
// occurrence of any dictionary pattern in an input byte string.
//
// Construction is a two-stage pipeline:
//
//  1. A reference automaton (trie + failure links + terminality
//     propagation) is built over linked states. This stage owns no
//     performance-critical code path; it exists to make the construction
//     algorithm easy to read and to verify against.
//  2. The reference automaton is converted into a packed automaton: a
//     single []byte with one record per state, each record self-describing
//     its transition encoding (sparse or dense) so the matcher never
//     dereferences a pointer, only byte offsets into the buffer.
//
// Basic usage:
//
//	b := ahocorasick.NewBuilder()
//	b.AddPattern([]byte("he")).AddPattern([]byte("she")).AddPattern([]byte("his")).AddPattern([]byte("her"))
//	a, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := a.Find([]byte("ahe"), 0)
//	fmt.Println(m.Start, m.End) // 1 2
//
// An *Automaton is immutable after Build and safe for concurrent Find calls
// from multiple goroutines; building a new automaton is not reentrant on a
// shared Builder.
package ahocorasick
