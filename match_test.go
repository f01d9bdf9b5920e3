package ahocorasick

import (
	"errors"
	"testing"
)

// TestConcreteScenarios exercises spec.md §8's six worked examples.
func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name      string
		dict      []string
		haystack  string
		wantBegin int
		wantEnd   int
	}{
		{"she-he-suffix", []string{"he", "she", "his", "her"}, "ahe", 1, 2},
		{"hers-earliest-he", []string{"he", "she", "his", "her"}, "hers", 0, 1},
		{"dup-patterns-no-match", []string{"poto", "poto"}, "The pot had a handle", -1, -1},
		{"prefix-match", []string{"The"}, "The pot had a handle", 0, 2},
		{"mid-span", []string{"ot h"}, "The pot had a handle", 5, 8},
		{"suffix-span", []string{"andle"}, "The pot had a handle", 15, 19},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Build(toBytes(tc.dict))
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			m := a.Find([]byte(tc.haystack), 0)
			if tc.wantBegin == -1 {
				if m != nil {
					t.Fatalf("Find(%q) = %v, want no match", tc.haystack, m)
				}
				return
			}
			if m == nil {
				t.Fatalf("Find(%q) = nil, want (%d,%d)", tc.haystack, tc.wantBegin, tc.wantEnd)
			}
			if m.Start != tc.wantBegin || m.End != tc.wantEnd {
				t.Errorf("Find(%q) = (%d,%d), want (%d,%d)", tc.haystack, m.Start, m.End, tc.wantBegin, tc.wantEnd)
			}
		})
	}
}

// TestBoundaryBehaviors covers spec.md §8's boundary cases.
func TestBoundaryBehaviors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		a, _ := Build(toBytes([]string{"abc"}))
		if m := a.Find(nil, 0); m != nil {
			t.Errorf("Find(empty) = %v, want nil", m)
		}
	})

	t.Run("pattern equal to input", func(t *testing.T) {
		a, _ := Build(toBytes([]string{"hello"}))
		m := a.Find([]byte("hello"), 0)
		if m == nil || m.Start != 0 || m.End != 4 {
			t.Errorf("Find = %v, want (0,4)", m)
		}
	})

	t.Run("pattern is proper prefix of input", func(t *testing.T) {
		a, _ := Build(toBytes([]string{"hel"}))
		m := a.Find([]byte("hello"), 0)
		if m == nil || m.Start != 0 || m.End != 2 {
			t.Errorf("Find = %v, want (0,2)", m)
		}
	})

	t.Run("pattern is suffix of another pattern (terminality propagation)", func(t *testing.T) {
		// "he" is a suffix of "she"; the "she" state is terminal both
		// because "she" ends there and because its failure link is the
		// terminal "he" state.
		a, _ := Build(toBytes([]string{"he", "she"}))
		m := a.Find([]byte("she"), 0)
		if m == nil {
			t.Fatal("expected a match")
		}
		// The automaton's live state when processing "she" never leaves
		// the "she" branch of the trie (it's a direct goto path), so it
		// reports "she" itself at end=2, not the shorter suffix "he".
		if m.End != 2 {
			t.Errorf("Find(%q) end = %d, want 2", "she", m.End)
		}
	})

	t.Run("empty dictionary always no-match", func(t *testing.T) {
		a, err := Build(nil)
		if err != nil {
			t.Fatalf("Build(nil): %v", err)
		}
		if m := a.Find([]byte("anything"), 0); m != nil {
			t.Errorf("Find = %v, want nil", m)
		}
		if a.MatchBeginOnly([]byte("anything")) != -1 {
			t.Error("MatchBeginOnly should be -1 for an empty dictionary")
		}
	})
}

// TestEmptyPatternRejected covers spec.md §4.1/§7: an empty pattern string
// fails the whole build with InvalidPattern.
func TestEmptyPatternRejected(t *testing.T) {
	_, err := Build([][]byte{[]byte("ok"), {}})
	if err == nil {
		t.Fatal("expected an error for an empty pattern")
	}
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BuildError, got %T: %v", err, err)
	}
	if be.Err != ErrInvalidPattern {
		t.Errorf("Err = %v, want ErrInvalidPattern", be.Err)
	}
}

// TestDuplicatePatternsDontGrowTrie covers spec.md §8 invariant 4.
func TestDuplicatePatternsDontGrowTrie(t *testing.T) {
	once, err := Build(toBytes([]string{"poto"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	twice, err := Build(toBytes([]string{"poto", "poto"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if once.StateCount() != twice.StateCount() {
		t.Errorf("StateCount differs: %d vs %d", once.StateCount(), twice.StateCount())
	}
}

// TestDeterministic covers spec.md §8 invariant 3: equal dictionaries
// yield byte-identical packed buffers.
func TestDeterministic(t *testing.T) {
	dict := toBytes([]string{"he", "she", "his", "her"})
	a, err := Build(dict)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(dict)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(a.buf) != len(b.buf) {
		t.Fatalf("buffer lengths differ: %d vs %d", len(a.buf), len(b.buf))
	}
	for i := range a.buf {
		if a.buf[i] != b.buf[i] {
			t.Fatalf("buffers diverge at byte %d", i)
		}
	}
}

// TestMatchBeginOnly covers spec.md §8 invariant 6.
func TestMatchBeginOnly(t *testing.T) {
	a, err := Build(toBytes([]string{"he", "she", "his", "her"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, hs := range []string{"ahe", "hers", "nothing", ""} {
		m := a.Find([]byte(hs), 0)
		begin := -1
		if m != nil {
			begin = m.Start
		}
		if got := a.MatchBeginOnly([]byte(hs)); got != begin {
			t.Errorf("MatchBeginOnly(%q) = %d, want %d", hs, got, begin)
		}
	}
}

// TestFindAt covers the Go-native `at` resume parameter.
func TestFindAt(t *testing.T) {
	a, err := Build(toBytes([]string{"cat", "dog"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	hs := []byte("cat and dog")
	first := a.Find(hs, 0)
	if first == nil || first.Start != 0 {
		t.Fatalf("first match = %v, want start 0", first)
	}
	second := a.Find(hs, first.End+1)
	if second == nil || second.Start != 8 {
		t.Fatalf("second match = %v, want start 8", second)
	}
}

// TestIsMatch cross-checks IsMatch against Find for a range of inputs.
func TestIsMatch(t *testing.T) {
	a, err := Build(toBytes([]string{"alpha", "bravo", "charlie"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cases := []string{"this is alpha", "no match here", "", "bravo!"}
	for _, c := range cases {
		want := a.Find([]byte(c), 0) != nil
		if got := a.IsMatch([]byte(c)); got != want {
			t.Errorf("IsMatch(%q) = %v, want %v", c, got, want)
		}
	}
}

func toBytes(ss []string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}
