package ahocorasick

import "testing"

func TestBuildRefACStructure(t *testing.T) {
	ac, err := buildRefAC(toBytes([]string{"he", "she", "his", "her"}))
	if err != nil {
		t.Fatalf("buildRefAC: %v", err)
	}

	root := ac.root()
	if root != 1 {
		t.Fatalf("root id = %d, want 1", root)
	}
	if ac.states[root].depth != 0 {
		t.Fatalf("root depth = %d, want 0", ac.states[root].depth)
	}
	if ac.states[root].fail != root {
		t.Fatalf("root fail = %d, want self (%d)", ac.states[root].fail, root)
	}

	// Every non-root state's depth is parent depth + 1, and every failure
	// link targets a strictly shallower state or the root (spec.md §3).
	for id := stateID(1); int(id) < len(ac.states); id++ {
		for _, c := range ac.states[id].goTo {
			if ac.states[c].depth != ac.states[id].depth+1 {
				t.Errorf("state %d (depth %d) is a child of state %d (depth %d), want parent depth + 1",
					c, ac.states[c].depth, id, ac.states[id].depth)
			}
		}
	}
	for id := stateID(2); int(id) < len(ac.states); id++ {
		st := ac.states[id]
		fail := ac.states[st.fail]
		if st.fail != root && fail.depth >= st.depth {
			t.Errorf("state %d (depth %d) has fail link to state %d (depth %d), want strictly shallower",
				id, st.depth, st.fail, fail.depth)
		}
	}
}

func TestBuildRefACEmpty(t *testing.T) {
	ac, err := buildRefAC(nil)
	if err != nil {
		t.Fatalf("buildRefAC(nil): %v", err)
	}
	if ac.stateCount() != 1 {
		t.Fatalf("stateCount = %d, want 1 (root only)", ac.stateCount())
	}
}

func TestBuildRefACRejectsEmptyPattern(t *testing.T) {
	_, err := buildRefAC([][]byte{[]byte("a"), {}})
	if err == nil {
		t.Fatal("expected error for empty pattern")
	}
}

func TestTerminalityPropagation(t *testing.T) {
	// Standard Aho-Corasick textbook dictionary. "ba" and "ca" are not
	// patterns, but their failure links lead to the terminal "a" state, so
	// propagation must mark them terminal.
	ac, err := buildRefAC(toBytes([]string{"a", "ab", "bab", "bc", "bca", "c", "caa"}))
	if err != nil {
		t.Fatalf("buildRefAC: %v", err)
	}
	for _, prefix := range []string{"ba", "ca"} {
		s := ac.root()
		for i := 0; i < len(prefix); i++ {
			s = ac.gotoEdge(s, prefix[i])
		}
		if s == invalidState || !ac.states[s].terminal {
			t.Errorf("state %q should be terminal via failure-link propagation", prefix)
		}
	}
	// Every state's failure chain eventually reaches root.
	for id := stateID(1); int(id) < len(ac.states); id++ {
		seen := map[stateID]bool{}
		s := id
		for s != ac.root() {
			if seen[s] {
				t.Fatalf("failure chain from state %d cycles without reaching root", id)
			}
			seen[s] = true
			s = ac.states[s].fail
		}
	}
}
