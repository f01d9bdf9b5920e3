package ahocorasick

// stateID identifies a reference-automaton state. The root is always 1;
// zero is reserved as "no state" the same way the packed buffer reserves
// offset zero for "no transition".
type stateID uint32

const invalidState stateID = 0

// refState is one node of the reference trie. Fields mirror
// original_source/ac_slow.hpp's ACS_State: an id assigned in allocation
// order, a depth, a terminal flag, a failure link, and a goto map.
type refState struct {
	id       stateID
	depth    int
	terminal bool
	fail     stateID
	goTo     map[byte]stateID
}

// refAC is the reference automaton: a trie with failure links and
// propagated terminality, built incrementally by Builder.Build and
// discarded once conversion to a PackedAC succeeds.
type refAC struct {
	states []refState // index 0 unused, root is states[1]
}

func newRefAC() *refAC {
	ac := &refAC{states: make([]refState, 2, 64)}
	ac.states[1] = refState{id: 1, depth: 0, fail: 1, goTo: make(map[byte]stateID)}
	return ac
}

func (ac *refAC) root() stateID { return 1 }

func (ac *refAC) state(id stateID) *refState { return &ac.states[id] }

// stateCount returns the number of allocated states, root included.
func (ac *refAC) stateCount() int { return len(ac.states) - 1 }

// newState allocates a state one level deeper than parentDepth and returns
// its id; the caller installs the goto edge that leads to it.
func (ac *refAC) newState(parentDepth int) stateID {
	id := stateID(len(ac.states))
	ac.states = append(ac.states, refState{
		id:    id,
		depth: parentDepth + 1,
		fail:  ac.root(),
		goTo:  nil, // allocated lazily; most leaves have no children
	})
	return id
}

// gotoEdge returns the child reached from s on byte b, or invalidState.
func (ac *refAC) gotoEdge(s stateID, b byte) stateID {
	m := ac.states[s].goTo
	if m == nil {
		return invalidState
	}
	child, ok := m[b]
	if !ok {
		return invalidState
	}
	return child
}

// setGoto installs or overwrites the edge from s on byte b.
func (ac *refAC) setGoto(s stateID, b byte, child stateID) {
	st := &ac.states[s]
	if st.goTo == nil {
		st.goTo = make(map[byte]stateID)
	}
	st.goTo[b] = child
}

// addPattern walks/extends the trie for pattern p, marking its terminal
// state. Duplicate patterns revisit existing states and are a no-op beyond
// that. Grounded on original_source/ac_slow.hpp's ACS_Constructor::Add_String.
func (ac *refAC) addPattern(p []byte) {
	s := ac.root()
	for _, b := range p {
		child := ac.gotoEdge(s, b)
		if child == invalidState {
			child = ac.newState(ac.states[s].depth)
			ac.setGoto(s, b, child)
		}
		s = child
	}
	ac.states[s].terminal = true
}
