package ahocorasick

// buildRefAC runs spec.md §4.1's build(patterns) operation: trie
// construction followed by a breadth-first failure-link assignment pass
// that also propagates terminality along failure chains.
//
// An empty pattern list yields a refAC containing only the root (its
// caller converts this into a PackedAC whose Find always returns nil).
// An empty pattern string is rejected with ErrInvalidPattern before any
// state is touched, so Build stays all-or-nothing.
func buildRefAC(patterns [][]byte) (*refAC, error) {
	for _, p := range patterns {
		if len(p) == 0 {
			return nil, &BuildError{Pattern: p, Err: ErrInvalidPattern}
		}
	}

	ac := newRefAC()
	for _, p := range patterns {
		ac.addPattern(p)
	}
	ac.assignFailureLinks()
	return ac, nil
}

// assignFailureLinks performs the breadth-first pass described in spec.md
// §4.1 step 3:
//
//   - every child of the root reached by byte b gets fail(c) = root.
//   - for a state s at depth >= 1 with child c on byte b: let f = fail(s);
//     while f has no goto on b and f != root, advance f = fail(f); then
//     fail(c) = goto(f, b) if that exists and differs from c, else root.
//   - after fail(c) is set, if fail(c) is terminal then c becomes terminal
//     too (terminality propagation), so matching only ever inspects the
//     current state's own terminal bit.
//
// Construction visits states in BFS order off a plain FIFO queue: the
// reference trie is a tree, so every non-root state is discovered exactly
// once and a visited-set is unnecessary (unlike internal/sparse's use
// during packed conversion, where re-emission genuinely must be caught).
func (ac *refAC) assignFailureLinks() {
	root := ac.root()
	queue := make([]stateID, 0, len(ac.states))

	// Root's own children: fail = root.
	rootEdges := sortedEdges(ac.states[root].goTo)
	for _, e := range rootEdges {
		ac.states[e.child].fail = root
		queue = append(queue, e.child)
	}

	for qi := 0; qi < len(queue); qi++ {
		s := queue[qi]
		edges := sortedEdges(ac.states[s].goTo)
		for _, e := range edges {
			b, c := e.b, e.child
			f := ac.states[s].fail
			for f != root && ac.gotoEdge(f, b) == invalidState {
				f = ac.states[f].fail
			}
			target := ac.gotoEdge(f, b)
			if target != invalidState && target != c {
				ac.states[c].fail = target
			} else {
				ac.states[c].fail = root
			}
			if ac.states[ac.states[c].fail].terminal {
				ac.states[c].terminal = true
			}
			queue = append(queue, c)
		}
	}
}

type gotoEdgeEntry struct {
	b     byte
	child stateID
}

// sortedEdges returns a state's outgoing transitions sorted ascending by
// input byte. Pass 2 of conversion relies on the same ascending order for
// sparse records (spec.md §4.2), so both trie traversal and emission share
// this helper to guarantee the encoding matches the construction order.
func sortedEdges(m map[byte]stateID) []gotoEdgeEntry {
	if len(m) == 0 {
		return nil
	}
	edges := make([]gotoEdgeEntry, 0, len(m))
	for b, c := range m {
		edges = append(edges, gotoEdgeEntry{b, c})
	}
	// Insertion sort: fanout is at most 256 and usually tiny, so this beats
	// the overhead of sort.Slice's reflection-free but closure-heavy path.
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && edges[j-1].b > edges[j].b; j-- {
			edges[j-1], edges[j] = edges[j], edges[j-1]
		}
	}
	return edges
}
