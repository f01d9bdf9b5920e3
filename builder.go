package ahocorasick

// Builder accumulates patterns and produces an *Automaton. It mirrors the
// nfa package's incremental Builder shape (NewBuilder, Add*, then a single
// terminal Build call), generalized from NFA states to dictionary patterns.
//
// A Builder is exclusively owned by its caller during construction and is
// not reentrant: building is not safe to call concurrently with AddPattern
// on the same Builder (spec.md §5).
type Builder struct {
	patterns [][]byte
	config   Config
}

// NewBuilder creates a Builder with DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a Builder with a caller-supplied Config,
// letting a caller tune DenseThreshold/Alignment or inject a buffer
// allocator (spec.md §9's allocator capability).
func NewBuilderWithConfig(cfg Config) *Builder {
	return &Builder{config: cfg}
}

// AddPattern appends a pattern to the dictionary. Patterns are kept in the
// order added; duplicates are permitted and collapse to one trie state at
// Build time (spec.md §3). AddPattern returns the Builder so calls chain.
func (b *Builder) AddPattern(pattern []byte) *Builder {
	// Copy to avoid aliasing the caller's slice across Build.
	p := make([]byte, len(pattern))
	copy(p, pattern)
	b.patterns = append(b.patterns, p)
	return b
}

// Len returns the number of patterns added so far.
func (b *Builder) Len() int { return len(b.patterns) }

// Build runs spec.md §4.1's reference construction followed by §4.2's
// PackedAC conversion, returning the finished Automaton.
//
// Build is all-or-nothing (spec.md §7): on any error no Automaton is
// returned and nothing from a partially-built automaton leaks into the
// caller's hands.
func (b *Builder) Build() (*Automaton, error) {
	if err := b.config.Validate(); err != nil {
		return nil, &BuildError{Err: err}
	}

	ac, err := buildRefAC(b.patterns)
	if err != nil {
		return nil, err
	}

	a, err := convert(ac, b.config)
	if err != nil {
		return nil, err
	}
	a.patternCount = len(b.patterns)
	return a, nil
}

// Build is a convenience for the common case of building straight from a
// pattern slice without chaining AddPattern calls.
func Build(patterns [][]byte) (*Automaton, error) {
	b := NewBuilder()
	for _, p := range patterns {
		b.AddPattern(p)
	}
	return b.Build()
}
