package ahocorasick

import (
	"encoding/binary"

	"github.com/coregx/ahocorasick/internal/sparse"
)

// Handle header constants (spec.md §4.4 / §6). magicByte is shared with the
// original C library's AC_MAGIC_NUM so the cabi package's handles remain
// byte-compatible with any tooling built against the original ABI.
const (
	magicByte byte = 0x5A

	// VariantReference would tag a handle wrapping a RefAC directly (the
	// original's USE_SLOW_VER debug build). Build never produces one; the
	// constant exists so the tag space is reserved rather than silently
	// available for reuse. See SPEC_FULL.md §6.
	VariantReference byte = 1
	// VariantPacked tags every handle Build produces.
	VariantPacked byte = 2
)

// fixed on-buffer header: magic, variant, offsetWidth, reserved, rootOffset
// (4 bytes), bufferLength (4 bytes).
const rawHeaderSize = 12

func headerSize(alignment int) int { return alignUp(rawHeaderSize, alignment) }

// convert runs spec.md §4.2's two-pass PackedAC conversion: sizing and
// offset assignment, then emission. It retries once with four-byte offsets
// if two-byte offsets can't address the buffer, matching spec.md's
// "Failures: any offset exceeding the chosen width -> retry with wider
// offsets... before failing with Overflow."
func convert(ac *refAC, cfg Config) (*Automaton, error) {
	idOffsets, total, ok := layout(ac, cfg, 2)
	width := 2
	if !ok {
		idOffsets, total, ok = layout(ac, cfg, 4)
		width = 4
		if !ok {
			return nil, &BuildError{Err: ErrOverflow}
		}
	}

	buf := cfg.alloc(total)
	if len(buf) != total {
		return nil, &BuildError{Err: ErrOutOfMemory}
	}

	buf[0] = magicByte
	buf[1] = VariantPacked
	buf[2] = byte(width)
	buf[3] = 0
	binary.LittleEndian.PutUint32(buf[4:], idOffsets[ac.root()])
	binary.LittleEndian.PutUint32(buf[8:], uint32(total))

	emitted := sparse.New(uint32(len(ac.states)))
	for id := stateID(1); int(id) < len(ac.states); id++ {
		emitRecord(ac, id, idOffsets, width, cfg.DenseThreshold, buf)
		if !emitted.Insert(uint32(id)) {
			panic("ahocorasick: state emitted twice during conversion")
		}
	}
	if emitted.Len() != ac.stateCount() {
		panic("ahocorasick: not every reference state received a packed record")
	}

	return &Automaton{
		buf:        buf,
		rootOffset: idOffsets[ac.root()],
		width:      width,
		idOffsets:  idOffsets,
	}, nil
}

// layout performs pass 1: for the given offset width, compute each state's
// record size and assign it a byte offset, returning the id-to-offset
// table and total buffer length. ok is false if the resulting buffer
// cannot be addressed by an offset of this width.
func layout(ac *refAC, cfg Config, width int) (idOffsets []uint32, total int, ok bool) {
	idOffsets = make([]uint32, len(ac.states))
	offset := headerSize(cfg.Alignment)
	for id := stateID(1); int(id) < len(ac.states); id++ {
		idOffsets[id] = uint32(offset)
		fanout := len(ac.states[id].goTo)
		kind := chooseKind(fanout, cfg.DenseThreshold)
		offset += recordSize(kind, fanout, width, cfg.Alignment)
	}
	maxAddressable := 1<<(width*8) - 1
	if offset-1 > maxAddressable {
		return nil, 0, false
	}
	return idOffsets, offset, true
}

// emitRecord writes pass 2's output for one reference state into buf at its
// assigned offset: terminal flag, encoding kind, translated failure-link
// offset, and the transition table (sparse transitions sorted ascending,
// per spec.md §4.2, so the matcher's binary search is valid).
func emitRecord(ac *refAC, id stateID, idOffsets []uint32, width, denseThreshold int, buf []byte) {
	st := &ac.states[id]
	off := int(idOffsets[id])
	fanout := len(st.goTo)
	kind := chooseKind(fanout, denseThreshold)

	if st.terminal {
		buf[off] = 1
	} else {
		buf[off] = 0
	}
	buf[off+1] = kind
	putOffset(buf, off+2, width, idOffsets[st.fail])

	body := buf[off+recordHeaderSize(width):]
	edges := sortedEdges(st.goTo)
	if kind == kindDense {
		for _, e := range edges {
			putOffset(body, int(e.b)*width, width, idOffsets[e.child])
		}
		return
	}

	n := len(edges)
	body[0] = byte(n)
	bytesStart := 1
	for i, e := range edges {
		body[bytesStart+i] = e.b
	}
	pad := alignUp(1+n, width) - (1 + n)
	offsetsStart := 1 + n + pad
	for i, e := range edges {
		putOffset(body, offsetsStart+i*width, width, idOffsets[e.child])
	}
}
