package ahocorasick

import "encoding/binary"

// Transition-table discriminators, the one-byte "encoding-kind" field of
// spec.md §3's packed state record.
const (
	kindSparse byte = 0
	kindDense  byte = 1
)

// recordHeaderSize is the fixed part of every packed record: one byte of
// terminal flag, one byte of encoding kind, then the failure-link offset
// (offsetWidth bytes).
func recordHeaderSize(offsetWidth int) int { return 2 + offsetWidth }

// sparseBodySize returns the byte size of a sparse record's transition
// table: a count byte, the sorted input-byte array, padding so the child
// offsets start on an offsetWidth boundary, then the child-offset array.
func sparseBodySize(n, offsetWidth int) int {
	raw := 1 + n
	pad := alignUp(raw, offsetWidth) - raw
	return raw + pad + n*offsetWidth
}

// denseBodySize returns the byte size of a dense record's transition
// table: a direct 256-entry child-offset array, zero meaning absent.
func denseBodySize(offsetWidth int) int { return 256 * offsetWidth }

// recordSize returns the full size of a packed record (header + body),
// rounded up to alignment, for a state with the given encoding and fanout.
func recordSize(kind byte, fanout, offsetWidth, alignment int) int {
	sz := recordHeaderSize(offsetWidth)
	if kind == kindDense {
		sz += denseBodySize(offsetWidth)
	} else {
		sz += sparseBodySize(fanout, offsetWidth)
	}
	return alignUp(sz, alignment)
}

func alignUp(n, unit int) int {
	if unit <= 1 {
		return n
	}
	rem := n % unit
	if rem == 0 {
		return n
	}
	return n + (unit - rem)
}

// chooseKind implements spec.md §4.2's per-state encoding choice: dense iff
// fanout >= DenseThreshold, sparse otherwise.
func chooseKind(fanout, denseThreshold int) byte {
	if fanout >= denseThreshold {
		return kindDense
	}
	return kindSparse
}

// putOffset writes an offset value at buf[pos:pos+width] as little-endian,
// width either 2 or 4 bytes per spec.md §4.2's "choice of offset width".
func putOffset(buf []byte, pos, width int, v uint32) {
	if width == 2 {
		binary.LittleEndian.PutUint16(buf[pos:], uint16(v))
	} else {
		binary.LittleEndian.PutUint32(buf[pos:], v)
	}
}

func getOffset(buf []byte, pos, width int) uint32 {
	if width == 2 {
		return uint32(binary.LittleEndian.Uint16(buf[pos:]))
	}
	return binary.LittleEndian.Uint32(buf[pos:])
}

// record is a decoded view over one packed state's bytes; it never copies,
// only indexes into the shared buffer.
type record struct {
	buf    []byte // buffer, starting at the record's own offset
	width  int
	isTerm bool
	kind   byte
}

func readRecord(buf []byte, offset, width int) record {
	r := buf[offset:]
	return record{buf: r, width: width, isTerm: r[0] != 0, kind: r[1]}
}

func (r record) failOffset() uint32 {
	return getOffset(r.buf, 2, r.width)
}

// lookup returns the child offset for input byte b, or 0 ("absent").
func (r record) lookup(b byte) uint32 {
	body := r.buf[recordHeaderSize(r.width):]
	if r.kind == kindDense {
		return getOffset(body, int(b)*r.width, r.width)
	}
	n := int(body[0])
	bytesStart := 1
	// Binary search the sorted input-byte array, per spec.md §4.3 step 1.
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		cb := body[bytesStart+mid]
		switch {
		case cb == b:
			pad := alignUp(1+n, r.width) - (1 + n)
			offsetsStart := 1 + n + pad
			return getOffset(body, offsetsStart+mid*r.width, r.width)
		case cb < b:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}
