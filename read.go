package herm

import "encoding/binary"

var errShortRead = Error("not enough bytes available to load the request")

// readBuffer is a cursor over an immutable byte slice. Reads advance the
// cursor; the first read past the remaining bytes sets a sticky error and
// every later read returns a zero value.
type readBuffer struct {
	b   []byte
	off int
	err error
}

func (rb *readBuffer) remaining() int {
	return len(rb.b) - rb.off
}

func (rb *readBuffer) read(n int) []byte {
	if rb.err != nil {
		return nil
	}
	if n > rb.remaining() {
		rb.err = errShortRead
		return nil
	}
	b := rb.b[rb.off : rb.off+n]
	rb.off += n
	return b
}

func (rb *readBuffer) readUint16() uint16 {
	if b := rb.read(2); b != nil {
		return binary.BigEndian.Uint16(b)
	}
	return 0
}

func (rb *readBuffer) readUint32() uint32 {
	if b := rb.read(4); b != nil {
		return binary.BigEndian.Uint32(b)
	}
	return 0
}

func (rb *readBuffer) readUint64() uint64 {
	if b := rb.read(8); b != nil {
		return binary.BigEndian.Uint64(b)
	}
	return 0
}

func (rb *readBuffer) readString(n int) string {
	if b := rb.read(n); b != nil {
		return string(b)
	}
	return ""
}
