package herm

import (
	"errors"
	"testing"
)

func TestReadBuffer(t *testing.T) {
	rb := readBuffer{b: []byte{
		0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
		'h', 'i',
	}}

	if v := rb.readUint16(); v != 1 {
		t.Error("invalid uint16:", v)
	}
	if v := rb.readUint32(); v != 2 {
		t.Error("invalid uint32:", v)
	}
	if v := rb.readUint64(); v != 3 {
		t.Error("invalid uint64:", v)
	}
	if s := rb.readString(2); s != "hi" {
		t.Error("invalid string:", s)
	}
	if n := rb.remaining(); n != 0 {
		t.Error("bytes remaining after reading all fields:", n)
	}
	if rb.err != nil {
		t.Error("unexpected error:", rb.err)
	}
}

func TestReadBufferShortRead(t *testing.T) {
	rb := readBuffer{b: []byte{0x00}}

	if v := rb.readUint16(); v != 0 {
		t.Error("non-zero value from a short read:", v)
	}
	if !errors.Is(rb.err, errShortRead) {
		t.Error("missing short read error:", rb.err)
	}

	// The error is sticky: later reads fail without advancing.
	if v := rb.readUint32(); v != 0 {
		t.Error("non-zero value after a short read:", v)
	}
	if rb.off != 0 {
		t.Error("cursor advanced past a failed read:", rb.off)
	}
}
