package herm

import (
	"bytes"
	"testing"
)

func TestWriteBuffer(t *testing.T) {
	wb := writeBuffer{b: make([]byte, 0, 16)}
	wb.writeString("hi")
	wb.writeUint32(2)
	wb.writeUint64(3)

	if !bytes.Equal(wb.b, []byte{
		0x00, 0x02, 'h', 'i',
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
	}) {
		t.Errorf("invalid encoding: %x", wb.b)
	}
}
