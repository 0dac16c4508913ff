package herm

import "encoding/binary"

// writeBuffer appends big-endian values to a slice. Callers size the slice
// up front so that encoding a message performs a single allocation.
type writeBuffer struct {
	b []byte
}

func (wb *writeBuffer) writeUint16(i uint16) {
	wb.b = binary.BigEndian.AppendUint16(wb.b, i)
}

func (wb *writeBuffer) writeUint32(i uint32) {
	wb.b = binary.BigEndian.AppendUint32(wb.b, i)
}

func (wb *writeBuffer) writeUint64(i uint64) {
	wb.b = binary.BigEndian.AppendUint64(wb.b, i)
}

func (wb *writeBuffer) writeString(s string) {
	wb.writeUint16(uint16(len(s)))
	wb.b = append(wb.b, s...)
}
