package herm

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// FetchRequest asks a broker for records from a topic partition, starting at
// an offset, up to a size cap. Values are immutable once constructed; build
// them with NewFetchRequest or decode them with ReadFetchRequest.
//
// The wire layout is, in order and with all integers big-endian:
//
//	topic_len  uint16
//	topic      topic_len bytes of UTF-8
//	partition  uint32
//	offset     uint64
//	max_size   uint32
type FetchRequest struct {
	topic     string
	partition uint32
	offset    uint64
	maxSize   uint32
}

// NewFetchRequest constructs a fetch request from its fields. It fails with
// ErrTopicTooLong if the topic's UTF-8 encoding does not fit in the 16-bit
// length prefix.
func NewFetchRequest(topic string, partition uint32, offset uint64, maxSize uint32) (FetchRequest, error) {
	if len(topic) > math.MaxUint16 {
		return FetchRequest{}, ErrTopicTooLong
	}
	return FetchRequest{
		topic:     topic,
		partition: partition,
		offset:    offset,
		maxSize:   maxSize,
	}, nil
}

// ReadFetchRequest decodes a fetch request from b. The slice must contain
// exactly one encoded request: a buffer that is truncated at any point, or
// that carries trailing bytes past the last field, fails with
// ErrMalformedBytes, as does a topic region holding invalid UTF-8. The
// framing layer is expected to hand the decoder one message's bytes at a
// time.
func ReadFetchRequest(b []byte) (FetchRequest, error) {
	rb := readBuffer{b: b}

	topicLen := int(rb.readUint16())
	if rb.err != nil {
		return FetchRequest{}, ErrMalformedBytes
	}

	// The remaining length must match the fixed-width tail exactly; extra
	// trailing bytes are as much of a framing violation as missing ones.
	if rb.remaining() != topicLen+4+8+4 {
		return FetchRequest{}, ErrMalformedBytes
	}

	req := FetchRequest{
		topic:     rb.readString(topicLen),
		partition: rb.readUint32(),
		offset:    rb.readUint64(),
		maxSize:   rb.readUint32(),
	}
	if rb.err != nil || !utf8.ValidString(req.topic) {
		return FetchRequest{}, ErrMalformedBytes
	}
	return req, nil
}

// Bytes encodes the request into a freshly allocated slice of exactly Size()
// bytes.
func (r FetchRequest) Bytes() []byte {
	wb := writeBuffer{b: make([]byte, 0, r.Size())}
	wb.writeString(r.topic)
	wb.writeUint32(r.partition)
	wb.writeUint64(r.offset)
	wb.writeUint32(r.maxSize)
	return wb.b
}

// Size returns the number of bytes Bytes produces and ReadFetchRequest
// requires: 2 for the topic length prefix, the topic itself, and the three
// fixed-width fields.
func (r FetchRequest) Size() int {
	return 2 + len(r.topic) + 4 + 8 + 4
}

// Topic returns the name of the topic records are fetched from.
func (r FetchRequest) Topic() string { return r.topic }

// Partition returns the index of the partition records are fetched from.
func (r FetchRequest) Partition() uint32 { return r.partition }

// Offset returns the offset of the first record to fetch.
func (r FetchRequest) Offset() uint64 { return r.offset }

// MaxSize returns the cap on the number of bytes the broker should return.
func (r FetchRequest) MaxSize() uint32 { return r.maxSize }

// String returns a single-line representation of the request for logging.
// The format carries no parsing guarantees.
func (r FetchRequest) String() string {
	return fmt.Sprintf("FetchRequest(topic:%s, part:%d offset:%d maxSize:%d)",
		r.topic, r.partition, r.offset, r.maxSize)
}
