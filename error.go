package herm

// Error is a string type implementing the error interface and used to declare
// constants representing the terminal codec errors.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrTopicTooLong is returned by NewFetchRequest when the topic name does
	// not fit in the 16-bit length prefix of the wire format.
	ErrTopicTooLong = Error("topic too long")

	// ErrMalformedBytes is returned by ReadFetchRequest when the input does
	// not conform to the exact wire layout of a fetch request.
	ErrMalformedBytes = Error("malformed bytes")
)
