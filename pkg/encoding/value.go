package encoding

// ValueEncoder builds an in-memory value tree out of strings, float64, float32 and []any.
// Backends whose libraries marshal plain Go values share it.
type ValueEncoder struct {
	value any
	done  bool
	open  bool
}

var _ Encoder = (*ValueEncoder)(nil)

// NewValueEncoder creates an empty ValueEncoder
func NewValueEncoder() *ValueEncoder {
	return &ValueEncoder{}
}

func (e *ValueEncoder) EncodeString(v string) error {
	e.value = v
	e.done = true
	return nil
}

func (e *ValueEncoder) EncodeSeq(length int) (SeqEncoder, error) {
	capacity := length
	if capacity < 0 {
		capacity = 0
	}
	e.open = true
	return &valueSeqEncoder{
		parent: e,
		items:  make([]any, 0, capacity),
		length: length,
	}, nil
}

// Value returns the encoded value tree
func (e *ValueEncoder) Value() (any, error) {
	if e.open || !e.done {
		return nil, ErrSequenceNotDone
	}
	return e.value, nil
}

type valueSeqEncoder struct {
	parent *ValueEncoder
	items  []any
	length int
}

func (s *valueSeqEncoder) EncodeFloat64(v float64) error {
	s.items = append(s.items, v)
	return nil
}

func (s *valueSeqEncoder) EncodeFloat32(v float32) error {
	s.items = append(s.items, v)
	return nil
}

func (s *valueSeqEncoder) End() error {
	if s.length >= 0 && len(s.items) != s.length {
		return InvalidLength(len(s.items), s.length)
	}
	s.parent.value = s.items
	s.parent.done = true
	s.parent.open = false
	return nil
}
