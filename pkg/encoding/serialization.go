package encoding

// Encoder is the sink side of a structured-data format.
// Values are written as scalars or as ordered sequences of scalars.
type Encoder interface {
	EncodeString(v string) error
	// EncodeSeq starts a sequence. A negative length means the length is unknown.
	EncodeSeq(length int) (SeqEncoder, error)
}

// SeqEncoder writes sequence elements in order.
type SeqEncoder interface {
	EncodeFloat64(v float64) error
	EncodeFloat32(v float32) error
	End() error
}

// Decoder is the source side of a structured-data format.
type Decoder interface {
	DecodeString() (string, error)
	DecodeSeq() (SeqDecoder, error)
}

// SeqDecoder reads sequence elements positionally.
type SeqDecoder interface {
	// SizeHint returns the declared element count, if the format carries one.
	SizeHint() (int, bool)
	// More reports whether another element is available.
	More() bool
	DecodeFloat64() (float64, error)
	DecodeFloat32() (float32, error)
	// Skip consumes the next element without decoding it.
	Skip() error
}

// Marshaler is implemented by values that write themselves to an Encoder.
type Marshaler interface {
	MarshalTo(enc Encoder) error
}

// Unmarshaler is implemented by values that read themselves from a Decoder.
type Unmarshaler interface {
	UnmarshalFrom(dec Decoder) error
}

// Serializable provides a clean, simple interface for serializing and deserializing values
// with a concrete wire format.
type Serializable interface {
	Serialize(v Marshaler) ([]byte, error)
	Deserialize(data []byte, v Unmarshaler) error
}
