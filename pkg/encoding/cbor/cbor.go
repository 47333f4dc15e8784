// Package cbor adapts github.com/fxamacker/cbor/v2 to the encoding interfaces.
package cbor

import (
	"encoding/binary"
	"fmt"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/zeusync/axolotl/pkg/encoding"
)

// encMode uses Core Deterministic Encoding: same value, same bytes.
var encMode fxcbor.EncMode

var decMode fxcbor.DecMode

func init() {
	var err error

	encMode, err = fxcbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	decMode, err = fxcbor.DecOptions{}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

const (
	majorTypeArray     = 4
	indefiniteLength   = 31
	additionalUint8    = 24
	additionalUint16   = 25
	additionalUint32   = 26
	additionalUint64   = 27
	majorTypeShift     = 5
	additionalInfoMask = 0x1f
)

// Codec implements encoding.Serializable with CBOR
type Codec struct{}

var _ encoding.Serializable = Codec{}

func (Codec) Serialize(v encoding.Marshaler) ([]byte, error) { return Marshal(v) }

func (Codec) Deserialize(data []byte, v encoding.Unmarshaler) error { return Unmarshal(data, v) }

// Marshal encodes v as a single CBOR data item.
func Marshal(v encoding.Marshaler) ([]byte, error) {
	enc := encoding.NewValueEncoder()
	if err := v.MarshalTo(enc); err != nil {
		return nil, err
	}
	value, err := enc.Value()
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(value)
}

// Unmarshal decodes a single CBOR data item into v.
func Unmarshal(data []byte, v encoding.Unmarshaler) error {
	return v.UnmarshalFrom(NewDecoder(data))
}

// Decoder reads one CBOR data item
type Decoder struct {
	raw fxcbor.RawMessage
}

var _ encoding.Decoder = (*Decoder)(nil)

// NewDecoder creates a Decoder over exactly one encoded data item
func NewDecoder(data []byte) *Decoder {
	return &Decoder{raw: data}
}

func (d *Decoder) DecodeString() (string, error) {
	var s string
	if err := decMode.Unmarshal(d.raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

func (d *Decoder) DecodeSeq() (encoding.SeqDecoder, error) {
	if len(d.raw) == 0 {
		return nil, encoding.InvalidType("empty input", "a sequence")
	}
	if major := d.raw[0] >> majorTypeShift; major != majorTypeArray {
		return nil, encoding.InvalidType(fmt.Sprintf("CBOR major type %d", major), "a sequence")
	}

	var items []fxcbor.RawMessage
	if err := decMode.Unmarshal(d.raw, &items); err != nil {
		return nil, err
	}

	hint, ok := arrayLength(d.raw)
	return &seqDecoder{items: items, hint: hint, hasHint: ok}, nil
}

// arrayLength reads the declared length from an array header.
// Indefinite-length arrays declare none.
func arrayLength(raw []byte) (int, bool) {
	info := raw[0] & additionalInfoMask
	switch {
	case info < additionalUint8:
		return int(info), true
	case info == additionalUint8 && len(raw) >= 2:
		return int(raw[1]), true
	case info == additionalUint16 && len(raw) >= 3:
		return int(binary.BigEndian.Uint16(raw[1:3])), true
	case info == additionalUint32 && len(raw) >= 5:
		return int(binary.BigEndian.Uint32(raw[1:5])), true
	case info == additionalUint64 && len(raw) >= 9:
		return int(binary.BigEndian.Uint64(raw[1:9])), true
	case info == indefiniteLength:
		return 0, false
	default:
		return 0, false
	}
}

type seqDecoder struct {
	items   []fxcbor.RawMessage
	idx     int
	hint    int
	hasHint bool
}

func (s *seqDecoder) SizeHint() (int, bool) { return s.hint, s.hasHint }

func (s *seqDecoder) More() bool { return s.idx < len(s.items) }

func (s *seqDecoder) next() (fxcbor.RawMessage, error) {
	if !s.More() {
		return nil, encoding.ErrSequenceEnded
	}
	item := s.items[s.idx]
	s.idx++
	return item, nil
}

func (s *seqDecoder) DecodeFloat64() (float64, error) {
	item, err := s.next()
	if err != nil {
		return 0, err
	}
	var f float64
	if err = decMode.Unmarshal(item, &f); err != nil {
		return 0, err
	}
	return f, nil
}

func (s *seqDecoder) DecodeFloat32() (float32, error) {
	item, err := s.next()
	if err != nil {
		return 0, err
	}
	var f float32
	if err = decMode.Unmarshal(item, &f); err != nil {
		return 0, err
	}
	return f, nil
}

func (s *seqDecoder) Skip() error {
	_, err := s.next()
	return err
}
