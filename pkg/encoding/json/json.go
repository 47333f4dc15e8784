// Package json adapts encoding/json to the encoding interfaces.
//
// JSON arrays carry no declared length, so sequence decoders never report a size hint.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zeusync/axolotl/pkg/encoding"
)

// Codec implements encoding.Serializable with JSON
type Codec struct{}

var _ encoding.Serializable = Codec{}

func (Codec) Serialize(v encoding.Marshaler) ([]byte, error) { return Marshal(v) }

func (Codec) Deserialize(data []byte, v encoding.Unmarshaler) error { return Unmarshal(data, v) }

// Marshal encodes v as a single JSON value.
func Marshal(v encoding.Marshaler) ([]byte, error) {
	enc := encoding.NewValueEncoder()
	if err := v.MarshalTo(enc); err != nil {
		return nil, err
	}
	value, err := enc.Value()
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

// Unmarshal decodes a single JSON value into v.
func Unmarshal(data []byte, v encoding.Unmarshaler) error {
	return v.UnmarshalFrom(NewDecoder(data))
}

// Decoder reads one JSON value
type Decoder struct {
	raw []byte
}

var _ encoding.Decoder = (*Decoder)(nil)

func NewDecoder(data []byte) *Decoder {
	return &Decoder{raw: data}
}

func (d *Decoder) DecodeString() (string, error) {
	if bytes.Equal(bytes.TrimSpace(d.raw), []byte("null")) {
		return "", encoding.InvalidType("null", "a string")
	}
	var s string
	if err := json.Unmarshal(d.raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// DecodeSeq validates the whole input before streaming elements, so truncated
// arrays and trailing data are syntax errors.
func (d *Decoder) DecodeSeq() (encoding.SeqDecoder, error) {
	if err := json.Unmarshal(d.raw, new(json.RawMessage)); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(d.raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, encoding.InvalidType(tokenName(tok), "a sequence")
	}
	return &seqDecoder{dec: dec}, nil
}

type seqDecoder struct {
	dec *json.Decoder
}

func (s *seqDecoder) SizeHint() (int, bool) { return 0, false }

func (s *seqDecoder) More() bool { return s.dec.More() }

func (s *seqDecoder) DecodeFloat64() (float64, error) {
	if !s.More() {
		return 0, encoding.ErrSequenceEnded
	}
	var f float64
	if err := s.dec.Decode(&f); err != nil {
		return 0, err
	}
	return f, nil
}

func (s *seqDecoder) DecodeFloat32() (float32, error) {
	if !s.More() {
		return 0, encoding.ErrSequenceEnded
	}
	var f float32
	if err := s.dec.Decode(&f); err != nil {
		return 0, err
	}
	return f, nil
}

func (s *seqDecoder) Skip() error {
	if !s.More() {
		return encoding.ErrSequenceEnded
	}
	var raw json.RawMessage
	return s.dec.Decode(&raw)
}

func tokenName(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '{' {
			return "object"
		}
		return fmt.Sprintf("delimiter %q", rune(v))
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
