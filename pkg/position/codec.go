package position

import (
	"github.com/zeusync/axolotl/pkg/encoding"
	cborenc "github.com/zeusync/axolotl/pkg/encoding/cbor"
	jsonenc "github.com/zeusync/axolotl/pkg/encoding/json"
	yamlenc "github.com/zeusync/axolotl/pkg/encoding/yaml"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.Marshaler   = RawPosition{}
	_ encoding.Unmarshaler = (*RawPosition)(nil)
	_ encoding.Marshaler   = RawRotation{}
	_ encoding.Unmarshaler = (*RawRotation)(nil)
)

func (p RawPosition) MarshalTo(enc encoding.Encoder) error {
	seq, err := enc.EncodeSeq(positionLen)
	if err != nil {
		return err
	}
	for _, v := range p.Array() {
		if err = seq.EncodeFloat64(v); err != nil {
			return err
		}
	}
	return seq.End()
}

func (p *RawPosition) UnmarshalFrom(dec encoding.Decoder) error {
	seq, err := openSeq(dec, positionLen)
	if err != nil {
		return err
	}

	var a [positionLen]float64
	for i := range a {
		if !seq.More() {
			return encoding.InvalidLength(i, positionLen)
		}
		if a[i], err = seq.DecodeFloat64(); err != nil {
			return err
		}
	}
	if err = closeSeq(seq, positionLen); err != nil {
		return err
	}

	*p = PositionFromArray(a)
	return nil
}

func (r RawRotation) MarshalTo(enc encoding.Encoder) error {
	seq, err := enc.EncodeSeq(rotationLen)
	if err != nil {
		return err
	}
	for _, v := range r.Array() {
		if err = seq.EncodeFloat32(v); err != nil {
			return err
		}
	}
	return seq.End()
}

func (r *RawRotation) UnmarshalFrom(dec encoding.Decoder) error {
	seq, err := openSeq(dec, rotationLen)
	if err != nil {
		return err
	}

	var a [rotationLen]float32
	for i := range a {
		if !seq.More() {
			return encoding.InvalidLength(i, rotationLen)
		}
		if a[i], err = seq.DecodeFloat32(); err != nil {
			return err
		}
	}
	if err = closeSeq(seq, rotationLen); err != nil {
		return err
	}

	*r = RotationFromArray(a)
	return nil
}

// openSeq starts a sequence and rejects a declared length other than expected.
func openSeq(dec encoding.Decoder, expected int) (encoding.SeqDecoder, error) {
	seq, err := dec.DecodeSeq()
	if err != nil {
		return nil, err
	}
	if hint, ok := seq.SizeHint(); ok && hint != expected {
		return nil, encoding.InvalidLength(hint, expected)
	}
	return seq, nil
}

// closeSeq fails if elements remain after the expected ones, counting them for the error.
func closeSeq(seq encoding.SeqDecoder, expected int) error {
	actual := expected
	for seq.More() {
		if err := seq.Skip(); err != nil {
			return err
		}
		actual++
	}
	if actual != expected {
		return encoding.InvalidLength(actual, expected)
	}
	return nil
}

func (p RawPosition) MarshalJSON() ([]byte, error) { return jsonenc.Marshal(p) }

func (p *RawPosition) UnmarshalJSON(data []byte) error { return jsonenc.Unmarshal(data, p) }

func (p RawPosition) MarshalCBOR() ([]byte, error) { return cborenc.Marshal(p) }

func (p *RawPosition) UnmarshalCBOR(data []byte) error { return cborenc.Unmarshal(data, p) }

func (p RawPosition) MarshalYAML() (any, error) { return yamlenc.EncodeNode(p) }

func (p *RawPosition) UnmarshalYAML(node *yaml.Node) error {
	return p.UnmarshalFrom(yamlenc.NewDecoder(node))
}

func (r RawRotation) MarshalJSON() ([]byte, error) { return jsonenc.Marshal(r) }

func (r *RawRotation) UnmarshalJSON(data []byte) error { return jsonenc.Unmarshal(data, r) }

func (r RawRotation) MarshalCBOR() ([]byte, error) { return cborenc.Marshal(r) }

func (r *RawRotation) UnmarshalCBOR(data []byte) error { return cborenc.Unmarshal(data, r) }

func (r RawRotation) MarshalYAML() (any, error) { return yamlenc.EncodeNode(r) }

func (r *RawRotation) UnmarshalYAML(node *yaml.Node) error {
	return r.UnmarshalFrom(yamlenc.NewDecoder(node))
}
