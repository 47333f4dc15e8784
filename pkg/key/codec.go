package key

import (
	"github.com/zeusync/axolotl/pkg/encoding"
	cborenc "github.com/zeusync/axolotl/pkg/encoding/cbor"
	jsonenc "github.com/zeusync/axolotl/pkg/encoding/json"
	yamlenc "github.com/zeusync/axolotl/pkg/encoding/yaml"
	"gopkg.in/yaml.v3"
)

// Every representation encodes as one string scalar holding its "namespace:key" form.
// Only Owned and NameSpaceKey decode, and a decoded NameSpaceKey is always KindOwned.

var (
	_ encoding.Marshaler   = Owned{}
	_ encoding.Unmarshaler = (*Owned)(nil)
	_ encoding.Marshaler   = Ref{}
	_ encoding.Marshaler   = NameSpaceKey{}
	_ encoding.Unmarshaler = (*NameSpaceKey)(nil)
)

func (k Owned) MarshalTo(enc encoding.Encoder) error {
	return enc.EncodeString(k.String())
}

func (k *Owned) UnmarshalFrom(dec encoding.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return encoding.Custom(err)
	}
	*k = parsed
	return nil
}

func (k Owned) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Owned) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Owned) MarshalJSON() ([]byte, error) { return jsonenc.Marshal(k) }

func (k *Owned) UnmarshalJSON(data []byte) error { return jsonenc.Unmarshal(data, k) }

func (k Owned) MarshalCBOR() ([]byte, error) { return cborenc.Marshal(k) }

func (k *Owned) UnmarshalCBOR(data []byte) error { return cborenc.Unmarshal(data, k) }

func (k Owned) MarshalYAML() (any, error) { return yamlenc.EncodeNode(k) }

func (k *Owned) UnmarshalYAML(node *yaml.Node) error {
	return k.UnmarshalFrom(yamlenc.NewDecoder(node))
}

func (r Ref) MarshalTo(enc encoding.Encoder) error {
	return enc.EncodeString(r.String())
}

func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r Ref) MarshalJSON() ([]byte, error) { return jsonenc.Marshal(r) }

func (r Ref) MarshalCBOR() ([]byte, error) { return cborenc.Marshal(r) }

func (r Ref) MarshalYAML() (any, error) { return yamlenc.EncodeNode(r) }

func (k NameSpaceKey) MarshalTo(enc encoding.Encoder) error {
	switch k.kind {
	case KindRefOwned:
		return k.refOwned.MarshalTo(enc)
	case KindRef:
		return k.ref.MarshalTo(enc)
	default:
		return k.owned.MarshalTo(enc)
	}
}

func (k *NameSpaceKey) UnmarshalFrom(dec encoding.Decoder) error {
	var owned Owned
	if err := owned.UnmarshalFrom(dec); err != nil {
		return err
	}
	*k = FromOwned(owned)
	return nil
}

func (k NameSpaceKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *NameSpaceKey) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*k = FromOwned(parsed)
	return nil
}

func (k NameSpaceKey) MarshalJSON() ([]byte, error) { return jsonenc.Marshal(k) }

func (k *NameSpaceKey) UnmarshalJSON(data []byte) error { return jsonenc.Unmarshal(data, k) }

func (k NameSpaceKey) MarshalCBOR() ([]byte, error) { return cborenc.Marshal(k) }

func (k *NameSpaceKey) UnmarshalCBOR(data []byte) error { return cborenc.Unmarshal(data, k) }

func (k NameSpaceKey) MarshalYAML() (any, error) { return yamlenc.EncodeNode(k) }

func (k *NameSpaceKey) UnmarshalYAML(node *yaml.Node) error {
	return k.UnmarshalFrom(yamlenc.NewDecoder(node))
}
