// Package convert re-encodes axolotl documents between structured-data formats.
package convert

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zeusync/axolotl/pkg/encoding"
	cborenc "github.com/zeusync/axolotl/pkg/encoding/cbor"
	jsonenc "github.com/zeusync/axolotl/pkg/encoding/json"
	yamlenc "github.com/zeusync/axolotl/pkg/encoding/yaml"
	"github.com/zeusync/axolotl/pkg/key"
	"github.com/zeusync/axolotl/pkg/position"
)

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrUnknownKind   = errors.New("unknown kind")
)

// Kind names the value type a document holds
type Kind string

const (
	KindKey      Kind = "key"
	KindPosition Kind = "position"
	KindRotation Kind = "rotation"
)

var formats = map[string]encoding.Serializable{
	"cbor": cborenc.Codec{},
	"json": jsonenc.Codec{},
	"yaml": yamlenc.Codec{},
}

// value is satisfied by pointers to every convertible type
type value interface {
	encoding.Marshaler
	encoding.Unmarshaler
}

func newValue(kind Kind) (value, error) {
	switch kind {
	case KindKey:
		return &key.NameSpaceKey{}, nil
	case KindPosition:
		return &position.RawPosition{}, nil
	case KindRotation:
		return &position.RawRotation{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Format returns the codec registered under name
func Format(name string) (encoding.Serializable, error) {
	codec, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return codec, nil
}

// Formats lists the registered format names
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Converter decodes documents of one kind in one format and encodes them in another
type Converter struct {
	kind Kind
	from encoding.Serializable
	to   encoding.Serializable
}

func New(kind Kind, from, to string) (*Converter, error) {
	if _, err := newValue(kind); err != nil {
		return nil, err
	}
	fromCodec, err := Format(from)
	if err != nil {
		return nil, err
	}
	toCodec, err := Format(to)
	if err != nil {
		return nil, err
	}
	return &Converter{kind: kind, from: fromCodec, to: toCodec}, nil
}

// Convert decodes data and returns the re-encoded document together with the decoded value
func (c *Converter) Convert(data []byte) ([]byte, fmt.Stringer, error) {
	v, err := newValue(c.kind)
	if err != nil {
		return nil, nil, err
	}
	if err = c.from.Deserialize(data, v); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", c.kind, err)
	}
	out, err := c.to.Serialize(v)
	if err != nil {
		return nil, nil, fmt.Errorf("encode %s: %w", c.kind, err)
	}
	stringer, _ := v.(fmt.Stringer)
	return out, stringer, nil
}
