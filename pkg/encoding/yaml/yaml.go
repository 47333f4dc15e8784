// Package yaml adapts gopkg.in/yaml.v3 nodes to the encoding interfaces.
package yaml

import (
	"fmt"

	"github.com/zeusync/axolotl/pkg/encoding"
	"gopkg.in/yaml.v3"
)

// Codec implements encoding.Serializable with YAML
type Codec struct{}

var _ encoding.Serializable = Codec{}

func (Codec) Serialize(v encoding.Marshaler) ([]byte, error) { return Marshal(v) }

func (Codec) Deserialize(data []byte, v encoding.Unmarshaler) error { return Unmarshal(data, v) }

// EncodeNode writes v into a yaml node. Sequences use flow style.
func EncodeNode(v encoding.Marshaler) (*yaml.Node, error) {
	enc := encoding.NewValueEncoder()
	if err := v.MarshalTo(enc); err != nil {
		return nil, err
	}
	value, err := enc.Value()
	if err != nil {
		return nil, err
	}

	node := &yaml.Node{}
	if err = node.Encode(value); err != nil {
		return nil, err
	}
	if node.Kind == yaml.SequenceNode {
		node.Style = yaml.FlowStyle
	}
	return node, nil
}

// Marshal encodes v as a YAML document.
func Marshal(v encoding.Marshaler) ([]byte, error) {
	node, err := EncodeNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// Unmarshal decodes the first YAML document in data into v.
func Unmarshal(data []byte, v encoding.Unmarshaler) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return encoding.InvalidType("empty document", "a value")
	}
	return v.UnmarshalFrom(NewDecoder(doc.Content[0]))
}

// Decoder reads from a single yaml node
type Decoder struct {
	node *yaml.Node
}

var _ encoding.Decoder = (*Decoder)(nil)

func NewDecoder(node *yaml.Node) *Decoder {
	return &Decoder{node: resolve(node)}
}

func (d *Decoder) DecodeString() (string, error) {
	if d.node.Kind != yaml.ScalarNode {
		return "", encoding.InvalidType(kindName(d.node), "a string")
	}
	var s string
	if err := d.node.Decode(&s); err != nil {
		return "", err
	}
	return s, nil
}

func (d *Decoder) DecodeSeq() (encoding.SeqDecoder, error) {
	if d.node.Kind != yaml.SequenceNode {
		return nil, encoding.InvalidType(kindName(d.node), "a sequence")
	}
	return &seqDecoder{items: d.node.Content}, nil
}

type seqDecoder struct {
	items []*yaml.Node
	idx   int
}

func (s *seqDecoder) SizeHint() (int, bool) { return len(s.items), true }

func (s *seqDecoder) More() bool { return s.idx < len(s.items) }

func (s *seqDecoder) next() (*yaml.Node, error) {
	if !s.More() {
		return nil, encoding.ErrSequenceEnded
	}
	item := resolve(s.items[s.idx])
	s.idx++
	return item, nil
}

func (s *seqDecoder) DecodeFloat64() (float64, error) {
	item, err := s.next()
	if err != nil {
		return 0, err
	}
	var f float64
	if err = item.Decode(&f); err != nil {
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
	if err = item.Decode(&f); err != nil {
		return 0, err
	}
	return f, nil
}

func (s *seqDecoder) Skip() error {
	_, err := s.next()
	return err
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar " + node.ShortTag()
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("node kind %d", node.Kind)
	}
}
