package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/axolotl/pkg/encoding"
	"gopkg.in/yaml.v3"
)

func parse(t *testing.T, doc string) *yaml.Node {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(doc), &node))
	return node.Content[0]
}

func TestDecoder_Sequence(t *testing.T) {
	seq, err := NewDecoder(parse(t, "[1.5, -2, 3]")).DecodeSeq()
	require.NoError(t, err)

	hint, ok := seq.SizeHint()
	assert.True(t, ok)
	assert.Equal(t, 3, hint)

	f64, err := seq.DecodeFloat64()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f64)

	f32, err := seq.DecodeFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(-2), f32)

	require.NoError(t, seq.Skip())
	assert.False(t, seq.More())
	require.ErrorIs(t, seq.Skip(), encoding.ErrSequenceEnded)
}

func TestDecoder_Alias(t *testing.T) {
	node := parse(t, "base: &p [1, 2, 3]\ncopy: *p\n")
	alias := node.Content[3]
	require.Equal(t, yaml.AliasNode, alias.Kind)

	seq, err := NewDecoder(alias).DecodeSeq()
	require.NoError(t, err)
	hint, _ := seq.SizeHint()
	assert.Equal(t, 3, hint)
}

func TestDecoder_InvalidType(t *testing.T) {
	_, err := NewDecoder(parse(t, "{a: 1}")).DecodeSeq()
	require.ErrorIs(t, err, encoding.ErrInvalidType)
	assert.Contains(t, err.Error(), "mapping")

	_, err = NewDecoder(parse(t, "[a, b]")).DecodeString()
	require.ErrorIs(t, err, encoding.ErrInvalidType)

	s, err := NewDecoder(parse(t, "minecraft:stone")).DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "minecraft:stone", s)
}

func TestDecoder_WrongScalar(t *testing.T) {
	seq, err := NewDecoder(parse(t, "[north]")).DecodeSeq()
	require.NoError(t, err)

	_, err = seq.DecodeFloat64()
	var typeErr *yaml.TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestUnmarshal_EmptyDocument(t *testing.T) {
	err := Unmarshal([]byte(""), nil)
	require.ErrorIs(t, err, encoding.ErrInvalidType)
}
