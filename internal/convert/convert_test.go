package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/axolotl/pkg/encoding"
	"github.com/zeusync/axolotl/pkg/key"
)

func TestConverter(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		from  string
		to    string
		input string
		want  string
		str   string
	}{
		{name: "Position JSON To YAML", kind: KindPosition, from: "json", to: "yaml", input: `[1, 2, 3]`, want: "[1, 2, 3]\n", str: "(1, 2, 3)"},
		{name: "Rotation YAML To JSON", kind: KindRotation, from: "yaml", to: "json", input: "[10, -5]\n", want: `[10,-5]`, str: "(yaw 10, pitch -5)"},
		{name: "Key JSON To YAML", kind: KindKey, from: "json", to: "yaml", input: `"minecraft:stone"`, want: "minecraft:stone\n", str: "minecraft:stone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.kind, tt.from, tt.to)
			require.NoError(t, err)

			out, decoded, err := c.Convert([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
			assert.Equal(t, tt.str, decoded.String())
		})
	}
}

func TestConverter_CBORRoundTrip(t *testing.T) {
	toCBOR, err := New(KindKey, "json", "cbor")
	require.NoError(t, err)
	fromCBOR, err := New(KindKey, "cbor", "json")
	require.NoError(t, err)

	data, _, err := toCBOR.Convert([]byte(`"a:b"`))
	require.NoError(t, err)
	out, decoded, err := fromCBOR.Convert(data)
	require.NoError(t, err)

	assert.Equal(t, `"a:b"`, string(out))
	assert.True(t, key.Equal(key.New("a", "b"), decoded.(*key.NameSpaceKey)))
}

func TestConverter_Errors(t *testing.T) {
	_, err := New("entity", "json", "json")
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = New(KindKey, "xml", "json")
	require.ErrorIs(t, err, ErrUnknownFormat)

	c, err := New(KindPosition, "json", "json")
	require.NoError(t, err)
	_, _, err = c.Convert([]byte(`[1, 2]`))
	require.ErrorIs(t, err, encoding.ErrInvalidLength)

	c, err = New(KindKey, "json", "json")
	require.NoError(t, err)
	_, _, err = c.Convert([]byte(`"stone"`))
	require.ErrorIs(t, err, key.ErrBadNamespacedKey)
}

func TestConverter_MalformedJSON(t *testing.T) {
	c, err := New(KindPosition, "json", "yaml")
	require.NoError(t, err)

	for _, input := range []string{`[1, 2, 3`, `[1, 2, 3}`, `[1, 2, 3] garbage`, `[1, 2, 3][4]`} {
		_, _, err := c.Convert([]byte(input))
		assert.ErrorContains(t, err, "decode json", input)
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"cbor", "json", "yaml"}, Formats())
}
