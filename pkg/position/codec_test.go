package position

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/axolotl/pkg/encoding"
	"gopkg.in/yaml.v3"
)

type entity struct {
	Pos RawPosition `json:"pos" yaml:"pos" cbor:"pos"`
	Rot RawRotation `json:"rot" yaml:"rot" cbor:"rot"`
}

func TestMarshalTo_Sequence(t *testing.T) {
	enc := encoding.NewValueEncoder()
	require.NoError(t, RawPosition{X: 1, Y: 2, Z: 3}.MarshalTo(enc))
	value, err := enc.Value()
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, value)

	enc = encoding.NewValueEncoder()
	require.NoError(t, RawRotation{Yaw: 10, Pitch: -5}.MarshalTo(enc))
	value, err = enc.Value()
	require.NoError(t, err)
	assert.Equal(t, []any{float32(10), float32(-5)}, value)
}

func TestCodec_JSON(t *testing.T) {
	data, err := json.Marshal(RawPosition{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3]`, string(data))

	var p RawPosition
	require.NoError(t, json.Unmarshal([]byte(`[1.0, 2.0, 3.0]`), &p))
	assert.Equal(t, RawPosition{X: 1, Y: 2, Z: 3}, p)

	data, err = json.Marshal(RawRotation{Yaw: 10, Pitch: -5})
	require.NoError(t, err)
	assert.JSONEq(t, `[10, -5]`, string(data))

	var r RawRotation
	require.NoError(t, json.Unmarshal([]byte(`[10.0, -5.0]`), &r))
	assert.Equal(t, RawRotation{Yaw: 10, Pitch: -5}, r)
}

func TestCodec_RoundTrip(t *testing.T) {
	in := entity{
		Pos: RawPosition{X: -12.5, Y: 64, Z: 1e-3},
		Rot: RawRotation{Yaw: 90.5, Pitch: -45.25},
	}

	t.Run("JSON", func(t *testing.T) {
		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"pos":[-12.5,64,0.001],"rot":[90.5,-45.25]}`, string(data))

		var out entity
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("CBOR", func(t *testing.T) {
		data, err := cbor.Marshal(in)
		require.NoError(t, err)

		var out entity
		require.NoError(t, cbor.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("YAML", func(t *testing.T) {
		data, err := yaml.Marshal(in)
		require.NoError(t, err)
		assert.Contains(t, string(data), "pos: [-12.5, 64, 0.001]")

		var out entity
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})
}

func TestCodec_InvalidLength(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		target   encoding.Unmarshaler
		actual   int
		expected int
	}{
		{name: "Position Too Short", json: `[1, 2]`, target: &RawPosition{}, actual: 2, expected: 3},
		{name: "Position Too Long", json: `[1, 2, 3, 4]`, target: &RawPosition{}, actual: 4, expected: 3},
		{name: "Position Much Too Long", json: `[1, 2, 3, "x", [5]]`, target: &RawPosition{}, actual: 5, expected: 3},
		{name: "Position Empty", json: `[]`, target: &RawPosition{}, actual: 0, expected: 3},
		{name: "Rotation Too Short", json: `[1]`, target: &RawRotation{}, actual: 1, expected: 2},
		{name: "Rotation Too Long", json: `[1, 2, 3]`, target: &RawRotation{}, actual: 3, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.json), tt.target)
			requireInvalidLength(t, err, tt.actual, tt.expected)

			var node yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.json), &node))
			err = node.Content[0].Decode(tt.target)
			requireInvalidLength(t, err, tt.actual, tt.expected)
		})
	}
}

func TestCodec_CBORSizeHint(t *testing.T) {
	t.Run("Definite Length Mismatch", func(t *testing.T) {
		data, err := cbor.Marshal([]float64{1, 2})
		require.NoError(t, err)

		var p RawPosition
		requireInvalidLength(t, p.UnmarshalCBOR(data), 2, 3)
	})

	t.Run("Indefinite Length", func(t *testing.T) {
		// [_ 1, 2, 3]
		var p RawPosition
		require.NoError(t, p.UnmarshalCBOR([]byte{0x9f, 0x01, 0x02, 0x03, 0xff}))
		assert.Equal(t, RawPosition{X: 1, Y: 2, Z: 3}, p)
	})

	t.Run("Indefinite Length Underflow", func(t *testing.T) {
		// [_ 1, 2]
		var p RawPosition
		requireInvalidLength(t, p.UnmarshalCBOR([]byte{0x9f, 0x01, 0x02, 0xff}), 2, 3)
	})

	t.Run("Indefinite Length Overflow", func(t *testing.T) {
		// [_ 10, -5, 0]
		var r RawRotation
		requireInvalidLength(t, r.UnmarshalCBOR([]byte{0x9f, 0x0a, 0x24, 0x00, 0xff}), 3, 2)
	})
}

func TestCodec_ElementOrder(t *testing.T) {
	var p RawPosition
	require.NoError(t, json.Unmarshal([]byte(`[3, 2, 1]`), &p))
	assert.Equal(t, RawPosition{X: 3, Y: 2, Z: 1}, p)

	var r RawRotation
	require.NoError(t, json.Unmarshal([]byte(`[-5, 10]`), &r))
	assert.Equal(t, RawRotation{Yaw: -5, Pitch: 10}, r)
}

func TestCodec_UnderlyingErrors(t *testing.T) {
	t.Run("Wrong Scalar", func(t *testing.T) {
		var p RawPosition
		err := json.Unmarshal([]byte(`[1, "two", 3]`), &p)
		require.Error(t, err)

		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr)
		assert.Equal(t, encoding.CodeUnknown, encoding.GetErrorCode(err))
	})

	t.Run("Record Instead Of Sequence", func(t *testing.T) {
		var p RawPosition
		err := json.Unmarshal([]byte(`{"x": 1, "y": 2, "z": 3}`), &p)
		require.ErrorIs(t, err, encoding.ErrInvalidType)

		err = yaml.Unmarshal([]byte("pos: {x: 1, y: 2, z: 3}\n"), &entity{})
		require.ErrorIs(t, err, encoding.ErrInvalidType)
	})

	t.Run("Float32 Overflow", func(t *testing.T) {
		var r RawRotation
		err := json.Unmarshal([]byte(`[1e300, 0]`), &r)
		require.Error(t, err)
	})
}

func TestCodec_Float64Precision(t *testing.T) {
	in := RawPosition{X: 0.1, Y: 1.0 / 3.0, Z: 123456789.123456789}
	for _, tt := range []struct {
		name      string
		marshal   func(any) ([]byte, error)
		unmarshal func([]byte, any) error
	}{
		{"JSON", json.Marshal, json.Unmarshal},
		{"CBOR", cbor.Marshal, cbor.Unmarshal},
		{"YAML", yaml.Marshal, yaml.Unmarshal},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.marshal(in)
			require.NoError(t, err)

			var out RawPosition
			require.NoError(t, tt.unmarshal(data, &out))
			assert.Equal(t, in, out, strconv.Quote(string(data)))
		})
	}
}

func requireInvalidLength(t *testing.T, err error, actual, expected int) {
	t.Helper()

	require.ErrorIs(t, err, encoding.ErrInvalidLength)

	var encErr *encoding.Error
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, encoding.CodeInvalidLength, encErr.Code)
	assert.Equal(t, actual, encErr.Actual)
	assert.Equal(t, expected, encErr.Expected)
}
