package position

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawPosition_Conversions(t *testing.T) {
	tests := []RawPosition{
		{},
		{X: 1, Y: 2, Z: 3},
		{X: -0.5, Y: 64.0000001, Z: 1e300},
		{X: math.SmallestNonzeroFloat64, Y: -math.MaxFloat64, Z: 0.1},
	}

	for _, p := range tests {
		t.Run(p.String(), func(t *testing.T) {
			assert.Equal(t, p, PositionFromArray(p.Array()))
			assert.Equal(t, p, NewPosition(p.Components()))

			x, y, z := p.Components()
			assert.Equal(t, [3]float64{x, y, z}, p.Array())
		})
	}
}

func TestRawRotation_Conversions(t *testing.T) {
	tests := []RawRotation{
		{},
		{Yaw: 10, Pitch: -5},
		{Yaw: 359.99997, Pitch: math.SmallestNonzeroFloat32},
	}

	for _, r := range tests {
		t.Run(r.String(), func(t *testing.T) {
			assert.Equal(t, r, RotationFromArray(r.Array()))
			assert.Equal(t, r, NewRotation(r.Components()))
		})
	}
}

func TestRawRotation_FromFloat64Array(t *testing.T) {
	assert.Equal(t, RawRotation{Yaw: 10, Pitch: -5}, RotationFromFloat64Array([2]float64{10, -5}))

	narrowed := RotationFromFloat64Array([2]float64{0.1, 1e-50})
	assert.Equal(t, float32(0.1), narrowed.Yaw)
	assert.Equal(t, float32(0), narrowed.Pitch)
}
