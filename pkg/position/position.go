// Package position holds the raw spatial value types shared with the world and
// network layers. Both types serialize as compact ordered sequences rather than
// records: a position is [x, y, z] and a rotation is [yaw, pitch].
package position

import "fmt"

const (
	positionLen = 3
	rotationLen = 2
)

// RawPosition is an unvalidated point in world space
type RawPosition struct {
	X float64
	Y float64
	Z float64
}

func NewPosition(x, y, z float64) RawPosition {
	return RawPosition{X: x, Y: y, Z: z}
}

// PositionFromArray builds a position from [x, y, z]
func PositionFromArray(a [positionLen]float64) RawPosition {
	return RawPosition{X: a[0], Y: a[1], Z: a[2]}
}

func (p RawPosition) Array() [positionLen]float64 {
	return [positionLen]float64{p.X, p.Y, p.Z}
}

func (p RawPosition) Components() (x, y, z float64) {
	return p.X, p.Y, p.Z
}

func (p RawPosition) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// RawRotation is a facing direction in degrees
type RawRotation struct {
	Yaw   float32
	Pitch float32
}

func NewRotation(yaw, pitch float32) RawRotation {
	return RawRotation{Yaw: yaw, Pitch: pitch}
}

// RotationFromArray builds a rotation from [yaw, pitch]
func RotationFromArray(a [rotationLen]float32) RawRotation {
	return RawRotation{Yaw: a[0], Pitch: a[1]}
}

// RotationFromFloat64Array narrows [yaw, pitch] to 32-bit precision.
func RotationFromFloat64Array(a [rotationLen]float64) RawRotation {
	return RawRotation{Yaw: float32(a[0]), Pitch: float32(a[1])}
}

func (r RawRotation) Array() [rotationLen]float32 {
	return [rotationLen]float32{r.Yaw, r.Pitch}
}

func (r RawRotation) Components() (yaw, pitch float32) {
	return r.Yaw, r.Pitch
}

func (r RawRotation) String() string {
	return fmt.Sprintf("(yaw %g, pitch %g)", r.Yaw, r.Pitch)
}
