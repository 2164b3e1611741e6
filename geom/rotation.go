package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minAxisLength rejects axes too short to normalize reliably.
const minAxisLength = 1e-12

// AxisAngle builds the rotation matrix for a rotation of the given angle (in
// degrees) about an arbitrary axis, using the Rodrigues formula. The axis is
// normalized defensively; a near-zero axis is an error.
func AxisAngle(axis mgl64.Vec3, degrees float64) (mgl64.Mat3, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return mgl64.Mat3{}, fmt.Errorf("rotation angle must be finite, got %v", degrees)
	}

	length := axis.Len()
	if math.IsNaN(length) || length < minAxisLength {
		return mgl64.Mat3{}, fmt.Errorf("rotation axis %v is degenerate", axis)
	}
	u := axis.Mul(1 / length)

	theta := mgl64.DegToRad(degrees)
	c := math.Cos(theta)
	s := math.Sin(theta)
	// Rodrigues: R = cos·I + sin·[u]× + (1-cos)·u⊗u
	oc := 1 - c
	ux, uy, uz := u.X(), u.Y(), u.Z()

	return mgl64.Mat3FromRows(
		mgl64.Vec3{c + ux*ux*oc, ux*uy*oc - uz*s, ux*uz*oc + uy*s},
		mgl64.Vec3{uy*ux*oc + uz*s, c + uy*uy*oc, uy*uz*oc - ux*s},
		mgl64.Vec3{uz*ux*oc - uy*s, uz*uy*oc + ux*s, c + uz*uz*oc},
	), nil
}

// Named rotation axes accepted by callers that take an axis by name.
var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// NamedAxis resolves "x", "y" or "z" to the corresponding unit axis.
func NamedAxis(name string) (mgl64.Vec3, error) {
	switch name {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return mgl64.Vec3{}, fmt.Errorf("unknown axis %q, want x, y or z", name)
}
