package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAxisAngleAgainstSingleAxisRotations(t *testing.T) {
	tests := []struct {
		name    string
		axis    mgl64.Vec3
		degrees float64
		want    mgl64.Mat3
	}{
		{name: "x 30", axis: AxisX, degrees: 30, want: mgl64.Rotate3DX(mgl64.DegToRad(30))},
		{name: "y 120", axis: AxisY, degrees: 120, want: mgl64.Rotate3DY(mgl64.DegToRad(120))},
		{name: "z 60", axis: AxisZ, degrees: 60, want: mgl64.Rotate3DZ(mgl64.DegToRad(60))},
		{name: "z -45", axis: AxisZ, degrees: -45, want: mgl64.Rotate3DZ(mgl64.DegToRad(-45))},
		{name: "zero angle", axis: mgl64.Vec3{1, 2, 3}, degrees: 0, want: mgl64.Ident3()},
		{name: "non-unit axis normalized", axis: mgl64.Vec3{0, 0, 7}, degrees: 90, want: mgl64.Rotate3DZ(mgl64.DegToRad(90))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AxisAngle(tt.axis, tt.degrees)
			if err != nil {
				t.Fatalf("AxisAngle() returned error: %v", err)
			}
			if !got.ApproxEqualThreshold(tt.want, 1e-12) {
				t.Errorf("AxisAngle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAxisAngleMapsVectors(t *testing.T) {
	rotation, err := AxisAngle(AxisZ, 90)
	if err != nil {
		t.Fatalf("AxisAngle() returned error: %v", err)
	}

	got := rotation.Mul3x1(mgl64.Vec3{1, 0, 0})
	if !vec3Equal(got, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("90° z rotation of x = %v, want (0,1,0)", got)
	}
}

func TestAxisAngleIsProperRotation(t *testing.T) {
	axes := []mgl64.Vec3{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {-2, 0.5, 3}}
	angles := []float64{13, 60, 90, 144, 271.5}

	for _, axis := range axes {
		for _, degrees := range angles {
			rotation, err := AxisAngle(axis, degrees)
			if err != nil {
				t.Fatalf("AxisAngle(%v, %v) returned error: %v", axis, degrees, err)
			}

			identity := rotation.Mul3(rotation.Transpose())
			ident := mgl64.Ident3()
			for i := range identity {
				if !floatEqual(identity[i], ident[i], 1e-9) {
					t.Errorf("AxisAngle(%v, %v) is not orthonormal", axis, degrees)
					break
				}
			}
			if !floatEqual(rotation.Det(), 1, 1e-9) {
				t.Errorf("AxisAngle(%v, %v) determinant = %v, want 1", axis, degrees, rotation.Det())
			}
		}
	}
}

func TestAxisAngleRejectsDegenerateInput(t *testing.T) {
	if _, err := AxisAngle(mgl64.Vec3{}, 45); err == nil {
		t.Error("AxisAngle with zero axis should fail")
	}
	if _, err := AxisAngle(mgl64.Vec3{1e-15, 0, 0}, 45); err == nil {
		t.Error("AxisAngle with near-zero axis should fail")
	}
	if _, err := AxisAngle(AxisZ, math.NaN()); err == nil {
		t.Error("AxisAngle with NaN angle should fail")
	}
	if _, err := AxisAngle(AxisZ, math.Inf(1)); err == nil {
		t.Error("AxisAngle with infinite angle should fail")
	}
}

func TestNamedAxis(t *testing.T) {
	tests := []struct {
		name    string
		want    mgl64.Vec3
		wantErr bool
	}{
		{name: "x", want: AxisX},
		{name: "Y", want: AxisY},
		{name: "z", want: AxisZ},
		{name: "w", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NamedAxis(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("NamedAxis(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && !vec3Equal(got, tt.want, 1e-15) {
			t.Errorf("NamedAxis(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
