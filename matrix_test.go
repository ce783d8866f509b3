package splatter

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxPoint3(a, b Point3) bool {
	const eps = 1e-5
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}

func TestMat4TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Point3
		want Point3
	}{
		{"identity", Identity(), Pt3(1, 2, 3), Pt3(1, 2, 3)},
		{"translate", Translate(10, -5, 1), Pt3(1, 2, 3), Pt3(11, -3, 4)},
		{"scale", Scale(2, 3, 4), Pt3(1, 1, 1), Pt3(2, 3, 4)},
		{"rotate z 90", RotateZ(math32.Pi / 2), Pt3(1, 0, 0), Pt3(0, 1, 0)},
		{"rotate x 90", RotateX(math32.Pi / 2), Pt3(0, 1, 0), Pt3(0, 0, 1)},
		{"rotate y 90", RotateY(math32.Pi / 2), Pt3(0, 0, 1), Pt3(1, 0, 0)},
		{"translate after scale", Translate(1, 0, 0).Mul(Scale(2, 2, 2)), Pt3(1, 1, 0), Pt3(3, 2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint3(tt.in)
			if !approxPoint3(got, tt.want) {
				t.Errorf("TransformPoint3(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Euler(0.3, -0.2, 1.1).Mul(Translate(4, 5, 6))
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestMat4ColumnMajor(t *testing.T) {
	cm := Translate(7, 8, 9).ColumnMajor()
	if cm[12] != 7 || cm[13] != 8 || cm[14] != 9 {
		t.Errorf("ColumnMajor translation = %v, want 7 8 9 at 12..14", cm[12:15])
	}
}
