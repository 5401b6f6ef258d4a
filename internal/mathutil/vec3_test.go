package mathutil

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearVec(a, b Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Neg(); got != (Vec3{-1, -2, -3}) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
	if got := (Vec3{3, 4, 0}).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{0, 3, 4}.Normalize()
	if !near(n.Len(), 1) {
		t.Errorf("normalized length = %v", n.Len())
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3Reflect(t *testing.T) {
	tests := []struct {
		name string
		v, n Vec3
		want Vec3
	}{
		{"along normal", Vec3{0, 1, 0}, Vec3{0, 1, 0}, Vec3{0, 1, 0}},
		{"diagonal", Vec3{1, 1, 0}, Vec3{0, 1, 0}, Vec3{-1, 1, 0}},
		{"perpendicular", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.n)
			if !nearVec(got, tt.want) {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.v, tt.n, got, tt.want)
			}
			if !near(got.Len(), tt.v.Len()) {
				t.Errorf("reflection changed magnitude: %v -> %v", tt.v.Len(), got.Len())
			}
		})
	}
}

func TestOrientation(t *testing.T) {
	if got := Orientation(0, 0, 0); !nearVec(got.MulVec3(Vec3{1, 2, 3}), Vec3{1, 2, 3}) {
		t.Errorf("zero orientation is not identity: %v", got)
	}

	// Yaw 90° turns the forward axis +Z towards +X.
	fwd := Orientation(90, 0, 0).MulVec3(Vec3{0, 0, 1})
	if !nearVec(fwd, Vec3{1, 0, 0}) {
		t.Errorf("yaw 90 forward = %v, want (1,0,0)", fwd)
	}

	r := Orientation(30, -15, 10)
	id := Mat3Mul(r, r.Transpose())
	for i, want := range Mat3Identity() {
		if !near(id[i], want) {
			t.Fatalf("R × Rᵀ not identity: %v", id)
		}
	}
}
