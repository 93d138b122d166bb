package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransform_Rotations(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		vector    Vec3
		expected  Vec3
	}{
		{"identity", IdentityTransform(), NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
		{"90 degrees about Z", RotateZTransform(math.Pi / 2), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"90 degrees about Y", RotateYTransform(math.Pi / 2), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{"90 degrees about X", RotateXTransform(math.Pi / 2), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"180 degrees about Y", RotateYTransform(math.Pi), NewVec3(1, 0, 0), NewVec3(-1, 0, 0)},
		{
			name:      "Y then Z",
			transform: RotateYTransform(math.Pi / 2).Then(RotateZTransform(math.Pi / 2)),
			vector:    NewVec3(1, 0, 0),
			expected:  NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transform.Vector(tt.vector)
			if diff := cmp.Diff(tt.expected, got, approx); diff != "" {
				t.Errorf("rotation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransform_CompositionOrder(t *testing.T) {
	// Scale, then rotate, then translate: (1,0,0) -> (2,0,0) -> (0,0,-2) -> (10,0,-2)
	tr := ScaleTransform(2, 2, 2).
		Then(RotateYTransform(math.Pi / 2)).
		Then(TranslateTransform(10, 0, 0))

	got := tr.Point(NewVec3(1, 0, 0))
	if diff := cmp.Diff(NewVec3(10, 0, -2), got, approx); diff != "" {
		t.Errorf("composition mismatch (-want +got):\n%s", diff)
	}

	// Translation never applies to directions
	if diff := cmp.Diff(NewVec3(0, 0, -2), tr.Vector(NewVec3(1, 0, 0)), approx); diff != "" {
		t.Errorf("vector mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_InverseRoundTrip(t *testing.T) {
	tr := ScaleTransform(1, 3, 0.5).
		Then(RotateXTransform(0.3)).
		Then(RotateYTransform(-1.1)).
		Then(TranslateTransform(4, -2, 7))

	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("Expected invertible transform")
	}

	for _, p := range []Vec3{NewVec3(0, 0, 0), NewVec3(1, 2, 3), NewVec3(-5, 0.25, 9)} {
		back := inv.Point(tr.Point(p))
		if diff := cmp.Diff(p, back, approx); diff != "" {
			t.Errorf("round trip mismatch for %v (-want +got):\n%s", p, diff)
		}
	}
}

func TestTransform_SingularHasNoInverse(t *testing.T) {
	if _, ok := ScaleTransform(1, 0, 1).Inverse(); ok {
		t.Error("Expected zero scale to be reported as singular")
	}
}
