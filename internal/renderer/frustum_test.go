package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func lookingDownNegZ() Frustum {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 0}
	cam.Yaw, cam.Pitch = -90, 0
	cam.updateCameraVectors()
	return FrustumFor(cam)
}

func TestFrustumPlanesAreNormalised(t *testing.T) {
	f := lookingDownNegZ()
	for i, p := range f.Planes {
		if l := p.Normal.Len(); l < 0.999 || l > 1.001 {
			t.Errorf("plane %d normal length %f", i, l)
		}
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := lookingDownNegZ()

	if !f.IntersectsSphere(mgl32.Vec3{0, 0, -10}, 1) {
		t.Error("sphere in front of the camera should be inside")
	}
	if f.IntersectsSphere(mgl32.Vec3{0, 0, 10}, 1) {
		t.Error("sphere behind the camera should be outside")
	}
	if f.IntersectsSphere(mgl32.Vec3{0, 0, -5000}, 1) {
		t.Error("sphere beyond the far plane should be outside")
	}
}

func TestFrustumIntersectsAABB(t *testing.T) {
	f := lookingDownNegZ()

	cases := []struct {
		name     string
		min, max mgl32.Vec3
		want     bool
	}{
		{"ahead", mgl32.Vec3{-8, -8, -40}, mgl32.Vec3{8, 8, -24}, true},
		{"behind", mgl32.Vec3{-8, -8, 24}, mgl32.Vec3{8, 8, 40}, false},
		{"around camera", mgl32.Vec3{-8, -128, -8}, mgl32.Vec3{8, 128, 8}, true},
		{"far left", mgl32.Vec3{-500, -8, -20}, mgl32.Vec3{-480, 8, -10}, false},
		{"tall column ahead", mgl32.Vec3{0, -200, -100}, mgl32.Vec3{16, 56, -84}, true},
	}
	for _, tc := range cases {
		if got := f.IntersectsAABB(tc.min, tc.max, 0.1); got != tc.want {
			t.Errorf("%s: expected %t, got %t", tc.name, tc.want, got)
		}
	}
}
