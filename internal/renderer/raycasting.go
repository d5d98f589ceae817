package renderer

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half line. Direction is unit length when built by the camera.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// CenterRay is the ray through the middle of the screen, which is where
// the crosshair sits.
func (c *Camera) CenterRay() Ray {
	return Ray{Origin: c.Position, Direction: c.Front.Normalize()}
}
