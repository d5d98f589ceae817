package renderer

import "github.com/go-gl/mathgl/mgl32"

type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

func (p *Plane) DistanceToPoint(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum is the six inward-facing planes of a view volume, in the order
// left, right, bottom, top, near, far.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustum extracts and normalises the planes of a projection*view matrix.
func NewFrustum(vp mgl32.Mat4) Frustum {
	var f Frustum
	row := func(i int) mgl32.Vec4 {
		return mgl32.Vec4{vp[i], vp[4+i], vp[8+i], vp[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	planes := [6]mgl32.Vec4{
		r3.Add(r0), // left
		r3.Sub(r0), // right
		r3.Add(r1), // bottom
		r3.Sub(r1), // top
		r3.Add(r2), // near
		r3.Sub(r2), // far
	}
	for i, p := range planes {
		n := p.Vec3()
		length := n.Len()
		if length == 0 {
			continue
		}
		f.Planes[i] = Plane{Normal: n.Mul(1 / length), Distance: p.W() / length}
	}
	return f
}

// FrustumFor builds the frustum of anything exposing view and projection.
func FrustumFor(cam interface {
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix() mgl32.Mat4
}) Frustum {
	return NewFrustum(cam.GetProjectionMatrix().Mul4(cam.GetViewMatrix()))
}

func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

// IntersectsAABB reports whether the box [lo, hi] is at least partly
// inside. Each plane is tested against the box corner furthest along its
// normal; epsilon loosens the test to keep boxes touching a plane.
func (f *Frustum) IntersectsAABB(lo, hi mgl32.Vec3, epsilon float32) bool {
	for _, plane := range f.Planes {
		var p mgl32.Vec3
		for axis := 0; axis < 3; axis++ {
			if plane.Normal[axis] >= 0 {
				p[axis] = hi[axis]
			} else {
				p[axis] = lo[axis]
			}
		}
		if plane.DistanceToPoint(p) < -epsilon {
			return false
		}
	}
	return true
}
