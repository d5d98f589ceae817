// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"GopherCraft/internal/config"
)

type Camera struct {
	// HOT DATA - read every frame by the world and the frustum
	Position   mgl32.Vec3
	Front      mgl32.Vec3
	Up         mgl32.Vec3
	Right      mgl32.Vec3
	Projection mgl32.Mat4
	Pitch      float32
	Yaw        float32

	// COLD DATA - configuration and input state
	WorldUp      mgl32.Vec3
	Speed        float32 // blocks per second
	Sensitivity  float32
	Fov          float32 // degrees
	Near         float32
	Far          float32
	AspectRatio  float32
	LastX, LastY float32
	InvertMouse  bool
	firstMouse   bool
}

// Movement is one frame's worth of held movement keys.
type Movement struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	Sprint            bool
}

func NewDefaultCamera(width, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 120, 0},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         -90.0,
		Speed:       30,
		Sensitivity: 0.1,
		Fov:         70.0,
		Near:        0.1,
		Far:         2000.0,
		LastX:       float32(width) / 2,
		LastY:       float32(height) / 2,
		AspectRatio: float32(width) / float32(height),
		firstMouse:  true,
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

// NewConfiguredCamera applies the camera section of the config file on top
// of the defaults.
func NewConfiguredCamera(cfg config.Camera, width, height int32) *Camera {
	c := NewDefaultCamera(width, height)
	c.Position = mgl32.Vec3{cfg.Start[0], cfg.Start[1], cfg.Start[2]}
	c.Speed = cfg.Speed
	c.Sensitivity = cfg.Sensitivity
	c.Fov = cfg.Fov
	c.SetClipPlanes(cfg.Near, cfg.Far)
	return c
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near, c.Far = near, far
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

func (c *Camera) GetPosition() mgl32.Vec3 {
	return c.Position
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

// ProcessMovement moves the camera along its own axes.
func (c *Camera) ProcessMovement(m Movement, deltaTime float32) {
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	velocity := c.Speed * deltaTime
	if m.Sprint {
		velocity *= 2.5
	}

	if m.Forward {
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	}
	if m.Backward {
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	}
	if m.Left {
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	}
	if m.Right {
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
	if m.Up {
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	}
	if m.Down {
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// ProcessMousePosition turns an absolute cursor position into a look delta.
func (c *Camera) ProcessMousePosition(x, y float32) {
	if c.firstMouse {
		c.LastX, c.LastY = x, y
		c.firstMouse = false
		return
	}
	dx, dy := x-c.LastX, c.LastY-y
	c.LastX, c.LastY = x, y
	c.ProcessMouseMovement(dx, dy, true)
}

// ResetMouse makes the next cursor position a new reference point.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset
	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0)
	}
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := float64(mgl32.DegToRad(c.Yaw))
	pitchRad := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
