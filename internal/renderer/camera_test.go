package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"GopherCraft/internal/config"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Speed <= 0 {
		t.Error("Camera speed should be positive")
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}

	if math.Abs(float64(cam.AspectRatio)-800.0/600.0) > 1e-5 {
		t.Errorf("Expected aspect ratio width/height, got %f", cam.AspectRatio)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
	eye := view.Mul4x1(mgl32.Vec4{0, 0, 5, 1})
	if eye.Vec3().Len() > 1e-5 {
		t.Errorf("Camera position should map to the view origin, got %v", eye)
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetPosition(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{10, 20, 30}

	if cam.GetPosition() != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("Expected position (10,20,30), got %v", cam.GetPosition())
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Yaw = -90
	cam.Pitch = 0

	cam.updateCameraVectors()

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
	if cam.Front.Sub(mgl32.Vec3{0, 0, -1}).Len() > 1e-4 {
		t.Errorf("Yaw -90 should look down -Z, got %v", cam.Front)
	}
	if cam.Right.Sub(mgl32.Vec3{1, 0, 0}).Len() > 1e-4 {
		t.Errorf("Right should be +X, got %v", cam.Right)
	}
}

func TestCameraProcessMovement(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{}
	cam.Speed = 10

	cam.ProcessMovement(Movement{Forward: true}, 0.5)
	if cam.Position.Sub(mgl32.Vec3{0, 0, -5}).Len() > 1e-4 {
		t.Errorf("Expected (0,0,-5), got %v", cam.Position)
	}

	cam.ProcessMovement(Movement{Up: true, Sprint: true}, 0.1)
	if math.Abs(float64(cam.Position.Y())-2.5) > 1e-4 {
		t.Errorf("Expected sprinting up to y=2.5, got %v", cam.Position)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.ProcessMouseMovement(0, 100000, true)

	if cam.Pitch > 89 || cam.Pitch < -89 {
		t.Errorf("Pitch should be clamped, got %f", cam.Pitch)
	}
}

func TestCameraFirstMouseSample(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	yaw := cam.Yaw

	cam.ProcessMousePosition(10, 10)
	if cam.Yaw != yaw {
		t.Error("the first cursor sample should only seed the last position")
	}
	cam.ProcessMousePosition(20, 10)
	if cam.Yaw == yaw {
		t.Error("later samples should turn the camera")
	}
}

func TestNewConfiguredCamera(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Start = [3]float32{5, 90, -3}
	cfg.Fov = 90
	cam := NewConfiguredCamera(cfg, 1280, 720)

	if cam.Position != (mgl32.Vec3{5, 90, -3}) {
		t.Errorf("Expected start position, got %v", cam.Position)
	}
	want := mgl32.Perspective(mgl32.DegToRad(90), 1280.0/720.0, cfg.Near, cfg.Far)
	if !cam.Projection.ApproxEqual(want) {
		t.Error("Projection does not follow the configured fov")
	}
}

func TestCameraResetMouse(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.ProcessMousePosition(100, 100)
	cam.ResetMouse()
	yaw := cam.Yaw
	cam.ProcessMousePosition(700, 100)
	if cam.Yaw != yaw {
		t.Errorf("Expected the first sample after a reset to be ignored, yaw moved to %f", cam.Yaw)
	}
}

func TestCameraCenterRay(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{1, 2, 3}
	ray := cam.CenterRay()

	if ray.Origin != cam.Position {
		t.Errorf("Expected ray origin at the camera, got %v", ray.Origin)
	}
	p := ray.At(10)
	want := cam.Position.Add(cam.Front.Normalize().Mul(10))
	if !p.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected %v, got %v", want, p)
	}
}
