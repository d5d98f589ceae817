package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"GopherCraft/internal/voxel"
)

// NullDevice is a headless device. It keeps counters instead of touching a
// GPU, which makes it usable from benchmarks and tests.
type NullDevice struct {
	Clears       int
	DrawCalls    int
	FacesDrawn   int
	Allocated    int
	Released     int
	BytesWritten int

	bound *NullBuffer
}

// NullBuffer is the FaceBuffer handed out by NullDevice.
type NullBuffer struct {
	dev      *NullDevice
	Len      int
	Released bool
}

func NewNullDevice() *NullDevice {
	return &NullDevice{}
}

func (d *NullDevice) Clear(mgl32.Vec4) {
	d.Clears++
}

func (d *NullDevice) NewFaceBuffer() voxel.FaceBuffer {
	d.Allocated++
	return &NullBuffer{dev: d}
}

// DrawFaces panics on an empty draw; the world must never issue one.
func (d *NullDevice) DrawFaces(count int) {
	if count <= 0 {
		panic("renderer: draw issued for zero faces")
	}
	if d.bound == nil || d.bound.Released {
		panic("renderer: draw without a live bound buffer")
	}
	d.DrawCalls++
	d.FacesDrawn += count
}

// Live is the number of buffers allocated and not yet released.
func (d *NullDevice) Live() int {
	return d.Allocated - d.Released
}

// ResetFrame zeroes the per-frame draw counters.
func (d *NullDevice) ResetFrame() {
	d.DrawCalls = 0
	d.FacesDrawn = 0
}

func (b *NullBuffer) Bind() {
	b.dev.bound = b
}

func (b *NullBuffer) BufferData(data []uint32) {
	b.Len = len(data)
	b.dev.BytesWritten += 4 * len(data)
}

func (b *NullBuffer) Release() {
	if b.Released {
		return
	}
	b.Released = true
	b.dev.Released++
	if b.dev.bound == b {
		b.dev.bound = nil
	}
}

// NullShader records the last value written to each uniform.
type NullShader struct {
	Uses  int
	Mat4s map[string]mgl32.Mat4
	Vec3s map[string]mgl32.Vec3
	Ints  map[string]int32
}

func NewNullShader() *NullShader {
	return &NullShader{
		Mat4s: make(map[string]mgl32.Mat4),
		Vec3s: make(map[string]mgl32.Vec3),
		Ints:  make(map[string]int32),
	}
}

func (s *NullShader) Use() { s.Uses++ }

func (s *NullShader) SetMat4(name string, m mgl32.Mat4) { s.Mat4s[name] = m }

func (s *NullShader) SetVec3(name string, v mgl32.Vec3) { s.Vec3s[name] = v }

func (s *NullShader) SetInt(name string, v int32) { s.Ints[name] = v }

// NullTexture satisfies the texture binding without a GPU.
type NullTexture struct {
	Unit uint32
}

func (t *NullTexture) Bind(unit uint32) { t.Unit = unit }
