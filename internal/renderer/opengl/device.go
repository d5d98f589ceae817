package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"GopherCraft/internal/logger"
	"GopherCraft/internal/voxel"
)

// Device drives a GL 4.1 core context. It must be created and used on the
// thread that owns the context.
type Device struct {
	width, height int32
}

func NewDevice(width, height int32) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: init: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, width, height)

	logger.Log.Info("OpenGL device initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int32("width", width),
		zap.Int32("height", height))
	return &Device{width: width, height: height}, nil
}

// Resize updates the viewport after a framebuffer size change.
func (d *Device) Resize(width, height int32) {
	d.width, d.height = width, height
	gl.Viewport(0, 0, width, height)
}

func (d *Device) Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) NewFaceBuffer() voxel.FaceBuffer {
	return newFaceBuffer()
}

// DrawFaces draws one quad per face in the bound buffer.
func (d *Device) DrawFaces(count int) {
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(count))
}

// faceBuffer holds packed faces as a per-instance integer attribute.
type faceBuffer struct {
	vao, vbo uint32
}

func newFaceBuffer() *faceBuffer {
	b := &faceBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribIPointer(0, 1, gl.UNSIGNED_INT, 4, gl.PtrOffset(0))
	gl.VertexAttribDivisor(0, 1)

	gl.BindVertexArray(0)
	return b
}

func (b *faceBuffer) Bind() {
	gl.BindVertexArray(b.vao)
}

func (b *faceBuffer) BufferData(data []uint32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (b *faceBuffer) Release() {
	if b.vao == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	b.vao, b.vbo = 0, 0
}
