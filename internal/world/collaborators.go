package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"GopherCraft/internal/voxel"
)

// Camera supplies the player position and the matrices for one frame.
type Camera interface {
	GetPosition() mgl32.Vec3
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix() mgl32.Mat4
}

// Shader is the voxel program and its uniforms.
type Shader interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetInt(name string, v int32)
}

// Device owns the graphics context. All calls happen on the render goroutine.
type Device interface {
	Clear(color mgl32.Vec4)
	NewFaceBuffer() voxel.FaceBuffer
	// DrawFaces draws count instanced faces from the bound buffer.
	DrawFaces(count int)
}

// Texture is the block texture array.
type Texture interface {
	Bind(unit uint32)
}

// Terrain fills chunks and estimates heights for unloaded neighbours. It is
// called from worker goroutines and must be safe for concurrent use.
type Terrain interface {
	voxel.TerrainFiller
	voxel.HeightSource
}

// Uniform names shared with the voxel shader.
const (
	UniformPerspectiveView = "m_PerspectiveView"
	UniformViewPos         = "viewPos"
	UniformChunkOrigin     = "chunkOrigin"
	UniformDirection       = "direction"
	UniformTextures        = "blockTextures"
)
