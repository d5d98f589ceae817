package voxel

// FaceBuffer is a GPU-resident array of packed faces. Every method must be
// called on the goroutine that owns the graphics context.
type FaceBuffer interface {
	Bind()
	BufferData(data []uint32)
	Release()
}

// ChunkMesh holds one direction's faces. Faces is the CPU copy waiting for
// upload; FaceCount is what the buffer currently holds.
type ChunkMesh struct {
	Faces     []Face
	Buffer    FaceBuffer
	FaceCount int
}

// UploadToGPU copies pending faces into GPU buffers, allocating them with
// newBuffer on first use, and drops the CPU copies. Empty chunks and empty
// directions never allocate. It returns the number of buffers written.
func (c *Chunk) UploadToGPU(newBuffer func() FaceBuffer) int {
	if c.activeCount == 0 {
		for d := range c.Mesh {
			c.Mesh[d].Faces = nil
			c.Mesh[d].FaceCount = 0
		}
		return 0
	}

	var scratch []uint32
	uploads := 0
	for d := range c.Mesh {
		m := &c.Mesh[d]
		if len(m.Faces) == 0 {
			m.FaceCount = 0
			m.Faces = nil
			continue
		}
		if m.Buffer == nil {
			m.Buffer = newBuffer()
		}
		scratch = PackFaces(scratch, m.Faces)
		m.Buffer.Bind()
		m.Buffer.BufferData(scratch)
		m.FaceCount = len(m.Faces)
		m.Faces = nil
		uploads++
	}
	return uploads
}

// ReleaseGPU frees every buffer the chunk owns. Render goroutine only.
func (c *Chunk) ReleaseGPU() {
	for d := range c.Mesh {
		if c.Mesh[d].Buffer != nil {
			c.Mesh[d].Buffer.Release()
			c.Mesh[d].Buffer = nil
		}
		c.Mesh[d].FaceCount = 0
	}
}
