package voxel

// Face is one visible quad: the local cell, the side it faces and the block
// type used for the texture layer lookup.
type Face struct {
	X, Y, Z uint8
	Dir     Direction
	Block   BlockType
}

// Packed layout, low bit first:
//
//	x:4 | z:4 | y:9 | dir:3 | block:8
const (
	faceShiftZ     = 4
	faceShiftY     = 8
	faceShiftDir   = 17
	faceShiftBlock = 20
)

// Pack encodes f into the per-instance word the voxel shader decodes.
func (f Face) Pack() uint32 {
	return uint32(f.X&0xF) |
		uint32(f.Z&0xF)<<faceShiftZ |
		uint32(f.Y)<<faceShiftY |
		uint32(f.Dir&0x7)<<faceShiftDir |
		uint32(f.Block)<<faceShiftBlock
}

// UnpackFace is the inverse of Face.Pack.
func UnpackFace(v uint32) Face {
	return Face{
		X:     uint8(v & 0xF),
		Z:     uint8(v >> faceShiftZ & 0xF),
		Y:     uint8(v >> faceShiftY & 0x1FF),
		Dir:   Direction(v >> faceShiftDir & 0x7),
		Block: BlockType(v >> faceShiftBlock & 0xFF),
	}
}

// PackFaces encodes faces into dst, reusing its capacity.
func PackFaces(dst []uint32, faces []Face) []uint32 {
	dst = dst[:0]
	for _, f := range faces {
		dst = append(dst, f.Pack())
	}
	return dst
}
