package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ChunkSize   = 16
	WorldHeight = 256

	blocksPerChunk = ChunkSize * WorldHeight * ChunkSize
)

// BlockPos is an integer world position.
type BlockPos struct {
	X, Y, Z int
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Add offsets p by the given deltas.
func (p BlockPos) Add(dx, dy, dz int) BlockPos {
	return BlockPos{p.X + dx, p.Y + dy, p.Z + dz}
}

// Vec3 converts p to a float vector at the cell's minimum corner.
func (p BlockPos) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// ChunkCoord addresses a column of the world. Height is not chunked.
type ChunkCoord struct {
	X, Z int
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Z)
}

// Origin is the world position of the chunk's minimum corner.
func (c ChunkCoord) Origin() BlockPos {
	return BlockPos{c.X * ChunkSize, 0, c.Z * ChunkSize}
}

// DistSq is the squared chunk distance between c and o.
func (c ChunkCoord) DistSq(o ChunkCoord) int {
	dx, dz := c.X-o.X, c.Z-o.Z
	return dx*dx + dz*dz
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod is the non-negative remainder paired with FloorDiv.
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// ChunkCoordOf returns the chunk holding the world block column (wx, wz).
func ChunkCoordOf(wx, wz int) ChunkCoord {
	return ChunkCoord{FloorDiv(wx, ChunkSize), FloorDiv(wz, ChunkSize)}
}

// ChunkCoordAt returns the chunk holding a continuous world position.
func ChunkCoordAt(p mgl32.Vec3) ChunkCoord {
	return ChunkCoordOf(floorInt(p.X()), floorInt(p.Z()))
}

// LocalPos splits a world position into its chunk and the local cell.
func LocalPos(p BlockPos) (ChunkCoord, int, int, int) {
	return ChunkCoordOf(p.X, p.Z), FloorMod(p.X, ChunkSize), p.Y, FloorMod(p.Z, ChunkSize)
}

func floorInt(f float32) int {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i
}
