package voxel

import (
	"fmt"
	"sync/atomic"
)

// Blocks is the dense cell array of one chunk, indexed z*CS*H + y*CS + x.
type Blocks [blocksPerChunk]BlockType

// Index returns the array slot of a local cell. Out-of-range coordinates are
// a programmer error and panic.
func Index(x, y, z int) int {
	if x < 0 || x >= ChunkSize || y < 0 || y >= WorldHeight || z < 0 || z >= ChunkSize {
		panic(fmt.Sprintf("voxel: local block (%d,%d,%d) out of chunk bounds", x, y, z))
	}
	return z*ChunkSize*WorldHeight + y*ChunkSize + x
}

func (b *Blocks) Get(x, y, z int) BlockType {
	return b[Index(x, y, z)]
}

func (b *Blocks) Set(x, y, z int, t BlockType) {
	b[Index(x, y, z)] = t
}

// TerrainFiller writes a chunk's cells and returns how many are active.
type TerrainFiller interface {
	FillTerrain(blocks *Blocks, origin BlockPos) int
}

// FillFunc adapts a plain function to TerrainFiller.
type FillFunc func(blocks *Blocks, origin BlockPos) int

func (f FillFunc) FillTerrain(blocks *Blocks, origin BlockPos) int {
	return f(blocks, origin)
}

// Chunk is one ChunkSize x WorldHeight x ChunkSize column of the world.
//
// Dirty, Meshing, LastSeen and Mesh belong to the render goroutine. The
// block array is written once by whichever task generates the chunk; the
// generated flag publishes it, and nobody else reads the cells before the
// flag is observed set.
type Chunk struct {
	Coord  ChunkCoord
	Origin BlockPos

	Dirty    bool
	Meshing  bool
	LastSeen uint64

	Mesh [6]ChunkMesh

	blocks      Blocks
	activeCount int
	generated   atomic.Bool
}

// NewChunk returns an empty, dirty chunk at coord.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		Coord:  coord,
		Origin: coord.Origin(),
		Dirty:  true,
	}
}

// Generate fills the chunk once. It reports whether this call did the fill.
func (c *Chunk) Generate(f TerrainFiller) bool {
	if c.generated.Load() {
		return false
	}
	c.activeCount = f.FillTerrain(&c.blocks, c.Origin)
	c.generated.Store(true)
	return true
}

// Generated reports whether the block array has been filled and published.
func (c *Chunk) Generated() bool {
	return c.generated.Load()
}

// ActiveCount is the number of non-air cells. Only meaningful once Generated.
func (c *Chunk) ActiveCount() int {
	return c.activeCount
}

// Block returns the cell at local coordinates.
func (c *Chunk) Block(x, y, z int) BlockType {
	return c.blocks.Get(x, y, z)
}

// FaceCount totals the uploaded faces over every direction.
func (c *Chunk) FaceCount() int {
	n := 0
	for i := range c.Mesh {
		n += c.Mesh[i].FaceCount
	}
	return n
}

func (c *Chunk) String() string {
	return fmt.Sprintf("chunk%s dirty=%t meshing=%t active=%d", c.Coord, c.Dirty, c.Meshing, c.activeCount)
}
