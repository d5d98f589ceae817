package voxel

// NeighborLookup resolves adjoining chunks while meshing. A nil result means
// the chunk is not resident.
type NeighborLookup interface {
	Neighbor(coord ChunkCoord) *Chunk
}

// HeightSource estimates terrain height for columns whose chunk is not
// available. Cells below the estimate are treated as stone.
type HeightSource interface {
	HeightAt(wx, wz int) int
}

// boundary resolves cells just outside one side of the chunk being meshed.
type boundary struct {
	chunk   *Chunk // nil when the neighbour is absent or not generated yet
	heights [ChunkSize]int
	known   [ChunkSize]bool
}

type mesher struct {
	c       *Chunk
	heights HeightSource
	sides   [4]boundary // indexed by Backward, Forward, Left, Right
}

// BuildFaces emits one face per visible side of every active cell of c,
// grouped by direction. c must be generated. Neighbour chunks are read only
// once their own generation has been published; otherwise the height
// estimate from h decides the boundary cells.
func BuildFaces(c *Chunk, n NeighborLookup, h HeightSource) [6][]Face {
	var out [6][]Face
	if c.activeCount == 0 {
		return out
	}

	m := mesher{c: c, heights: h}
	for _, d := range [4]Direction{Backward, Forward, Left, Right} {
		if n == nil {
			break
		}
		dx, _, dz := d.Offset()
		if nb := n.Neighbor(ChunkCoord{c.Coord.X + dx, c.Coord.Z + dz}); nb != nil && nb.Generated() {
			m.sides[d].chunk = nb
		}
	}

	for z := 0; z < ChunkSize; z++ {
		for y := 0; y < WorldHeight; y++ {
			for x := 0; x < ChunkSize; x++ {
				b := c.blocks[z*ChunkSize*WorldHeight+y*ChunkSize+x]
				if !b.IsActive() {
					continue
				}
				for _, d := range Directions {
					if m.hidden(x, y, z, d, b) {
						continue
					}
					out[d] = append(out[d], Face{X: uint8(x), Y: uint8(y), Z: uint8(z), Dir: d, Block: b})
				}
			}
		}
	}
	return out
}

// hidden reports whether the d-side face of the cell at (x,y,z) is covered.
func (m *mesher) hidden(x, y, z int, d Direction, b BlockType) bool {
	dx, dy, dz := d.Offset()
	nx, ny, nz := x+dx, y+dy, z+dz

	switch {
	case ny < 0:
		// Nothing ever looks at the underside of the world.
		return true
	case ny >= WorldHeight:
		return false
	}

	if nx >= 0 && nx < ChunkSize && nz >= 0 && nz < ChunkSize {
		return m.c.blocks[nz*ChunkSize*WorldHeight+ny*ChunkSize+nx].Hides(b)
	}

	// Only horizontal directions leave the chunk.
	side := &m.sides[d]
	lx, lz := FloorMod(nx, ChunkSize), FloorMod(nz, ChunkSize)
	if side.chunk != nil {
		return side.chunk.blocks[lz*ChunkSize*WorldHeight+ny*ChunkSize+lx].Hides(b)
	}
	if m.heights == nil {
		return false
	}

	col := lx
	if d == Left || d == Right {
		col = lz
	}
	if !side.known[col] {
		side.heights[col] = m.heights.HeightAt(m.c.Origin.X+nx, m.c.Origin.Z+nz)
		side.known[col] = true
	}
	if ny < side.heights[col] {
		return Stone.Hides(b)
	}
	return false
}

// InstallFaces hands freshly built faces to the chunk. Render goroutine only.
func (c *Chunk) InstallFaces(faces [6][]Face) {
	for d := range c.Mesh {
		c.Mesh[d].Faces = faces[d]
	}
}
