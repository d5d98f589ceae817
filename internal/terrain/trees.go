package terrain

import (
	"math"

	"GopherCraft/internal/voxel"
)

const (
	canopyRadius = 2
	minTrunk     = 4
)

// placeTree runs the column's tree trial and, on success, writes a trunk and
// a round canopy. Cells already occupied are left alone and anything outside
// the chunk is dropped. It returns the number of cells written.
func (g *Generator) placeTree(blocks *voxel.Blocks, x, z int, col column, wx, wz int) int {
	chance := col.biome.treeChance()
	if chance == 0 || col.river > 0 || col.height <= g.cfg.WaterLevel {
		return 0
	}
	if unitDraw(g.treeSeed, wx, wz) >= chance {
		return 0
	}

	// Offset so trunk height does not track the subsurface depth sample.
	trunk := minTrunk + int(math.Round(2*g.detail.at01(wx+7919, wz-7919)))
	base := col.height
	top := base + trunk - 1

	written := 0
	for y := base; y <= top && y < voxel.WorldHeight; y++ {
		if blocks.Get(x, y, z) == voxel.Air {
			blocks.Set(x, y, z, voxel.Logs)
			written++
		}
	}

	const limit = canopyRadius*canopyRadius + 1
	for dy := -canopyRadius; dy <= canopyRadius; dy++ {
		for dz := -canopyRadius; dz <= canopyRadius; dz++ {
			for dx := -canopyRadius; dx <= canopyRadius; dx++ {
				if dx*dx+dy*dy+dz*dz > limit {
					continue
				}
				lx, ly, lz := x+dx, top+dy, z+dz
				if lx < 0 || lx >= voxel.ChunkSize || lz < 0 || lz >= voxel.ChunkSize || ly < 0 || ly >= voxel.WorldHeight {
					continue
				}
				if blocks.Get(lx, ly, lz) != voxel.Air {
					continue
				}
				blocks.Set(lx, ly, lz, voxel.Leaves)
				written++
			}
		}
	}
	return written
}
