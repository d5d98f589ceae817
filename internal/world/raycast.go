package world

import (
	"math"

	"GopherCraft/internal/renderer"
	"GopherCraft/internal/voxel"
)

// Hit is the first solid block along a ray.
type Hit struct {
	Pos      voxel.BlockPos
	Block    voxel.BlockType
	Face     voxel.Direction // face the ray entered through
	Distance float32
}

// Raycast walks the block grid cell by cell from the ray origin for at most
// maxDist blocks and reports the first solid block. Water is transparent to
// the ray. The walk gives up at chunks that are not generated yet. When the
// origin itself is inside a block, that block is returned with Face Up.
func (w *World) Raycast(ray renderer.Ray, maxDist float32) (Hit, bool) {
	if ray.Direction.Len() == 0 {
		return Hit{}, false
	}
	dir := ray.Direction.Normalize()
	inf := float32(math.Inf(1))

	var (
		cell   [3]int
		step   [3]int
		tMax   [3]float32
		tDelta [3]float32
	)
	for i := 0; i < 3; i++ {
		cell[i] = int(math.Floor(float64(ray.Origin[i])))
		switch {
		case dir[i] > 0:
			step[i] = 1
			tDelta[i] = 1 / dir[i]
			tMax[i] = (float32(cell[i]+1) - ray.Origin[i]) * tDelta[i]
		case dir[i] < 0:
			step[i] = -1
			tDelta[i] = -1 / dir[i]
			tMax[i] = (ray.Origin[i] - float32(cell[i])) * tDelta[i]
		default:
			tMax[i], tDelta[i] = inf, inf
		}
	}

	face := voxel.Up
	var t float32
	for t <= maxDist {
		pos := voxel.BlockPos{X: cell[0], Y: cell[1], Z: cell[2]}
		switch {
		case pos.Y < 0:
			return Hit{}, false
		case pos.Y < voxel.WorldHeight:
			b, ok := w.BlockAt(pos)
			if !ok {
				return Hit{}, false
			}
			if b.IsActive() && b != voxel.Water {
				return Hit{Pos: pos, Block: b, Face: face, Distance: t}, true
			}
		}

		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		t = tMax[axis]
		cell[axis] += step[axis]
		tMax[axis] += tDelta[axis]
		face = entryFace(axis, step[axis])
	}
	return Hit{}, false
}

func entryFace(axis, step int) voxel.Direction {
	switch axis {
	case 0:
		if step > 0 {
			return voxel.Left
		}
		return voxel.Right
	case 1:
		if step > 0 {
			return voxel.Down
		}
		return voxel.Up
	default:
		if step > 0 {
			return voxel.Forward
		}
		return voxel.Backward
	}
}
