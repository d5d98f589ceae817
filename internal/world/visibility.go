package world

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"GopherCraft/internal/renderer"
	"GopherCraft/internal/voxel"
)

const frustumEpsilon = 0.1

// Candidate is a chunk that should be resident this frame.
type Candidate struct {
	Coord  voxel.ChunkCoord
	DistSq int
}

// AppendCandidates appends every chunk within renderDistance of player
// (circular footprint, dx²+dz² < rd²) to dst and sorts the result nearest
// first, ties by X then Z. A non-nil frustum drops chunks whose column box
// lies outside it; the player's own chunk is always kept.
func AppendCandidates(dst []Candidate, player voxel.ChunkCoord, renderDistance int, frustum *renderer.Frustum) []Candidate {
	start := len(dst)
	rd := renderDistance
	limit := rd * rd
	for dz := -rd; dz <= rd; dz++ {
		for dx := -rd; dx <= rd; dx++ {
			d := dx*dx + dz*dz
			if d >= limit {
				continue
			}
			coord := voxel.ChunkCoord{X: player.X + dx, Z: player.Z + dz}
			if frustum != nil && d != 0 && !chunkInFrustum(frustum, coord) {
				continue
			}
			dst = append(dst, Candidate{Coord: coord, DistSq: d})
		}
	}

	out := dst[start:]
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DistSq != b.DistSq {
			return a.DistSq < b.DistSq
		}
		if a.Coord.X != b.Coord.X {
			return a.Coord.X < b.Coord.X
		}
		return a.Coord.Z < b.Coord.Z
	})
	return dst
}

func chunkInFrustum(f *renderer.Frustum, coord voxel.ChunkCoord) bool {
	lo := coord.Origin().Vec3()
	hi := lo.Add(mgl32.Vec3{voxel.ChunkSize, voxel.WorldHeight, voxel.ChunkSize})
	return f.IntersectsAABB(lo, hi, frustumEpsilon)
}

// PlayerSeesFace reports whether any face of the given direction in the
// chunk at origin can point toward pos. Each direction is a single plane
// test against the chunk bounds.
func PlayerSeesFace(pos mgl32.Vec3, origin voxel.BlockPos, d voxel.Direction) bool {
	switch d {
	case voxel.Backward:
		return pos.Z() > float32(origin.Z)
	case voxel.Forward:
		return pos.Z() < float32(origin.Z+voxel.ChunkSize)
	case voxel.Right:
		return pos.X() > float32(origin.X)
	case voxel.Left:
		return pos.X() < float32(origin.X+voxel.ChunkSize)
	case voxel.Up:
		return pos.Y() > float32(origin.Y)
	case voxel.Down:
		return pos.Y() < float32(origin.Y+voxel.WorldHeight)
	}
	return false
}
