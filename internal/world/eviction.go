package world

import (
	"go.uber.org/zap"

	"GopherCraft/internal/logger"
	"GopherCraft/internal/voxel"
)

// evict drops chunks that have not been a candidate for EvictAfterFrames
// frames. Chunks with a task in flight stay until it retires. With the
// option at zero the registry only grows.
func (w *World) evict() {
	if w.opts.EvictAfterFrames <= 0 || w.frame <= uint64(w.opts.EvictAfterFrames) {
		return
	}
	cutoff := w.frame - uint64(w.opts.EvictAfterFrames)

	var stale []voxel.ChunkCoord
	w.registry.Range(func(c *voxel.Chunk) bool {
		if !c.Meshing && c.LastSeen < cutoff {
			stale = append(stale, c.Coord)
		}
		return true
	})

	for _, coord := range stale {
		if c := w.registry.Remove(coord); c != nil {
			c.ReleaseGPU()
		}
	}
	if len(stale) > 0 {
		w.frameStats.Evicted = len(stale)
		w.metrics.ChunksEvicted.Add(float64(len(stale)))
		logger.Log.Debug("Evicted chunks", zap.Int("count", len(stale)), zap.Uint64("frame", w.frame))
	}
}
