package world

import (
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"GopherCraft/internal/logger"
	"GopherCraft/internal/voxel"
)

type faceSet = [6][]voxel.Face

// task is one generate+mesh job. Its faces come back through the pool
// result and are installed by the render goroutine.
type task struct {
	chunk  *voxel.Chunk
	result pond.Result[faceSet]
}

// dispatch starts tasks for dirty candidates, nearest first, while the
// in-flight count is below the cap. Whatever is left waits for a later frame.
func (w *World) dispatch() {
	for _, cand := range w.visible {
		c := w.registry.Get(cand.Coord)
		if c == nil || !c.Dirty || c.Meshing {
			continue
		}
		if len(w.tasks) >= w.opts.MaxActiveTasks {
			w.frameStats.Deferred++
			continue
		}
		c.Meshing = true
		w.tasks = append(w.tasks, &task{chunk: c, result: w.pool.Submit(w.meshJob(c))})
		w.frameStats.Dispatched++
	}
	w.metrics.TasksStarted.Add(float64(w.frameStats.Dispatched))
	w.metrics.TasksDeferred.Add(float64(w.frameStats.Deferred))
}

// meshJob runs on a worker. It writes only c's own cells and reads
// neighbours through the registry.
func (w *World) meshJob(c *voxel.Chunk) func() faceSet {
	terrain, registry, m := w.terrain, w.registry, w.metrics
	return func() faceSet {
		start := time.Now()
		c.Generate(terrain)
		faces := voxel.BuildFaces(c, registry, terrain)
		m.TaskDuration.Observe(time.Since(start).Seconds())
		return faces
	}
}

// retire polls in-flight tasks without blocking and uploads the finished
// ones. A failed task puts its chunk back to dirty so it is retried.
func (w *World) retire() {
	kept := w.tasks[:0]
	for _, t := range w.tasks {
		select {
		case <-t.result.Done():
		default:
			kept = append(kept, t)
			continue
		}

		c := t.chunk
		c.Meshing = false
		faces, err := t.result.Wait()
		if err != nil {
			c.Dirty = true
			w.frameStats.Failed++
			logger.Log.Warn("Chunk task failed",
				zap.Stringer("chunk", c.Coord),
				zap.Error(err))
			continue
		}

		c.InstallFaces(faces)
		c.UploadToGPU(w.device.NewFaceBuffer)
		c.Dirty = false
		w.frameStats.Completed++
	}
	for i := len(kept); i < len(w.tasks); i++ {
		w.tasks[i] = nil
	}
	w.tasks = kept

	w.metrics.TasksCompleted.Add(float64(w.frameStats.Completed))
	w.metrics.TasksFailed.Add(float64(w.frameStats.Failed))
}
