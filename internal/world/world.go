package world

import (
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"GopherCraft/internal/config"
	"GopherCraft/internal/logger"
	"GopherCraft/internal/metrics"
	"GopherCraft/internal/renderer"
	"GopherCraft/internal/voxel"
)

// Options tune the streaming controller.
type Options struct {
	RenderDistance   int
	MaxActiveTasks   int
	FrustumCulling   bool
	EvictAfterFrames int
	ClearColor       mgl32.Vec4
}

// OptionsFrom maps the world section of the config file.
func OptionsFrom(cfg config.World) Options {
	return Options{
		RenderDistance:   cfg.RenderDistance,
		MaxActiveTasks:   cfg.MaxActiveTasks,
		FrustumCulling:   cfg.FrustumCulling,
		EvictAfterFrames: cfg.EvictAfterFrames,
		ClearColor:       mgl32.Vec4{0.53, 0.75, 0.95, 1},
	}
}

// Stats is a snapshot of the last frame.
type Stats struct {
	Frame       uint64
	PlayerChunk voxel.ChunkCoord

	Resident int
	Visible  int
	InFlight int

	Created    int
	Dispatched int
	Deferred   int
	Completed  int
	Failed     int
	Evicted    int

	DrawCalls  int
	FacesDrawn int
}

// World streams chunks around the camera and draws them. Every method must
// be called from the goroutine that owns the graphics context.
type World struct {
	opts    Options
	terrain Terrain
	device  Device
	shader  Shader
	texture Texture
	metrics *metrics.Streaming

	registry *Registry
	pool     pond.ResultPool[faceSet]
	tasks    []*task

	frame      uint64
	player     voxel.ChunkCoord
	visible    []Candidate
	frameStats Stats
}

// New builds a world. texture and m may be nil.
func New(opts Options, terrain Terrain, device Device, shader Shader, texture Texture, m *metrics.Streaming) *World {
	if opts.MaxActiveTasks < 1 {
		opts.MaxActiveTasks = 1
	}
	if m == nil {
		// Unregistered collectors cannot fail to build.
		m, _ = metrics.NewStreaming(nil)
	}
	w := &World{
		opts:     opts,
		terrain:  terrain,
		device:   device,
		shader:   shader,
		texture:  texture,
		metrics:  m,
		registry: NewRegistry(),
		pool:     pond.NewResultPool[faceSet](opts.MaxActiveTasks),
	}
	logger.Log.Info("World created",
		zap.Int("renderDistance", opts.RenderDistance),
		zap.Int("maxActiveTasks", opts.MaxActiveTasks),
		zap.Bool("frustumCulling", opts.FrustumCulling),
		zap.Int("evictAfterFrames", opts.EvictAfterFrames))
	return w
}

// Registry exposes the chunk map for read-only inspection.
func (w *World) Registry() *Registry {
	return w.registry
}

// Prepare does the one-time shader setup.
func (w *World) Prepare(cam Camera) {
	w.shader.Use()
	if w.texture != nil {
		w.texture.Bind(0)
		w.shader.SetInt(UniformTextures, 0)
	}
	w.setFrameUniforms(cam)
}

// Render runs one frame: pick candidates, create missing chunks, dispatch
// and retire tasks, then draw the clean candidates.
func (w *World) Render(cam Camera) {
	start := time.Now()
	w.frame++
	w.frameStats = Stats{Frame: w.frame}

	w.updateCandidates(cam)
	w.ensureChunks()
	w.dispatch()
	w.retire()
	w.evict()
	w.draw(cam)

	s := &w.frameStats
	s.PlayerChunk = w.player
	s.Resident = w.registry.Len()
	s.Visible = len(w.visible)
	s.InFlight = len(w.tasks)

	w.metrics.ChunksCreated.Add(float64(s.Created))
	w.metrics.ChunksResident.Set(float64(s.Resident))
	w.metrics.ChunksVisible.Set(float64(s.Visible))
	w.metrics.TasksInFlight.Set(float64(s.InFlight))
	w.metrics.DrawCalls.Set(float64(s.DrawCalls))
	w.metrics.FacesDrawn.Set(float64(s.FacesDrawn))
	w.metrics.FrameDuration.Observe(time.Since(start).Seconds())
}

// Stats returns the counters of the last rendered frame.
func (w *World) Stats() Stats {
	return w.frameStats
}

// Candidates returns the candidate set of the last frame. The slice is
// reused by the next Render.
func (w *World) Candidates() []Candidate {
	return w.visible
}

// BlockAt returns the block at a world position. ok is false when the chunk
// is not resident, not generated yet, or y is outside the world.
func (w *World) BlockAt(pos voxel.BlockPos) (b voxel.BlockType, ok bool) {
	if pos.Y < 0 || pos.Y >= voxel.WorldHeight {
		return voxel.Air, false
	}
	coord, x, y, z := voxel.LocalPos(pos)
	c := w.registry.Get(coord)
	if c == nil || !c.Generated() {
		return voxel.Air, false
	}
	return c.Block(x, y, z), true
}

// Close waits for outstanding tasks and frees every GPU buffer. The world
// must not be used afterwards.
func (w *World) Close() {
	w.pool.StopAndWait()
	for _, t := range w.tasks {
		t.chunk.Meshing = false
	}
	w.tasks = nil

	released := 0
	w.registry.Range(func(c *voxel.Chunk) bool {
		c.ReleaseGPU()
		released++
		return true
	})
	logger.Log.Info("World closed", zap.Int("chunks", released), zap.Uint64("frames", w.frame))
}

func (w *World) updateCandidates(cam Camera) {
	w.player = voxel.ChunkCoordAt(cam.GetPosition())

	var frustum *renderer.Frustum
	if w.opts.FrustumCulling {
		f := renderer.FrustumFor(cam)
		frustum = &f
	}
	w.visible = AppendCandidates(w.visible[:0], w.player, w.opts.RenderDistance, frustum)
}

// ensureChunks inserts missing candidates. Registry writes only happen here
// and in evict, both on the render goroutine.
func (w *World) ensureChunks() {
	for _, cand := range w.visible {
		c, created := w.registry.GetOrCreate(cand.Coord)
		if created {
			w.frameStats.Created++
		}
		c.LastSeen = w.frame
	}
}

func (w *World) setFrameUniforms(cam Camera) {
	w.shader.SetMat4(UniformPerspectiveView, cam.GetProjectionMatrix().Mul4(cam.GetViewMatrix()))
	w.shader.SetVec3(UniformViewPos, cam.GetPosition())
}

func (w *World) draw(cam Camera) {
	w.device.Clear(w.opts.ClearColor)
	w.shader.Use()
	if w.texture != nil {
		w.texture.Bind(0)
	}
	w.setFrameUniforms(cam)

	pos := cam.GetPosition()
	for _, cand := range w.visible {
		c := w.registry.Get(cand.Coord)
		if c == nil || c.Dirty {
			continue
		}
		originSet := false
		for _, d := range voxel.Directions {
			m := &c.Mesh[d]
			if m.FaceCount == 0 || m.Buffer == nil || !PlayerSeesFace(pos, c.Origin, d) {
				continue
			}
			if !originSet {
				w.shader.SetVec3(UniformChunkOrigin, c.Origin.Vec3())
				originSet = true
			}
			w.shader.SetInt(UniformDirection, int32(d))
			m.Buffer.Bind()
			w.device.DrawFaces(m.FaceCount)
			w.frameStats.DrawCalls++
			w.frameStats.FacesDrawn += m.FaceCount
		}
	}
}
