// Command voxelcraft opens a window and streams procedurally generated
// terrain around a free-flying camera.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/faiface/mainthread"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"GopherCraft/internal/config"
	"GopherCraft/internal/engine"
	"GopherCraft/internal/logger"
	"GopherCraft/internal/metrics"
	"GopherCraft/internal/renderer"
	"GopherCraft/internal/renderer/opengl"
	"GopherCraft/internal/terrain"
	"GopherCraft/internal/world"
)

// reach is how far the crosshair looks for a block, in blocks.
const reach = 64

func main() {
	configPath := flag.String("config", "", "YAML config file (falls back to $"+config.EnvPath+")")
	textureDir := flag.String("textures", "", "directory of <block>.png tiles; missing tiles are generated")
	seed := flag.Int64("seed", 0, "override the generator seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}
	if err := logger.Init(logger.Options{Level: cfg.Log.Level, Development: cfg.Log.Development}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := 0
	mainthread.Run(func() {
		var runErr error
		mainthread.Call(func() { runErr = run(cfg, *textureDir) })
		if runErr != nil {
			logger.Log.Error("voxelcraft stopped", zap.Error(runErr))
			code = 1
		}
	})
	logger.Sync()
	os.Exit(code)
}

// run owns the window and GL context for the life of the process.
func run(cfg config.Config, textureDir string) error {
	win, err := engine.Open(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	width, height := win.FramebufferSize()
	device, err := opengl.NewDevice(width, height)
	if err != nil {
		return err
	}
	program, err := opengl.NewVoxelProgram()
	if err != nil {
		return err
	}
	defer program.Delete()

	tiles, err := renderer.BlockLayers(textureDir)
	if err != nil {
		return fmt.Errorf("block textures: %w", err)
	}
	textures, err := opengl.NewTextureArray(tiles)
	if err != nil {
		return err
	}
	defer textures.Delete()

	gen := terrain.NewGenerator(cfg.Generator)
	cam := renderer.NewConfiguredCamera(cfg.Camera, width, height)
	spawnAboveGround(cam, gen)

	reg := prometheus.NewRegistry()
	m, err := metrics.NewStreaming(reg)
	if err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" {
		srv := metrics.Serve(cfg.Metrics.Addr, reg)
		defer srv.Close()
	}

	w := world.New(world.OptionsFrom(cfg.World), gen, device, program, textures, m)
	defer w.Close()
	w.Prepare(cam)

	win.OnResize(device.Resize)

	var (
		frames    int
		lastTitle = time.Now()
	)
	win.Loop(cam, func(float32) {
		w.Render(cam)
		frames++
		if since := time.Since(lastTitle); since >= time.Second {
			s := w.Stats()
			target := "nothing"
			if hit, ok := w.Raycast(cam.CenterRay(), reach); ok {
				target = fmt.Sprintf("%v at %v", hit.Block, hit.Pos)
			}
			win.SetTitle(fmt.Sprintf("%s | %.0f fps | chunk %v | %d resident | %d drawn | %s",
				cfg.Window.Title, float64(frames)/since.Seconds(), s.PlayerChunk, s.Resident, s.Visible, target))
			logger.Log.Debug("Frame stats",
				zap.Uint64("frame", s.Frame),
				zap.Int("resident", s.Resident),
				zap.Int("inFlight", s.InFlight),
				zap.Int("drawCalls", s.DrawCalls),
				zap.Int("faces", s.FacesDrawn))
			frames = 0
			lastTitle = time.Now()
		}
	})
	return nil
}

// spawnAboveGround lifts the camera out of the terrain at its start column.
func spawnAboveGround(cam *renderer.Camera, gen *terrain.Generator) {
	ground := float32(gen.HeightAt(int(cam.Position.X()), int(cam.Position.Z())))
	if cam.Position.Y() < ground+2 {
		cam.Position = mgl32.Vec3{cam.Position.X(), ground + 10, cam.Position.Z()}
		logger.Log.Info("Spawn moved above ground", zap.Float32("y", cam.Position.Y()))
	}
}
