// Command voxelbench drives the streaming world without a window. It flies
// or teleports the camera for a fixed number of frames and logs throughput.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"GopherCraft/internal/config"
	"GopherCraft/internal/logger"
	"GopherCraft/internal/metrics"
	"GopherCraft/internal/renderer"
	"GopherCraft/internal/terrain"
	"GopherCraft/internal/voxel"
	"GopherCraft/internal/world"
)

type benchFlags struct {
	frames   int
	interval int
	teleport int
	speed    float64
	pace     time.Duration
	metrics  string
}

func main() {
	configPath := flag.String("config", "", "YAML config file (falls back to $"+config.EnvPath+")")
	var bf benchFlags
	flag.IntVar(&bf.frames, "frames", 3000, "frames to render")
	flag.IntVar(&bf.interval, "interval", 300, "frames between stats lines")
	flag.IntVar(&bf.teleport, "teleport", 0, "jump 64 chunks every N frames instead of flying (0 flies)")
	flag.Float64Var(&bf.speed, "speed", 60, "flight speed in blocks per second")
	flag.DurationVar(&bf.pace, "pace", time.Second/60, "wall time per frame, 0 renders as fast as possible")
	flag.StringVar(&bf.metrics, "metrics", "", "serve /metrics on this address (overrides the config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if bf.metrics != "" {
		cfg.Metrics.Addr = bf.metrics
	}
	if err := logger.Init(logger.Options{Level: cfg.Log.Level, Development: cfg.Log.Development}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, bf); err != nil {
		logger.Log.Error("voxelbench failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, bf benchFlags) error {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewStreaming(reg)
	if err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" {
		srv := metrics.Serve(cfg.Metrics.Addr, reg)
		defer srv.Close()
	}

	device := renderer.NewNullDevice()
	cam := renderer.NewConfiguredCamera(cfg.Camera, cfg.Window.Width, cfg.Window.Height)
	gen := terrain.NewGenerator(cfg.Generator)
	w := world.New(world.OptionsFrom(cfg.World), gen, device, renderer.NewNullShader(), &renderer.NullTexture{}, m)
	defer w.Close()
	w.Prepare(cam)

	logger.Log.Info("Bench started",
		zap.Int("frames", bf.frames),
		zap.Int("teleportEvery", bf.teleport),
		zap.Float64("speed", bf.speed),
		zap.Int64("seed", gen.Seed()))

	var (
		total    world.Stats
		start    = time.Now()
		interval = time.Now()
		dt       = float32(1.0 / 60.0)
		heading  = mgl32.Vec3{1, 0, 0.35}.Normalize()
	)
	for frame := 1; frame <= bf.frames; frame++ {
		if ctx.Err() != nil {
			logger.Log.Info("Bench interrupted", zap.Int("frame", frame))
			break
		}

		if bf.teleport > 0 && frame%bf.teleport == 0 {
			cam.Position = cam.Position.Add(mgl32.Vec3{64 * voxel.ChunkSize, 0, 0})
		} else if bf.teleport == 0 {
			cam.Position = cam.Position.Add(heading.Mul(float32(bf.speed) * dt))
		}

		device.ResetFrame()
		w.Render(cam)
		accumulate(&total, w.Stats())

		if bf.interval > 0 && frame%bf.interval == 0 {
			s := w.Stats()
			logger.Log.Info("Bench interval",
				zap.Int("frame", frame),
				zap.Duration("elapsed", time.Since(interval)),
				zap.Stringer("playerChunk", s.PlayerChunk),
				zap.Int("resident", s.Resident),
				zap.Int("visible", s.Visible),
				zap.Int("inFlight", s.InFlight),
				zap.Int("drawCalls", s.DrawCalls),
				zap.Int("faces", s.FacesDrawn))
			interval = time.Now()
		}
		if bf.pace > 0 {
			time.Sleep(bf.pace)
		}
	}

	logger.Log.Info("Bench finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("created", total.Created),
		zap.Int("dispatched", total.Dispatched),
		zap.Int("deferred", total.Deferred),
		zap.Int("completed", total.Completed),
		zap.Int("failed", total.Failed),
		zap.Int("evicted", total.Evicted),
		zap.Int("buffersLive", device.Live()),
		zap.Int("bytesUploaded", device.BytesWritten))
	return nil
}

func accumulate(total *world.Stats, s world.Stats) {
	total.Created += s.Created
	total.Dispatched += s.Dispatched
	total.Deferred += s.Deferred
	total.Completed += s.Completed
	total.Failed += s.Failed
	total.Evicted += s.Evicted
}
