package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when Load gets an empty path.
const EnvPath = "VOXEL_CONFIG"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	World     World     `yaml:"world"`
	Generator Generator `yaml:"generator"`
	Window    Window    `yaml:"window"`
	Camera    Camera    `yaml:"camera"`
	Log       Log       `yaml:"log"`
	Metrics   Metrics   `yaml:"metrics"`
}

// World configures the streaming controller.
type World struct {
	RenderDistance   int  `yaml:"render_distance"`    // in chunks, circular footprint
	MaxActiveTasks   int  `yaml:"max_active_tasks"`   // in-flight generate+mesh tasks
	FrustumCulling   bool `yaml:"frustum_culling"`    // drop candidates outside the view volume
	EvictAfterFrames int  `yaml:"evict_after_frames"` // 0 keeps every generated chunk forever
}

// Generator configures the procedural terrain.
type Generator struct {
	Seed        int64   `yaml:"seed"`
	WaterLevel  int     `yaml:"water_level"`
	HeightScale float64 `yaml:"height_scale"`
	BiomeScale  float64 `yaml:"biome_scale"`
	RiverScale  float64 `yaml:"river_scale"`
	RiverWidth  float64 `yaml:"river_width"`
	BlendRadius int     `yaml:"blend_radius"`
	SnowLine    int     `yaml:"snow_line"`
}

type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Camera struct {
	Fov         float32    `yaml:"fov"` // degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Start       [3]float32 `yaml:"start"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Metrics struct {
	Addr string `yaml:"addr"` // empty disables the /metrics listener
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		World: World{
			RenderDistance: 10,
			MaxActiveTasks: 8,
			FrustumCulling: true,
		},
		Generator: Generator{
			Seed:        1337,
			WaterLevel:  62,
			HeightScale: 0.004,
			BiomeScale:  0.0015,
			RiverScale:  0.002,
			RiverWidth:  0.06,
			BlendRadius: 12,
			SnowLine:    150,
		},
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "GopherCraft",
			VSync:  true,
		},
		Camera: Camera{
			Fov:         70,
			Near:        0.1,
			Far:         2000,
			Speed:       30,
			Sensitivity: 0.1,
			Start:       [3]float32{0, 120, 0},
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a YAML file on top of Default. An empty path falls back to
// $VOXEL_CONFIG; if that is empty too the defaults are returned as is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.World.RenderDistance < 1:
		return fmt.Errorf("%w: world.render_distance must be >= 1, got %d", ErrInvalid, c.World.RenderDistance)
	case c.World.MaxActiveTasks < 1:
		return fmt.Errorf("%w: world.max_active_tasks must be >= 1, got %d", ErrInvalid, c.World.MaxActiveTasks)
	case c.World.EvictAfterFrames < 0:
		return fmt.Errorf("%w: world.evict_after_frames must be >= 0, got %d", ErrInvalid, c.World.EvictAfterFrames)
	case c.Generator.WaterLevel < 8 || c.Generator.WaterLevel > 200:
		return fmt.Errorf("%w: generator.water_level must be in [8,200], got %d", ErrInvalid, c.Generator.WaterLevel)
	case c.Generator.HeightScale <= 0 || c.Generator.BiomeScale <= 0 || c.Generator.RiverScale <= 0:
		return fmt.Errorf("%w: generator noise scales must be positive", ErrInvalid)
	case c.Generator.RiverWidth <= 0 || c.Generator.RiverWidth >= 1:
		return fmt.Errorf("%w: generator.river_width must be in (0,1), got %g", ErrInvalid, c.Generator.RiverWidth)
	case c.Generator.BlendRadius < 0:
		return fmt.Errorf("%w: generator.blend_radius must be >= 0, got %d", ErrInvalid, c.Generator.BlendRadius)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera near/far must satisfy 0 < near < far", ErrInvalid)
	}
	return nil
}
