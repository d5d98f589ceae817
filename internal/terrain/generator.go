package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"

	"GopherCraft/internal/config"
	"GopherCraft/internal/voxel"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0

	heightOctaves = 4
	biomeOctaves  = 3
	riverOctaves  = 3

	centreWeight = 1.0
	ringWeight   = 0.25
	ringSamples  = 8
)

// Generator is a pure function of world coordinates for a fixed seed. All
// noise fields are built by NewGenerator and only read afterwards, so one
// Generator can serve any number of goroutines.
type Generator struct {
	cfg config.Generator

	height *perlin.Perlin
	biome  *perlin.Perlin
	river  *perlin.Perlin
	detail *detailNoise

	treeSeed uint32
	ring     [ringSamples][2]int
}

// column is everything FillTerrain needs to know about one (x, z).
type column struct {
	biome  Biome
	height int
	river  float64
	depth  int
}

func NewGenerator(cfg config.Generator) *Generator {
	g := &Generator{
		cfg:      cfg,
		height:   perlin.NewPerlin(perlinAlpha, perlinBeta, heightOctaves, cfg.Seed),
		biome:    perlin.NewPerlin(perlinAlpha, perlinBeta, biomeOctaves, cfg.Seed+1),
		river:    perlin.NewPerlin(perlinAlpha, perlinBeta, riverOctaves, cfg.Seed+2),
		detail:   newDetailNoise(cfg.Seed + 3),
		treeSeed: hash32(uint32(cfg.Seed) ^ uint32(cfg.Seed>>32)),
	}
	r := float64(cfg.BlendRadius)
	for i := range g.ring {
		a := float64(i) * 2 * math.Pi / ringSamples
		g.ring[i] = [2]int{int(math.Round(r * math.Cos(a))), int(math.Round(r * math.Sin(a)))}
	}
	return g
}

// Seed returns the seed the noise fields were built from.
func (g *Generator) Seed() int64 {
	return g.cfg.Seed
}

// WaterLevel is the height rivers fill up to.
func (g *Generator) WaterLevel() int {
	return g.cfg.WaterLevel
}

// Height is the number of solid cells in the column; the surface block sits
// at Height-1.
func (g *Generator) Height(x, z int, origin voxel.BlockPos) int {
	return g.column(origin.X+x, origin.Z+z).height
}

// HeightAt is Height addressed by world coordinates.
func (g *Generator) HeightAt(wx, wz int) int {
	return g.column(wx, wz).height
}

// DominantBiome is the biome with the largest blended weight. Ties go to the
// biome sampled at the column itself.
func (g *Generator) DominantBiome(x, z int, origin voxel.BlockPos) Biome {
	_, dominant := g.influences(origin.X+x, origin.Z+z)
	return dominant
}

// BiomeInfluences returns the non-zero blended weights, which sum to 1.
func (g *Generator) BiomeInfluences(x, z int, origin voxel.BlockPos) []BiomeInfluence {
	weights, _ := g.influences(origin.X+x, origin.Z+z)
	out := make([]BiomeInfluence, 0, biomeCount)
	for b, w := range weights {
		if w > 0 {
			out = append(out, BiomeInfluence{Biome: Biome(b), Weight: w})
		}
	}
	return out
}

// RiverStrength is in [0, 1] and exactly 0 wherever mountains dominate.
func (g *Generator) RiverStrength(x, z int, origin voxel.BlockPos) float64 {
	wx, wz := origin.X+x, origin.Z+z
	_, dominant := g.influences(wx, wz)
	return g.riverStrength(wx, wz, dominant)
}

// FillTerrain writes the chunk whose minimum corner is origin into blocks
// and returns the number of non-air cells.
func (g *Generator) FillTerrain(blocks *voxel.Blocks, origin voxel.BlockPos) int {
	var cols [voxel.ChunkSize][voxel.ChunkSize]column
	active := 0
	for z := 0; z < voxel.ChunkSize; z++ {
		for x := 0; x < voxel.ChunkSize; x++ {
			cols[z][x] = g.column(origin.X+x, origin.Z+z)
			active += g.fillColumn(blocks, x, z, cols[z][x])
		}
	}
	for z := 0; z < voxel.ChunkSize; z++ {
		for x := 0; x < voxel.ChunkSize; x++ {
			active += g.placeTree(blocks, x, z, cols[z][x], origin.X+x, origin.Z+z)
		}
	}
	return active
}

func (g *Generator) column(wx, wz int) column {
	weights, dominant := g.influences(wx, wz)

	base := g.baseHeight(wx, wz)
	blended := 0.0
	for b, w := range weights {
		if w > 0 {
			blended += w * Biome(b).shapeHeight(base, g.cfg.WaterLevel)
		}
	}

	river := g.riverStrength(wx, wz, dominant)
	h := blended
	if river > 0 {
		bed := math.Min(float64(g.cfg.WaterLevel)-(2+4*river), blended)
		h = math.Min(lerp(river, blended, bed), blended)
	}

	return column{
		biome:  dominant,
		height: clampInt(int(math.Floor(h)), 1, voxel.WorldHeight-1),
		river:  river,
		depth:  g.subsurfaceDepth(dominant, wx, wz),
	}
}

// influences blends the centre biome sample with a ring around it.
func (g *Generator) influences(wx, wz int) ([biomeCount]float64, Biome) {
	var weights [biomeCount]float64
	centre := g.biomeAt(wx, wz)
	weights[centre] += centreWeight
	for _, o := range g.ring {
		weights[g.biomeAt(wx+o[0], wz+o[1])] += ringWeight
	}

	total := centreWeight + ringWeight*ringSamples
	dominant := centre
	for b := range weights {
		weights[b] /= total
		if weights[b] > weights[dominant] {
			dominant = Biome(b)
		}
	}
	return weights, dominant
}

func (g *Generator) biomeAt(wx, wz int) Biome {
	s := g.cfg.BiomeScale
	return classifyBiome(clamp01((g.biome.Noise2D(float64(wx)*s, float64(wz)*s) + 1) / 2))
}

// baseHeight is the reshaped fractal height in [0, WorldHeight).
func (g *Generator) baseHeight(wx, wz int) float64 {
	s := g.cfg.HeightScale
	n := clamp01((g.height.Noise2D(float64(wx)*s, float64(wz)*s) + 1) / 2)
	return math.Min(math.Pow(n, 1.5)*voxel.WorldHeight, voxel.WorldHeight-1)
}

func (g *Generator) riverStrength(wx, wz int, dominant Biome) float64 {
	if dominant == Mountains {
		return 0
	}
	s := g.cfg.RiverScale
	v := g.river.Noise2D(float64(wx)*s, float64(wz)*s)
	return math.Max(0, 1-math.Abs(v)/g.cfg.RiverWidth)
}

// subsurfaceDepth is how many cells under the surface take the biome's
// subsurface material: 1 to 3, always 3 in deserts.
func (g *Generator) subsurfaceDepth(b Biome, wx, wz int) int {
	if b == Desert {
		return 3
	}
	return clampInt(1+int(g.detail.at01(wx, wz)*3), 1, 3)
}

func (g *Generator) fillColumn(blocks *voxel.Blocks, x, z int, col column) int {
	water := g.cfg.WaterLevel
	riverBed := col.river > 0 && col.height < water
	top := col.height - 1

	active := 0
	for y := 0; y < col.height; y++ {
		depth := top - y
		var b voxel.BlockType
		switch {
		case depth == 0 && riverBed:
			b = voxel.Stone
		case depth == 0:
			b = col.biome.surface(col.height, g.cfg.SnowLine)
		case depth <= col.depth && riverBed:
			b = voxel.Gravel
		case depth <= col.depth:
			b = col.biome.subsurface()
		default:
			b = voxel.Stone
		}
		blocks.Set(x, y, z, b)
		active++
	}

	if riverBed {
		for y := col.height; y < water; y++ {
			blocks.Set(x, y, z, voxel.Water)
			active++
		}
	}
	return active
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
