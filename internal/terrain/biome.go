package terrain

import "GopherCraft/internal/voxel"

// Biome classifies a column by the low-frequency biome field.
type Biome uint8

const (
	Plains Biome = iota
	Forest
	Desert
	Mountains
	Tundra

	biomeCount
)

func (b Biome) String() string {
	switch b {
	case Plains:
		return "plains"
	case Forest:
		return "forest"
	case Desert:
		return "desert"
	case Mountains:
		return "mountains"
	case Tundra:
		return "tundra"
	}
	return "unknown"
}

// BiomeInfluence is one biome's normalised share of a column.
type BiomeInfluence struct {
	Biome  Biome
	Weight float64
}

// classifyBiome maps a normalised biome sample onto ordered bands. The field
// clusters around 0.5, so the low desert band comes up rarely.
func classifyBiome(v float64) Biome {
	switch {
	case v < 0.20:
		return Desert
	case v < 0.45:
		return Plains
	case v < 0.62:
		return Forest
	case v < 0.80:
		return Mountains
	default:
		return Tundra
	}
}

// shapeHeight applies the biome's height curve to the base height h.
func (b Biome) shapeHeight(h float64, water int) float64 {
	w := float64(water)
	switch b {
	case Forest:
		return w + 5 + 0.26*h
	case Desert:
		return w + 2 + 0.12*h
	case Mountains:
		return w + 0.95*h
	case Tundra:
		return w + 4 + 0.22*h
	default:
		return w + 3 + 0.18*h
	}
}

func (b Biome) subsurface() voxel.BlockType {
	switch b {
	case Desert:
		return voxel.Sand
	case Mountains:
		return voxel.Stone
	default:
		return voxel.Dirt
	}
}

func (b Biome) surface(height, snowLine int) voxel.BlockType {
	switch b {
	case Mountains:
		if height > snowLine {
			return voxel.Snow
		}
		return voxel.Grass
	case Tundra:
		return voxel.Snow
	case Desert:
		return voxel.Sand
	default:
		return voxel.Grass
	}
}

func (b Biome) treeChance() float64 {
	switch b {
	case Forest:
		return 0.025
	case Plains:
		return 0.004
	case Tundra:
		return 0.006
	}
	return 0
}
