package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"GopherCraft/internal/logger"
	"GopherCraft/internal/voxel"
)

// TileSize is the edge of one block texture layer in pixels.
const TileSize = 16

var blockPalette = map[voxel.BlockType]color.RGBA{
	voxel.Grass:  {R: 96, G: 160, B: 64, A: 255},
	voxel.Dirt:   {R: 134, G: 96, B: 67, A: 255},
	voxel.Stone:  {R: 125, G: 125, B: 125, A: 255},
	voxel.Sand:   {R: 219, G: 207, B: 163, A: 255},
	voxel.Snow:   {R: 240, G: 245, B: 250, A: 255},
	voxel.Water:  {R: 48, G: 96, B: 200, A: 170},
	voxel.Logs:   {R: 102, G: 81, B: 51, A: 255},
	voxel.Leaves: {R: 58, G: 120, B: 40, A: 220},
	voxel.Gravel: {R: 136, G: 126, B: 126, A: 255},
}

// BlockLayers returns one tile per non-air block type in voxel.BlockTypes
// order, which is the texture array layer order the voxel shader expects.
// A tile is read from dir/<block>.png when that file exists; otherwise a
// generated tile is used. An empty dir generates every tile.
func BlockLayers(dir string) ([]*image.RGBA, error) {
	blocks := voxel.BlockTypes()
	layers := make([]*image.RGBA, 0, len(blocks))
	loaded := 0
	for _, b := range blocks {
		if dir != "" {
			path := filepath.Join(dir, b.String()+".png")
			tile, err := loadTile(path)
			switch {
			case err == nil:
				layers = append(layers, tile)
				loaded++
				continue
			case !errors.Is(err, os.ErrNotExist):
				return nil, err
			}
		}
		layers = append(layers, GeneratedTile(b))
	}
	logger.Log.Info("Block textures ready",
		zap.String("dir", dir),
		zap.Int("layers", len(layers)),
		zap.Int("fromDisk", loaded))
	return layers, nil
}

func loadTile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() != TileSize || b.Dy() != TileSize {
		return nil, fmt.Errorf("texture %s: expected %dx%d, got %dx%d", path, TileSize, TileSize, b.Dx(), b.Dy())
	}
	rgba := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// GeneratedTile paints a speckled tile from the block's base colour.
func GeneratedTile(b voxel.BlockType) *image.RGBA {
	base, ok := blockPalette[b]
	if !ok {
		base = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	tile := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			// Cheap per-pixel speckle, stable across runs.
			h := uint32(x*73856093) ^ uint32(y*19349663) ^ uint32(b)*83492791
			h ^= h >> 13
			f := 0.85 + float32(h%31)/100
			tile.SetRGBA(x, y, color.RGBA{
				R: scale(base.R, f),
				G: scale(base.G, f),
				B: scale(base.B, f),
				A: base.A,
			})
		}
	}
	return tile
}

func scale(c uint8, f float32) uint8 {
	v := float32(c) * f
	if v > 255 {
		return 255
	}
	return uint8(v)
}
