package renderer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"GopherCraft/internal/voxel"
)

func writePNG(t *testing.T, path string, size int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestBlockLayersGenerated(t *testing.T) {
	layers, err := BlockLayers("")
	if err != nil {
		t.Fatalf("BlockLayers failed: %v", err)
	}
	if len(layers) != len(voxel.BlockTypes()) {
		t.Fatalf("Expected %d layers, got %d", len(voxel.BlockTypes()), len(layers))
	}
	for i, l := range layers {
		if l.Bounds().Dx() != TileSize || l.Bounds().Dy() != TileSize {
			t.Errorf("layer %d has size %v", i, l.Bounds())
		}
	}
}

func TestBlockLayersPrefersFiles(t *testing.T) {
	dir := t.TempDir()
	red := color.RGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(dir, "stone.png"), TileSize, red)

	layers, err := BlockLayers(dir)
	if err != nil {
		t.Fatalf("BlockLayers failed: %v", err)
	}
	stone := layers[voxel.Stone-1]
	if got := stone.RGBAAt(3, 3); got != red {
		t.Errorf("Expected stone tile from disk, got %v", got)
	}
	if got := layers[voxel.Dirt-1].RGBAAt(3, 3); got == red {
		t.Error("dirt should still be generated")
	}
}

func TestBlockLayersRejectsWrongSize(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "sand.png"), 8, color.RGBA{A: 255})

	if _, err := BlockLayers(dir); err == nil {
		t.Error("Expected an error for an 8x8 tile")
	}
}

func TestGeneratedTileKeepsAlpha(t *testing.T) {
	water := GeneratedTile(voxel.Water)
	if water.RGBAAt(0, 0).A != blockPalette[voxel.Water].A {
		t.Errorf("Expected water alpha %d, got %d", blockPalette[voxel.Water].A, water.RGBAAt(0, 0).A)
	}
}
