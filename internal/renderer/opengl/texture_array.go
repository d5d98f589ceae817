package opengl

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"GopherCraft/internal/logger"
)

// TextureArray is a 2D array texture with one layer per block type.
type TextureArray struct {
	id     uint32
	layers int
}

// NewTextureArray uploads equally sized tiles as consecutive layers.
func NewTextureArray(tiles []*image.RGBA) (*TextureArray, error) {
	if len(tiles) == 0 {
		return nil, errors.New("opengl: texture array needs at least one layer")
	}
	size := tiles[0].Bounds().Size()
	for i, t := range tiles {
		if t.Bounds().Size() != size || t.Stride != size.X*4 {
			return nil, fmt.Errorf("opengl: layer %d is %v, expected %v", i, t.Bounds().Size(), size)
		}
	}

	t := &TextureArray{layers: len(tiles)}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, t.id)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8, int32(size.X), int32(size.Y), int32(len(tiles)), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	for i, tile := range tiles {
		gl.TexSubImage3D(gl.TEXTURE_2D_ARRAY, 0, 0, 0, int32(i), int32(size.X), int32(size.Y), 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tile.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D_ARRAY)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	logger.Log.Info("Texture array uploaded",
		zap.Uint32("id", t.id),
		zap.Int("layers", t.layers),
		zap.Int("size", size.X))
	return t, nil
}

func (t *TextureArray) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, t.id)
}

func (t *TextureArray) Delete() {
	gl.DeleteTextures(1, &t.id)
}
