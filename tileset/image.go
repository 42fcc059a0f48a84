package tileset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// FromImage slices a decoded image into a tileset with the given tile
// dimensions. The image is cut into full tiles only; a ragged right or
// bottom edge is ignored.
func FromImage(name string, img image.Image, tileW, tileH int) (*Tileset, error) {
	if img == nil {
		return nil, fmt.Errorf("tileset: %s: nil image", name)
	}
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("tileset: %s: invalid tile size %dx%d", name, tileW, tileH)
	}
	cols := img.Bounds().Dx() / tileW
	rows := img.Bounds().Dy() / tileH
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("tileset: %s: image %v smaller than one %dx%d tile",
			name, img.Bounds().Size(), tileW, tileH)
	}
	return &Tileset{
		Name:       name,
		TileWidth:  tileW,
		TileHeight: tileH,
		Columns:    cols,
		TileCount:  cols * rows,
		Image:      img,
	}, nil
}

// LoadFile reads and slices a tileset image from disk. The tileset name is
// the file's base name.
func LoadFile(path string, tileW, tileH int) (*Tileset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tileset: load %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("tileset: decode %s: %w", path, err)
	}
	return FromImage(filepath.Base(path), img, tileW, tileH)
}

// IsImageFile reports whether a path looks like a loadable tileset image.
func IsImageFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}
