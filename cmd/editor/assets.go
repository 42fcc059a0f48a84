package main

import (
	"io/fs"
	"log"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilesmith/tileset"
)

// tilesetStore connects tileset files on disk to the registry: it loads a
// directory, keeps the GPU-side images for rendering and reloads single
// files when the watcher reports a change.
type tilesetStore struct {
	reg    *tileset.Registry
	dir    string
	tileW  int
	tileH  int
	byPath map[string]int
	images map[int]*ebiten.Image
}

func newTilesetStore(reg *tileset.Registry) *tilesetStore {
	return &tilesetStore{
		reg:    reg,
		byPath: make(map[string]int),
		images: make(map[int]*ebiten.Image),
	}
}

// LoadDir walks a directory and registers every tileset image in it, in
// sorted path order so global id blocks are stable across runs.
func (s *tilesetStore) LoadDir(dir string, tileW, tileH int) error {
	s.dir = dir
	s.tileW = tileW
	s.tileH = tileH

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tileset.IsImageFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return err
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := s.load(path); err != nil {
			log.Printf("Failed to load tileset %s: %v", path, err)
		}
	}
	return nil
}

func (s *tilesetStore) load(path string) error {
	ts, err := tileset.LoadFile(path, s.tileW, s.tileH)
	if err != nil {
		return err
	}
	if id := s.reg.Register(ts); id < 0 {
		return nil
	}
	s.byPath[path] = ts.ID
	s.images[ts.ID] = ebiten.NewImageFromImage(ts.Image)
	return nil
}

// Reload re-reads one file after a watcher event. A known path swaps the
// image in place so painted ids keep resolving; a new file registers
// normally.
func (s *tilesetStore) Reload(path string) error {
	id, known := s.byPath[path]
	if !known {
		return s.load(path)
	}
	ts, err := tileset.LoadFile(path, s.tileW, s.tileH)
	if err != nil {
		return err
	}
	if existing := s.reg.Tileset(id); existing != nil {
		existing.Image = ts.Image
		s.images[id] = ebiten.NewImageFromImage(ts.Image)
	}
	return nil
}

// Image returns the renderable image for a tileset id, or nil.
func (s *tilesetStore) Image(tilesetID int) *ebiten.Image {
	return s.images[tilesetID]
}

// Paths returns the loaded file paths in sorted order.
func (s *tilesetStore) Paths() []string {
	paths := make([]string, 0, len(s.byPath))
	for p := range s.byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
