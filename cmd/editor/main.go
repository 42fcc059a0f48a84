package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/tilesmith/editor"
	"github.com/milk9111/tilesmith/tileset"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "Path to the editor config file")
	tilesetDir := flag.String("dir", "", "Directory containing tileset images (overrides config)")
	mapWidth := flag.Int("width", 0, "Map width in tiles (overrides config)")
	mapHeight := flag.Int("height", 0, "Map height in tiles (overrides config)")
	flag.Parse()

	log.Println("Editor starting...")

	cfg, err := editor.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *tilesetDir != "" {
		cfg.Tilesets.Dir = *tilesetDir
	}
	if *mapWidth > 0 {
		cfg.Map.Width = *mapWidth
	}
	if *mapHeight > 0 {
		cfg.Map.Height = *mapHeight
	}

	core := editor.New(cfg)

	store := newTilesetStore(core.Tilesets())
	if err := store.LoadDir(cfg.Tilesets.Dir, cfg.Tilesets.TileWidth, cfg.Tilesets.TileHeight); err != nil {
		log.Printf("Failed to load tilesets from %s: %v", cfg.Tilesets.Dir, err)
	}

	watcher, err := tileset.NewWatcher(cfg.Tilesets.Dir)
	if err != nil {
		log.Printf("Tileset watcher disabled: %v", err)
		watcher = nil
	}

	sysClip := clipboard.Init() == nil
	if !sysClip {
		log.Println("System clipboard unavailable; copy/paste stays in-process")
	}

	app := newApp(core, store, watcher, sysClip)

	ebiten.SetWindowTitle("Tilesmith")
	ebiten.SetWindowSize(1500, 900)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
