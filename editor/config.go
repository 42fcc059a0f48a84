package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/milk9111/tilesmith/tool"
	"gopkg.in/yaml.v3"
)

// Config holds the editor settings loaded from editor.yaml.
type Config struct {
	Map      MapConfig     `yaml:"map"`
	Brush    BrushConfig   `yaml:"brush"`
	History  HistoryConfig `yaml:"history"`
	Tilesets TilesetConfig `yaml:"tilesets"`
}

type MapConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
}

type BrushConfig struct {
	Size  int    `yaml:"size"`
	Shape string `yaml:"shape"` // "square" or "circle"
}

type HistoryConfig struct {
	MaxDepth   int `yaml:"max_depth"`
	CoalesceMs int `yaml:"coalesce_ms"`
}

type TilesetConfig struct {
	Dir        string `yaml:"dir"`
	TileWidth  int    `yaml:"tile_width"`
	TileHeight int    `yaml:"tile_height"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Map:      MapConfig{Width: 40, Height: 23, TileSize: 32},
		Brush:    BrushConfig{Size: 1, Shape: "square"},
		History:  HistoryConfig{MaxDepth: 100, CoalesceMs: 80},
		Tilesets: TilesetConfig{Dir: "assets", TileWidth: 32, TileHeight: 32},
	}
}

// LoadConfig reads a YAML config file, filling unset fields with the
// defaults. A missing file yields the defaults without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if cfg.Map.Width <= 0 || cfg.Map.Height <= 0 {
		d := DefaultConfig()
		cfg.Map.Width, cfg.Map.Height = d.Map.Width, d.Map.Height
	}
	if cfg.Map.TileSize <= 0 {
		cfg.Map.TileSize = DefaultConfig().Map.TileSize
	}
	if cfg.Brush.Size < 1 {
		cfg.Brush.Size = 1
	}
	return cfg, nil
}

// BrushShape parses the configured brush shape, defaulting to square.
func (c *Config) BrushShape() tool.Shape {
	if c.Brush.Shape == "circle" {
		return tool.ShapeCircle
	}
	return tool.ShapeSquare
}

// CoalesceWindow returns the configured coalescing window.
func (c *Config) CoalesceWindow() time.Duration {
	return time.Duration(c.History.CoalesceMs) * time.Millisecond
}
