package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/tilesmith/tileset"
)

// TilesetPalette is the right-hand panel: the list of loaded tilesets on
// top and a clickable tile grid for the selected one below.
type TilesetPalette struct {
	Container *widget.Container
	// Refresh rebuilds the tileset list and the tile grid, used after a
	// hot reload or when a tileset is added or removed.
	Refresh func()
}

func buildTilesetPalette(
	theme *widget.Theme,
	fontFace *text.Face,
	store *tilesetStore,
	onTileSelected func(tilesetID, local int),
) *TilesetPalette {
	var gridContainer *widget.Container
	var selectedTilesetID = -1

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 46, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	tilesetsLabel := widget.NewLabel(
		widget.LabelOpts.Text("Tilesets", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	panel.AddChild(tilesetsLabel)

	applyTileset := func(ts *tileset.Tileset) {
		selectedTilesetID = ts.ID
		if gridContainer != nil {
			panel.RemoveChild(gridContainer)
		}
		gridContainer = newTileGrid(store, ts, func(local int) {
			if onTileSelected != nil {
				onTileSelected(ts.ID, local)
			}
		})
		panel.AddChild(gridContainer)
	}

	tilesetList := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if ts, ok := e.(*tileset.Tileset); ok {
				return ts.Name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if ts, ok := args.Entry.(*tileset.Tileset); ok {
				applyTileset(ts)
			}
		}),
	)
	panel.AddChild(tilesetList)

	refresh := func() {
		tilesets := store.reg.Tilesets()
		entries := make([]any, len(tilesets))
		for i, ts := range tilesets {
			entries[i] = ts
		}
		tilesetList.SetEntries(entries)
		for _, ts := range tilesets {
			if ts.ID == selectedTilesetID {
				applyTileset(ts)
				return
			}
		}
		if len(tilesets) > 0 {
			applyTileset(tilesets[0])
		}
	}
	refresh()

	return &TilesetPalette{Container: panel, Refresh: refresh}
}

// newTileGrid builds a grid of selectable tile graphics for one tileset.
func newTileGrid(store *tilesetStore, ts *tileset.Tileset, onSelect func(local int)) *widget.Container {
	img := store.Image(ts.ID)
	if img == nil || ts.Columns <= 0 {
		return widget.NewContainer()
	}
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(ts.Columns),
				widget.GridLayoutOpts.Spacing(2, 2),
			),
		),
	)
	for local := 0; local < ts.TileCount; local++ {
		r := ts.Rect(local)
		if r == (image.Rectangle{}) {
			continue
		}
		sub := img.SubImage(r).(*ebiten.Image)
		idx := local
		container.AddChild(widget.NewGraphic(
			widget.GraphicOpts.Image(sub),
			widget.GraphicOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(ts.TileWidth, ts.TileHeight),
				widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
					onSelect(idx)
				}),
			),
		))
	}
	return container
}
