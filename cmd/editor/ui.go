package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func (a *App) buildUI() {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	// The map is resolved through the core on every callback so layer
	// operations keep working if the document is replaced.
	layerID := func(idx int) int {
		layers := a.core.Map().Layers()
		if idx < 0 || idx >= len(layers) {
			return -1
		}
		return layers[idx].ID
	}

	layerPanel := &LayerPanel{
		onSelect: func(idx int) {
			a.core.Map().SetActiveLayer(layerID(idx))
		},
		onNew: func() {
			a.core.Map().AddLayer("")
			a.syncLayers()
		},
		onDuplicate: func(idx int) {
			a.core.Map().DuplicateLayer(layerID(idx))
			a.syncLayers()
		},
		onDelete: func(idx int) {
			a.core.Map().DeleteLayer(layerID(idx))
			a.syncLayers()
		},
		onMoveUp: func(idx int) {
			a.core.Map().MoveLayer(layerID(idx), idx+1)
			a.syncLayers()
		},
		onMoveDown: func(idx int) {
			a.core.Map().MoveLayer(layerID(idx), idx-1)
			a.syncLayers()
		},
		onRename: func(idx int, name string) {
			a.core.Map().RenameLayer(layerID(idx), name)
			a.syncLayers()
		},
		onVisible: func(idx int) {
			if l := a.core.Map().Layer(layerID(idx)); l != nil {
				a.core.Map().SetLayerVisible(l.ID, !l.Visible)
			}
		},
		onLock: func(idx int) {
			if l := a.core.Map().Layer(layerID(idx)); l != nil {
				a.core.Map().SetLayerLocked(l.ID, !l.Locked)
			}
		},
	}

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 46, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	buildLayerPanel(leftPanel, ui.PrimaryTheme, &fontFace, layerPanel)

	renameDialog := newLayerRenameDialog(ui.PrimaryTheme, &fontFace, layerPanel.onRename)
	layerPanel.openRenameDialog = renameDialog.Open

	palette := buildTilesetPalette(ui.PrimaryTheme, &fontFace, a.store, func(tilesetID, local int) {
		a.core.SetPaintTile(a.core.Tilesets().GlobalID(tilesetID, local))
	})

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, func(t Tool) {
		a.currentTool = t
	}, a.currentTool)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	palette.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(leftPanel)
	root.AddChild(palette.Container)
	root.AddChild(toolbarContainer)
	root.AddChild(renameDialog.Overlay)

	ui.Container = root

	a.ui = ui
	a.toolBar = toolBar
	a.layerPanel = layerPanel
	a.palette = palette
	a.syncLayers()
}
