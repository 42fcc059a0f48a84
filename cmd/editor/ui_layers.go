package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LayerEntry is a small value used by the UI list to represent a layer row.
type LayerEntry struct {
	Index int
	Name  string
}

// LayerPanel holds the layer list widget and its helpers.
type LayerPanel struct {
	list    *widget.List
	entries []any

	onSelect    func(idx int)
	onNew       func()
	onDuplicate func(idx int)
	onDelete    func(idx int)
	onMoveUp    func(idx int)
	onMoveDown  func(idx int)
	onRename    func(idx int, name string)
	onVisible   func(idx int)
	onLock      func(idx int)

	openRenameDialog func(idx int, current string)
	// suppressEvents keeps programmatic selections from being treated as
	// user clicks.
	suppressEvents bool
}

func (lp *LayerPanel) SetLayers(names []string) {
	if lp == nil || lp.list == nil {
		return
	}
	lp.suppressEvents = true
	entries := make([]any, len(names))
	for i, name := range names {
		entries[i] = LayerEntry{Index: i, Name: name}
	}
	lp.entries = entries
	lp.list.SetEntries(entries)
	lp.suppressEvents = false
}

func (lp *LayerPanel) SetSelected(idx int) {
	if lp == nil || lp.list == nil || idx < 0 || idx >= len(lp.entries) {
		return
	}
	lp.suppressEvents = true
	lp.list.SetSelectedEntry(lp.entries[idx])
	lp.suppressEvents = false
}

func (lp *LayerPanel) selectedIndex() int {
	if lp == nil || lp.list == nil {
		return -1
	}
	if sel, ok := lp.list.SelectedEntry().(LayerEntry); ok {
		return sel.Index
	}
	return -1
}

func buildLayerPanel(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, lp *LayerPanel) {
	layersLabel := widget.NewLabel(
		widget.LabelOpts.Text("Layers", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	parent.AddChild(layersLabel)

	layerList := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(LayerEntry); ok {
				return fmt.Sprintf("%d. %s", entry.Index+1, entry.Name)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if lp.suppressEvents {
				return
			}
			if entry, ok := args.Entry.(LayerEntry); ok && lp.onSelect != nil {
				lp.onSelect(entry.Index)
			}
		}),
	)
	parent.AddChild(layerList)
	lp.list = layerList

	addButtonRow(parent, theme, fontFace, []buttonDef{
		{"New", func() {
			if lp.onNew != nil {
				lp.onNew()
			}
		}},
		{"Dup", func() {
			if idx := lp.selectedIndex(); idx >= 0 && lp.onDuplicate != nil {
				lp.onDuplicate(idx)
			}
		}},
		{"Del", func() {
			if idx := lp.selectedIndex(); idx >= 0 && lp.onDelete != nil {
				lp.onDelete(idx)
			}
		}},
	})
	addButtonRow(parent, theme, fontFace, []buttonDef{
		{"Up", func() {
			if idx := lp.selectedIndex(); idx >= 0 && lp.onMoveUp != nil {
				lp.onMoveUp(idx)
			}
		}},
		{"Down", func() {
			if idx := lp.selectedIndex(); idx >= 0 && lp.onMoveDown != nil {
				lp.onMoveDown(idx)
			}
		}},
		{"Rename", func() {
			idx := lp.selectedIndex()
			if idx < 0 || lp.openRenameDialog == nil {
				return
			}
			name := ""
			if sel, ok := lp.list.SelectedEntry().(LayerEntry); ok {
				name = sel.Name
			}
			lp.openRenameDialog(idx, name)
		}},
	})
	addButtonRow(parent, theme, fontFace, []buttonDef{
		{"Show/Hide", func() {
			if idx := lp.selectedIndex(); idx >= 0 && lp.onVisible != nil {
				lp.onVisible(idx)
			}
		}},
		{"Lock", func() {
			if idx := lp.selectedIndex(); idx >= 0 && lp.onLock != nil {
				lp.onLock(idx)
			}
		}},
	})
}

type buttonDef struct {
	label   string
	clicked func()
}

func addButtonRow(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, defs []buttonDef) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	for _, def := range defs {
		clicked := def.clicked
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(def.label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				clicked()
			}),
		))
	}
	parent.AddChild(row)
}
