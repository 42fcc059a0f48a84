package main

import (
	"encoding/json"
	"log"

	"golang.design/x/clipboard"

	"github.com/milk9111/tilesmith/selection"
)

// clipPayload is the JSON shape used to exchange tile buffers with other
// editor instances through the OS clipboard.
type clipPayload struct {
	Format string   `json:"format"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Layer  int      `json:"layer"`
	Tiles  []uint16 `json:"tiles"`
}

const clipFormat = "tilesmith/tiles"

func exportSystemClipboard(buf *selection.Buffer) {
	if buf == nil {
		return
	}
	data, err := json.Marshal(clipPayload{
		Format: clipFormat,
		Width:  buf.Width,
		Height: buf.Height,
		Layer:  buf.LayerID,
		Tiles:  buf.Tiles,
	})
	if err != nil {
		log.Printf("Failed to export clipboard: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}

// importSystemClipboard parses the OS clipboard into a tile buffer.
// Non-tile clipboard contents return nil.
func importSystemClipboard() *selection.Buffer {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil
	}
	var payload clipPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}
	if payload.Format != clipFormat ||
		payload.Width <= 0 || payload.Height <= 0 ||
		len(payload.Tiles) != payload.Width*payload.Height {
		return nil
	}
	return &selection.Buffer{
		Width:   payload.Width,
		Height:  payload.Height,
		LayerID: payload.Layer,
		Tiles:   payload.Tiles,
	}
}
