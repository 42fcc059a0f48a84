// Package tileset maps between per-tileset local tile indices and a single
// flat global tile id space shared by every loaded tileset. Global id 0 is
// reserved for "empty" across the whole space.
package tileset

import "image"

// Tileset is a fully loaded tileset: an optional source image already
// sliced into Columns x rows of TileWidth x TileHeight tiles. The core
// only ever registers complete tilesets; partial loads never reach it.
type Tileset struct {
	ID         int
	Name       string
	TileWidth  int
	TileHeight int
	Columns    int
	TileCount  int
	Image      image.Image

	// firstGID is the start of this tileset's block in the global id
	// space, assigned once at registration.
	firstGID int
}

// FirstGID returns the first global id of the tileset's block.
func (t *Tileset) FirstGID() int { return t.firstGID }

// Rect returns the pixel rectangle of a local tile index within Image.
// The zero rectangle is returned for out-of-range indices.
func (t *Tileset) Rect(local int) image.Rectangle {
	if local < 0 || local >= t.TileCount || t.Columns <= 0 {
		return image.Rectangle{}
	}
	col := local % t.Columns
	row := local / t.Columns
	x := col * t.TileWidth
	y := row * t.TileHeight
	return image.Rect(x, y, x+t.TileWidth, y+t.TileHeight)
}

// Registry owns the global tile id space. Blocks are assigned in
// registration order, contiguous and non-overlapping. Removing a tileset
// never renumbers the surviving blocks; tile ids painted from a removed
// tileset simply stop resolving.
type Registry struct {
	tilesets []*Tileset
	nextID   int
	nextGID  int
}

// NewRegistry creates an empty registry. Global ids start at 1; 0 stays
// reserved for "no tile".
func NewRegistry() *Registry {
	return &Registry{nextGID: 1}
}

// Register assigns the tileset an id and the next contiguous block of the
// global id space, and adds it to the registry. Tilesets with a
// non-positive tile count are rejected (returns -1).
func (r *Registry) Register(t *Tileset) int {
	if t == nil || t.TileCount <= 0 {
		return -1
	}
	t.ID = r.nextID
	r.nextID++
	t.firstGID = r.nextGID
	r.nextGID += t.TileCount
	r.tilesets = append(r.tilesets, t)
	return t.ID
}

// Remove drops a tileset from the registry. Painted tiles referencing its
// block are left alone and resolve to "not found" from now on.
func (r *Registry) Remove(tilesetID int) bool {
	for i, t := range r.tilesets {
		if t.ID == tilesetID {
			r.tilesets = append(r.tilesets[:i], r.tilesets[i+1:]...)
			return true
		}
	}
	return false
}

// Tilesets returns the registered tilesets in registration order.
func (r *Registry) Tilesets() []*Tileset {
	out := make([]*Tileset, len(r.tilesets))
	copy(out, r.tilesets)
	return out
}

// Tileset returns the tileset with the given id, or nil.
func (r *Registry) Tileset(tilesetID int) *Tileset {
	for _, t := range r.tilesets {
		if t.ID == tilesetID {
			return t
		}
	}
	return nil
}

// Resolve maps a global tile id to its tileset and local tile index.
// Id 0 (empty) and ids inside a removed tileset's block return ok=false;
// callers are expected to render those as a missing-tile placeholder.
func (r *Registry) Resolve(globalID int) (t *Tileset, local int, ok bool) {
	if globalID <= 0 {
		return nil, 0, false
	}
	for _, ts := range r.tilesets {
		if globalID >= ts.firstGID && globalID < ts.firstGID+ts.TileCount {
			return ts, globalID - ts.firstGID, true
		}
	}
	return nil, 0, false
}

// GlobalID maps (tilesetID, local index) to a global tile id. Unknown
// tilesets and out-of-range local indices map to 0.
func (r *Registry) GlobalID(tilesetID, local int) int {
	t := r.Tileset(tilesetID)
	if t == nil || local < 0 || local >= t.TileCount {
		return 0
	}
	return t.firstGID + local
}
