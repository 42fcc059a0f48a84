package history

import (
	"testing"
	"time"

	"github.com/milk9111/tilesmith/tilemap"
)

// fakeClock drives the coalescing window deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestHistory(maxDepth int) (*History, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	h := New(maxDepth, 0)
	h.Clock = func() time.Time { return clock.now }
	return h, clock
}

func change(x, y int, old, new uint16) TileChange {
	return TileChange{X: x, Y: y, LayerID: 0, Old: old, New: new}
}

func TestPushDeltaDepth(t *testing.T) {
	h, _ := newTestHistory(100)
	for i := 0; i < 60; i++ {
		h.PushDelta(ActionFill, []TileChange{change(i, 0, 0, 1)})
	}
	if h.UndoDepth() != 60 {
		t.Fatalf("expected 60 undo levels, got %d", h.UndoDepth())
	}
	for i := 0; i < 60; i++ {
		if _, ok := h.Undo(); !ok {
			t.Fatalf("undo %d failed", i)
		}
	}
	if _, ok := h.Undo(); ok {
		t.Fatalf("undo past the bottom should fail")
	}
}

func TestUndoStackCapEvictsOldest(t *testing.T) {
	h, _ := newTestHistory(60)
	for i := 0; i < 75; i++ {
		h.PushDelta(ActionFill, []TileChange{change(i, 0, 0, 1)})
	}
	if h.UndoDepth() != 60 {
		t.Fatalf("expected capped depth 60, got %d", h.UndoDepth())
	}
	// The retained actions are the newest ones.
	var last *Action
	for {
		a, ok := h.Undo()
		if !ok {
			break
		}
		last = a
	}
	if last == nil || last.Changes[0].X != 15 {
		t.Fatalf("expected oldest surviving action to be #15, got %+v", last)
	}
}

func TestRecordChangeCoalesces(t *testing.T) {
	h, clock := newTestHistory(100)

	h.RecordChange(change(0, 0, 0, 5), ActionBrush)
	clock.advance(10 * time.Millisecond)
	h.RecordChange(change(1, 0, 0, 5), ActionBrush)
	clock.advance(10 * time.Millisecond)
	h.RecordChange(change(2, 0, 0, 5), ActionBrush)
	h.CommitPending()

	if h.UndoDepth() != 1 {
		t.Fatalf("expected a single coalesced undo level, got %d", h.UndoDepth())
	}
	a, _ := h.Undo()
	if len(a.Changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(a.Changes))
	}
}

func TestRecordChangeFirstWriteWins(t *testing.T) {
	h, clock := newTestHistory(100)

	h.RecordChange(change(4, 4, 0, 5), ActionBrush)
	clock.advance(5 * time.Millisecond)
	// Same cell again with a different value: dropped at recording time.
	h.RecordChange(change(4, 4, 5, 9), ActionBrush)
	clock.advance(5 * time.Millisecond)
	h.RecordChange(change(5, 4, 0, 9), ActionBrush)
	h.CommitPending()

	a, _ := h.Undo()
	if len(a.Changes) != 2 {
		t.Fatalf("expected 2 deduplicated changes, got %d", len(a.Changes))
	}
	if a.Changes[0].Old != 0 || a.Changes[0].New != 5 {
		t.Fatalf("first write should win, got %+v", a.Changes[0])
	}
}

func TestCoalescingWindowLapse(t *testing.T) {
	h, clock := newTestHistory(100)

	h.RecordChange(change(0, 0, 0, 5), ActionBrush)
	clock.advance(DefaultCoalesceWindow + time.Millisecond)
	h.RecordChange(change(1, 0, 0, 5), ActionBrush)
	h.CommitPending()

	if h.UndoDepth() != 2 {
		t.Fatalf("slow events should split into separate actions, got %d levels", h.UndoDepth())
	}
}

func TestTypeSwitchCommitsPending(t *testing.T) {
	h, clock := newTestHistory(100)

	h.RecordChange(change(0, 0, 0, 5), ActionBrush)
	clock.advance(time.Millisecond)
	h.RecordChange(change(1, 0, 5, 0), ActionErase)
	h.CommitPending()

	if h.UndoDepth() != 2 {
		t.Fatalf("type switch should close the pending action, got %d levels", h.UndoDepth())
	}
}

func TestNewActionClearsRedo(t *testing.T) {
	h, _ := newTestHistory(100)
	h.PushDelta(ActionFill, []TileChange{change(0, 0, 0, 1)})
	h.PushDelta(ActionFill, []TileChange{change(1, 0, 0, 1)})

	if _, ok := h.Undo(); !ok {
		t.Fatalf("undo failed")
	}
	if !h.CanRedo() {
		t.Fatalf("expected redo available after undo")
	}

	h.RecordChange(change(2, 0, 0, 1), ActionBrush)
	if h.CanRedo() {
		t.Fatalf("opening a new action must clear the redo stack")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h, _ := newTestHistory(100)
	h.PushDelta(ActionFill, []TileChange{change(0, 0, 0, 1), change(1, 0, 0, 2)})

	a, ok := h.Undo()
	if !ok || len(a.Changes) != 2 {
		t.Fatalf("undo returned wrong action: %+v", a)
	}
	if h.UndoDepth() != 0 || h.RedoDepth() != 1 {
		t.Fatalf("stack shape wrong after undo: %d/%d", h.UndoDepth(), h.RedoDepth())
	}

	b, ok := h.Redo()
	if !ok || b != a {
		t.Fatalf("redo should return the same action")
	}
	if h.UndoDepth() != 1 || h.RedoDepth() != 0 {
		t.Fatalf("stack shape wrong after redo: %d/%d", h.UndoDepth(), h.RedoDepth())
	}
}

func TestUndoFlushesPending(t *testing.T) {
	h, _ := newTestHistory(100)
	h.RecordChange(change(0, 0, 0, 5), ActionBrush)
	a, ok := h.Undo()
	if !ok {
		t.Fatalf("undo should flush and pop the pending stroke")
	}
	if len(a.Changes) != 1 || h.Pending() {
		t.Fatalf("pending action not flushed cleanly")
	}
}

func TestStructuralAction(t *testing.T) {
	m := tilemap.New(16, 16, 32)
	m.SetTile(0, 0, 7, tilemap.ActiveLayer)
	before := m.Snapshot()
	m.Resize(32, 32, tilemap.AnchorTopLeft)
	after := m.Snapshot()

	h, _ := newTestHistory(100)
	h.PushStructural(ActionResize, before, after)

	a, ok := h.Undo()
	if !ok || !a.Structural() {
		t.Fatalf("expected structural action")
	}
	if a.Before.Width != 16 || a.After.Width != 32 {
		t.Fatalf("snapshot pair wrong: before %d, after %d", a.Before.Width, a.After.Width)
	}

	// Nil snapshots never enter the stack.
	h.PushStructural(ActionResize, nil, after)
	if h.UndoDepth() != 0 {
		t.Fatalf("nil before snapshot should be dropped")
	}
}

func TestPushEmptyDeltaDropped(t *testing.T) {
	h, _ := newTestHistory(100)
	h.PushDelta(ActionFill, nil)
	if h.UndoDepth() != 0 || h.CanUndo() {
		t.Fatalf("empty delta should not create an undo level")
	}
}
