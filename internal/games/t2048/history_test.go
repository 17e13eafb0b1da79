package t2048

import (
	"errors"
	"testing"
)

func TestUndoRestoresPreviousBoard(t *testing.T) {
	g := newTestGrid(t, 4)
	initial := g.Snapshot()
	rows := emptyRows(4)
	copy(rows[0], []int{2, 2, 0, 0})
	setBoard(t, g, rows)
	beforeDrag := g.Snapshot()

	if !g.Drag(DirLeft) {
		t.Fatal("Drag(left) reported no change")
	}
	score := g.Score()

	ok, err := g.Undo(false)
	if err != nil || !ok {
		t.Fatalf("Undo() = %v, %v", ok, err)
	}
	if !g.Snapshot().Equal(beforeDrag) {
		t.Errorf("after Undo():\n%v\nexpected the board before the drag", g)
	}
	if g.Score() != score {
		t.Errorf("Undo() changed the score from %d to %d", score, g.Score())
	}
	if h := g.History(); !h[len(h)-1].Equal(g.Snapshot()) {
		t.Error("last snapshot does not describe the board after Undo()")
	}

	if ok, err := g.Undo(false); err != nil || !ok {
		t.Fatalf("second Undo() = %v, %v", ok, err)
	}
	if !g.Snapshot().Equal(initial) {
		t.Errorf("after two Undo() calls:\n%v\nexpected the seeded start", g)
	}
}

func TestUndoWithoutHistory(t *testing.T) {
	g := newTestGrid(t, 4)
	before := g.Snapshot()

	if _, err := g.Undo(false); !errors.Is(err, ErrNoHistory) {
		t.Errorf("Undo(false) error = %v, expected ErrNoHistory", err)
	}
	ok, err := g.Undo(true)
	if ok || err != nil {
		t.Errorf("Undo(true) = %v, %v, expected false, nil", ok, err)
	}
	if !g.Snapshot().Equal(before) {
		t.Error("failed Undo() changed the board")
	}
}

func TestUndoUnlocksCells(t *testing.T) {
	g := newTestGrid(t, 2)
	setBoard(t, g, [][]int{{2, 2}, {0, 0}})
	g.Cell(pt(0, 0)).Lock()
	setBoard(t, g, [][]int{{4, 0}, {0, 0}})

	if _, err := g.Undo(false); err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	for _, c := range g.Cells() {
		if c.Locked() {
			t.Errorf("%v locked after Undo()", c)
		}
	}
}

func TestEmptyBoardIsNeverStored(t *testing.T) {
	g := newTestGrid(t, 4)
	stored := len(g.History())

	setBoard(t, g, emptyRows(4))
	if n := len(g.History()); n != stored {
		t.Errorf("clearing the board stored a snapshot: history %d -> %d", stored, n)
	}
	if err := g.Seed(2); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	for i, snap := range g.History() {
		if snap.empty() {
			t.Errorf("history entry %d has no tiles", i)
		}
	}

	if _, err := g.Undo(false); err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	if g.IsEmpty() {
		t.Error("Undo() restored an empty board")
	}
}

func TestHistoryReturnsCopies(t *testing.T) {
	g := newTestGrid(t, 2)
	h := g.History()
	for p := range h[0] {
		h[0][p] = 1024
	}
	if g.History()[0].Equal(h[0]) {
		t.Error("modifying History() result changed the stored snapshot")
	}
}

func TestReset(t *testing.T) {
	g := newTestGrid(t, 4)
	rows := emptyRows(4)
	copy(rows[0], []int{2, 2, 4, 4})
	setBoard(t, g, rows)
	g.Drag(DirLeft)

	g.Reset()

	if g.Score() != 0 || g.Attempt() != 0 || g.Cycle() != 0 {
		t.Errorf("counters after Reset() = %d/%d/%d", g.Score(), g.Attempt(), g.Cycle())
	}
	if n := len(g.History()); n != 1 {
		t.Errorf("history length after Reset() = %d, expected 1", n)
	}
	if got := 16 - g.EmptyCount(); got != DefaultStartingAmount {
		t.Errorf("%d tiles after Reset(), expected %d", got, DefaultStartingAmount)
	}
}

func TestNewFromSnapshot(t *testing.T) {
	src := newTestGrid(t, 3)
	setBoard(t, src, [][]int{{2, 0, 4}, {0, 8, 0}, {16, 0, 2}})
	src.Drag(DirUp)
	snap := src.Snapshot()

	g, err := NewFromSnapshot(snap, WithSeed(7))
	if err != nil {
		t.Fatalf("NewFromSnapshot() failed: %v", err)
	}
	if g.Side() != 3 {
		t.Errorf("Side() = %d, expected 3", g.Side())
	}
	if !g.Snapshot().Equal(snap) {
		t.Errorf("NewFromSnapshot() board:\n%v\nexpected\n%v", g, src)
	}
	if h := g.History(); len(h) != 1 || !h[0].Equal(snap) {
		t.Errorf("history = %v, expected only the source snapshot", h)
	}
	if g.Score() != 0 || g.Attempt() != 0 || g.Cycle() != 0 {
		t.Error("NewFromSnapshot() should start with zero counters")
	}
}

func TestNewFromSnapshotErrors(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr error
	}{
		{"not square", Snapshot{pt(0, 0): 2, pt(1, 0): 0, pt(0, 1): 4}, ErrNotSquare},
		{"invalid number", Snapshot{pt(0, 0): 2, pt(1, 0): 3, pt(0, 1): 0, pt(1, 1): 0}, ErrInvalidNumber},
		{"negative number", Snapshot{pt(0, 0): -2, pt(1, 0): 0, pt(0, 1): 0, pt(1, 1): 0}, ErrNegativeNumber},
		{"no tiles", Snapshot{pt(0, 0): 0, pt(1, 0): 0, pt(0, 1): 0, pt(1, 1): 0}, ErrEmptySnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFromSnapshot(tt.snap); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFromSnapshot() error = %v, expected %v", err, tt.wantErr)
			}
		})
	}

	offBoard := Snapshot{pt(0, 0): 2, pt(1, 0): 0, pt(0, 1): 0, pt(5, 5): 0}
	if _, err := NewFromSnapshot(offBoard); err == nil {
		t.Error("NewFromSnapshot() accepted a point off the board")
	}
}
