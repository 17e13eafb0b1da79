package t2048

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func playedGrid(t *testing.T) *Grid {
	t.Helper()
	g := newTestGrid(t, 4)
	rows := emptyRows(4)
	copy(rows[0], []int{2, 2, 4, 4})
	copy(rows[2], []int{0, 8, 0, 8})
	setBoard(t, g, rows)
	for _, dir := range []Direction{DirLeft, DirUp, DirRight} {
		g.Drag(dir)
	}
	return g
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := playedGrid(t)

	var first bytes.Buffer
	if err := g.Encode(&first); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	restored, err := Decode(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	var second bytes.Buffer
	if err := restored.Encode(&second); err != nil {
		t.Fatalf("Encode() of the restored grid failed: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("round trip changed the encoding:\n%s\n---\n%s", first.Bytes(), second.Bytes())
	}
	if restored.Score() != g.Score() || restored.Attempt() != g.Attempt() || restored.Cycle() != g.Cycle() {
		t.Error("round trip lost the counters")
	}
	if len(restored.History()) != len(g.History()) {
		t.Errorf("history length = %d, expected %d", len(restored.History()), len(g.History()))
	}

	// The restored game keeps working, undo included.
	if _, err := restored.Undo(false); err != nil {
		t.Errorf("Undo() on the restored grid failed: %v", err)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	g := playedGrid(t)
	path := filepath.Join(t.TempDir(), "nested", "game.json")

	if err := g.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}
	loaded, err := LoadFile(path, false)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if !loaded.Snapshot().Equal(g.Snapshot()) {
		t.Errorf("loaded board:\n%v\nexpected\n%v", loaded, g)
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	g, err := LoadFile(path, true)
	if g != nil || err != nil {
		t.Errorf("LoadFile(ignoreMissing) = %v, %v, expected nil, nil", g, err)
	}
	if _, err := LoadFile(path, false); !errors.Is(err, ErrSaveNotFound) {
		t.Errorf("LoadFile() error = %v, expected ErrSaveNotFound", err)
	}
}

// smallSave returns a 2x2 save holding a single 2 at (0, 0).
func smallSave(attempt, cycle, score int, history string) string {
	return fmt.Sprintf(`{"version": 1, "side": 2, "starting_amount": 2, "seed_values": [2],
		"attempt": %d, "cycle": %d, "score": %d, "cells": [
		{"x": 0, "y": 0, "number": 2}, {"x": 0, "y": 1, "number": 0},
		{"x": 1, "y": 0, "number": 0}, {"x": 1, "y": 1, "number": 0}],
		"history": [%s]}`, attempt, cycle, score, history)
}

func TestDecodeSmallSave(t *testing.T) {
	g, err := Decode(strings.NewReader(smallSave(3, 1, 4, "[2, 0, 0, 0]")))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if g.Attempt() != 3 || g.Cycle() != 1 || g.Score() != 4 {
		t.Errorf("counters = %d/%d/%d, expected 3/1/4", g.Attempt(), g.Cycle(), g.Score())
	}
	if n := g.Number(0, 0); n != 2 {
		t.Errorf("Number(0, 0) = %d, expected 2", n)
	}
}

func TestLoadFileCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not a save"},
		{"wrong version", `{"version": 99, "side": 2}`},
		{"bad side", `{"version": 1, "side": 1, "starting_amount": 1, "seed_values": [2]}`},
		{"missing cells", `{"version": 1, "side": 2, "starting_amount": 2, "seed_values": [2], "cells": []}`},
		{"invalid number", `{"version": 1, "side": 2, "starting_amount": 2, "seed_values": [2], "cells": [
			{"x": 0, "y": 0, "number": 3}, {"x": 0, "y": 1, "number": 0},
			{"x": 1, "y": 0, "number": 0}, {"x": 1, "y": 1, "number": 0}]}`},
		{"negative score", smallSave(0, 0, -50, "[2, 0, 0, 0]")},
		{"negative attempt", smallSave(-3, 0, 0, "[2, 0, 0, 0]")},
		{"negative cycle", smallSave(0, -1, 0, "[2, 0, 0, 0]")},
		{"cycle ahead of attempt", smallSave(1, 2, 0, "[2, 0, 0, 0]")},
		{"history out of date", smallSave(0, 0, 0, "[2, 0, 0, 0], [4, 0, 0, 0]")},
		{"empty history entry", smallSave(0, 0, 0, "[0, 0, 0, 0], [2, 0, 0, 0]")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path, true); !errors.Is(err, ErrCorruptSave) {
				t.Errorf("LoadFile() error = %v, expected ErrCorruptSave", err)
			}
		})
	}
}
