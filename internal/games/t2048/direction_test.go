package t2048

import (
	"errors"
	"testing"

	"github.com/vovakirdan/grid2048/internal/core"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", DirUp},
		{"LEFT", DirLeft},
		{" down ", DirDown},
		{"Right", DirRight},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v, expected %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrDirection) {
		t.Errorf("ParseDirection(north) error = %v, expected ErrDirection", err)
	}
}

func TestPairedWith(t *testing.T) {
	pairs, err := PairedWith([]string{"w", "a", "s", "d"})
	if err != nil {
		t.Fatalf("PairedWith() failed: %v", err)
	}
	want := map[string]Direction{"w": DirUp, "a": DirLeft, "s": DirDown, "d": DirRight}
	for k, d := range want {
		if pairs[k] != d {
			t.Errorf("pairs[%q] = %v, expected %v", k, pairs[k], d)
		}
	}

	if _, err := PairedWith([]int{1, 2, 3}); err == nil {
		t.Error("PairedWith() with 3 keys should fail")
	}
	if _, err := PairedWith([]rune{'k', 'h', 'j', 'k'}); err == nil {
		t.Error("PairedWith() with a duplicate key should fail")
	}
}

func TestDirectionFromAction(t *testing.T) {
	if d, ok := DirectionFromAction(core.ActionDown); !ok || d != DirDown {
		t.Errorf("DirectionFromAction(down) = %v, %v", d, ok)
	}
	if _, ok := DirectionFromAction(core.ActionUndo); ok {
		t.Error("undo is not a direction")
	}
	if Direction(7).Valid() {
		t.Error("Direction(7) should be invalid")
	}
}
