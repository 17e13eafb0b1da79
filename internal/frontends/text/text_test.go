package text

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
	"github.com/vovakirdan/grid2048/internal/play"
	"github.com/vovakirdan/grid2048/internal/registry"
)

func newGrid(t *testing.T) *t2048.Grid {
	t.Helper()
	g, err := t2048.New(4, t2048.WithSeed(1))
	if err != nil {
		t.Fatalf("t2048.New() failed: %v", err)
	}
	return g
}

func TestChooseReadsKeys(t *testing.T) {
	var out bytes.Buffer
	f := New(strings.NewReader("x\nA\n\nq\n"), &out, true, nil)
	g := newGrid(t)

	action, err := f.Choose(context.Background(), g)
	if err != nil || action != core.ActionLeft {
		t.Fatalf("Choose() = %v, %v, expected Left", action, err)
	}
	if !strings.Contains(out.String(), `unknown key "x"`) || !strings.Contains(out.String(), help) {
		t.Errorf("output does not explain the unknown key:\n%s", out.String())
	}
	if !strings.Contains(out.String(), g.String()) {
		t.Errorf("output does not show the board:\n%s", out.String())
	}

	action, err = f.Choose(context.Background(), g)
	if err != nil || action != core.ActionQuit {
		t.Fatalf("Choose() = %v, %v, expected Quit", action, err)
	}

	if _, err := f.Choose(context.Background(), g); !errors.Is(err, registry.ErrQuit) {
		t.Errorf("Choose() at end of input error = %v, expected ErrQuit", err)
	}
}

func TestChooseHonorsContext(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	f := New(r, io.Discard, false, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Choose(ctx, newGrid(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Choose() error = %v, expected context.Canceled", err)
	}
}

func TestPlayThroughText(t *testing.T) {
	var out bytes.Buffer
	f := New(strings.NewReader("u\nd\nr\n"), &out, false, nil)
	s, err := play.New(newGrid(t), f, 0, nil)
	if err != nil {
		t.Fatalf("play.New() failed: %v", err)
	}

	outcome, err := s.Play(context.Background())
	if err != nil || outcome != core.OutcomeQuit {
		t.Fatalf("Play() = %v, %v, expected quit", outcome, err)
	}
	if !strings.HasSuffix(out.String(), "Bye.\n") {
		t.Errorf("output should end with the quit message:\n%s", out.String())
	}
}

func TestObserveUnchangedMove(t *testing.T) {
	var out bytes.Buffer
	f := New(strings.NewReader(""), &out, false, nil)

	f.Observe(core.ActionLeft, false, nil)
	f.Observe(core.ActionRight, true, nil)
	f.Observe(core.ActionUndo, false, nil)

	if got := out.String(); got != "nothing moves Left\n" {
		t.Errorf("Observe() wrote %q", got)
	}
}
