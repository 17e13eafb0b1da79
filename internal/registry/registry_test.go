package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
)

type stubFrontend struct {
	goal int
}

func (s *stubFrontend) ID() string    { return "stub" }
func (s *stubFrontend) Title() string { return "Stub Frontend" }

func (s *stubFrontend) Choose(context.Context, *t2048.Grid) (core.Action, error) {
	return core.ActionQuit, ErrQuit
}

func (s *stubFrontend) Report(core.Outcome, *t2048.Grid) {}

func TestRegisterCreateList(t *testing.T) {
	Register("stub", func(s Settings) Frontend { return &stubFrontend{goal: s.Runtime.Goal} })

	if !Exists("stub") {
		t.Fatal("Exists(stub) = false after Register")
	}

	f, err := Create("stub", Settings{Runtime: core.RuntimeConfig{Goal: 64}})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got := f.(*stubFrontend).goal; got != 64 {
		t.Errorf("factory saw goal %d, expected 64", got)
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub" {
			found = true
			if info.Title != "Stub Frontend" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() does not include the registered frontend")
	}

	defer func() {
		if r := recover(); r == nil || !strings.Contains(r.(string), "already registered") {
			t.Errorf("duplicate Register() recovered %v, expected a panic", r)
		}
	}()
	Register("stub", func(Settings) Frontend { return &stubFrontend{} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-frontend", Settings{}); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
	if Exists("no-such-frontend") {
		t.Error("Exists() of an unknown ID should be false")
	}
}
