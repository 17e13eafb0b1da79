package grid

import (
	"errors"
	"testing"

	"github.com/vovakirdan/grid2048/internal/core"
)

func TestParseIndexShapes(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		expected Index
	}{
		{"no args selects all", nil, Index{X: All(), Y: All()}},
		{"single int is x", []any{2}, Index{X: At(2), Y: All()}},
		{"single selector is x", []any{Range(0, 2, 1)}, Index{X: Range(0, 2, 1), Y: All()}},
		{"point", []any{core.Point{X: 1, Y: 3}}, Index{X: At(1), Y: At(3)}},
		{"array pair", []any{[2]int{0, 1}}, Index{X: At(0), Y: At(1)}},
		{"slice pair", []any{[]int{3, 2}}, Index{X: At(3), Y: At(2)}},
		{"mixed any pair", []any{[]any{All(), 1}}, Index{X: All(), Y: At(1)}},
		{"two args", []any{1, All()}, Index{X: At(1), Y: All()}},
		{"index passthrough", []any{Index{X: At(1), Y: At(1)}}, Index{X: At(1), Y: At(1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := ParseIndex(tc.args...)
			if err != nil {
				t.Fatalf("ParseIndex(%v) failed: %v", tc.args, err)
			}
			if idx != tc.expected {
				t.Errorf("ParseIndex(%v) = %v, expected %v", tc.args, idx, tc.expected)
			}
		})
	}
}

func TestParseIndexErrors(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{"nil", []any{nil}},
		{"nil in pair", []any{1, nil}},
		{"negative int", []any{-1}},
		{"negative in pair", []any{[2]int{0, -3}}},
		{"negative point", []any{core.Point{X: -1, Y: 0}}},
		{"three args", []any{1, 2, 3}},
		{"short slice", []any{[]int{1}}},
		{"long any slice", []any{[]any{1, 2, 3}}},
		{"string", []any{"row"}},
		{"float", []any{1.5}},
		{"negative range start", []any{Range(-1, 3, 1)}},
		{"negative range step", []any{Range(0, 3, -1)}},
		{"bad index", []any{Index{X: At(-2)}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseIndex(tc.args...); !errors.Is(err, ErrBadIndex) {
				t.Errorf("ParseIndex(%v) error = %v, expected ErrBadIndex", tc.args, err)
			}
		})
	}
}

func TestSelectorMatches(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selector
		in, out []int
	}{
		{"all", All(), []int{0, 1, 99}, nil},
		{"at", At(2), []int{2}, []int{0, 1, 3}},
		{"bounded range", Range(1, 3, 1), []int{1, 2}, []int{0, 3}},
		{"stepped range", Range(0, Unbounded, 2), []int{0, 2, 4, 100}, []int{1, 3}},
		{"zero step means one", Range(1, Unbounded, 0), []int{1, 2, 3}, []int{0}},
		{"empty range", Range(2, 2, 1), nil, []int{1, 2, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range tc.in {
				if !tc.sel.matches(v) {
					t.Errorf("%v should match %d", tc.sel, v)
				}
			}
			for _, v := range tc.out {
				if tc.sel.matches(v) {
					t.Errorf("%v should not match %d", tc.sel, v)
				}
			}
		})
	}
}

func TestSelectorIsAll(t *testing.T) {
	if !All().IsAll() {
		t.Error("All() should be IsAll")
	}
	if !(Selector{}).IsAll() {
		t.Error("zero Selector should be IsAll")
	}
	if !Range(0, Unbounded, 1).IsAll() {
		t.Error("open range from 0 should be IsAll")
	}
	if At(0).IsAll() || Range(0, 3, 1).IsAll() {
		t.Error("bounded selectors should not be IsAll")
	}
}

func TestIndexPoint(t *testing.T) {
	if p, ok := PointIndex(core.Point{X: 2, Y: 1}).Point(); !ok || p != (core.Point{X: 2, Y: 1}) {
		t.Errorf("PointIndex().Point() = %v, %v", p, ok)
	}
	if _, ok := (Index{X: At(1)}).Point(); ok {
		t.Error("a column index should not pin a point")
	}
}
