package grid

import "fmt"

// CheckIntegrity verifies the structural invariants:
//   - x coordinates are exactly 0..width-1 and y coordinates 0..height-1;
//   - all columns share one length and all rows share one length;
//   - every stored value passes the element check;
//   - the number of points equals width*height.
func (g *Grid[T]) CheckIntegrity() error {
	xs, ys := g.xs(), g.ys()

	for want, got := range xs {
		if got != want {
			return &IntegrityError{Reason: fmt.Sprintf("bad column index %d; must be %d", got, want)}
		}
	}
	if short, long := spread(g.Columns(false)); short != long {
		return &IntegrityError{Reason: fmt.Sprintf("shortest column has length %d, but the longest has length %d", short, long)}
	}

	for want, got := range ys {
		if got != want {
			return &IntegrityError{Reason: fmt.Sprintf("bad row index %d; must be %d", got, want)}
		}
	}
	if short, long := spread(g.Rows(false)); short != long {
		return &IntegrityError{Reason: fmt.Sprintf("shortest row has length %d, but the longest has length %d", short, long)}
	}

	for p, v := range g.cells {
		if err := g.validate(v); err != nil {
			return &IntegrityError{Reason: fmt.Sprintf("invalid value at %v: %v", p, err)}
		}
	}

	if len(xs) != g.width || len(ys) != g.height {
		return &IntegrityError{Reason: fmt.Sprintf("grid is %dx%d, but was built %dx%d", len(xs), len(ys), g.width, g.height)}
	}
	if n := len(g.cells); n != g.width*g.height {
		return &IntegrityError{Reason: fmt.Sprintf("grid has %d items, but width*height == %d", n, g.width*g.height)}
	}

	return nil
}

// MustCheckIntegrity panics with an *IntegrityError if CheckIntegrity fails.
func (g *Grid[T]) MustCheckIntegrity() {
	if err := g.CheckIntegrity(); err != nil {
		panic(err)
	}
}

func spread[T any](lines [][]T) (short, long int) {
	for i, line := range lines {
		if i == 0 || len(line) < short {
			short = len(line)
		}
		if len(line) > long {
			long = len(line)
		}
	}
	return short, long
}
