package t2048

import "errors"

var (
	// ErrNegativeNumber is returned when a cell is given a negative number.
	ErrNegativeNumber = errors.New("t2048: cell numbers must be non-negative")
	// ErrInvalidNumber is returned when a number is neither 0 nor a power of two.
	ErrInvalidNumber = errors.New("t2048: cell numbers must be 0 or a power of 2")
	// ErrStartingAmount is returned for a starting tile count that does not fit the board.
	ErrStartingAmount = errors.New("t2048: invalid starting amount")
	// ErrNotSquare is returned when a snapshot cannot describe a square board.
	ErrNotSquare = errors.New("t2048: snapshot is not square")
	// ErrEmptySnapshot is returned when a snapshot holds no tiles.
	ErrEmptySnapshot = errors.New("t2048: snapshot has no tiles")
	// ErrSeed is returned when seeding cannot change any cell.
	ErrSeed = errors.New("t2048: cannot seed")
	// ErrNoHistory is returned by Undo when there is no previous state.
	ErrNoHistory = errors.New("t2048: nothing to undo")
	// ErrDirection is returned for an unknown direction name.
	ErrDirection = errors.New("t2048: unknown direction")
	// ErrSaveNotFound is returned by LoadFile for a missing save when leniency is off.
	ErrSaveNotFound = errors.New("t2048: save file not found")
	// ErrCorruptSave is returned when a save cannot be turned back into a grid.
	ErrCorruptSave = errors.New("t2048: corrupt save")
)
