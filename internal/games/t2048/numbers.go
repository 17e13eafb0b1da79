package t2048

// DefaultGoal is the tile a player needs to win.
const DefaultGoal = 2048

// DefaultStartingAmount is how many tiles a fresh board starts with.
const DefaultStartingAmount = 2

// DefaultSeedValues are the values a freshly seeded tile can take.
var DefaultSeedValues = []int{2, 4}

// autofillNumbers are the values Autofill draws from: 2 up to 1024.
var autofillNumbers = []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}

// IsValidNumber reports whether n can sit in a cell: 0 or a power of two.
func IsValidNumber(n int) bool {
	return n >= 0 && n&(n-1) == 0
}

// IsGoal reports whether n is a valid winning tile: a power of two >= 2.
func IsGoal(n int) bool {
	return n >= 2 && n&(n-1) == 0
}
