// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines scoring root actions.
const GO_ROUTINES = 4

// DIFFICULTY defines the default computer strength, 1 (easy) to 5 (extreme).
const DIFFICULTY = 3

// MIN_DIFFICULTY and MAX_DIFFICULTY bound the difficulty setting.
const (
	MIN_DIFFICULTY = 1
	MAX_DIFFICULTY = 5
)

// MAX_TURNS ends a game as a draw once this many actions were committed.
const MAX_TURNS = 300
