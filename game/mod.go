// Package game is the rule engine: faces and their movement, the support
// mechanic, legal moves and drops, check, stranding, position fingerprints
// and static evaluation. Nothing in it blocks or returns errors; an absent
// King is reported through ok results.
package game

// Evaluator scores a position from one side's point of view. Higher is
// better for that side.
type Evaluator func(*GameState, Owner) int

var _ Evaluator = Evaluate
