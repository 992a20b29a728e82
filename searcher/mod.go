package searcher

import (
	"kishogi/experiments/metrics"
	"kishogi/game"
)

// Scores for decided positions, from the searching side's point of view.
const (
	WIN  = 9999
	LOSS = -WIN
)

// Search limits.
const (
	MaxBranching = 40 // Actions searched per inner node
	MaxDepth     = 4
)

// Move ordering scores.
const (
	kingCaptureOrder = 10000
	captureOrder     = 100
)

// Searcher picks an action for the side to move. It must not modify state.
type Searcher interface {
	Search(state *game.GameState) (game.Action, bool, metrics.SearchMetric)
}

// adaptiveDepth searches deeper when few actions are available and
// shallower when there are many.
func adaptiveDepth(base, actions int) int {
	d := base
	switch {
	case actions <= 10:
		d = base + 2
	case actions <= 25:
		d = base + 1
	case actions > 80:
		d = max(base-1, 1)
	}
	return min(d, MaxDepth)
}

// baseDepth maps the tree-search tiers 3, 4 and 5 to depths 1, 2 and 3.
func baseDepth(difficulty int) int {
	return max(1, min(difficulty-2, 3))
}
