package agent

import (
	"kishogi/experiments/metrics"
	"kishogi/game"
)

type Agent interface {
	// FindAction returns the action to play for the side to move and
	// performance metrics (if collected). ok is false when there is none.
	FindAction(state *game.GameState) (action game.Action, ok bool, metric metrics.SearchMetric)
}

// Func adapts a plain function, such as a scripted or interactive player,
// into an Agent.
type Func func(state *game.GameState) (game.Action, bool)

func (f Func) FindAction(state *game.GameState) (game.Action, bool, metrics.SearchMetric) {
	action, ok := f(state)
	return action, ok, metrics.SearchMetric{}
}
