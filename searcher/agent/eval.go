package agent

import (
	"kishogi/experiments/metrics"
	"kishogi/game"
	"kishogi/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays whatever the searcher picks.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindAction(state *game.GameState) (game.Action, bool, metrics.SearchMetric) {
	return a.searcher.Search(state)
}

// NewScriptedAgent plays the given actions in order and then runs out.
func NewScriptedAgent(actions ...game.Action) Agent {
	next := 0
	return Func(func(*game.GameState) (game.Action, bool) {
		if next >= len(actions) {
			return game.Action{}, false
		}
		next++
		return actions[next-1], true
	})
}
