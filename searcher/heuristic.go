package searcher

import "kishogi/game"

const (
	kingCaptureBonus = 1000
	checkBonus       = 50
	dropBonus        = 10
	moveRadius       = 5
	dropRadius       = 4
)

// heuristicScore rates an action without tree search: material won, checks
// given, closeness to the opposing King.
func heuristicScore(state *game.GameState, a game.Action, owner game.Owner) int {
	opponent := owner.Opponent()
	king, placed := state.KingPos(opponent)
	proximity := func(radius int) int {
		if !placed {
			return 0
		}
		return max(0, radius-game.Chebyshev(a.To, king))
	}

	if a.Kind == game.DropAction {
		return dropBonus + a.Face.Value()/10 + proximity(dropRadius)
	}

	score := 0
	switch {
	case a.CapturesKing(state):
		score += kingCaptureBonus
	case a.IsCapture():
		score += captureOrder + state.Pieces[a.Capture].Face.Value()
	default:
		if givesCheck(state, a, opponent) {
			score += checkBonus
		}
	}
	return score + proximity(moveRadius)
}

func givesCheck(state *game.GameState, a game.Action, opponent game.Owner) bool {
	u := game.Apply(state, a)
	defer game.Revert(state, a, u)
	return game.IsInCheck(state, opponent)
}
