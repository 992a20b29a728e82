package searcher

import "kishogi/game"

// Penalties for heading into a repeated position.
const (
	perpetualPenalty1 = -800
	perpetualPenalty2 = -3000
	perpetualPenalty3 = -5000

	repetitionShift1 = 50
	repetitionShift2 = 500
	repetitionShift3 = 2000
)

// resultingPosition plays a on state with the turn passed to the opponent,
// and reports the fingerprint and whether the opponent would be in check.
// state is restored before returning.
func resultingPosition(state *game.GameState, a game.Action, owner game.Owner) (string, bool) {
	opponent := owner.Opponent()
	u := game.Apply(state, a)
	turn := state.Turn
	defer func() {
		state.Turn = turn
		game.Revert(state, a, u)
	}()

	state.Turn = opponent
	return game.Fingerprint(state), game.IsInCheck(state, opponent)
}

// repetitionPenalty steers owner away from positions already seen. Extending
// a perpetual check costs more the longer it runs; plain repetition is
// avoided while ahead and sought while behind.
func repetitionPenalty(state *game.GameState, a game.Action, owner game.Owner, evaluate game.Evaluator) int {
	key, wouldCheck := resultingPosition(state, a, owner)
	history := state.History.Lookup(key)
	if len(history) == 0 {
		return 0
	}

	n := len(history)
	if wouldCheck && game.AllChecks(history) {
		switch {
		case n >= 3:
			return perpetualPenalty3
		case n >= 2:
			return perpetualPenalty2
		default:
			return perpetualPenalty1
		}
	}

	sign := 1
	if evaluate(state, owner) > 0 {
		sign = -1
	}
	switch {
	case n >= 3:
		return sign * repetitionShift3
	case n >= 2:
		return sign * repetitionShift2
	default:
		return sign * repetitionShift1
	}
}
