package searcher

import (
	"sort"

	"kishogi/game"
)

// orderScore ranks captures of the King first, then other captures by the
// captured face's value.
func orderScore(state *game.GameState, a game.Action) int {
	if !a.IsCapture() {
		return 0
	}
	captured := state.Pieces[a.Capture]
	if captured.Cube == game.GyokuCube {
		return kingCaptureOrder
	}
	return captureOrder + captured.Face.Value()
}

// orderActions sorts actions by descending orderScore in place, keeping
// generation order among equals.
func orderActions(state *game.GameState, actions []game.Action) {
	scores := make(map[game.Action]int, len(actions))
	for _, a := range actions {
		scores[a] = orderScore(state, a)
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return scores[actions[i]] > scores[actions[j]]
	})
}
