package agent

import (
	"testing"

	"kishogi/game"
	"kishogi/searcher"

	"github.com/stretchr/testify/require"
)

func TestSearchAgent(t *testing.T) {
	gs := game.NewGameState(false)
	bk, _ := gs.King(game.Black)
	wk, _ := gs.King(game.White)
	gs.Pieces[bk].Place(game.Coord{})
	gs.Pieces[wk].Place(game.Coord{X: 2, Y: 2})

	a := NewSearchAgent(searcher.NewMinimax(searcher.WithSeed(1), searcher.WithDifficulty(2), searcher.WithMetrics()))
	action, ok, metric := a.FindAction(gs)
	require.True(t, ok)
	require.Contains(t, game.AllActions(gs, game.Black), action)
	require.Equal(t, 2, metric.Difficulty)
}

func TestScriptedAgent(t *testing.T) {
	first := game.NewDrop(1, game.Hi, game.Coord{X: 1})
	second := game.NewDrop(2, game.Kaku, game.Coord{X: -1})
	a := NewScriptedAgent(first, second)

	got, ok, _ := a.FindAction(nil)
	require.True(t, ok)
	require.Equal(t, first, got)
	got, ok, _ = a.FindAction(nil)
	require.True(t, ok)
	require.Equal(t, second, got)
	_, ok, _ = a.FindAction(nil)
	require.False(t, ok)
}
