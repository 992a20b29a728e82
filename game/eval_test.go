package game

import (
	"testing"

	"kishogi/meta"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("supported material and proximity", func(t *testing.T) {
		gs := position(
			on(Black, Gyoku, 0, 0),
			on(White, Gyoku, 0, 2),
			on(Black, Hi, 1, 0),
			inHand(White, Kaku),
		)
		require.Equal(t, 80+10+3-80, Evaluate(gs, Black))
		require.Equal(t, -(80+10)+80, Evaluate(gs, White))
	})

	t.Run("unsupported pieces are penalised", func(t *testing.T) {
		gs := position(
			on(Black, Gyoku, 0, 0),
			on(White, Gyoku, 0, 2),
			on(Black, Hi, 3, 0),
		)
		require.Equal(t, -(80+20)+2, Evaluate(gs, Black))
	})

	t.Run("check counts both ways", func(t *testing.T) {
		gs := position(
			on(Black, Gyoku, 0, 0),
			on(White, Gyoku, 0, 2),
			on(Black, Cho, 0, 1),
		)
		require.Equal(t, 30+10+4+30, Evaluate(gs, Black))
		require.Equal(t, -(30+10)-30, Evaluate(gs, White))
	})

	t.Run("evaluation does not mutate", func(t *testing.T) {
		gs := captureScene()
		before := gs.Snapshot()
		Evaluate(gs, Black)
		require.Equal(t, before, gs.Pieces)
	})
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState(true)
	require.Len(t, gs.Pieces, 8)
	require.Equal(t, Black, gs.Turn)
	require.Equal(t, meta.DIFFICULTY, gs.Difficulty)
	for i, p := range gs.Pieces {
		require.Equal(t, i, p.ID)
		require.False(t, p.OnBoard)
		require.Equal(t, p.Cube.BaseFace(), p.Face)
	}
	require.Len(t, gs.HandPieces(Black), 3)
	require.Len(t, NewGameState(false).Pieces, 6)

	gs.Pieces[0].Place(Coord{})
	gs.History.Record(Fingerprint(gs), false)
	c := gs.Copy()
	c.Pieces[0].Place(Coord{1, 1})
	c.History.Record("other", true)
	require.Equal(t, Coord{}, gs.Pieces[0].Pos)
	require.Len(t, gs.History, 1)
}
