package searcher

import (
	"bytes"
	"testing"

	"kishogi/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveDepth(t *testing.T) {
	cases := []struct {
		base, actions, want int
	}{
		{1, 5, 3},
		{1, 10, 3},
		{1, 11, 2},
		{1, 25, 2},
		{1, 26, 1},
		{1, 80, 1},
		{1, 81, 1},
		{2, 81, 1},
		{3, 100, 2},
		{3, 5, 4},
		{2, 10, 4},
		{2, 50, 2},
	}
	for _, c := range cases {
		require.Equal(t, c.want, adaptiveDepth(c.base, c.actions), "base %d with %d actions", c.base, c.actions)
	}

	require.Equal(t, 1, baseDepth(3))
	require.Equal(t, 2, baseDepth(4))
	require.Equal(t, 3, baseDepth(5))
}

func TestOrderActions(t *testing.T) {
	gs := position(3,
		on(game.Black, game.Gyoku, 0, 0),
		on(game.White, game.Gyoku, 0, 2),
		on(game.White, game.Hi, 3, 3),
		on(game.White, game.Myou, 4, 4),
	)
	quiet := move(0, 1, 0)
	takeMyou := game.NewMove(0, game.Relocation{To: game.Coord{X: 4, Y: 4}, Capture: 3}, game.NoFace)
	takeKing := game.NewMove(0, game.Relocation{To: game.Coord{X: 0, Y: 2}, Capture: 1}, game.NoFace)
	takeHi := game.NewMove(0, game.Relocation{To: game.Coord{X: 3, Y: 3}, Capture: 2}, game.NoFace)

	actions := []game.Action{quiet, takeMyou, takeKing, takeHi}
	orderActions(gs, actions)
	require.Equal(t, []game.Action{takeKing, takeHi, takeMyou, quiet}, actions)
	require.Equal(t, 10000, orderScore(gs, takeKing))
	require.Equal(t, 180, orderScore(gs, takeHi))
	require.Equal(t, 0, orderScore(gs, quiet))
}

func TestChooseAction(t *testing.T) {
	t.Run("takes the king at every tier above easy", func(t *testing.T) {
		for difficulty := 2; difficulty <= 5; difficulty++ {
			gs := kingInReach(difficulty)
			a, ok := NewMinimax(WithSeed(1)).ChooseAction(gs)
			require.True(t, ok)
			require.True(t, a.CapturesKing(gs), "difficulty %d", difficulty)
		}
	})

	t.Run("no action without pieces", func(t *testing.T) {
		gs := position(3, on(game.White, game.Gyoku, 0, 2))
		_, ok := NewMinimax().ChooseAction(gs)
		require.False(t, ok)
	})

	t.Run("same seed same choice", func(t *testing.T) {
		for difficulty := 1; difficulty <= 5; difficulty++ {
			first, ok := NewMinimax(WithSeed(42), WithGoroutines(3)).ChooseAction(opening(difficulty))
			require.True(t, ok)
			repeats := 3
			if difficulty > 3 {
				repeats = 1
			}
			for i := 0; i < repeats; i++ {
				again, ok := NewMinimax(WithSeed(42), WithGoroutines(1)).ChooseAction(opening(difficulty))
				require.True(t, ok)
				require.Equal(t, first, again, "difficulty %d", difficulty)
			}
		}
	})

	t.Run("chosen actions are legal", func(t *testing.T) {
		for difficulty := 1; difficulty <= 3; difficulty++ {
			gs := opening(difficulty)
			a, ok := NewMinimax(WithSeed(7)).ChooseAction(gs)
			require.True(t, ok)
			require.Contains(t, game.AllActions(gs, game.Black), a)
		}
	})

	t.Run("search leaves the state untouched", func(t *testing.T) {
		gs := opening(3)
		gs.History.Record(game.Fingerprint(gs), false)
		pieces := gs.Snapshot()
		history := gs.History.Copy()

		NewMinimax(WithSeed(3)).ChooseAction(gs)
		require.Equal(t, pieces, gs.Pieces)
		require.Equal(t, history, gs.History)
		require.Equal(t, game.Black, gs.Turn)
	})

	t.Run("difficulty option overrides the state", func(t *testing.T) {
		gs := kingInReach(1)
		_, ok, metric := NewMinimax(WithDifficulty(3), WithMetrics()).Search(gs)
		require.True(t, ok)
		require.Equal(t, 3, metric.Difficulty)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 5, metric.Candidates)
	})

	t.Run("logs the searched depth without metrics", func(t *testing.T) {
		var buf bytes.Buffer
		logger, level := log.Logger, zerolog.GlobalLevel()
		log.Logger = zerolog.New(&buf)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		defer func() {
			log.Logger = logger
			zerolog.SetGlobalLevel(level)
		}()

		_, ok := NewMinimax(WithDifficulty(3), WithSeed(1)).ChooseAction(kingInReach(3))
		require.True(t, ok)
		require.Contains(t, buf.String(), "difficulty 3, depth 3")
	})

	t.Run("medium prefers material", func(t *testing.T) {
		gs := position(2,
			on(game.Black, game.Gyoku, 0, 0),
			on(game.White, game.Gyoku, 0, 2),
			on(game.Black, game.Hi, 1, 1),
			on(game.White, game.Cho, 1, -1),
		)
		a, ok := NewMinimax(WithSeed(5)).ChooseAction(gs)
		require.True(t, ok)
		require.Equal(t, 3, a.Capture)
		require.Equal(t, game.Chuu, a.Promote)
	})

	t.Run("hard counts searched nodes", func(t *testing.T) {
		_, ok, metric := NewMinimax(WithSeed(9), WithMetrics()).Search(opening(3))
		require.True(t, ok)
		require.Positive(t, metric.Nodes)
		require.Equal(t, 1, metric.Depth)
	})
}

func TestMinimax(t *testing.T) {
	t.Run("depth zero is the static evaluation", func(t *testing.T) {
		gs := opening(3)
		m := NewMinimax()
		require.Equal(t, game.Evaluate(gs, game.Black), m.minimax(gs, 0, -WIN, WIN, true, game.Black))
	})

	t.Run("a side that can take the king wins", func(t *testing.T) {
		gs := kingInReach(3)
		m := NewMinimax()
		require.Equal(t, WIN, m.minimax(gs, 2, -WIN*2, WIN*2, true, game.Black))
		require.Equal(t, LOSS, m.minimax(gs, 2, -WIN*2, WIN*2, false, game.White))
	})

	t.Run("a side without actions loses", func(t *testing.T) {
		gs := position(3, on(game.White, game.Gyoku, 0, 2))
		m := NewMinimax()
		require.Equal(t, LOSS, m.minimax(gs, 1, -WIN*2, WIN*2, true, game.Black))
	})
}
