package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"kishogi/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeFile(t, `
name: smoke
games: 2
max_turns: 12
seed: 7
agents:
  - id: 1
    difficulty: 1
  - id: 2
    difficulty: 3
    goroutines: 2
matchups:
  - black: 1
    white: 2
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "smoke", cfg.Name)
		require.Equal(t, 2, cfg.Games)
		require.Equal(t, 12, cfg.MaxTurns)
		require.Equal(t, uint64(7), cfg.Seed)
		require.True(t, cfg.UseKi, "unset fields keep their defaults")
		require.Equal(t, []metrics.AgentConfig{{ID: 1, Difficulty: 1}, {ID: 2, Difficulty: 3, Goroutines: 2}}, cfg.Agents)
		require.Equal(t, []Matchup{{Black: 1, White: 2}}, cfg.Matchups)
	})

	t.Run("rejects unknown agents", func(t *testing.T) {
		path := writeFile(t, `
matchups:
  - black: 1
    white: 9
`)
		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "unknown agent")
	})

	t.Run("rejects bad difficulty", func(t *testing.T) {
		path := writeFile(t, `
agents:
  - id: 1
    difficulty: 6
matchups:
  - black: 1
    white: 1
`)
		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "out of range")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("presets are valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
		require.NoError(t, ThroughputConfig().Validate())
		require.Len(t, DefaultConfig().Matchups, 4)
	})
}

func TestRun(t *testing.T) {
	cfg := Config{
		Name:     "smoke",
		Games:    2,
		MaxTurns: 8,
		Seed:     11,
		Agents: []metrics.AgentConfig{
			{ID: 1, Difficulty: 1},
			{ID: 2, Difficulty: 2, Goroutines: 2},
		},
		Matchups: []Matchup{{Black: 1, White: 2}},
	}
	results, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results.Games, 2)
	require.Equal(t, 1, results.Games[0].Black)
	require.Equal(t, 2, results.Games[1].Black, "colours swap between games")

	total := 0
	for _, g := range results.Games {
		require.NotEmpty(t, g.Name)
		require.NotEmpty(t, g.Reason)
		total += g.TotalMoves
	}
	require.Len(t, results.Moves, total)

	writer, err := metrics.NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, results.Write(writer))
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(writer.Dir(), name))
	}
}
