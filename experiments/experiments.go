package experiments

import (
	"context"
	"fmt"
	"time"

	"kishogi/engine"
	"kishogi/experiments/metrics"
	"kishogi/searcher"
	"kishogi/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Results struct {
	Agents []metrics.AgentConfig
	Games  []metrics.GameRecord
	Moves  []metrics.MoveRecord
}

// Run plays every matchup cfg.Games times, swapping colours on odd games.
func Run(ctx context.Context, cfg Config) (Results, error) {
	if err := cfg.Validate(); err != nil {
		return Results{}, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	results := Results{Agents: cfg.Agents}
	count := 0

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.Matchups {
		config1 := cfg.agent(matchup.Black)
		config2 := cfg.agent(matchup.White)

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.Matchups), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			black, white := config1, config2
			if i%2 == 1 {
				black, white = white, black
			}
			count++
			gameSeed := seed + uint64(count)

			outcome, gameMetric, moveMetrics, err := runGame(ctx, cfg, black, white, gameSeed)
			if err != nil {
				return results, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d (%s): %s", mi+1, len(cfg.Matchups), i+1, gameMetric.Name, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.Matchups))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	return results, nil
}

// Write stores the agent configs, game records and move records.
func (r Results) Write(writer *metrics.Writer) error {
	if err := writer.WriteAgentConfigs(r.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(r.Games); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(r.Moves); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}

// runGame plays a single game between two computer players.
func runGame(ctx context.Context, cfg Config, black, white metrics.AgentConfig, seed uint64) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{
		agent.NewSearchAgent(createMinimax(black, seed)),
		agent.NewSearchAgent(createMinimax(white, seed+1)),
	}
	e := engine.New(agents,
		engine.WithKi(cfg.UseKi),
		engine.WithSeed(seed),
		engine.WithMaxTurns(cfg.MaxTurns),
	)
	return e.Run(ctx)
}

func createMinimax(config metrics.AgentConfig, seed uint64) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithDifficulty(config.Difficulty),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return searcher.NewMinimax(options...)
}
