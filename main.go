package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"kishogi/engine"
	"kishogi/experiments"
	"kishogi/experiments/metrics"
	"kishogi/game"
	"kishogi/meta"
	"kishogi/searcher"
	"kishogi/searcher/agent"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var owners = map[game.Owner]*color.Color{
	game.Black: color.New(color.FgCyan, color.Bold),
	game.White: color.New(color.FgRed, color.Bold),
}

func main() {
	mode := flag.String("mode", "play", "play, experiment or throughput")
	black := flag.Int("black", meta.DIFFICULTY, "Black's difficulty, 1 to 5")
	white := flag.Int("white", meta.DIFFICULTY, "White's difficulty, 1 to 5")
	useKi := flag.Bool("ki", true, "Play with Ki cubes")
	seed := flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines scoring root actions")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Draw after this many actions")
	configPath := flag.String("config", "", "YAML experiment config")
	output := flag.String("output", "", "Directory for experiment CSV files")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	switch *mode {
	case "play":
		err = playGame(ctx, *black, *white, *goroutines, *useKi, *seed, *maxTurns)
	case "experiment", "throughput":
		cfg := experiments.DefaultConfig()
		if *mode == "throughput" {
			cfg = experiments.ThroughputConfig()
		}
		if *configPath != "" {
			if cfg, err = experiments.LoadConfig(*configPath); err != nil {
				break
			}
		}
		cfg.Seed = *seed
		if *output != "" {
			cfg.OutputDir = *output
		}
		err = runExperiment(ctx, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// playGame runs one computer-versus-computer game and prints it.
func playGame(ctx context.Context, black, white, goroutines int, useKi bool, seed uint64, maxTurns int) error {
	newAgent := func(difficulty int, seed uint64) agent.Agent {
		return agent.NewSearchAgent(searcher.NewMinimax(
			searcher.WithDifficulty(difficulty),
			searcher.WithGoroutines(goroutines),
			searcher.WithSeed(seed),
		))
	}
	e := engine.New(
		[2]agent.Agent{newAgent(black, seed), newAgent(white, seed+1)},
		engine.WithKi(useKi),
		engine.WithSeed(seed),
		engine.WithMaxTurns(maxTurns),
	)

	outcome, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}

	printLog(e.State)
	fmt.Println()
	printBoard(e.State)
	fmt.Printf("\n%s: %s after %d actions in %s\n", gameMetric.Name, outcome, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
	return nil
}

func runExperiment(ctx context.Context, cfg experiments.Config) error {
	results, err := experiments.Run(ctx, cfg)
	if err != nil {
		return err
	}
	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return err
	}
	if err := results.Write(writer); err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", writer.Dir())
	return nil
}

func printLog(gs *game.GameState) {
	for _, entry := range gs.Log {
		fmt.Printf("%4d %s %s\n", entry.Num, owners[entry.Owner].Sprintf("%-5s", entry.Owner), entry.Text)
	}
}

// printBoard draws the occupied area of the board, top row first, followed by
// both hands.
func printBoard(gs *game.GameState) {
	board := gs.BoardMap()
	if len(board) == 0 {
		return
	}
	first := true
	var lo, hi game.Coord
	for at := range board {
		if first {
			lo, hi, first = at, at, false
			continue
		}
		lo.X, lo.Y = min(lo.X, at.X), min(lo.Y, at.Y)
		hi.X, hi.Y = max(hi.X, at.X), max(hi.Y, at.Y)
	}

	for y := hi.Y + 1; y >= lo.Y-1; y-- {
		var row strings.Builder
		fmt.Fprintf(&row, "%4d ", y)
		for x := lo.X - 1; x <= hi.X+1; x++ {
			i, ok := board[game.Coord{X: x, Y: y}]
			if !ok {
				row.WriteString(" ・")
				continue
			}
			p := gs.Pieces[i]
			row.WriteString(" " + owners[p.Owner].Sprint(p.Face.Kanji()))
		}
		fmt.Println(row.String())
	}

	for _, owner := range []game.Owner{game.Black, game.White} {
		var hand []string
		for _, i := range gs.HandPieces(owner) {
			hand = append(hand, gs.Pieces[i].Face.Kanji())
		}
		fmt.Printf("%s hand: %s\n", owners[owner].Sprint(owner), strings.Join(hand, " "))
	}
}
