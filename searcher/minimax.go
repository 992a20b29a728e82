package searcher

import (
	"math"
	"sync"
	"time"

	"kishogi/experiments/metrics"
	"kishogi/game"
	"kishogi/meta"
	"kishogi/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Minimax chooses actions for computer players. The tier is taken from the
// state's difficulty unless overridden. A Minimax is not safe for concurrent
// use; give each player its own.
type Minimax struct {
	goroutines int
	difficulty int // 0 reads GameState.Difficulty
	evaluate   game.Evaluator
	rng        *rand.Rand
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithDifficulty(difficulty int) Option {
	return func(m *Minimax) {
		if difficulty > 0 {
			m.difficulty = utils.Clamp(difficulty, meta.MIN_DIFFICULTY, meta.MAX_DIFFICULTY)
		}
	}
}

// WithSeed fixes the tie-break source, making choices reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		goroutines: meta.GO_ROUTINES,
		evaluate:   game.Evaluate,
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseAction returns the action for the side to move, or false when it has
// none.
func (m *Minimax) ChooseAction(state *game.GameState) (game.Action, bool) {
	action, ok, _ := m.Search(state)
	return action, ok
}

// Search works on a private copy of state and returns the chosen action with
// the metrics of the search.
func (m *Minimax) Search(state *game.GameState) (game.Action, bool, metrics.SearchMetric) {
	gs := state.Copy()
	owner := gs.Turn
	difficulty := m.difficulty
	if difficulty == 0 {
		difficulty = utils.Clamp(gs.Difficulty, meta.MIN_DIFFICULTY, meta.MAX_DIFFICULTY)
	}

	m.metrics.Start(m.goroutines, difficulty)
	actions := game.AllActions(gs, owner)
	if len(actions) == 0 {
		log.Debug().Msgf("%s has no legal action", owner)
		return game.Action{}, false, m.metrics.Complete()
	}

	var action game.Action
	depth := 0
	switch {
	case difficulty <= 1:
		m.metrics.SetDepth(0, len(actions))
		action = m.easy(gs, actions, owner)
	case difficulty == 2:
		m.metrics.SetDepth(0, len(actions))
		action = m.medium(gs, actions, owner)
	default:
		depth = adaptiveDepth(baseDepth(difficulty), len(actions))
		m.metrics.SetDepth(depth, len(actions))
		action = m.hard(gs, actions, owner, depth)
	}

	metric := m.metrics.Complete()
	log.Debug().Msgf("%s chose %s among %d actions (difficulty %d, depth %d)",
		owner, game.Describe(gs, action), len(actions), difficulty, depth)
	return action, true, metric
}

// easy plays at random, avoiding actions that would lose to perpetual check
// when it can.
func (m *Minimax) easy(gs *game.GameState, actions []game.Action, owner game.Owner) game.Action {
	var pool []game.Action
	for _, a := range actions {
		if repetitionPenalty(gs, a, owner, m.evaluate) > perpetualPenalty3 {
			pool = append(pool, a)
		}
	}
	if len(pool) == 0 {
		pool = actions
	}
	return pool[m.rng.Intn(len(pool))]
}

func (m *Minimax) medium(gs *game.GameState, actions []game.Action, owner game.Owner) game.Action {
	scores := make([]int, len(actions))
	for i, a := range actions {
		scores[i] = heuristicScore(gs, a, owner) + repetitionPenalty(gs, a, owner, m.evaluate)
	}
	return m.pickBest(actions, scores)
}

// hard searches every root action to depth with alpha-beta below the root.
// Root actions are split between goroutines, each on its own copy.
func (m *Minimax) hard(gs *game.GameState, actions []game.Action, owner game.Owner, depth int) game.Action {
	orderActions(gs, actions)
	if actions[0].CapturesKing(gs) {
		return actions[0]
	}

	scores := make([]int, len(actions))
	task := make(chan int, len(actions))
	for i := range actions {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(actions)); i++ {
		wg.Add(1)
		go func(state *game.GameState) {
			defer wg.Done()

			for i := range task {
				a := actions[i]
				u := game.Apply(state, a)
				score := m.minimax(state, depth, math.MinInt, math.MaxInt, false, owner)
				game.Revert(state, a, u)
				scores[i] = score + repetitionPenalty(state, a, owner, m.evaluate)
			}
		}(gs.Copy())
	}
	wg.Wait()

	return m.pickBest(actions, scores)
}

// minimax scores state for owner with alpha-beta pruning. The maximizing
// layer moves for owner.
func (m *Minimax) minimax(state *game.GameState, depth, alpha, beta int, maximizing bool, owner game.Owner) int {
	m.metrics.AddNode()
	if depth == 0 {
		return m.evaluate(state, owner)
	}

	current := owner
	if !maximizing {
		current = owner.Opponent()
	}
	actions := game.AllActions(state, current)
	if len(actions) == 0 {
		if maximizing {
			return LOSS
		}
		return WIN
	}
	orderActions(state, actions)
	if len(actions) > MaxBranching {
		actions = actions[:MaxBranching]
	}

	if maximizing {
		best := math.MinInt
		for _, a := range actions {
			if a.CapturesKing(state) {
				return WIN
			}
			u := game.Apply(state, a)
			val := m.minimax(state, depth-1, alpha, beta, false, owner)
			game.Revert(state, a, u)
			best = max(best, val)
			alpha = max(alpha, val)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, a := range actions {
		if a.CapturesKing(state) {
			return LOSS
		}
		u := game.Apply(state, a)
		val := m.minimax(state, depth-1, alpha, beta, true, owner)
		game.Revert(state, a, u)
		best = min(best, val)
		beta = min(beta, val)
		if beta <= alpha {
			break
		}
	}
	return best
}

// pickBest draws uniformly among the actions sharing the top score.
func (m *Minimax) pickBest(actions []game.Action, scores []int) game.Action {
	top := math.MinInt
	var best []int
	for i, s := range scores {
		switch {
		case s > top:
			top = s
			best = []int{i}
		case s == top:
			best = append(best, i)
		}
	}
	return actions[best[m.rng.Intn(len(best))]]
}
