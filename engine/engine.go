package engine

import (
	"errors"
	"fmt"
	"time"

	"kishogi/game"
	"kishogi/meta"
	"kishogi/searcher/agent"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/exp/rand"
)

var (
	ErrGameOver          = errors.New("game is over")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrSetupIncomplete   = errors.New("kings are not set up")
	ErrIllegalAction     = errors.New("illegal action")
	ErrPromotionRequired = errors.New("capture needs a promotion choice")
	ErrInvalidPromotion  = errors.New("promotion not offered")
	ErrNoAction          = errors.New("agent returned no action")
)

type Reason string

const (
	KingCaptured   Reason = "king captured"
	NoLegalAction  Reason = "no legal action"
	PerpetualCheck Reason = "perpetual check"
	Sennichite     Reason = "sennichite"
	TurnLimit      Reason = "turn limit"
)

// Outcome is how a game ended. Winner is meaningless for a draw.
type Outcome struct {
	Winner game.Owner
	Draw   bool
	Reason Reason
}

func (o Outcome) String() string {
	if o.Draw {
		return fmt.Sprintf("draw (%s)", o.Reason)
	}
	return fmt.Sprintf("%s wins (%s)", o.Winner, o.Reason)
}

type Option func(e *Engine)

func WithName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.name = name
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithKi(useKi bool) Option {
	return func(e *Engine) {
		e.State = game.NewGameState(useKi)
	}
}

// WithDifficulty sets the strength searchers read from the state.
func WithDifficulty(difficulty int) Option {
	return func(e *Engine) {
		e.difficulty = difficulty
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithState resumes from an existing position. The game counts as set up
// when both Kings are on the board.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		e.State = state
	}
}

// Engine is the turn controller: it sets up the Kings, commits actions and
// runs the end-of-turn transition. Agents are indexed by side.
type Engine struct {
	State  *game.GameState
	Agents [2]agent.Agent

	name       string
	difficulty int
	maxTurns   int
	turns      int
	ready      bool
	outcome    *Outcome
	advisory   game.Classification
	rng        *rand.Rand
}

func New(agents [2]agent.Agent, options ...Option) *Engine {
	e := &Engine{ // Default values
		State:    game.NewGameState(false),
		Agents:   agents,
		name:     petname.Generate(2, "-"),
		maxTurns: meta.MAX_TURNS,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(e)
	}
	if e.difficulty > 0 {
		e.State.Difficulty = e.difficulty
	}
	_, blackPlaced := e.State.KingPos(game.Black)
	_, whitePlaced := e.State.KingPos(game.White)
	e.ready = blackPlaced && whitePlaced
	return e
}

func (e *Engine) Name() string {
	return e.name
}

// Outcome reports how the game ended, if it has.
func (e *Engine) Outcome() (Outcome, bool) {
	if e.outcome == nil {
		return Outcome{}, false
	}
	return *e.outcome, true
}

// Advisory is the repetition warning raised by the last turn, if any.
func (e *Engine) Advisory() game.Classification {
	return e.advisory
}
