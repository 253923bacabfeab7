package game

import (
	"fmt"
	"math/rand"

	"github.com/JKGam3r/CoinsInALine/internal/logger"
	"github.com/JKGam3r/CoinsInALine/internal/metrics"
)

// Actor identifies who made a move.
type Actor byte

const (
	ActorPlayer   Actor = 1
	ActorComputer Actor = 2
)

var ActorDictionary = map[Actor]string{
	ActorPlayer:   "player",
	ActorComputer: "computer",
}

func (a Actor) String() string {
	if name, ok := ActorDictionary[a]; ok {
		return name
	}
	return "unknown"
}

// Choice is what the input provider hands over on a human turn.
type Choice byte

const (
	ChoiceInvalid Choice = 0
	ChoiceLeft    Choice = 1
	ChoiceRight   Choice = 2
)

type Outcome string

const (
	OutcomePlayer   Outcome = "player"
	OutcomeOpponent Outcome = "opponent"
	OutcomeTie      Outcome = "tie"
)

// Move records one claimed coin.
type Move struct {
	Actor Actor `json:"actor"`
	Side  Side  `json:"side"`
	Index int   `json:"index"`
	Value int   `json:"value"`

	// Random is set when an invalid human choice was replaced by a random side.
	Random bool `json:"random,omitempty"`
	// Final marks the last coin, awarded without a choice.
	Final bool `json:"final,omitempty"`
}

type Scores struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
}

type Result struct {
	Scores  Scores  `json:"scores"`
	Outcome Outcome `json:"outcome"`
}

// Snapshot is a read-only projection handed to the display and input provider.
type Snapshot struct {
	Slots      []Slot   `json:"slots"`
	Interval   Interval `json:"interval"`
	PlayerTurn bool     `json:"player_turn"`
	Scores     Scores   `json:"scores"`
	Finished   bool     `json:"finished"`
	Result     *Result  `json:"result,omitempty"`
}

// InputProvider supplies the human's side choice.
type InputProvider interface {
	ChooseSide(s Snapshot) Choice
}

// Display receives the board before and after every move and the final result.
type Display interface {
	Turn(s Snapshot)
	Moved(s Snapshot, m Move)
	Finished(r Result)
}

// Game owns the board and both score accumulators for a single game.
// The computer always moves first.
type Game struct {
	board    *Board
	computer Strategy
	rng      *rand.Rand

	playerTurn bool
	scores     Scores
	history    []Move
	result     *Result
}

func NewGame(coins []int, computer Strategy, rng *rand.Rand) (*Game, error) {
	board, err := NewBoard(coins)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if computer == nil {
		computer = Greedy{}
	}
	return &Game{
		board:    board,
		computer: computer,
		rng:      rng,
	}, nil
}

// Turn returns who moves next.
func (g *Game) Turn() Actor {
	if g.playerTurn {
		return ActorPlayer
	}
	return ActorComputer
}

func (g *Game) Finished() bool { return g.result != nil }

// Result is nil until the game has finished.
func (g *Game) Result() *Result {
	if g.result == nil {
		return nil
	}
	r := *g.result
	return &r
}

func (g *Game) History() []Move {
	return append([]Move{}, g.history...)
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Slots:      g.board.Slots(),
		Interval:   g.board.Interval(),
		PlayerTurn: g.playerTurn,
		Scores:     g.scores,
		Finished:   g.Finished(),
		Result:     g.Result(),
	}
}

// PlayHuman applies the human's choice. An invalid choice becomes a
// uniformly random side.
func (g *Game) PlayHuman(choice Choice) (Move, error) {
	if g.Finished() {
		return Move{}, ErrGameOver
	}
	if !g.playerTurn {
		return Move{}, ErrOutOfTurn
	}

	random := false
	var side Side
	switch choice {
	case ChoiceLeft:
		side = SideLeft
	case ChoiceRight:
		side = SideRight
	default:
		random = true
		side = SideRight
		if g.rng.Intn(2) == 1 {
			side = SideLeft
		}
	}

	m := g.apply(ActorPlayer, side, random)
	g.advance()
	return m, nil
}

// PlayComputer asks the computer strategy for a side and applies it.
func (g *Game) PlayComputer() (Move, error) {
	if g.Finished() {
		return Move{}, ErrGameOver
	}
	if g.playerTurn {
		return Move{}, ErrOutOfTurn
	}

	side := g.computer.Choose(g.board)
	m := g.apply(ActorComputer, side, false)
	g.advance()
	return m, nil
}

// Play drives the game to completion against the given collaborators.
func (g *Game) Play(input InputProvider, display Display) (Result, error) {
	for !g.Finished() {
		display.Turn(g.Snapshot())

		var (
			m   Move
			err error
		)
		if g.playerTurn {
			m, err = g.PlayHuman(input.ChooseSide(g.Snapshot()))
		} else {
			m, err = g.PlayComputer()
		}
		if err != nil {
			return Result{}, err
		}
		display.Moved(g.Snapshot(), m)
	}

	r := *g.result
	display.Finished(r)
	return r, nil
}

func (g *Game) apply(actor Actor, side Side, random bool) Move {
	index, value := g.board.take(side)
	if actor == ActorPlayer {
		g.scores.Player += value
	} else {
		g.scores.Opponent += value
	}
	m := Move{Actor: actor, Side: side, Index: index, Value: value, Random: random}
	g.history = append(g.history, m)
	logger.Debug("coin taken", "actor", actor.String(), "side", side.String(), "index", index, "value", value)
	return m
}

// advance toggles the turn and settles the game once a single coin remains.
func (g *Game) advance() {
	g.playerTurn = !g.playerTurn
	iv := g.board.Interval()
	if iv.Left < iv.Right {
		return
	}

	// The last coin goes to whoever the toggled flag names.
	if g.board.Remaining() == 1 {
		actor := g.Turn()
		index, value := g.board.take(SideLeft)
		if actor == ActorPlayer {
			g.scores.Player += value
		} else {
			g.scores.Opponent += value
		}
		g.history = append(g.history, Move{Actor: actor, Side: SideLeft, Index: index, Value: value, Final: true})
		logger.Debug("final coin awarded", "actor", actor.String(), "index", index, "value", value)
	}

	g.result = &Result{Scores: g.scores, Outcome: decide(g.scores)}
	metrics.Games.WithLabelValues(string(g.result.Outcome)).Inc()
	logger.Info("game finished",
		"player", g.scores.Player,
		"opponent", g.scores.Opponent,
		"outcome", string(g.result.Outcome),
		"moves", len(g.history),
	)
}

func decide(s Scores) Outcome {
	switch {
	case s.Player > s.Opponent:
		return OutcomePlayer
	case s.Player < s.Opponent:
		return OutcomeOpponent
	default:
		return OutcomeTie
	}
}
