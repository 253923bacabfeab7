package console

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/JKGam3r/CoinsInALine/internal/config"
	"github.com/JKGam3r/CoinsInALine/internal/game"
	"github.com/JKGam3r/CoinsInALine/internal/logger"
)

const (
	EasyDifficulty = config.MinDifficulty
	HardDifficulty = config.MaxDifficulty
)

const introText = `COINS-IN-A-LINE

A line of coins sits between you and the computer. Take turns picking a
coin from either end; whoever holds the larger total once the line is
empty wins. The computer moves first and plays in EASY, HARD or CUSTOM mode.

On every turn,
	PRESS 1 and ENTER to take the coin on the left
	PRESS 0 and ENTER to take the coin on the right
`

const modeInfoText = `
EASY mode plays greedily: it looks only at the two end coins and takes the
larger one. That is not always wise. Take the line

			10	5	1000000	100

A greedy first player takes 100, which hands 1000000 to the second player
and loses the game.

HARD mode solves the game with dynamic programming. It assumes you answer
every move as well as possible and picks the side that leaves you the least.
Moving first, it is practically unbeatable.

CUSTOM mode mixes the two. Pick a digit from 0 (EASY) to 9 (HARD); higher
digits let the solver decide more often.
`

// Session runs the menu loop and one game per "start" selection.
type Session struct {
	prompter *Prompter
	renderer *Renderer
	out      io.Writer
	rng      *rand.Rand

	defaultDifficulty int
	coins             func(n int) []int
}

func NewSession(in io.Reader, out io.Writer, cfg *config.Config, rng *rand.Rand) *Session {
	s := &Session{
		prompter:          NewPrompter(in, out),
		renderer:          NewRenderer(out, cfg.Color),
		out:               out,
		rng:               rng,
		defaultDifficulty: config.ClampDifficulty(cfg.DefaultDifficulty),
	}
	s.coins = func(n int) []int { return game.GenerateCoins(s.rng, n) }
	return s
}

// Run shows the menu until the user quits or input ends. The intro is
// shown again after every finished game.
func (s *Session) Run() error {
	intro := true
	for {
		if intro {
			fmt.Fprint(s.out, introText+"\n")
			intro = false
		}
		fmt.Fprintln(s.out, "PRESS 1 and ENTER to start.")
		fmt.Fprintln(s.out, "PRESS 2 and ENTER to view details about the EASY, HARD and CUSTOM modes.")
		fmt.Fprintln(s.out, "PRESS 3 and ENTER to quit.")

		token, ok := s.prompter.Next()
		if !ok {
			return nil
		}
		switch token[0] {
		case '1':
			difficulty, ok := s.selectMode()
			if !ok {
				return nil
			}
			if _, err := s.Play(difficulty); err != nil {
				return err
			}
			intro = true
		case '2':
			fmt.Fprint(s.out, modeInfoText+"\n")
		case '3':
			return nil
		}
	}
}

// selectMode re-prompts until a mode is picked; ok is false at end of input.
func (s *Session) selectMode() (difficulty int, ok bool) {
	for {
		fmt.Fprintln(s.out, "\nPRESS 1 and ENTER for EASY Mode.")
		fmt.Fprintln(s.out, "PRESS 2 and ENTER for HARD Mode.")
		fmt.Fprintln(s.out, "PRESS 3 and ENTER for CUSTOM Mode.")

		token, ok := s.prompter.Next()
		if !ok {
			return 0, false
		}
		switch token[0] {
		case '1':
			return EasyDifficulty, true
		case '2':
			return HardDifficulty, true
		case '3':
			return s.customDifficulty()
		}
	}
}

func (s *Session) customDifficulty() (int, bool) {
	fmt.Fprintln(s.out, "Pick any single digit from 0 (EASY) to 9 (HARD):")
	token, ok := s.prompter.Next()
	if !ok {
		return 0, false
	}
	if c := token[0]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	fmt.Fprintf(s.out, "Game mode not selected. Default of value %d selected.\n", s.defaultDifficulty)
	return s.defaultDifficulty, true
}

// Play runs a single game at the given difficulty on a freshly generated line.
func (s *Session) Play(difficulty int) (game.Result, error) {
	blender := game.NewBlender(difficulty, s.rng)
	g, err := game.NewGame(s.coins(config.NumCoins), blender, s.rng)
	if err != nil {
		return game.Result{}, fmt.Errorf("start game: %w", err)
	}
	log := logger.With("difficulty", blender.Difficulty())
	log.Info("game started")

	res, err := g.Play(s.prompter, s.renderer)
	if err != nil {
		return game.Result{}, fmt.Errorf("play game: %w", err)
	}
	stats := blender.Stats()
	log.Info("computer decisions", "optimal", stats.Optimal, "greedy", stats.Greedy)
	return res, nil
}
