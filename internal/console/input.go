package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/JKGam3r/CoinsInALine/internal/game"
)

// ParseChoice reads the first character of token: '1' takes the left
// coin, '0' the right one, anything else is invalid.
func ParseChoice(token string) game.Choice {
	token = strings.TrimSpace(token)
	if token == "" {
		return game.ChoiceInvalid
	}
	switch token[0] {
	case '1':
		return game.ChoiceLeft
	case '0':
		return game.ChoiceRight
	default:
		return game.ChoiceInvalid
	}
}

// Prompter reads whitespace-separated tokens and implements game.InputProvider.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Prompter{sc: sc, out: out}
}

// Next returns the next token; ok is false at end of input.
func (p *Prompter) Next() (token string, ok bool) {
	if !p.sc.Scan() {
		return "", false
	}
	return p.sc.Text(), true
}

// ChooseSide implements game.InputProvider. End of input counts as an
// invalid selection.
func (p *Prompter) ChooseSide(game.Snapshot) game.Choice {
	fmt.Fprintln(p.out, "Choose a coin:")
	token, _ := p.Next()
	return ParseChoice(token)
}
