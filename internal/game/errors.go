package game

import "errors"

var (
	ErrGameOver  = errors.New("game already finished")
	ErrOutOfTurn = errors.New("move out of turn")

	ErrEmptyLine = errors.New("coin line is empty")
	ErrOddLine   = errors.New("coin line must hold an even number of coins")
	ErrCoinValue = errors.New("coin values must be positive")
)
