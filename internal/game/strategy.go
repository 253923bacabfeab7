package game

import "github.com/JKGam3r/CoinsInALine/internal/metrics"

// Strategy picks a side for the computer. Implementations only read the board.
type Strategy interface {
	Choose(b *Board) Side
	// Name returns a human-readable identifier for logs and metrics.
	Name() string
}

// Greedy takes the larger boundary coin, never looking further in.
// Ties go right.
type Greedy struct{}

func (Greedy) Name() string { return metrics.StrategyGreedy }

func (Greedy) Choose(b *Board) Side {
	if b.Boundary(SideLeft) > b.Boundary(SideRight) {
		return SideLeft
	}
	return SideRight
}

// Optimal solves the remaining interval with a fresh memo on every call.
type Optimal struct{}

func (Optimal) Name() string { return metrics.StrategyOptimal }

func (Optimal) Choose(b *Board) Side {
	side, _ := Optimal{}.Evaluate(b)
	return side
}

// Evaluate returns the chosen side together with the full evaluation.
func (Optimal) Evaluate(b *Board) (Side, Evaluation) {
	s := NewSolver(b.Values())
	eval := s.Evaluate(b.Interval())
	metrics.SolverStates.Add(float64(s.States()))
	return eval.Side(), eval
}
