package game

import "fmt"

// Branches carries the value of taking each boundary coin now.
type Branches struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Evaluation is the solver output for one interval.
type Evaluation struct {
	Best     int      `json:"best"`
	Branches Branches `json:"branches"`
}

// Side picks the boundary with the larger branch value; ties go right.
func (e Evaluation) Side() Side {
	if e.Branches.Left > e.Branches.Right {
		return SideLeft
	}
	return SideRight
}

// Solver computes the value an optimally playing agent can guarantee on
// any sub-interval of a coin line. Entries of memo equal to 0 are
// uncomputed; real coin values are strictly positive.
type Solver struct {
	coins  []int
	memo   [][]int
	states int
}

// NewSolver panics when coins violate the board invariants: the solver is
// only ever handed lines that NewBoard accepted.
func NewSolver(coins []int) *Solver {
	if len(coins) == 0 || len(coins)%2 != 0 {
		panic(fmt.Sprintf("solver: coin line length %d must be even and non-zero", len(coins)))
	}
	for i, v := range coins {
		if v <= 0 {
			panic(fmt.Sprintf("solver: coin %d has non-positive value %d", i, v))
		}
	}
	n := len(coins)
	memo := make([][]int, n)
	for i := range memo {
		memo[i] = make([]int, n)
	}
	return &Solver{
		coins: append([]int{}, coins...),
		memo:  memo,
	}
}

// Reset marks every memo entry uncomputed.
func (s *Solver) Reset() {
	for i := range s.memo {
		clear(s.memo[i])
	}
}

// States returns how many memo entries have been freshly computed.
func (s *Solver) States() int { return s.states }

// Evaluate solves iv with zeroed branch outputs.
func (s *Solver) Evaluate(iv Interval) Evaluation {
	var b Branches
	best := s.Solve(iv, &b)
	return Evaluation{Best: best, Branches: b}
}

// Solve returns the best value for iv and writes branch values into b.
//
// b is only written on a fresh computation: a two-coin interval stores the
// two face values, a longer interval stores both branch totals after its
// children are solved, and a memo hit returns before touching b.
func (s *Solver) Solve(iv Interval, b *Branches) int {
	if iv.Left < 0 || iv.Right >= len(s.coins) {
		panic(fmt.Sprintf("solver: interval [%d,%d] outside line of %d coins", iv.Left, iv.Right, len(s.coins)))
	}
	return s.solve(iv.Left, iv.Right, b)
}

func (s *Solver) solve(l, r int, b *Branches) int {
	if l >= r {
		return 0
	}

	if l+1 == r {
		b.Left = s.coins[l]
		b.Right = s.coins[r]
		if s.memo[l][r] == 0 {
			s.states++
		}
		s.memo[l][r] = max(b.Left, b.Right)
		return s.memo[l][r]
	}

	if v := s.memo[l][r]; v != 0 {
		return v
	}

	// the opponent answers each choice with the reply that leaves us least
	left := s.coins[l] + min(s.solve(l+1, r-1, b), s.solve(l+2, r, b))
	right := s.coins[r] + min(s.solve(l, r-2, b), s.solve(l+1, r-1, b))

	s.memo[l][r] = max(left, right)
	s.states++

	b.Left = left
	b.Right = right
	return s.memo[l][r]
}
