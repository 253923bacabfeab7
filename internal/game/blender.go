package game

import (
	"math/rand"

	"github.com/JKGam3r/CoinsInALine/internal/config"
	"github.com/JKGam3r/CoinsInALine/internal/metrics"
)

// BlenderStats counts which strategy each decision actually used.
type BlenderStats struct {
	Optimal int `json:"optimal"`
	Greedy  int `json:"greedy"`
}

// Blender mixes Optimal and Greedy play by difficulty: 0 is always greedy,
// 9 always optimal, and 1..8 use the solver with probability (d+1)/10.
type Blender struct {
	difficulty int
	rng        *rand.Rand
	optimal    Strategy
	greedy     Strategy
	stats      BlenderStats
}

// NewBlender clamps difficulty into [0,9].
func NewBlender(difficulty int, rng *rand.Rand) *Blender {
	return &Blender{
		difficulty: config.ClampDifficulty(difficulty),
		rng:        rng,
		optimal:    Optimal{},
		greedy:     Greedy{},
	}
}

func (bl *Blender) Difficulty() int     { return bl.difficulty }
func (bl *Blender) Stats() BlenderStats { return bl.stats }
func (bl *Blender) Name() string        { return "blender" }

// Choose implements Strategy.
func (bl *Blender) Choose(b *Board) Side {
	s := bl.greedy
	if bl.useSolver() {
		s = bl.optimal
		bl.stats.Optimal++
	} else {
		bl.stats.Greedy++
	}
	metrics.Decisions.WithLabelValues(s.Name()).Inc()
	return s.Choose(b)
}

func (bl *Blender) useSolver() bool {
	if bl.difficulty == 0 {
		return false
	}
	return bl.rng.Intn(10) >= 9-bl.difficulty
}

// OptimalRate is the probability that a single decision uses the solver.
func OptimalRate(difficulty int) float64 {
	d := config.ClampDifficulty(difficulty)
	if d == 0 {
		return 0
	}
	return float64(d+1) / 10
}
