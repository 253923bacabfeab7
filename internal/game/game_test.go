package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/JKGam3r/CoinsInALine/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fixedInput struct {
	choice Choice
	calls  int
}

func (in *fixedInput) ChooseSide(Snapshot) Choice {
	in.calls++
	return in.choice
}

type recordingDisplay struct {
	turns    int
	moves    []Move
	finished []Result
}

func (d *recordingDisplay) Turn(Snapshot)            { d.turns++ }
func (d *recordingDisplay) Moved(_ Snapshot, m Move) { d.moves = append(d.moves, m) }
func (d *recordingDisplay) Finished(r Result)        { d.finished = append(d.finished, r) }

func TestPlay_AllEqualCoinsGreedyVsAlwaysLeftIsTie(t *testing.T) {
	g, err := NewGame([]int{100, 100, 100, 100}, Greedy{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame err: %v", err)
	}
	before := testutil.ToFloat64(metrics.Games.WithLabelValues(string(OutcomeTie)))

	in := &fixedInput{choice: ChoiceLeft}
	disp := &recordingDisplay{}
	res, err := g.Play(in, disp)
	if err != nil {
		t.Fatalf("Play err: %v", err)
	}

	if res.Scores.Player != 200 || res.Scores.Opponent != 200 {
		t.Fatalf("scores = %+v; want 200/200", res.Scores)
	}
	if res.Outcome != OutcomeTie {
		t.Fatalf("outcome = %s; want tie", res.Outcome)
	}
	if in.calls != 1 {
		t.Fatalf("human should choose once (the last coin is awarded), got %d", in.calls)
	}
	if disp.turns != 3 || len(disp.moves) != 3 || len(disp.finished) != 1 {
		t.Fatalf("display calls turns=%d moves=%d finished=%d; want 3/3/1", disp.turns, len(disp.moves), len(disp.finished))
	}
	if got := testutil.ToFloat64(metrics.Games.WithLabelValues(string(OutcomeTie))) - before; got != 1 {
		t.Fatalf("tie counter delta = %v; want 1", got)
	}
}

func TestPlay_ConservesCoinsAndSplitsTurnsEvenly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 300; round++ {
		n := 2 * (1 + rng.Intn(8))
		coins := GenerateCoins(rng, n)
		total := 0
		for _, c := range coins {
			total += c
		}

		g, err := NewGame(coins, NewBlender(rng.Intn(10), rng), rng)
		if err != nil {
			t.Fatalf("NewGame err: %v", err)
		}
		// invalid input exercises the random-side fallback every human turn
		res, err := g.Play(&fixedInput{choice: ChoiceInvalid}, &recordingDisplay{})
		if err != nil {
			t.Fatalf("Play err: %v", err)
		}

		if res.Scores.Player+res.Scores.Opponent != total {
			t.Fatalf("round %d: %d + %d != %d", round, res.Scores.Player, res.Scores.Opponent, total)
		}

		perActor := map[Actor]int{}
		seen := map[int]bool{}
		for _, m := range g.History() {
			perActor[m.Actor]++
			if seen[m.Index] {
				t.Fatalf("round %d: index %d claimed twice", round, m.Index)
			}
			seen[m.Index] = true
			if m.Actor == ActorPlayer && !m.Final && !m.Random {
				t.Fatalf("round %d: invalid human input should be marked random: %+v", round, m)
			}
		}
		if perActor[ActorPlayer] != n/2 || perActor[ActorComputer] != n/2 {
			t.Fatalf("round %d: turns player=%d computer=%d; want %d each", round, perActor[ActorPlayer], perActor[ActorComputer], n/2)
		}
		for i, s := range g.Snapshot().Slots {
			if !s.Claimed {
				t.Fatalf("round %d: slot %d left unclaimed", round, i)
			}
		}
	}
}

func TestPlay_GreedyFirstMoverLosesToOptimalReply(t *testing.T) {
	g, err := NewGame([]int{10, 5, 1000000, 100}, Greedy{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame err: %v", err)
	}

	first, err := g.PlayComputer()
	if err != nil {
		t.Fatalf("PlayComputer err: %v", err)
	}
	if first.Value != 100 || first.Side != SideRight {
		t.Fatalf("greedy first move = %+v; want right coin 100", first)
	}

	for !g.Finished() {
		if g.Turn() == ActorPlayer {
			side, _ := Optimal{}.Evaluate(g.board)
			choice := ChoiceRight
			if side == SideLeft {
				choice = ChoiceLeft
			}
			if _, err := g.PlayHuman(choice); err != nil {
				t.Fatalf("PlayHuman err: %v", err)
			}
		} else if _, err := g.PlayComputer(); err != nil {
			t.Fatalf("PlayComputer err: %v", err)
		}
	}

	res := g.Result()
	if res.Scores.Opponent >= res.Scores.Player {
		t.Fatalf("greedy first mover should lose: %+v", res.Scores)
	}
	tookBig := false
	for _, m := range g.History() {
		if m.Actor == ActorPlayer && m.Value == 1000000 {
			tookBig = true
		}
	}
	if !tookBig {
		t.Fatalf("optimal second mover should take 1000000: %+v", g.History())
	}
}

func TestPlay_HardComputerAgainstGreedyHuman(t *testing.T) {
	g, err := NewGame([]int{10, 5, 1000000, 100}, NewBlender(9, rand.New(rand.NewSource(5))), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewGame err: %v", err)
	}
	for !g.Finished() {
		if g.Turn() == ActorComputer {
			if _, err := g.PlayComputer(); err != nil {
				t.Fatalf("PlayComputer err: %v", err)
			}
			continue
		}
		choice := ChoiceRight
		if (Greedy{}).Choose(g.board) == SideLeft {
			choice = ChoiceLeft
		}
		if _, err := g.PlayHuman(choice); err != nil {
			t.Fatalf("PlayHuman err: %v", err)
		}
	}

	res := g.Result()
	if res.Scores.Opponent != 1000010 || res.Scores.Player != 105 || res.Outcome != OutcomeOpponent {
		t.Fatalf("result = %+v; want opponent 1000010 vs player 105", res)
	}
}

func TestLastCoinGoesToToggledTurn(t *testing.T) {
	g, err := NewGame([]int{300, 500}, Greedy{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame err: %v", err)
	}
	if _, err := g.PlayComputer(); err != nil {
		t.Fatalf("PlayComputer err: %v", err)
	}
	if !g.Finished() {
		t.Fatalf("two-coin game should finish after one move")
	}

	h := g.History()
	if len(h) != 2 {
		t.Fatalf("history len = %d; want 2", len(h))
	}
	last := h[1]
	if !last.Final || last.Actor != ActorPlayer || last.Index != 0 || last.Value != 300 {
		t.Fatalf("final move = %+v; want player awarded index 0 value 300", last)
	}
	if r := g.Result(); r.Outcome != OutcomeOpponent {
		t.Fatalf("outcome = %s; want opponent", r.Outcome)
	}
}

func TestMovesOutOfTurnAndAfterEnd(t *testing.T) {
	g, err := NewGame([]int{300, 500}, Greedy{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame err: %v", err)
	}
	if g.Turn() != ActorComputer {
		t.Fatalf("computer must move first")
	}
	if _, err := g.PlayHuman(ChoiceLeft); !errors.Is(err, ErrOutOfTurn) {
		t.Fatalf("PlayHuman before computer err = %v; want ErrOutOfTurn", err)
	}
	if g.Result() != nil {
		t.Fatalf("Result should be nil before the end")
	}

	if _, err := g.PlayComputer(); err != nil {
		t.Fatalf("PlayComputer err: %v", err)
	}
	if _, err := g.PlayComputer(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("PlayComputer after end err = %v; want ErrGameOver", err)
	}
	if _, err := g.PlayHuman(ChoiceLeft); !errors.Is(err, ErrGameOver) {
		t.Fatalf("PlayHuman after end err = %v; want ErrGameOver", err)
	}
}

func TestNewGameWrapsBoardErrors(t *testing.T) {
	_, err := NewGame([]int{100, 200, 300}, nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrOddLine) {
		t.Fatalf("err = %v; want ErrOddLine", err)
	}
}

func TestInvalidChoiceIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	const rounds = 4000
	lefts := 0
	for i := 0; i < rounds; i++ {
		g, err := NewGame([]int{100, 200, 300, 400}, Greedy{}, rng)
		if err != nil {
			t.Fatalf("NewGame err: %v", err)
		}
		if _, err := g.PlayComputer(); err != nil {
			t.Fatalf("PlayComputer err: %v", err)
		}
		m, err := g.PlayHuman(ChoiceInvalid)
		if err != nil {
			t.Fatalf("PlayHuman err: %v", err)
		}
		if !m.Random {
			t.Fatalf("invalid choice should be flagged random")
		}
		if m.Side == SideLeft {
			lefts++
		}
	}
	rate := float64(lefts) / rounds
	if rate < 0.45 || rate > 0.55 {
		t.Fatalf("random side left rate %.3f; want about 0.5", rate)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, err := NewGame([]int{100, 200, 300, 400}, Greedy{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame err: %v", err)
	}
	snap := g.Snapshot()
	snap.Slots[0].Claimed = true
	if g.Snapshot().Slots[0].Claimed {
		t.Fatalf("mutating a snapshot must not touch the board")
	}
	if snap.PlayerTurn || snap.Finished || snap.Result != nil {
		t.Fatalf("unexpected fresh snapshot %+v", snap)
	}
}
