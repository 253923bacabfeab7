package game

import "fmt"

// Side is a boundary of the remaining line.
type Side byte

const (
	SideLeft  Side = 1
	SideRight Side = 2
)

var SideDictionary = map[Side]string{
	SideLeft:  "left",
	SideRight: "right",
}

func (s Side) String() string {
	if name, ok := SideDictionary[s]; ok {
		return name
	}
	return "unknown"
}

// Slot is one position of the line: either an unclaimed coin or claimed.
type Slot struct {
	Value   int  `json:"value"`
	Claimed bool `json:"claimed"`
}

// Interval holds the leftmost and rightmost positions still in play.
type Interval struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Len returns the number of positions in [Left, Right].
func (iv Interval) Len() int {
	if iv.Right < iv.Left {
		return 0
	}
	return iv.Right - iv.Left + 1
}

// Board is the coin line plus the active interval. Only Game mutates it.
type Board struct {
	slots    []Slot
	interval Interval
}

// NewBoard copies coins into a fresh board with every position in play.
func NewBoard(coins []int) (*Board, error) {
	if len(coins) == 0 {
		return nil, ErrEmptyLine
	}
	if len(coins)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddLine, len(coins))
	}
	slots := make([]Slot, len(coins))
	for i, v := range coins {
		if v <= 0 {
			return nil, fmt.Errorf("%w: coin %d has value %d", ErrCoinValue, i, v)
		}
		slots[i] = Slot{Value: v}
	}
	return &Board{
		slots:    slots,
		interval: Interval{Left: 0, Right: len(coins) - 1},
	}, nil
}

func (b *Board) Size() int          { return len(b.slots) }
func (b *Board) Interval() Interval { return b.interval }

// ValueAt returns the face value at i; ok is false once the coin is claimed.
func (b *Board) ValueAt(i int) (value int, ok bool) {
	s := b.slots[i]
	if s.Claimed {
		return 0, false
	}
	return s.Value, true
}

// Boundary returns the value of the coin currently at side.
func (b *Board) Boundary(side Side) int {
	if side == SideLeft {
		return b.slots[b.interval.Left].Value
	}
	return b.slots[b.interval.Right].Value
}

// Remaining returns the number of unclaimed coins.
func (b *Board) Remaining() int {
	return b.interval.Len()
}

// Values returns a copy of every face value, claimed or not.
func (b *Board) Values() []int {
	out := make([]int, len(b.slots))
	for i, s := range b.slots {
		out[i] = s.Value
	}
	return out
}

// Slots returns a copy of the line with claim markers.
func (b *Board) Slots() []Slot {
	return append([]Slot{}, b.slots...)
}

// take claims the coin at side and moves that boundary inward. Boundaries
// only move inward, so a position can never be claimed twice.
func (b *Board) take(side Side) (index, value int) {
	if side == SideLeft {
		index = b.interval.Left
		b.interval.Left++
	} else {
		index = b.interval.Right
		b.interval.Right--
	}
	b.slots[index].Claimed = true
	return index, b.slots[index].Value
}
