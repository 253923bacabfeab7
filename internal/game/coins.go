package game

import "math/rand"

const (
	MinCoinValue = 100
	MaxCoinValue = 1000
)

// GenerateCoins draws n coin values in [MinCoinValue, MaxCoinValue] and
// shuffles their positions. Each raw draw is rescaled by powers of ten
// until it lands in range.
func GenerateCoins(rng *rand.Rand, n int) []int {
	coins := make([]int, n)
	for i := range coins {
		coins[i] = scaleCoin(rng.Int31())
		for coins[i] == 0 {
			coins[i] = scaleCoin(rng.Int31())
		}
	}
	rng.Shuffle(len(coins), func(i, j int) { coins[i], coins[j] = coins[j], coins[i] })
	return coins
}

// scaleCoin returns 0 for a zero draw, which no power of ten can rescale.
func scaleCoin(raw int32) int {
	v := int(raw)
	if v <= 0 {
		return 0
	}
	for v > MaxCoinValue {
		v /= 10
	}
	for v < MinCoinValue {
		v *= 10
	}
	return v
}
