package util

import (
	"crypto/rand"
	"math/big"
)

func RandInt(max int) int {
	if max <= 0 {
		return 0
	}
	limit := big.NewInt(int64(max))
	integer, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return 0
	}
	return int(integer.Int64())
}

// PickAtRandom returns one of the items and the rest of them.
func PickAtRandom(items []string) (string, []string) {
	if len(items) == 0 {
		return "", items
	}
	idx := RandInt(len(items))
	item := items[idx]
	rest := append(append([]string{}, items[:idx]...), items[idx+1:]...)
	return item, rest
}
