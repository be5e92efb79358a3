package services

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

const topModelsLimit = 5

// rankDescending orders the keys of totals by value, highest first.
// Equal values fall back to the lower key, so the order is stable across calls.
func rankDescending[V any](totals map[int]V, greater func(a, b V) bool, limit int) []int {
	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := totals[keys[i]], totals[keys[j]]
		if greater(a, b) {
			return true
		}
		if greater(b, a) {
			return false
		}
		return keys[i] < keys[j]
	})
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func indexByID[T any](items []*T, id func(*T) int) map[int]*T {
	index := make(map[int]*T, len(items))
	for _, item := range items {
		index[id(item)] = item
	}
	return index
}
