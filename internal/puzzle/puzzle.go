// Package puzzle implements the bonus-minutes unlock chain: three fixed
// tiers solved once per day, each awarding extra screen-time minutes up
// to a daily cap.
package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/sadopc/zenscreen/internal/store"
)

// DailyBonusCap is the most bonus minutes a user can earn in one day.
const DailyBonusCap = 15

// DefaultTiers returns the day's fresh unlock chain.
func DefaultTiers() []store.PuzzleExtension {
	return []store.PuzzleExtension{
		{Tier: 1, PuzzlesRequired: 1, MinutesEarned: 5},
		{Tier: 2, PuzzlesRequired: 2, MinutesEarned: 5},
		{Tier: 3, PuzzlesRequired: 3, MinutesEarned: 5},
	}
}

// CanAttempt reports whether the tier is unlocked: tier 1 always, tier
// n+1 only once tier n is completed.
func CanAttempt(tiers []store.PuzzleExtension, tier int) bool {
	if tier == 1 {
		return true
	}
	for _, t := range tiers {
		if t.Tier == tier-1 {
			return t.Completed
		}
	}
	return false
}

// RecordSolve counts one correct answer toward the tier and returns the
// minutes awarded (non-zero only when the solve completes the tier).
func RecordSolve(tiers []store.PuzzleExtension, tier int) ([]store.PuzzleExtension, int, error) {
	if !CanAttempt(tiers, tier) {
		return tiers, 0, fmt.Errorf("solve puzzle: tier %d is locked", tier)
	}
	for i := range tiers {
		if tiers[i].Tier != tier {
			continue
		}
		if tiers[i].Completed {
			return tiers, 0, fmt.Errorf("solve puzzle: tier %d already completed", tier)
		}
		tiers[i].PuzzlesSolved++
		if tiers[i].PuzzlesSolved >= tiers[i].PuzzlesRequired {
			tiers[i].Completed = true
			return tiers, tiers[i].MinutesEarned, nil
		}
		return tiers, 0, nil
	}
	return tiers, 0, fmt.Errorf("solve puzzle: unknown tier %d", tier)
}

// AwardBonus adds earned minutes to the day's total, clamped to the cap.
func AwardBonus(current, earned int) int {
	total := current + earned
	if total > DailyBonusCap {
		return DailyBonusCap
	}
	return total
}

// ForTier picks puzzles for a tier attempt, skipping ids already used
// today. Tier 1 draws one easy puzzle, tier 2 two medium/hard, tier 3
// three easy/medium.
func ForTier(tier int, usedIDs []string) []Puzzle {
	used := make(map[string]bool, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = true
	}
	var available []Puzzle
	for _, p := range Catalog {
		if !used[p.ID] {
			available = append(available, p)
		}
	}

	pick := func(count int, match func(Puzzle) bool) []Puzzle {
		var pool []Puzzle
		for _, p := range available {
			if match(p) {
				pool = append(pool, p)
			}
		}
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		if len(pool) > count {
			pool = pool[:count]
		}
		return pool
	}

	switch tier {
	case 1:
		return pick(1, func(p Puzzle) bool { return p.Difficulty == Easy })
	case 2:
		return pick(2, func(p Puzzle) bool { return p.Difficulty == Medium || p.Difficulty == Hard })
	default:
		return pick(3, func(p Puzzle) bool { return p.Difficulty == Easy || p.Difficulty == Medium })
	}
}
