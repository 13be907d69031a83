package services

import (
	"math/rand/v2"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

// RandomSource shuffles candidate lists. *rand.Rand satisfies it.
type RandomSource interface {
	Shuffle(n int, swap func(i, j int))
}

type globalRandom struct{}

func (globalRandom) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultRandom draws from the process-wide generator, which is safe for
// concurrent use.
var DefaultRandom RandomSource = globalRandom{}

var wholeBodyOrder = []models.MuscleGroup{
	models.MuscleChest,
	models.MuscleBack,
	models.MuscleShoulders,
	models.MuscleArms,
	models.MuscleLegs,
	models.MuscleCore,
}

var (
	upperBodyGroups = []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleArms}
	lowerBodyGroups = []models.MuscleGroup{models.MuscleLegs, models.MuscleCore}
)

// EligibleDifficulties returns the difficulty tiers a plan level may draw from.
func EligibleDifficulties(level models.Level) []models.Level {
	if level == models.LevelBeginner {
		return []models.Level{models.LevelBeginner}
	}
	return []models.Level{level, models.LevelBeginner}
}

// SelectWholeBody takes one exercise from each muscle group in head-to-core
// order, visiting at most count groups, then tops up with other exercises
// from the pool until count is reached or the pool runs out.
func SelectWholeBody(pool []models.Exercise, count int, random RandomSource) []models.Exercise {
	if count <= 0 || len(pool) == 0 {
		return []models.Exercise{}
	}

	selected := make([]models.Exercise, 0, count)
	chosen := make(map[uint]struct{}, count)
	for index, group := range wholeBodyOrder {
		if index >= count {
			break
		}
		candidates := filterByGroups(pool, []models.MuscleGroup{group})
		if len(candidates) == 0 {
			continue
		}
		pick := sample(candidates, 1, random)[0]
		selected = append(selected, pick)
		chosen[pick.ID] = struct{}{}
	}

	remaining := count - len(selected)
	if remaining <= 0 {
		return selected
	}

	rest := make([]models.Exercise, 0, len(pool))
	for _, exercise := range pool {
		if _, taken := chosen[exercise.ID]; !taken {
			rest = append(rest, exercise)
		}
	}
	return append(selected, sample(rest, remaining, random)...)
}

// SelectTargeted draws up to count distinct exercises from the given groups.
func SelectTargeted(pool []models.Exercise, groups []models.MuscleGroup, count int, random RandomSource) []models.Exercise {
	if count <= 0 {
		return []models.Exercise{}
	}
	return sample(filterByGroups(pool, groups), count, random)
}

func filterByGroups(pool []models.Exercise, groups []models.MuscleGroup) []models.Exercise {
	filtered := make([]models.Exercise, 0, len(pool))
	for _, exercise := range pool {
		for _, group := range groups {
			if exercise.MuscleGroup == group {
				filtered = append(filtered, exercise)
				break
			}
		}
	}
	return filtered
}

// sample shuffles a copy of candidates and keeps the first count entries.
func sample[T any](candidates []T, count int, random RandomSource) []T {
	shuffled := make([]T, len(candidates))
	copy(shuffled, candidates)
	if random == nil {
		random = DefaultRandom
	}
	random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled
}
