package workouts

import (
	"math/rand"
	"time"
)

// majorMuscleGroups get filled first when building a plan, in this order.
var majorMuscleGroups = []string{"chest", "back", "legs", "shoulders", "arms"}

const defaultDurationMinutes = 45

// Generator picks the exercises of a generated plan. Selection is random
// on purpose, the same request should produce varied plans between calls.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource pins the random source, so tests get
// deterministic selection.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{
		rng: rand.New(src),
	}
}

// Select builds a balanced exercise list: one or two random exercises per
// major muscle group that has any in the catalog, then random fillers from
// the rest until the duration target is met. Never picks the same exercise
// twice.
func (g *Generator) Select(catalog []CatalogExercise, durationMinutes int) []CatalogExercise {
	if durationMinutes <= 0 {
		durationMinutes = defaultDurationMinutes
	}

	byMuscle := make(map[string][]CatalogExercise)
	for _, ex := range catalog {
		muscle := ex.PrimaryMuscle
		if muscle == "" {
			muscle = "general"
		}
		byMuscle[muscle] = append(byMuscle[muscle], ex)
	}

	perGroup := 2
	if len(byMuscle) > 5 {
		perGroup = 1
	}

	var selected []CatalogExercise
	selectedIDs := make(map[int]bool)
	for _, muscle := range majorMuscleGroups {
		bucket := byMuscle[muscle]
		if len(bucket) == 0 {
			continue
		}
		for _, ex := range g.sample(bucket, perGroup) {
			selected = append(selected, ex)
			selectedIDs[ex.ID] = true
		}
	}

	// roughly one exercise per 10 minutes, at least 5
	targetCount := durationMinutes / 10
	if targetCount < 5 {
		targetCount = 5
	}

	if len(selected) < targetCount {
		var remaining []CatalogExercise
		for _, ex := range catalog {
			if !selectedIDs[ex.ID] {
				remaining = append(remaining, ex)
			}
		}
		selected = append(selected, g.sample(remaining, targetCount-len(selected))...)
	}

	return selected
}

// sample picks up to n elements, without replacement.
func (g *Generator) sample(pool []CatalogExercise, n int) []CatalogExercise {
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]CatalogExercise, 0, n)
	for _, i := range g.rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	return picked
}
