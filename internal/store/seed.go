package store

import (
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
)

const day = 24 * time.Hour

// SeedFunc produces the objectives used when no readable document exists.
type SeedFunc func(now time.Time) []models.Objective

func sampleKR(title string, t models.KeyResultType, current, target float64, unit string) models.KeyResult {
	kr := models.NewKeyResult(title, t, target, unit)
	kr.CurrentValue = current
	return kr
}

func sampleObjective(title, desc string, now time.Time, startedDaysAgo, dueInDays int, krs ...models.KeyResult) models.Objective {
	o := models.NewObjective(title, now.Add(time.Duration(dueInDays)*day), now.Add(-time.Duration(startedDaysAgo)*day))
	o.Description = desc
	o.KeyResults = krs
	return o
}

// SampleObjectives returns three demonstration objectives covering every key result type.
func SampleObjectives(now time.Time) []models.Objective {
	return []models.Objective{
		sampleObjective("Improve Physical Fitness", "Prepare for the summer marathon", now, 5, 30,
			sampleKR("Run weekly", models.TypeNumber, 1, 3, "times"),
			sampleKR("Lose weight", models.TypeNumber, 0.5, 5, "kg"),
		),
		sampleObjective("Master Go Development", "Learn the standard library and tooling deeply", now, 10, 60,
			sampleKR("Finish Go course", models.TypePercentage, 25, 100, "%"),
			sampleKR("Publish a module", models.TypeBoolean, 0, 1, "Done"),
		),
		sampleObjective("Grow Business Revenue", "Focus on new customer acquisition", now, 15, 90,
			sampleKR("Achieve Q1 revenue", models.TypeCurrency, 5000, 20000, "USD"),
		),
	}
}
