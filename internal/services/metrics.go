package services

import "github.com/mfialho/dietlog-backend/internal/models"

// ComputeMetrics derives adherence metrics from a user's meals in a single
// pass. The slice must already be ordered by datetime descending: the best
// streak is read over history backwards from now, which is what makes it a
// "recent adherence" figure rather than an all-time chronological one.
func ComputeMetrics(meals []models.Meal) models.Metrics {
	m := models.Metrics{MealsQuantity: len(meals)}

	currentRun := 0
	for _, meal := range meals {
		if meal.IsOnDiet {
			m.MealsOnDietQuantity++
			currentRun++
			// Strictly greater: an equal-length later run never replaces
			// the recorded best.
			if currentRun > m.BestOnDietSequence {
				m.BestOnDietSequence = currentRun
			}
		} else {
			m.MealsOffDietQuantity++
			currentRun = 0
		}
	}

	return m
}
