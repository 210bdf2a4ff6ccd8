package models

// Metrics summarizes a user's diet adherence over their whole meal history.
// BestOnDietSequence is the longest unbroken run of on-diet meals when the
// history is scanned most-recent-first.
type Metrics struct {
	MealsQuantity        int `json:"mealsQuantity"`
	MealsOnDietQuantity  int `json:"mealsOnDietQuantity"`
	MealsOffDietQuantity int `json:"mealsOffDietQuantity"`
	BestOnDietSequence   int `json:"bestOnDietSequence"`
}
