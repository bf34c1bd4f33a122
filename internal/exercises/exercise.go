package exercises

// Exercise is one catalog entry. Catalog data is shared by all users and
// referenced by workout plans and logged sets.
type Exercise struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	PrimaryMuscle   string  `json:"primary_muscle"`
	SecondaryMuscle *string `json:"secondary_muscle"`
	EquipmentID     *int    `json:"equipment_id"`
	CaloriesPerMin  float64 `json:"calories_per_min"`
}

// DefaultCaloriesPerMin is used when a new catalog entry comes without
// an energy estimate.
const DefaultCaloriesPerMin = 5.0

type Equipment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
