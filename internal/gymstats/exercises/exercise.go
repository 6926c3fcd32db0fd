package exercises

// Exercise is a catalog entry mapping an exercise to its muscle group.
// OwnerID is nil for the shared built-in catalog, set for user-defined
// exercises.
type Exercise struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	MuscleGroup   string `json:"muscleGroup"`
	EquipmentType string `json:"equipmentType,omitempty"`
	OwnerID       *int   `json:"ownerId,omitempty"`
}

// ExerciseParams filters catalog entries. Zero values mean no filter.
type ExerciseParams struct {
	// UserID scopes user-defined exercises; shared entries always match.
	UserID      int
	MuscleGroup string
}
