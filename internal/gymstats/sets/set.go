package sets

import "time"

// Set is a single logged workout set. Weight and Reps stay nil when the
// user logged the set without them (e.g. a quick bodyweight note).
type Set struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	ExerciseID int       `json:"exerciseId"`
	ProgramID  *int      `json:"programId,omitempty"`
	SetNumber  int       `json:"setNumber"`
	Weight     *float64  `json:"weight,omitempty"`
	Reps       *int      `json:"reps,omitempty"`
	Warmup     bool      `json:"warmup"`
	LoggedAt   time.Time `json:"loggedAt"`
}

// SetParams filters logged sets. Zero values mean no filter.
type SetParams struct {
	UserID     int
	ExerciseID int
	ProgramID  int
	From       *time.Time
	To         *time.Time
}

type ListParams struct {
	SetParams
	Page int
	Size int
}
