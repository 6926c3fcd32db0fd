package profiles

// Profile is a user account with optional body metrics. The body
// metrics feed the strength standards lookups, so they stay nil until
// the user sets them.
type Profile struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	BodyWeight   *float64 `json:"bodyWeight,omitempty"`
	Gender       *string  `json:"gender,omitempty"`
	Age          *int     `json:"age,omitempty"`
}

// HasBodyMetrics reports whether any body metric is configured.
func (p Profile) HasBodyMetrics() bool {
	return p.BodyWeight != nil || p.Gender != nil || p.Age != nil
}

// BodyMetrics is the updatable part of a profile.
type BodyMetrics struct {
	BodyWeight *float64 `json:"bodyWeight,omitempty"`
	Gender     *string  `json:"gender,omitempty"`
	Age        *int     `json:"age,omitempty"`
}
