// Package standards holds the strength standards reference table used
// to rank a user's best lifts per muscle group against population norms.
package standards

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed standards.toml
var embeddedStandards []byte

type Level int

const (
	LevelNoData Level = iota
	LevelBeginner
	LevelNovice
	LevelIntermediate
	LevelAdvanced
	LevelElite
)

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "beginner"
	case LevelNovice:
		return "novice"
	case LevelIntermediate:
		return "intermediate"
	case LevelAdvanced:
		return "advanced"
	case LevelElite:
		return "elite"
	default:
		return "no data"
	}
}

// Thresholds are the minimum one rep max values (kg) for each level.
type Thresholds struct {
	Beginner     float64 `toml:"beginner" json:"beginner"`
	Novice       float64 `toml:"novice" json:"novice"`
	Intermediate float64 `toml:"intermediate" json:"intermediate"`
	Advanced     float64 `toml:"advanced" json:"advanced"`
	Elite        float64 `toml:"elite" json:"elite"`
}

// AgeGroup is a named age bucket, inclusive on both ends.
// A nil bound means the bucket is open on that side.
type AgeGroup struct {
	Name   string `toml:"name" json:"name"`
	MinAge *int   `toml:"min_age" json:"minAge,omitempty"`
	MaxAge *int   `toml:"max_age" json:"maxAge,omitempty"`
}

func (ag AgeGroup) Contains(age int) bool {
	if ag.MinAge != nil && age < *ag.MinAge {
		return false
	}
	if ag.MaxAge != nil && age > *ag.MaxAge {
		return false
	}
	return true
}

// Table is the full standards table, loaded once at startup and
// never mutated afterwards.
type Table struct {
	DefaultGender   string     `toml:"default_gender" json:"defaultGender"`
	DefaultAgeGroup string     `toml:"default_age_group" json:"defaultAgeGroup"`
	Genders         []string   `toml:"genders" json:"genders"`
	AgeGroups       []AgeGroup `toml:"age_groups" json:"ageGroups"`
	// muscle group -> gender -> age group name -> thresholds
	MuscleGroups map[string]map[string]map[string]Thresholds `toml:"muscle_groups" json:"muscleGroups"`
}

// Load parses the embedded standards table.
func Load() (*Table, error) {
	return load(embeddedStandards)
}

// LoadFromFile parses a standards table override from disk.
func LoadFromFile(path string) (*Table, error) {
	var t Table
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode standards file %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func load(data []byte) (*Table, error) {
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode standards table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Table) validate() error {
	if !t.knownGender(t.DefaultGender) {
		return fmt.Errorf("default gender %q not among declared genders", t.DefaultGender)
	}
	found := false
	for _, ag := range t.AgeGroups {
		if ag.Name == t.DefaultAgeGroup {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("default age group %q not among declared age groups", t.DefaultAgeGroup)
	}
	return nil
}

func (t *Table) knownGender(gender string) bool {
	for _, g := range t.Genders {
		if g == gender {
			return true
		}
	}
	return false
}

// ResolveGender maps an optional profile gender onto one of the table's
// enumerated genders, falling back to the table default.
func (t *Table) ResolveGender(gender *string) string {
	if gender != nil && t.knownGender(*gender) {
		return *gender
	}
	return t.DefaultGender
}

// ResolveAgeGroup finds the bucket containing the given age, falling
// back to the table default when age is absent or no bucket matches.
func (t *Table) ResolveAgeGroup(age *int) string {
	if age != nil {
		for _, ag := range t.AgeGroups {
			if ag.Contains(*age) {
				return ag.Name
			}
		}
	}
	return t.DefaultAgeGroup
}

// Lookup returns the thresholds row for the given muscle group,
// gender and age group name.
func (t *Table) Lookup(muscleGroup, gender, ageGroup string) (Thresholds, bool) {
	byGender, ok := t.MuscleGroups[muscleGroup]
	if !ok {
		return Thresholds{}, false
	}
	byAge, ok := byGender[gender]
	if !ok {
		return Thresholds{}, false
	}
	th, ok := byAge[ageGroup]
	return th, ok
}

// LevelFor ranks a best one rep max for a muscle group, given the
// user's optional gender and age. A muscle group missing from the
// table yields LevelNoData; a known group ranks at least LevelBeginner.
func (t *Table) LevelFor(muscleGroup string, gender *string, age *int, best1RM float64) Level {
	th, ok := t.Lookup(muscleGroup, t.ResolveGender(gender), t.ResolveAgeGroup(age))
	if !ok {
		return LevelNoData
	}
	switch {
	case best1RM >= th.Elite:
		return LevelElite
	case best1RM >= th.Advanced:
		return LevelAdvanced
	case best1RM >= th.Intermediate:
		return LevelIntermediate
	case best1RM >= th.Novice:
		return LevelNovice
	default:
		return LevelBeginner
	}
}
