package stats

import (
	"sort"

	"github.com/liftlog/backend/internal/gymstats/standards"
)

// MuscleAdvancement ranks one muscle group against the strength
// standards table. StrengthRatio is present only when the user's body
// weight is known.
type MuscleAdvancement struct {
	MuscleGroup      string   `json:"muscleGroup"`
	Level            int      `json:"level"`
	LevelName        string   `json:"levelName"`
	Best1RM          float64  `json:"best1RM"`
	BestExerciseName string   `json:"bestExerciseName"`
	StrengthRatio    *float64 `json:"strengthRatio,omitempty"`
	ExerciseCount    int      `json:"exerciseCount"`
	TotalSetsLogged  int      `json:"totalSetsLogged"`
}

// BodyMap is the per muscle group advancement overview for one user.
// HasBodyMetrics lets the client distinguish "no data" from "computed
// without body metrics".
type BodyMap struct {
	MuscleAdvancements []MuscleAdvancement `json:"muscleAdvancements"`
	HasBodyMetrics     bool                `json:"hasBodyMetrics"`
	BodyWeight         *float64            `json:"bodyWeight,omitempty"`
	Gender             *string             `json:"gender,omitempty"`
	Age                *int                `json:"age,omitempty"`
}

// ExerciseGroupStats pairs an exercise's stats with its muscle group.
type ExerciseGroupStats struct {
	MuscleGroup string
	Stats       ExerciseStats
}

// ComputeBodyMap maps per exercise bests onto advancement levels. Only
// muscle groups with at least one exercise that has qualifying sets
// appear in the result; within a group the exercise with the highest
// Epley estimate wins, first scanned on ties. Groups come out sorted
// by name for deterministic output.
func ComputeBodyMap(
	table *standards.Table,
	exerciseStats []ExerciseGroupStats,
	bodyWeight *float64,
	gender *string,
	age *int,
) BodyMap {
	bodyMap := BodyMap{
		HasBodyMetrics: bodyWeight != nil || gender != nil || age != nil,
		BodyWeight:     bodyWeight,
		Gender:         gender,
		Age:            age,
	}

	type groupAgg struct {
		best             *MetricRecord
		bestExerciseName string
		exerciseCount    int
		totalSets        int
	}
	byGroup := make(map[string]*groupAgg)
	var groupNames []string

	for _, egs := range exerciseStats {
		if egs.Stats.Epley1RM == nil {
			continue // no qualifying sets for this exercise
		}
		agg, ok := byGroup[egs.MuscleGroup]
		if !ok {
			agg = &groupAgg{}
			byGroup[egs.MuscleGroup] = agg
			groupNames = append(groupNames, egs.MuscleGroup)
		}
		agg.exerciseCount++
		agg.totalSets += egs.Stats.SetCount
		if agg.best == nil || egs.Stats.Epley1RM.Value > agg.best.Value {
			agg.best = egs.Stats.Epley1RM
			agg.bestExerciseName = egs.Stats.ExerciseName
		}
	}

	sort.Strings(groupNames)

	for _, group := range groupNames {
		agg := byGroup[group]
		level := table.LevelFor(group, gender, age, agg.best.Value)

		advancement := MuscleAdvancement{
			MuscleGroup:      group,
			Level:            int(level),
			LevelName:        level.String(),
			Best1RM:          agg.best.Value,
			BestExerciseName: agg.bestExerciseName,
			ExerciseCount:    agg.exerciseCount,
			TotalSetsLogged:  agg.totalSets,
		}
		if bodyWeight != nil && *bodyWeight > 0 {
			ratio := agg.best.Value / *bodyWeight
			advancement.StrengthRatio = &ratio
		}

		bodyMap.MuscleAdvancements = append(bodyMap.MuscleAdvancements, advancement)
	}

	return bodyMap
}
