package stats

import (
	"sort"
	"time"

	"github.com/liftlog/backend/internal/gymstats/onerm"
	"github.com/liftlog/backend/internal/gymstats/sets"
)

// MetricRecord is a maximum observed for some metric, together with
// the first date it was achieved.
type MetricRecord struct {
	Value float64   `json:"value"`
	Date  time.Time `json:"date"`
}

// ExerciseStats holds the running maxima for one exercise. All metric
// fields stay nil when the exercise has no qualifying sets, absence of
// data is not zero.
type ExerciseStats struct {
	ExerciseID   int           `json:"exerciseId"`
	ExerciseName string        `json:"exerciseName,omitempty"`
	MaxWeight    *MetricRecord `json:"maxWeight,omitempty"`
	Epley1RM     *MetricRecord `json:"epley1RM,omitempty"`
	Brzycki1RM   *MetricRecord `json:"brzycki1RM,omitempty"`
	MaxVolume    *MetricRecord `json:"maxVolume,omitempty"`
	SetCount     int           `json:"setCount"`
}

// update keeps the earliest date on ties, only a strictly greater
// value moves the record.
func update(record *MetricRecord, value float64, date time.Time) *MetricRecord {
	if record == nil {
		return &MetricRecord{Value: value, Date: date}
	}
	if value > record.Value {
		return &MetricRecord{Value: value, Date: date}
	}
	return record
}

// ComputeExerciseStats scans the exercise's sets chronologically and
// tracks four independent maxima. The Brzycki estimate is skipped for
// rep counts where the formula is undefined, the rest of the scan
// proceeds.
func ComputeExerciseStats(exerciseID int, exerciseName string, all []sets.Set) ExerciseStats {
	stats := ExerciseStats{
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
	}

	qualifying := QualifyingSets(all)
	if len(qualifying) == 0 {
		return stats
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].LoggedAt.Before(qualifying[j].LoggedAt)
	})

	for _, s := range qualifying {
		weight, reps := *s.Weight, *s.Reps
		day := DayOf(s.LoggedAt)

		stats.MaxWeight = update(stats.MaxWeight, weight, day)
		stats.Epley1RM = update(stats.Epley1RM, onerm.Epley(weight, reps), day)
		stats.MaxVolume = update(stats.MaxVolume, onerm.Volume(weight, reps), day)

		if brzycki, err := onerm.Brzycki(weight, reps); err == nil {
			stats.Brzycki1RM = update(stats.Brzycki1RM, brzycki, day)
		}
	}

	stats.SetCount = len(qualifying)
	return stats
}
