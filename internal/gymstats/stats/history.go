// Package stats turns raw logged sets into derived metrics: one rep
// max estimates, per day exercise history, and per muscle group
// advancement levels against the strength standards table.
package stats

import (
	"sort"
	"time"

	"github.com/liftlog/backend/internal/gymstats/onerm"
	"github.com/liftlog/backend/internal/gymstats/sets"
)

// HistorySet is one qualifying set within a history point.
type HistorySet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Volume float64 `json:"volume"`
}

// HistoryPoint groups the qualifying sets of one calendar day.
type HistoryPoint struct {
	Date time.Time    `json:"date"`
	Sets []HistorySet `json:"sets"`
}

// Qualifies reports whether a set counts towards statistics:
// not a warmup, with both weight and reps present and positive.
func Qualifies(s sets.Set) bool {
	if s.Warmup {
		return false
	}
	if s.Weight == nil || s.Reps == nil {
		return false
	}
	return *s.Weight > 0 && *s.Reps > 0
}

// QualifyingSets filters out warmups and incomplete entries.
func QualifyingSets(all []sets.Set) []sets.Set {
	var qualifying []sets.Set
	for _, s := range all {
		if Qualifies(s) {
			qualifying = append(qualifying, s)
		}
	}
	return qualifying
}

// DayOf truncates a timestamp to its UTC calendar date.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BuildHistory groups the qualifying sets by calendar day, newest day
// first, keeping chronological set order within each day. A negative
// limit means all days, limit 0 means none.
func BuildHistory(all []sets.Set, limit int) []HistoryPoint {
	qualifying := QualifyingSets(all)
	if len(qualifying) == 0 || limit == 0 {
		return nil
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].LoggedAt.Before(qualifying[j].LoggedAt)
	})

	byDay := make(map[time.Time][]HistorySet)
	var days []time.Time
	for _, s := range qualifying {
		day := DayOf(s.LoggedAt)
		if _, ok := byDay[day]; !ok {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], HistorySet{
			Weight: *s.Weight,
			Reps:   *s.Reps,
			Volume: onerm.Volume(*s.Weight, *s.Reps),
		})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	if limit > 0 && limit < len(days) {
		days = days[:limit]
	}

	points := make([]HistoryPoint, 0, len(days))
	for _, day := range days {
		points = append(points, HistoryPoint{
			Date: day,
			Sets: byDay[day],
		})
	}
	return points
}
