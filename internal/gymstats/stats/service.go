package stats

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/liftlog/backend/internal/gymstats/exercises"
	"github.com/liftlog/backend/internal/gymstats/profiles"
	"github.com/liftlog/backend/internal/gymstats/sets"
	"github.com/liftlog/backend/internal/gymstats/standards"
	"github.com/liftlog/backend/internal/telemetry/metrics"
	"github.com/liftlog/backend/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats_test

type setsRepo interface {
	ListAll(ctx context.Context, params sets.SetParams) ([]sets.Set, error)
}

type exercisesCatalog interface {
	ListAll(ctx context.Context, params exercises.ExerciseParams) ([]exercises.Exercise, error)
}

type profilesRepo interface {
	Get(ctx context.Context, id int) (*profiles.Profile, error)
}

// Service fetches a full snapshot of the user's data per request and
// runs the pure computations over it. It holds no per user state, the
// standards table is immutable after load.
type Service struct {
	setsRepo  setsRepo
	catalog   exercisesCatalog
	profiles  profilesRepo
	standards *standards.Table
	metrics   *metrics.Manager
}

func NewService(
	setsRepo setsRepo,
	catalog exercisesCatalog,
	profilesRepo profilesRepo,
	standardsTable *standards.Table,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		setsRepo:  setsRepo,
		catalog:   catalog,
		profiles:  profilesRepo,
		standards: standardsTable,
		metrics:   metricsManager,
	}
}

func (s *Service) observeComputeDuration(begin time.Time) {
	if s.metrics != nil {
		s.metrics.HistStatsComputeDuration.Observe(time.Since(begin).Seconds())
	}
}

func (s *Service) Standards() *standards.Table {
	return s.standards
}

// StatsByExercise computes per exercise stats over all sets the user
// ever logged, keyed by exercise ID.
func (s *Service) StatsByExercise(ctx context.Context, userID int) (_ map[int]ExerciseStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.byExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	allSets, err := s.setsRepo.ListAll(ctx, sets.SetParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	return s.statsPerExercise(ctx, userID, allSets)
}

// StatsByProgram is like StatsByExercise, restricted to the sets
// logged within one program.
func (s *Service) StatsByProgram(ctx context.Context, userID, programID int) (_ map[int]ExerciseStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.byProgram")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.Int("program_id", programID))

	allSets, err := s.setsRepo.ListAll(ctx, sets.SetParams{UserID: userID, ProgramID: programID})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	return s.statsPerExercise(ctx, userID, allSets)
}

// StatsByMuscleGroup computes stats for every catalog exercise tagged
// with the given muscle group. Exercises the user never logged sets
// for come back with all metric fields nil.
func (s *Service) StatsByMuscleGroup(ctx context.Context, userID int, muscleGroup string) (_ []ExerciseStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.byMuscleGroup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("muscle_group", muscleGroup))

	groupExercises, err := s.catalog.ListAll(ctx, exercises.ExerciseParams{
		UserID:      userID,
		MuscleGroup: muscleGroup,
	})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	allSets, err := s.setsRepo.ListAll(ctx, sets.SetParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	defer s.observeComputeDuration(time.Now())

	setsByExercise := make(map[int][]sets.Set)
	for _, set := range allSets {
		setsByExercise[set.ExerciseID] = append(setsByExercise[set.ExerciseID], set)
	}

	var found []ExerciseStats
	for _, ex := range groupExercises {
		found = append(found, ComputeExerciseStats(ex.ID, ex.Name, setsByExercise[ex.ID]))
	}
	return found, nil
}

// ExerciseHistory returns the per day history for one exercise,
// newest day first. A negative limit returns all days.
func (s *Service) ExerciseHistory(ctx context.Context, userID, exerciseID, limit int) (_ []HistoryPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.exerciseHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.Int("exercise_id", exerciseID))
	span.SetAttributes(attribute.Int("limit", limit))

	exSets, err := s.setsRepo.ListAll(ctx, sets.SetParams{UserID: userID, ExerciseID: exerciseID})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	return BuildHistory(exSets, limit), nil
}

// BodyMap computes the advancement overview for all muscle groups the
// user has data for.
func (s *Service) BodyMap(ctx context.Context, userID int) (_ *BodyMap, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.bodyMap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	allSets, err := s.setsRepo.ListAll(ctx, sets.SetParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	userExercises, err := s.catalog.ListAll(ctx, exercises.ExerciseParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	defer s.observeComputeDuration(time.Now())

	setsByExercise := make(map[int][]sets.Set)
	for _, set := range allSets {
		setsByExercise[set.ExerciseID] = append(setsByExercise[set.ExerciseID], set)
	}

	var groupStats []ExerciseGroupStats
	for _, ex := range userExercises {
		exSets, ok := setsByExercise[ex.ID]
		if !ok {
			continue
		}
		groupStats = append(groupStats, ExerciseGroupStats{
			MuscleGroup: ex.MuscleGroup,
			Stats:       ComputeExerciseStats(ex.ID, ex.Name, exSets),
		})
	}

	bodyMap := ComputeBodyMap(s.standards, groupStats, profile.BodyWeight, profile.Gender, profile.Age)
	return &bodyMap, nil
}

func (s *Service) statsPerExercise(ctx context.Context, userID int, allSets []sets.Set) (map[int]ExerciseStats, error) {
	defer s.observeComputeDuration(time.Now())

	setsByExercise := make(map[int][]sets.Set)
	for _, set := range allSets {
		setsByExercise[set.ExerciseID] = append(setsByExercise[set.ExerciseID], set)
	}

	userExercises, err := s.catalog.ListAll(ctx, exercises.ExerciseParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	exerciseNames := make(map[int]string, len(userExercises))
	for _, ex := range userExercises {
		exerciseNames[ex.ID] = ex.Name
	}

	found := make(map[int]ExerciseStats, len(setsByExercise))
	for exerciseID, exSets := range setsByExercise {
		found[exerciseID] = ComputeExerciseStats(exerciseID, exerciseNames[exerciseID], exSets)
	}
	return found, nil
}
