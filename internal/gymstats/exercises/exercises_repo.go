package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/liftlog/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise
				(name, muscle_group, equipment_type, owner_id)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		exercise.Name, exercise.MuscleGroup, exercise.EquipmentType, exercise.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", id))

	exercise.ID = id
	return &exercise, nil
}

// Get returns a shared catalog exercise or one owned by the given
// user. Another user's private exercise is not found.
func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, muscle_group, equipment_type, owner_id
			FROM exercise
			WHERE id = $1
				AND (owner_id IS NULL OR owner_id = $2);`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &found[0], nil
}

// ListAll returns the shared catalog plus the user's own exercises,
// optionally narrowed to a muscle group.
func (r *Repo) ListAll(ctx context.Context, params ExerciseParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", params.UserID))
	span.SetAttributes(attribute.String("muscle_group", params.MuscleGroup))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, muscle_group, equipment_type, owner_id
			FROM exercise
				WHERE (owner_id IS NULL OR owner_id = $1)
				AND ($2::text = '' OR muscle_group = $2)
			ORDER BY id;`,
		params.UserID, params.MuscleGroup,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2exercises(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2exercises: %w", err)
	}
	return found, nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var found []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.MuscleGroup, &e.EquipmentType, &e.OwnerID,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		found = append(found, e)
	}
	return found, nil
}
