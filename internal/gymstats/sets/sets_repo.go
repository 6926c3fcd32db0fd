package sets

import (
	"context"
	"errors"
	"fmt"

	"github.com/liftlog/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSetNotFound = errors.New("set not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO logged_set
				(user_id, exercise_id, program_id, set_number, weight, reps, warmup, logged_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		set.UserID, set.ExerciseID, set.ProgramID, set.SetNumber,
		set.Weight, set.Reps, set.Warmup, set.LoggedAt,
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

	span.SetAttributes(attribute.Int("set.id", id))

	set.ID = id
	return &set, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, exercise_id, program_id, set_number, weight, reps, warmup, logged_at
			FROM logged_set
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2sets(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrSetNotFound
	}

	return &found[0], nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM logged_set WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// ListAll returns all logged sets matching the given filters,
// newest first.
func (r *Repo) ListAll(ctx context.Context, params SetParams) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", params.UserID))
	span.SetAttributes(attribute.Int("exercise_id", params.ExerciseID))
	span.SetAttributes(attribute.Int("program_id", params.ProgramID))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, exercise_id, program_id, set_number, weight, reps, warmup, logged_at
			FROM logged_set
				WHERE user_id = $1
				AND ($2::int = 0 OR exercise_id = $2)
				AND ($3::int = 0 OR program_id = $3)
				AND ($4::timestamptz IS NULL OR logged_at >= $4)
				AND ($5::timestamptz IS NULL OR logged_at <= $5)
			ORDER BY logged_at DESC;`,
		params.UserID, params.ExerciseID, params.ProgramID,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2sets(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sets: %w", err)
	}
	return found, nil
}

// List is like ListAll, but returns the requested page plus the total
// count, i.e. is used for pagination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Set, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	span.SetAttributes(attribute.Int("user_id", params.UserID))
	span.SetAttributes(attribute.Int("exercise_id", params.ExerciseID))
	span.SetAttributes(attribute.Int("program_id", params.ProgramID))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.SetsCount(ctx, params.SetParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, exercise_id, program_id, set_number, weight, reps, warmup, logged_at
			FROM logged_set
				WHERE user_id = $1
				AND ($2::int = 0 OR exercise_id = $2)
				AND ($3::int = 0 OR program_id = $3)
				AND ($4::timestamptz IS NULL OR logged_at >= $4)
				AND ($5::timestamptz IS NULL OR logged_at <= $5)
			ORDER BY logged_at DESC
			LIMIT $6
			OFFSET $7;`,
		params.UserID, params.ExerciseID, params.ProgramID,
		params.From, params.To,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	found, err := r.rows2sets(rows)
	if err != nil {
		return nil, -1, err
	}
	return found, countAll, nil
}

func (r *Repo) SetsCount(ctx context.Context, params SetParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM logged_set
			WHERE user_id = $1
			AND ($2::int = 0 OR exercise_id = $2)
			AND ($3::int = 0 OR program_id = $3)
			AND ($4::timestamptz IS NULL OR logged_at >= $4)
			AND ($5::timestamptz IS NULL OR logged_at <= $5);
	`,
		params.UserID, params.ExerciseID, params.ProgramID,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get sets count")
}

func (r *Repo) rows2sets(rows pgx.Rows) ([]Set, error) {
	var found []Set
	for rows.Next() {
		var s Set
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.ExerciseID, &s.ProgramID, &s.SetNumber,
			&s.Weight, &s.Reps, &s.Warmup, &s.LoggedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		found = append(found, s)
	}
	return found, nil
}
