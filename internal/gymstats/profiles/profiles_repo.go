package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/liftlog/backend/internal/auth"
	"github.com/liftlog/backend/internal/telemetry/tracing"
	"github.com/liftlog/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO user_profile
				(username, password_hash, body_weight, gender, age)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		profile.Username, profile.PasswordHash,
		profile.BodyWeight, profile.Gender, profile.Age,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	// pgx defers execution errors until the rows are consumed, so a
	// constraint violation first shows up here
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return nil, ErrUsernameTaken
			}
			return nil, err
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("profile.id", id))

	profile.ID = id
	return &profile, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return r.getOne(ctx, `
		SELECT
			id, username, password_hash, body_weight, gender, age
		FROM user_profile
		WHERE id = $1;`, id)
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	return r.getOne(ctx, `
		SELECT
			id, username, password_hash, body_weight, gender, age
		FROM user_profile
		WHERE username = $1;`, username)
}

// FindUserByUsername returns the account id and password hash for a
// username, used by the login flow.
func (r *Repo) FindUserByUsername(ctx context.Context, username string) (int, string, error) {
	profile, err := r.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return 0, "", auth.ErrUserNotFound
		}
		return 0, "", err
	}
	return profile.ID, profile.PasswordHash, nil
}

func (r *Repo) getOne(ctx context.Context, query string, arg any) (*Profile, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2profiles(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrProfileNotFound
	}

	return &found[0], nil
}

func (r *Repo) UpdateBodyMetrics(ctx context.Context, id int, metrics BodyMetrics) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.updateBodyMetrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_profile SET body_weight = $1, gender = $2, age = $3 WHERE id = $4;`,
		metrics.BodyWeight, metrics.Gender, metrics.Age, id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (r *Repo) rows2profiles(rows pgx.Rows) ([]Profile, error) {
	var found []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(
			&p.ID, &p.Username, &p.PasswordHash,
			&p.BodyWeight, &p.Gender, &p.Age,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		found = append(found, p)
	}
	return found, nil
}
