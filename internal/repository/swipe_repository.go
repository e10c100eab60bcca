package repository

import (
	"context"
	"time"

	"skill-match/internal/database"
	"skill-match/internal/database/postgres"
	"skill-match/internal/domain/match"
	"skill-match/internal/domain/user"

	"github.com/google/uuid"
)

type SwipeRepository interface {
	RecordSwipe(ctx context.Context, s match.Swipe) error
	HasLiked(ctx context.Context, actorID, targetID uuid.UUID) (bool, error)
	// CreateMatch is idempotent per pair; created is false when the match existed.
	CreateMatch(ctx context.Context, m match.Match) (saved match.Match, created bool, err error)
	ListMatches(ctx context.Context, userID uuid.UUID) ([]match.Match, error)
}

type PostgresSwipeRepository struct {
	db database.DB
}

func NewPostgresSwipeRepository(db database.DB) *PostgresSwipeRepository {
	return &PostgresSwipeRepository{db: db}
}

func (r *PostgresSwipeRepository) RecordSwipe(ctx context.Context, s match.Swipe) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO swipes (id, actor_id, target_id, decision, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (actor_id, target_id) DO UPDATE SET
			decision = EXCLUDED.decision,
			created_at = EXCLUDED.created_at`,
		s.ID, s.ActorID, s.TargetID, string(s.Decision), s.CreatedAt,
	)
	if err != nil && isForeignKeyViolation(err) {
		return user.ErrNotFound
	}
	return err
}

func (r *PostgresSwipeRepository) HasLiked(ctx context.Context, actorID, targetID uuid.UUID) (bool, error) {
	var liked bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM swipes WHERE actor_id = $1 AND target_id = $2 AND decision = $3)`,
		actorID, targetID, string(match.DecisionLike),
	).Scan(&liked)
	return liked, err
}

func (r *PostgresSwipeRepository) CreateMatch(ctx context.Context, m match.Match) (match.Match, bool, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.MatchedAt.IsZero() {
		m.MatchedAt = time.Now().UTC()
	}

	var saved match.Match
	err := r.db.QueryRow(ctx,
		`INSERT INTO matches (id, student_id, employer_id, matched_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (student_id, employer_id) DO NOTHING
		 RETURNING id, student_id, employer_id, matched_at`,
		m.ID, m.StudentID, m.EmployerID, m.MatchedAt,
	).Scan(&saved.ID, &saved.StudentID, &saved.EmployerID, &saved.MatchedAt)
	if err == nil {
		return saved, true, nil
	}
	if !postgres.IsNoRows(err) {
		return match.Match{}, false, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT id, student_id, employer_id, matched_at FROM matches WHERE student_id = $1 AND employer_id = $2`,
		m.StudentID, m.EmployerID,
	).Scan(&saved.ID, &saved.StudentID, &saved.EmployerID, &saved.MatchedAt)
	if err != nil {
		return match.Match{}, false, err
	}
	return saved, false, nil
}

func (r *PostgresSwipeRepository) ListMatches(ctx context.Context, userID uuid.UUID) ([]match.Match, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, student_id, employer_id, matched_at
		 FROM matches
		 WHERE student_id = $1 OR employer_id = $1
		 ORDER BY matched_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		var m match.Match
		if err := rows.Scan(&m.ID, &m.StudentID, &m.EmployerID, &m.MatchedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
