package repository

import (
	"context"

	"skill-match/internal/database"
	"skill-match/internal/database/postgres"
	"skill-match/internal/domain/user"

	"github.com/google/uuid"
)

type StudentFilter struct {
	// ExcludeSwipedBy hides students the given user already swiped on.
	ExcludeSwipedBy uuid.UUID
}

type ProfileRepository interface {
	// FetchAllDistinctSkills aggregates the skill universe across all student
	// profiles, trimmed and deduplicated ignoring case.
	FetchAllDistinctSkills(ctx context.Context) ([]string, error)
	GetStudentProfile(ctx context.Context, userID uuid.UUID) (user.StudentProfile, error)
	UpsertStudentProfile(ctx context.Context, p user.StudentProfile) (user.StudentProfile, error)
	ListStudentProfiles(ctx context.Context, f StudentFilter) ([]user.StudentProfile, error)
	GetEmployerProfile(ctx context.Context, userID uuid.UUID) (user.EmployerProfile, error)
	UpsertEmployerProfile(ctx context.Context, p user.EmployerProfile) (user.EmployerProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FetchAllDistinctSkills(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (lower(btrim(s))) btrim(s)
		 FROM student_profiles sp, unnest(sp.skills) AS s
		 WHERE btrim(s) <> ''
		 ORDER BY lower(btrim(s)), btrim(s)`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const studentColumns = `user_id, full_name, university, headline, bio, skills, updated_at`

func scanStudent(row database.Row) (user.StudentProfile, error) {
	var p user.StudentProfile
	if err := row.Scan(&p.UserID, &p.FullName, &p.University, &p.Headline, &p.Bio, &p.Skills, &p.UpdatedAt); err != nil {
		return user.StudentProfile{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

func (r *PostgresProfileRepository) GetStudentProfile(ctx context.Context, userID uuid.UUID) (user.StudentProfile, error) {
	p, err := scanStudent(r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM student_profiles WHERE user_id = $1`, userID))
	if err != nil {
		if postgres.IsNoRows(err) {
			return user.StudentProfile{}, user.ErrProfileNotFound
		}
		return user.StudentProfile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) UpsertStudentProfile(ctx context.Context, p user.StudentProfile) (user.StudentProfile, error) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	saved, err := scanStudent(r.db.QueryRow(ctx,
		`INSERT INTO student_profiles (user_id, full_name, university, headline, bio, skills, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			university = EXCLUDED.university,
			headline = EXCLUDED.headline,
			bio = EXCLUDED.bio,
			skills = EXCLUDED.skills,
			updated_at = EXCLUDED.updated_at
		 RETURNING `+studentColumns,
		p.UserID, p.FullName, p.University, p.Headline, p.Bio, p.Skills,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return user.StudentProfile{}, user.ErrNotFound
		}
		return user.StudentProfile{}, err
	}
	return saved, nil
}

func (r *PostgresProfileRepository) ListStudentProfiles(ctx context.Context, f StudentFilter) ([]user.StudentProfile, error) {
	var exclude any
	if f.ExcludeSwipedBy != uuid.Nil {
		exclude = f.ExcludeSwipedBy
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+`
		 FROM student_profiles sp
		 WHERE $1::uuid IS NULL
			OR NOT EXISTS (SELECT 1 FROM swipes sw WHERE sw.actor_id = $1 AND sw.target_id = sp.user_id)
		 ORDER BY full_name ASC, user_id ASC`,
		exclude,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.StudentProfile, 0)
	for rows.Next() {
		p, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const employerColumns = `user_id, company_name, industry, description, required_skills, updated_at`

func scanEmployer(row database.Row) (user.EmployerProfile, error) {
	var p user.EmployerProfile
	if err := row.Scan(&p.UserID, &p.CompanyName, &p.Industry, &p.Description, &p.RequiredSkills, &p.UpdatedAt); err != nil {
		return user.EmployerProfile{}, err
	}
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	return p, nil
}

func (r *PostgresProfileRepository) GetEmployerProfile(ctx context.Context, userID uuid.UUID) (user.EmployerProfile, error) {
	p, err := scanEmployer(r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employer_profiles WHERE user_id = $1`, userID))
	if err != nil {
		if postgres.IsNoRows(err) {
			return user.EmployerProfile{}, user.ErrProfileNotFound
		}
		return user.EmployerProfile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) UpsertEmployerProfile(ctx context.Context, p user.EmployerProfile) (user.EmployerProfile, error) {
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	saved, err := scanEmployer(r.db.QueryRow(ctx,
		`INSERT INTO employer_profiles (user_id, company_name, industry, description, required_skills, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			industry = EXCLUDED.industry,
			description = EXCLUDED.description,
			required_skills = EXCLUDED.required_skills,
			updated_at = EXCLUDED.updated_at
		 RETURNING `+employerColumns,
		p.UserID, p.CompanyName, p.Industry, p.Description, p.RequiredSkills,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return user.EmployerProfile{}, user.ErrNotFound
		}
		return user.EmployerProfile{}, err
	}
	return saved, nil
}
