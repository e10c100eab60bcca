package repository

import (
	"context"
	"errors"

	"skill-match/internal/database"
	"skill-match/internal/database/postgres"
	"skill-match/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

type CategoryRepository interface {
	// FetchCategories returns the catalog sorted by display order; ties keep
	// insertion order.
	FetchCategories(ctx context.Context) ([]skill.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (skill.Category, error)
	CountCategories(ctx context.Context) (int, error)
	CreateCategory(ctx context.Context, c skill.Category) (skill.Category, error)
	AddKeyword(ctx context.Context, id uuid.UUID, keyword string) (skill.Category, error)
	RemoveKeyword(ctx context.Context, id uuid.UUID, keyword string) (skill.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

const categoryColumns = `id, name, keywords, icon, color, sort_order, created_at`

func scanCategory(row database.Row) (skill.Category, error) {
	var c skill.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Keywords, &c.Icon, &c.Color, &c.Order, &c.CreatedAt); err != nil {
		return skill.Category{}, err
	}
	if c.Keywords == nil {
		c.Keywords = []string{}
	}
	return c, nil
}

func (r *PostgresCategoryRepository) FetchCategories(ctx context.Context) ([]skill.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM skill_categories ORDER BY sort_order ASC, created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCategoryRepository) GetCategory(ctx context.Context, id uuid.UUID) (skill.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM skill_categories WHERE id = $1`, id))
	if err != nil {
		if postgres.IsNoRows(err) {
			return skill.Category{}, ErrCategoryNotFound
		}
		return skill.Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skill_categories`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresCategoryRepository) CreateCategory(ctx context.Context, c skill.Category) (skill.Category, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Keywords == nil {
		c.Keywords = []string{}
	}
	created, err := scanCategory(r.db.QueryRow(ctx,
		`INSERT INTO skill_categories (id, name, keywords, icon, color, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+categoryColumns,
		c.ID, c.Name, c.Keywords, c.Icon, c.Color, c.Order,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return skill.Category{}, ErrCategoryExists
		}
		return skill.Category{}, err
	}
	return created, nil
}

// AddKeyword appends keyword unless the category already has it.
func (r *PostgresCategoryRepository) AddKeyword(ctx context.Context, id uuid.UUID, keyword string) (skill.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`UPDATE skill_categories
		 SET keywords = CASE WHEN $2 = ANY(keywords) THEN keywords ELSE array_append(keywords, $2) END
		 WHERE id = $1
		 RETURNING `+categoryColumns,
		id, keyword,
	))
	if err != nil {
		if postgres.IsNoRows(err) {
			return skill.Category{}, ErrCategoryNotFound
		}
		return skill.Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) RemoveKeyword(ctx context.Context, id uuid.UUID, keyword string) (skill.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`UPDATE skill_categories SET keywords = array_remove(keywords, $2) WHERE id = $1 RETURNING `+categoryColumns,
		id, keyword,
	))
	if err != nil {
		if postgres.IsNoRows(err) {
			return skill.Category{}, ErrCategoryNotFound
		}
		return skill.Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
