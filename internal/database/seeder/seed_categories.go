package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"skill-match/internal/database"
	"skill-match/internal/domain/skill"

	"gopkg.in/yaml.v3"
)

const categoriesLockKey = 746295115

// CategoriesSeeder installs the default skill catalog when the catalog is empty.
// A non-empty catalog is left alone, even if it lacks some defaults.
type CategoriesSeeder struct {
	// File optionally replaces the built-in defaults with a YAML catalog.
	File string
}

func (CategoriesSeeder) Name() string { return "skill_categories" }

func (s CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skill_categories", "id", "name", "keywords", "icon", "color", "sort_order", "created_at"); err != nil {
		return err
	}

	items, err := s.categories()
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(categoriesLockKey)); err != nil {
			return fmt.Errorf("advisory lock: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM skill_categories`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, c := range items {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skill_categories (id, name, keywords, icon, color, sort_order)
				 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
				 ON CONFLICT (name) DO NOTHING`,
				c.Name, NormalizeKeywords(c.Keywords), c.Icon, c.Color, c.Order,
			); err != nil {
				return fmt.Errorf("insert %s: %w", c.Name, err)
			}
		}
		return nil
	})
}

func (s CategoriesSeeder) categories() ([]skill.Category, error) {
	if strings.TrimSpace(s.File) == "" {
		return skill.DefaultCategories(), nil
	}
	return LoadCategoryFile(s.File)
}

type categoryFile struct {
	Categories []struct {
		Name     string   `yaml:"name"`
		Icon     string   `yaml:"icon"`
		Color    string   `yaml:"color"`
		Order    int      `yaml:"order"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"categories"`
}

// LoadCategoryFile reads a YAML catalog of the form
//
//	categories:
//	  - name: Frontend
//	    order: 1
//	    keywords: [react, vue]
func LoadCategoryFile(path string) ([]skill.Category, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category file: %w", err)
	}
	return ParseCategories(b)
}

func ParseCategories(b []byte) ([]skill.Category, error) {
	var f categoryFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse category file: %w", err)
	}

	out := make([]skill.Category, 0, len(f.Categories))
	seen := map[string]struct{}{}
	for i, c := range f.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category #%d: empty name", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("category %q: duplicate name", name)
		}
		seen[name] = struct{}{}
		out = append(out, skill.Category{
			Name:     name,
			Icon:     c.Icon,
			Color:    c.Color,
			Order:    c.Order,
			Keywords: NormalizeKeywords(c.Keywords),
		})
	}
	return out, nil
}

// NormalizeKeywords lowercases and trims keywords, dropping blanks and repeats.
func NormalizeKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, k := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
