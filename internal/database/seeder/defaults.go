package seeder

import "skill-match/internal/config"

func Defaults(cfg config.DatabaseConfig) []Seeder {
	return []Seeder{
		CategoriesSeeder{File: cfg.CategorySeedFile},
	}
}
