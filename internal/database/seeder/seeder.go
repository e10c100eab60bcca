package seeder

import (
	"context"

	"skill-match/internal/database"
)

// Seeder installs reference data. Run must be safe to repeat.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
