package app

import (
	"context"
	"time"

	"skill-match/internal/config"
	"skill-match/internal/database"
	"skill-match/internal/database/migration"
	dbpostgres "skill-match/internal/database/postgres"
	"skill-match/internal/database/seeder"
	"skill-match/internal/infrastructure/cache"
	"skill-match/internal/logger"
	"skill-match/internal/pkg/jwt"
	"skill-match/internal/repository"
	"skill-match/internal/usecase"
	"skill-match/internal/ws"
	"skill-match/migrations"

	"go.uber.org/zap"
)

// Container owns the long-lived dependencies shared by every command.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Tokens *jwt.HMACService
	Hub    *ws.Hub

	Auth           *usecase.Auth
	Profile        *usecase.Profile
	Catalog        *usecase.Catalog
	Classification *usecase.Classification
	Candidates     *usecase.Candidates
	Swipes         *usecase.Swipes
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, log)
	tokens := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn)
	hub := ws.NewHub(log)

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	categories := repository.NewPostgresCategoryRepository(db)
	swipes := repository.NewPostgresSwipeRepository(db)

	seeds := seeder.Runner{Seeders: seeder.Defaults(cfg.Database), Logger: log.Named("seeder")}
	seed := func(ctx context.Context) error { return seeds.Run(ctx, db) }

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  redis,
		Tokens: tokens,
		Hub:    hub,

		Auth:           usecase.NewAuthUsecase(users, tokens),
		Profile:        usecase.NewProfileUsecase(users, profiles, redis),
		Catalog:        usecase.NewCatalogUsecase(categories, seed, redis, log.Named("catalog")),
		Classification: usecase.NewClassificationUsecase(categories, profiles, redis, log.Named("classification")),
		Candidates:     usecase.NewCandidateUsecase(profiles, log.Named("candidates")),
		Swipes:         usecase.NewSwipeUsecase(users, swipes, ws.NewNotifier(hub, log), log.Named("swipes")),
	}, nil
}

func (c *Container) Migrate(ctx context.Context) error {
	return migration.Runner{FS: migrations.FS, Logger: c.Logger.Named("migration")}.Run(ctx, c.DB)
}

func (c *Container) Seed(ctx context.Context) error {
	return c.Catalog.EnsureDefaults(ctx)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
