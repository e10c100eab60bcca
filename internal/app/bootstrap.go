package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"skill-match/internal/config"
	"skill-match/internal/delivery/http/handler"
	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/delivery/http/routes"
	v1 "skill-match/internal/delivery/http/routes/v1"
	"skill-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Fiber *fiber.App
	// WS serves the notification socket on its own listener; nil when no WS
	// port is configured.
	WS *http.Server

	container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	a := &App{Fiber: f, container: c}
	if addr, err := ListenAddr(c.Config.App.WSPort); err == nil {
		mux := http.NewServeMux()
		mux.Handle("/ws", ws.NewHandler(c.Hub, c.Tokens, c.Logger))
		a.WS = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	}
	return a
}

// Bootstrap builds the container, applies migrations and seeds when enabled,
// and returns a ready App plus its cleanup.
func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.RunMigrations {
		if err := c.Migrate(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}
	if cfg.Database.RunSeeders {
		if err := c.Seed(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
	}

	return New(c), c.Close, nil
}

// Run serves HTTP and WS until ctx is done, then shuts both down.
func (a *App) Run(ctx context.Context) error {
	cfg := a.container.Config
	log := a.container.Logger

	addr, err := ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.container.Hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		log.Info("http listening", zap.String("addr", addr))
		return a.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	})

	if a.WS != nil {
		g.Go(func() error {
			log.Info("ws listening", zap.String("addr", a.WS.Addr))
			if err := a.WS.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := a.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		if a.WS != nil {
			if err := a.WS.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		log.Info("servers stopped")
		return errors.Join(errs...)
	})

	return g.Wait()
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	auth := middleware.NewAuthMiddleware(c.Tokens)
	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		v1.Handlers{
			Auth:      handler.NewAuthHandler(c.Auth),
			Profile:   handler.NewProfileHandler(c.Profile),
			Category:  handler.NewCategoryHandler(c.Catalog),
			Skill:     handler.NewSkillHandler(c.Classification),
			Candidate: handler.NewCandidateHandler(c.Candidates),
			Swipe:     handler.NewSwipeHandler(c.Swipes),
		},
		auth.Middleware(),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

func (a *App) Container() *Container {
	return a.container
}
