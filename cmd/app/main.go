package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wichananm65/kombin-backend/internal/category"
	"github.com/wichananm65/kombin-backend/internal/config"
	"github.com/wichananm65/kombin-backend/internal/heuristics"
	"github.com/wichananm65/kombin-backend/internal/logging"
	"github.com/wichananm65/kombin-backend/internal/metrics"
	"github.com/wichananm65/kombin-backend/internal/palette"
	"github.com/wichananm65/kombin-backend/internal/product"
	"github.com/wichananm65/kombin-backend/internal/recommend"
	"github.com/wichananm65/kombin-backend/internal/styling"
	"github.com/wichananm65/kombin-backend/internal/taxonomy"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader, closeLoader := mustLoader(cfg)
	defer closeLoader()

	catalog := product.NewCatalog(nil)
	productService := product.NewService(catalog, loader)
	// an empty catalog is served until a reload succeeds
	if _, err := productService.Reload(ctx); err != nil {
		logging.Warn().Err(err).Str("source", cfg.Catalog.Source).Msg("starting with an empty catalog")
	}

	if cfg.Catalog.Source == config.SourceFile && cfg.Catalog.Watch {
		watcher := product.NewWatcher(cfg.Catalog.Path, productService)
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logging.Error().Err(err).Msg("catalog watcher stopped")
			}
		}()
	}

	engine, err := recommend.NewEngine(catalog, recommend.Config{
		DefaultCount: cfg.Recommend.DefaultCount,
		MaxCount:     cfg.Recommend.MaxCount,
		Seed:         cfg.Recommend.Seed,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to build recommendation engine")
	}

	app := fiber.New(fiber.Config{
		AppName:      "kombin",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})
	app.Use(recover.New())
	setupCORS(app, cfg.Security.CORSOrigins)
	app.Use(logging.Middleware())
	app.Use(metrics.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "products": productService.Count()})
	})
	app.Get("/metrics", metrics.Handler())

	recommend.NewHandler(recommend.NewService(engine, cfg.Recommend.MaxCount)).RegisterPublicRoutes(app)
	category.NewHandler(category.NewService(category.NewTaxonomyRepository(taxonomy.Default(), catalog))).RegisterPublicRoutes(app)
	styling.NewHandler(styling.NewService(palette.Default(), heuristics.Default())).RegisterPublicRoutes(app)
	product.NewHandler(productService, cfg.Catalog.AllowReload).RegisterPublicRoutes(app)

	go func() {
		<-ctx.Done()
		logging.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			logging.Error().Err(err).Msg("shutdown failed")
		}
	}()

	logging.Info().Str("addr", cfg.Server.Addr).Int("products", productService.Count()).Msg("listening")
	if err := app.Listen(cfg.Server.Addr); err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
}

func setupCORS(app *fiber.App, origins []string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + logging.RequestIDHeader,
	}))
}

// mustLoader picks the catalog source. The returned func releases whatever
// the loader holds open.
func mustLoader(cfg *config.Config) (product.Loader, func()) {
	if cfg.Catalog.Source != config.SourcePostgres {
		return product.NewFileLoader(cfg.Catalog.Path), func() {}
	}
	db := mustOpenDB(cfg.Database.URL)
	return product.NewPostgresLoader(db), func() { _ = db.Close() }
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		logging.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logging.Fatal().Err(err).Msg("failed to reach database")
	}

	return db
}
