// @title                       Gesco API
// @version                     1.0
// @description                 Back-office de gestion multi-entreprises (OHADA / CEMAC) : catalogue, stock, ventes, achats, comptabilité, trésorerie et paie.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Jeton d'accès : « Bearer <jeton> ».
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/docs"
	"github.com/gesco-erp/gesco-api/internal/application/achats"
	"github.com/gesco-erp/gesco-api/internal/application/auth"
	"github.com/gesco-erp/gesco-api/internal/application/catalogue"
	"github.com/gesco-erp/gesco-api/internal/application/commercial"
	"github.com/gesco-erp/gesco-api/internal/application/comptabilite"
	"github.com/gesco-erp/gesco-api/internal/application/paie"
	"github.com/gesco-erp/gesco-api/internal/application/parametrage"
	"github.com/gesco-erp/gesco-api/internal/application/partenaires"
	"github.com/gesco-erp/gesco-api/internal/application/rapports"
	"github.com/gesco-erp/gesco-api/internal/application/stock"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/tresorerie"
	"github.com/gesco-erp/gesco-api/internal/infrastructure/cache"
	"github.com/gesco-erp/gesco-api/internal/infrastructure/memory"
	"github.com/gesco-erp/gesco-api/internal/infrastructure/postgres"
	httpRouter "github.com/gesco-erp/gesco-api/internal/interfaces/http"
	"github.com/gesco-erp/gesco-api/pkg/config"
	"github.com/gesco-erp/gesco-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})
	if err != nil {
		panic("initialisation du journal : " + err.Error())
	}
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	store := postgres.NewStore(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis facultatif : sans REDIS_URL, limiteur et registre des jetons restent en processus.
	var (
		registry auth.RefreshRegistry = memory.NewRefreshRegistry()
		limiter  httpRouter.RateLimiter
	)
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("connexion à Redis")
		}
		defer rdb.Close()
		registry = cache.NewRefreshRegistry(rdb)
		if cfg.Security.RateLimitPerMinute > 0 {
			limiter = cache.NewRateLimiter(rdb, cfg.Security.RateLimitPerMinute, time.Minute)
		}
	} else if cfg.Security.RateLimitPerMinute > 0 {
		limiter = memory.NewRateLimiter(cfg.Security.RateLimitPerMinute, time.Minute)
	}

	authSvc := auth.NewService(store, registry, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL(),
		RefreshTTL: cfg.JWT.RefreshTTL(),
		BcryptCost: cfg.Security.BcryptRounds,
	})
	stockSvc := stock.NewService(store, txRunner)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Limiter:     limiter,
	}, log)

	// Swagger UI : http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name + " API"
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:           authSvc,
		Authorizer:     tenant.NewAuthorizer(store.Permissions()),
		Parametrage:    parametrage.NewService(store),
		Catalogue:      catalogue.NewService(store, txRunner),
		Partenaires:    partenaires.NewService(store, txRunner),
		Stock:          stockSvc,
		Achats:         achats.NewService(store, txRunner, stockSvc),
		Documents:      commercial.NewService(store, txRunner),
		Comptabilite:   comptabilite.NewService(store, txRunner),
		Tresorerie:     tresorerie.NewService(store, txRunner, cfg.Metier.ReglementImputationAuto),
		Paie:           paie.NewService(store, txRunner),
		Rapports:       rapports.NewService(store),
		PageSize:       cfg.Paginator.DefaultPageSize,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
