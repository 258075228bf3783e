package router

import (
	"github.com/coinfollow/coinfollow-api/internal/application"
	"github.com/coinfollow/coinfollow-api/internal/container"
	pginfra "github.com/coinfollow/coinfollow-api/internal/infrastructure/postgres"
	handlers "github.com/coinfollow/coinfollow-api/internal/interface/http"
	"github.com/coinfollow/coinfollow-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is populated.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	logger := container.GetLogger()
	cfg := container.GetConfig()

	accountSvc := application.NewAccountService(repo, logger)
	cache := application.NewRedisWatchlistCache(container.GetRedis(), cfg.WatchlistCacheTTL)
	watchlistSvc := application.NewWatchlistService(repo, cache, logger)

	r.Add(modules.NewAccountModule(handlers.NewAccountHandler(accountSvc, logger)))
	r.Add(modules.NewWatchlistModule(handlers.NewWatchlistHandler(watchlistSvc, logger)))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetPGPool(), container.GetRedis())))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
