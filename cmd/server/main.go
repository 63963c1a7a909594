// Taskboard
// A REST API for managing a JWT-protected item collection

package main

import (
	"go.uber.org/fx"

	"andrasnagy-data/taskboard/internal/components/auth"
	"andrasnagy-data/taskboard/internal/components/item"
	"andrasnagy-data/taskboard/internal/server"
	"andrasnagy-data/taskboard/internal/shared/config"
	"andrasnagy-data/taskboard/internal/shared/database"
	"andrasnagy-data/taskboard/internal/shared/logging"
	"andrasnagy-data/taskboard/internal/shared/middleware"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewPgxPool,
			server.NewServer,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			auth.NewRepo,
			auth.NewHasher,
			auth.NewTokenManager,
			auth.NewService,
			auth.NewRouter,
			item.NewRepo,
			item.NewService,
			item.NewRouter,
			middleware.NewAuthMiddleware,
		),
		fx.Invoke((*server.Server).Start),
	).Run()
}
