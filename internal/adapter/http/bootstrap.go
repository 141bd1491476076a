package http

import (
	"log/slog"
	"net/http"
	"time"

	"pokereview/internal/adapter/database"
	"pokereview/internal/adapter/http/routes"
	"pokereview/internal/core/port"
	"pokereview/pkg/auth"
	"pokereview/pkg/config"
	"pokereview/pkg/metrics"
)

// StartServer wires the store, services and router, then serves until
// the listener fails.
func StartServer(cfg *config.Config, appMetrics *metrics.AppMetrics, probe port.Telemetry) error {
	var db *database.DB
	var err error

	if cfg.DatabaseURL != "" {
		db, err = database.NewPostgres(cfg.DatabaseURL)
	} else {
		db, err = database.NewSQLite(cfg.DatabasePath)
	}

	if err != nil {
		return err
	}

	defer db.Close()

	jwt := auth.NewJWT(cfg.Token)

	container := NewContainer(db, jwt, probe, appMetrics)

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler:     container.AuthHandler,
		CategoryHandler: container.CategoryHandler,
		CountryHandler:  container.CountryHandler,
		OwnerHandler:    container.OwnerHandler,
		PokemonHandler:  container.PokemonHandler,
		ReviewerHandler: container.ReviewerHandler,
		ReviewHandler:   container.ReviewHandler,
	}, jwt, appMetrics)

	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
		return err
	}

	return nil
}
