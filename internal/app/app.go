package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/contractpulse/config"
	"github.com/guttosm/contractpulse/internal/api"
	"github.com/guttosm/contractpulse/internal/pipeline"
	"github.com/guttosm/contractpulse/internal/service"
)

// InitializeApp sets up all application dependencies for API mode and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the per-run pipeline and parses the configured input file once
//     at startup so the API has a result set to serve.
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes (readiness = result set loaded).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	var opts []pipeline.Option
	if cfg.Pipeline.KeepFirstDataRow {
		opts = append(opts, pipeline.KeepFirstDataRow())
	}
	p := pipeline.New(opts...)

	if err := p.ParseFile(cfg.Pipeline.InputFile); err != nil {
		return nil, nil, fmt.Errorf("failed to load input file: %w", err)
	}

	// Service layer (read-only view over the pipeline state)
	svc := service.NewTransactionService(p)

	// HTTP handler layer
	handler := api.NewHandler(svc)

	// Gin router with routes
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(p.Ready)
	healthHandler.Register(router)

	// No external resources to release; kept for symmetry with shutdown flow.
	cleanup := func() {}

	return router, cleanup, nil
}
