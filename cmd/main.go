package main

//
//  @title           contractpulse API
//  @version         1.0
//  @description     Instrument reference extraction & contract size service.
//  @termsOfService  https://github.com/guttosm/contractpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/contractpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        transactions
//  @tag.description Endpoints for querying the last parsed result set
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/contractpulse/config"
	_ "github.com/guttosm/contractpulse/docs" // swagger docs
	"github.com/guttosm/contractpulse/internal/app"
	"github.com/guttosm/contractpulse/internal/logger"
	"github.com/guttosm/contractpulse/internal/pipeline"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the contractpulse application.
//
// Modes (selected via --mode flag):
//   - extract: Parses the input file and emits the normalized contract size CSV.
//   - api:     Serves the last parsed result set over HTTP.
//
// Flags:
//   - --mode: Execution mode ("extract" or "api"). Default: "extract".
//   - --in:   Input file path. Defaults to value from config (INPUT_FILE).
//   - --out:  Output file path. Defaults to value from config (OUTPUT_FILE).
//   - --keep-first-row: Parse every data row instead of reproducing the
//     historical exclusion of the first one.
//   - --port: Port for API mode. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "extract", "Mode: extract or api")
	in := flag.String("in", config.AppConfig.Pipeline.InputFile, "Input transaction file")
	out := flag.String("out", config.AppConfig.Pipeline.OutputFile, "Output CSV file")
	keepFirstRow := flag.Bool("keep-first-row", config.AppConfig.Pipeline.KeepFirstDataRow,
		"Retain the first data row instead of reproducing the historical exclusion")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "extract":
		// Extraction mode: parse the input file and emit the derived CSV
		logger.L().Info().Str("in", *in).Str("out", *out).Msg("running extraction")

		var opts []pipeline.Option
		if *keepFirstRow {
			opts = append(opts, pipeline.KeepFirstDataRow())
		}
		p := pipeline.New(opts...)

		if err := p.ParseFile(*in); err != nil {
			logger.L().Fatal().Err(err).Msg("parse failed")
		}
		if err := p.EmitFile(*out); err != nil {
			logger.L().Fatal().Err(err).Msg("emit failed")
		}
		logger.L().Info().Msg("extraction completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		// KeepFirstDataRow from the flag must reach InitializeApp via config
		config.AppConfig.Pipeline.InputFile = *in
		config.AppConfig.Pipeline.KeepFirstDataRow = *keepFirstRow

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
