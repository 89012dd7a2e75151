package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/NarasimhaSaladi/22P31A4234/internal/config"
	"github.com/NarasimhaSaladi/22P31A4234/internal/geo"
	"github.com/NarasimhaSaladi/22P31A4234/internal/middleware"
	"github.com/NarasimhaSaladi/22P31A4234/internal/registry"
	"github.com/NarasimhaSaladi/22P31A4234/internal/routes"
	"github.com/NarasimhaSaladi/22P31A4234/internal/services"
	"github.com/NarasimhaSaladi/22P31A4234/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "shortener",
	Short: "Run the URL shortener HTTP service",
	Long: `Starts the URL shortener API: short link creation, redirects with
click analytics, and per-link statistics. State is held in memory and is
lost on restart.`,
	Run: runServer,
}

func init() {
	rootCmd.Flags().String("port", "", "port to listen on (overrides PORT)")
	_ = viper.BindPFlag("PORT", rootCmd.Flags().Lookup("port"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.Environment)
	logger.Info().Str("environment", cfg.Environment).Msg("Starting URL shortener...")

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// One shared registry instance; its lifecycle is the process lifecycle.
	reg := registry.New(registry.NewGenerator(cfg.CodeLength))
	geoResolver := geo.NewStaticResolver()

	shortener := services.NewShortener(reg)
	resolver := services.NewResolver(reg, geoResolver, time.Duration(cfg.GeoTimeoutMS)*time.Millisecond)
	reporter := services.NewReporter(reg)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	routes.RegisterShortenerRoutes(r, reg, shortener, resolver, reporter, cfg.BaseURL)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}

	logger.Info().Msg("Server stopped")
}
