package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"table-booking-webapp/config"
	"table-booking-webapp/database"
	"table-booking-webapp/dateformat"
	"table-booking-webapp/errors"
	"table-booking-webapp/handlers"
	"table-booking-webapp/metrics"
	"table-booking-webapp/router"
	"table-booking-webapp/templates"
)

var flagConfig = flag.String("config", config.DefaultPath, "path to config file")

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		l := bootLogger()
		l.Fatal().Err(err).Msg("failed to read .env")
	}

	logger := bootLogger()
	cfg, err := config.Load(*flagConfig, func(format string, args ...interface{}) {
		logger.Info().Msgf(format, args...)
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	logger = newLogger(cfg)

	catalog, err := database.ReadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load restaurant catalog")
	}

	formatter, err := dateformat.New(dateformat.Options{
		Order:    dateformat.Order(cfg.DateOrder),
		DayBasis: dateformat.DayBasis(cfg.DayBasis),
		Location: cfg.Location(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create date formatter")
	}

	pages, err := templates.Parse()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse templates")
	}

	metrics.Register()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errors.Handler,
	})
	router.SetupRoutes(app, handlers.New(catalog, formatter, pages, logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(cfg.BindAddr); err != nil {
			logger.Fatal().Err(err).Msg("error occurred while running server")
		}
	}()
	logger.Info().
		Str("bind_addr", cfg.BindAddr).
		Int("restaurants", catalog.Len()).
		Str("timezone", cfg.Timezone).
		Msg("server is running")

	<-ctx.Done()
	logger.Info().Msg("server shutting down")

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout()); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server exited properly")
}

func bootLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := bootLogger()
	if cfg.LogFormat == "json" {
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}
