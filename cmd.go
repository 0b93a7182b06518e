package main

import (
	"context"
	"errors"
	"time"

	"MediBook/config"
	"MediBook/config/db"
	"MediBook/migrations"
	"MediBook/server"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "medibook",
		Short:         "Hospital appointment booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.MongoEnabled {
				err := errors.New("migrate needs MONGO_ENABLED=true")
				log.Error().Err(err).Msg("migrate")
				return err
			}
			ctx, cancel := migrationContext()
			defer cancel()

			database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
			if err != nil {
				log.Error().Err(err).Msg("migrate")
				return err
			}
			defer func() { _ = db.Disconnect(context.Background()) }()

			if err := migrations.Run(ctx, database); err != nil {
				log.Error().Err(err).Msg("migrate")
				return err
			}
			log.Info().Msg("migrations complete")
			return nil
		},
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := serve(cfg); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	return nil
}

/*
* Load .env into the environment when present
* Read and validate config, then install the logger
 */
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config")
		return nil, err
	}
	server.SetupLogger(cfg)
	return cfg, nil
}

func migrationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Minute)
}
