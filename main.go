package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"laptop-service-center/config"
	"laptop-service-center/database"
	"laptop-service-center/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "laptop-service-center: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:          "laptop-service-center",
		Short:        "Laptop repair complaint and feedback API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && envFile != ".env" {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
			cfg := config.Load()

			l, err := logger.New(cfg.Server.GinMode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger.SetGlobal(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.L().Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")

	cmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
	)
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the admin live feed and the overdue job",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), config.AppConfig, logger.L())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.L()
			db, err := database.Open(config.AppConfig.Database, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info("✅ Database migrations completed successfully")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample complaints and feedback into empty tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.L()
			db, err := database.Open(config.AppConfig.Database, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			inserted, err := database.Seed(db)
			if err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}
			if !inserted {
				log.Info("Tables already contain data, nothing seeded")
				return nil
			}
			log.Info("🌱 Sample data seeded", zap.Bool("inserted", inserted))
			return nil
		},
	}
}
