package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/silfira/realty/api/internal/config"
	"github.com/silfira/realty/api/internal/database"
	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/repository"
	"github.com/silfira/realty/api/internal/repository/gormstore"
	"github.com/silfira/realty/api/internal/repository/mongostore"
	"github.com/silfira/realty/api/internal/seed"
	"github.com/spf13/cobra"
)

const seedTimeout = 60 * time.Second

func main() {
	_ = godotenv.Load()

	var wipe bool

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset into the configured backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(wipe)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVar(&wipe, "wipe", true, "clear seeded tables/collections before loading")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(wipe bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.Server.Env)
	log.Info("Seeding database", map[string]interface{}{
		"backend": string(cfg.Database.Backend),
		"wipe":    wipe,
	})

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	var store *repository.Store
	switch cfg.Database.Backend {
	case config.BackendPostgres:
		pg, err := database.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pg.Close()

		store, err = gormstore.New(pg.Gorm)
		if err != nil {
			return fmt.Errorf("failed to initialize relational store: %w", err)
		}

		if wipe {
			if err := seed.WipePostgres(ctx, pg.Gorm); err != nil {
				return err
			}
			log.Info("Cleared existing tables", nil)
		}
	case config.BackendMongo:
		mg, err := database.OpenMongo(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = mg.Close(context.Background()) }()

		store = mongostore.New(mg.DB)

		if wipe {
			if err := seed.WipeMongo(ctx, mg.DB); err != nil {
				return err
			}
			log.Info("Cleared existing collections", nil)
		}
	}

	if err := seed.Load(ctx, store, log); err != nil {
		return err
	}

	log.Info("Seeding completed", nil)
	return nil
}
