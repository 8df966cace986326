package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alcyxob/fitness-seeder/internal/config"
	"alcyxob/fitness-seeder/internal/fixtures"
	"alcyxob/fitness-seeder/internal/repository/mongo"
	"alcyxob/fitness-seeder/internal/seed"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	// Process termination is the only cancellation point of a run; it is
	// equivalent to a mid-run failure, so previously committed checkpoints
	// stay persisted.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "seeder",
	Short:         "SetLogs synthetic workout data seeder",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yaml")
	rootCmd.AddCommand(seedCmd, verifyCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with fixture-based synthetic data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Print a sanity report over the seeded database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd.Context())
	},
}

func runSeed(ctx context.Context) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(client); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	db := client.Database(cfg.Database.Name)

	if cfg.Seed.Wipe {
		log.Info("wiping data collections...")
		if err := mongo.Wipe(ctx, db); err != nil {
			return fmt.Errorf("wiping database: %w", err)
		}
	}
	if err := mongo.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("preparing schema: %w", err)
	}

	source, err := fixtureSource(ctx, cfg)
	if err != nil {
		return err
	}
	catalog, err := fixtures.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}

	gateway, err := mongo.NewGateway(ctx, client, db, cfg.Database.Transactions)
	if err != nil {
		return fmt.Errorf("opening persistence gateway: %w", err)
	}
	defer gateway.Close(ctx)

	seeder := seed.New(gateway, mongo.NewMongoSeedRunRepository(db), catalog, seed.SystemClock(), seed.Options{
		HorizonDays: cfg.Seed.HorizonDays,
		BatchSize:   cfg.Seed.BatchSize,
		ExtraUsers:  cfg.Seed.ExtraUsers,
		RNGSeed:     cfg.Seed.RNGSeed,
	})

	summary, err := seeder.Run(ctx)
	if err != nil {
		log.WithError(err).Error("seeding failed, rolling back uncommitted work")
		if rbErr := gateway.Rollback(ctx); rbErr != nil {
			log.WithError(rbErr).Error("rollback failed")
		}
		return err
	}

	fmt.Println("Database seeding completed successfully!")
	fmt.Println("Summary:")
	fmt.Printf("   - Users: %d\n", summary.Users)
	fmt.Printf("   - Exercises: %d\n", summary.Exercises)
	fmt.Printf("   - Programs: %d\n", summary.Programs)
	fmt.Printf("   - Assignments: %d\n", summary.Assignments)
	fmt.Printf("   - Sessions: %d\n", summary.Sessions)
	fmt.Printf("   - Sets: %d\n", summary.Sets)
	return nil
}

func runVerify(ctx context.Context) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(client); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()

	stats := mongo.NewMongoStatsRepository(client.Database(cfg.Database.Name))
	return seed.NewVerifier(stats).Report(ctx, os.Stdout)
}

func fixtureSource(ctx context.Context, cfg config.Config) (fixtures.Source, error) {
	switch cfg.Fixtures.Source {
	case "", "embedded":
		return fixtures.EmbeddedSource(), nil
	case "dir":
		if cfg.Fixtures.Dir == "" {
			return nil, fmt.Errorf("fixtures.source is %q but fixtures.dir is empty", cfg.Fixtures.Source)
		}
		return fixtures.DirSource(cfg.Fixtures.Dir), nil
	case "s3":
		return fixtures.NewS3Source(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown fixtures source %q", cfg.Fixtures.Source)
	}
}
