package cmd

import (
	"context"

	"github.com/Rana718/evseed/internal/database"
	"github.com/Rana718/evseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop and reseed every collection",
	Long: `Drop the seeded collections and regenerate clients, vendors, tags,
packages, events, bookings and reviews in dependency order. The run is one-shot:
the process exits once it finishes or fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func runSeed(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	plan, err := buildPlan(cfg)
	if err != nil {
		return err
	}

	opts, err := connectOptions(cfg)
	if err != nil {
		return err
	}
	if opts.Provider == "memory" {
		color.Yellow("🧪 Dry run: seeding an in-memory store")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return database.WithStore(ctx, opts, func(store database.DocumentStore) error {
		g := seeder.NewDataGenerator(generatorSeed(cfg))
		return seeder.NewSeeder(store, plan, seeder.WithGenerator(g)).Run(ctx)
	})
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
