package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/evseed/internal/database"
	"github.com/Rana718/evseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var bookCmd = &cobra.Command{
	Use:   "book <event-id>",
	Short: "Add one random booking to an existing event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := primitive.ObjectIDFromHex(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id %q: %w", args[0], err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, err := connectOptions(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return database.WithStore(ctx, opts, func(store database.DocumentStore) error {
			g := seeder.NewDataGenerator(generatorSeed(cfg))
			b, err := seeder.NewSeeder(store, seeder.DefaultPlan(), seeder.WithGenerator(g)).BookEvent(ctx, eventID)
			if err != nil {
				return err
			}
			color.Green("✅ booking %s added to event %s (%s)", b.ID.Hex(), eventID.Hex(), b.Status)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
}
