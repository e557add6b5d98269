package cmd

import (
	"fmt"

	"github.com/Rana718/evseed/internal/config"
	"github.com/Rana718/evseed/internal/database"
	"github.com/Rana718/evseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	dryRun     bool
	randomSeed uint64
	Version    = "0.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "evseed",
	Short: "Seed a MongoDB database with a consistent events and vendor booking dataset",
	Long: `
evseed drops the events/vendor-booking collections and refills them with
interrelated fake documents: clients, vendors, tags, vendor packages, events,
bookings and vendor reviews.

Running evseed without a subcommand performs a full seed run.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("evseed version %s\n", Version)
			return nil
		}
		return runSeed(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./evseed.config.json)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Seed an in-memory store instead of the database")
	rootCmd.PersistentFlags().Uint64Var(&randomSeed, "seed", 0, "Random seed for reproducible data (0 picks one)")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(config.FileName)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && cfgFile != "" {
			color.Yellow("⚠️  Could not read config file %s: %v", cfgFile, err)
		}
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// connectOptions resolves where to connect. A dry run never reads the
// connection string.
func connectOptions(cfg *config.Config) (database.ConnectOptions, error) {
	if dryRun || cfg.Database.Provider == "memory" {
		return database.ConnectOptions{Provider: "memory"}, nil
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return database.ConnectOptions{}, err
	}
	return database.ConnectOptions{
		Provider: cfg.Database.Provider,
		URL:      dbURL,
		Name:     cfg.Database.Name,
	}, nil
}

// buildPlan applies config overrides to the compiled-in plan.
func buildPlan(cfg *config.Config) (seeder.Plan, error) {
	plan, err := seeder.DefaultPlan().WithCounts(cfg.Seed.Counts)
	if err != nil {
		return seeder.Plan{}, err
	}

	mode, err := seeder.ParseLinkMode(cfg.Seed.BookingLink)
	if err != nil {
		return seeder.Plan{}, err
	}
	plan = plan.WithLinkMode(mode)

	if cfg.Seed.Concurrency > 0 {
		plan.Concurrency = cfg.Seed.Concurrency
	}
	return plan, plan.Validate()
}

func generatorSeed(cfg *config.Config) uint64 {
	if randomSeed != 0 {
		return randomSeed
	}
	return cfg.Seed.RandomSeed
}
