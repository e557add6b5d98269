package cmd

import (
	"bytes"
	"testing"

	"github.com/Rana718/evseed/internal/config"
	"github.com/Rana718/evseed/internal/seeder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildPlanAppliesOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed.Counts = map[string]int{"bookings": 4}
	cfg.Seed.BookingLink = "each"
	cfg.Seed.Concurrency = 2

	plan, err := buildPlan(cfg)
	require.NoError(t, err)

	bookings, ok := plan.Phase(seeder.PhaseBookings)
	require.True(t, ok)
	assert.Equal(t, 4, bookings.Count)
	assert.Equal(t, seeder.LinkEach, bookings.Link)
	assert.Equal(t, 2, plan.Concurrency)
}

func TestBuildPlanRejectsBadOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed.BookingLink = "later"
	_, err := buildPlan(cfg)
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.Seed.Counts = map[string]int{"events": 0}
	_, err = buildPlan(cfg)
	assert.Error(t, err)
}

func TestConnectOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database.URLEnv = "EVSEED_CMD_TEST_URL"
	t.Setenv("EVSEED_CMD_TEST_URL", "")

	dryRun = true
	t.Cleanup(func() { dryRun = false })
	opts, err := connectOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, "memory", opts.Provider)

	dryRun = false
	_, err = connectOptions(cfg)
	assert.ErrorContains(t, err, "EVSEED_CMD_TEST_URL")

	t.Setenv("EVSEED_CMD_TEST_URL", "mongodb://localhost:27017/events")
	opts, err = connectOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, "mongodb", opts.Provider)
	assert.Equal(t, "mongodb://localhost:27017/events", opts.URL)
}

func TestPlanCommandPrintsYAML(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"plan"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())

	var plan seeder.Plan
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &plan))
	assert.Equal(t, seeder.DefaultPlan().Phases, plan.Phases)
}

func TestDryRunSeed(t *testing.T) {
	rootCmd.SetArgs([]string{"seed", "--dry-run", "--seed", "7"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		dryRun = false
		randomSeed = 0
	})

	assert.NoError(t, Execute())
}
