package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-equipment/internal/datacheck"
)

var fixData bool

var checkDataCmd = &cobra.Command{
	Use:   "check-data",
	Short: "Scan Redis for corrupted equipment data",
	Long: `Scan stored characters, items and item prototypes for records that no longer
load, and for index entries pointing at missing records. Pass --fix to delete
corrupted records and drop dangling index entries.`,
	RunE: runCheckData,
}

func init() {
	checkDataCmd.Flags().BoolVar(&fixData, "fix", false, "Delete corrupted records and dangling index entries")
}

func runCheckData(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	redisClient, err := connectRedis(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	checker, err := datacheck.New(&datacheck.Config{Client: redisClient})
	if err != nil {
		return err
	}

	report, err := checker.Scan(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Checked %d records, found %d corrupted and %d dangling index entries\n",
		report.Checked, len(report.Corrupted), len(report.Dangling))
	for _, key := range report.Corrupted {
		fmt.Printf("  corrupted: %s\n", key)
	}
	for _, entry := range report.Dangling {
		fmt.Printf("  dangling:  %s -> %s\n", entry.IndexKey, entry.Member)
	}

	if report.Clean() || !fixData {
		return nil
	}

	if err := checker.Fix(ctx, report); err != nil {
		return err
	}
	fmt.Println("Cleanup complete")
	return nil
}
