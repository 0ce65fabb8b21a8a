package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-equipment/internal/catalog"
	"github.com/KirkDiggler/rpg-equipment/internal/clients/srd"
	prototyperepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/item_prototype"
)

var (
	srdCategories []string
	srdBaseURL    string
	srdDryRun     bool
)

var importSRDCmd = &cobra.Command{
	Use:   "import-srd",
	Short: "Import SRD weapons and armor as item prototypes",
	Long: `Fetch equipment categories from the D&D 5e SRD API and store each weapon
and armor piece as an item prototype. Re-running the import updates in place.`,
	RunE: runImportSRD,
}

func init() {
	importSRDCmd.Flags().StringSliceVar(&srdCategories, "category", []string{"simple-weapons"}, "SRD equipment categories to import")
	importSRDCmd.Flags().StringVar(&srdBaseURL, "base-url", envOr("SRD_BASE_URL", srd.DefaultBaseURL), "SRD API base URL")
	importSRDCmd.Flags().BoolVar(&srdDryRun, "dry-run", false, "Print the prototypes without storing them")
}

func runImportSRD(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	importer, err := srd.New(&srd.Config{BaseURL: srdBaseURL})
	if err != nil {
		return err
	}

	var syncer *catalog.Syncer
	if !srdDryRun {
		redisClient, err := connectRedis(ctx)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		prototypeRepo, err := prototyperepo.NewRedis(&prototyperepo.RedisConfig{Client: redisClient})
		if err != nil {
			return err
		}
		syncer, err = catalog.NewSyncer(&catalog.SyncerConfig{Repo: prototypeRepo})
		if err != nil {
			return err
		}
	}

	for _, category := range srdCategories {
		prototypes, err := importer.ImportCategory(ctx, category)
		if err != nil {
			return err
		}

		if syncer == nil {
			for _, p := range prototypes {
				fmt.Printf("%s  %-24s %-10s price=%d %v\n", p.ID(), p.Name(), p.Type(), p.Price().Amount(), p.Effects())
			}
			continue
		}

		result, err := syncer.Sync(ctx, "srd", prototypes)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d created, %d updated\n", category, result.Created, result.Updated)
	}

	return nil
}
